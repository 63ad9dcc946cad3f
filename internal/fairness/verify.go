package fairness

import "fmt"

// VerifyDraws rebuilds the chain for seed and checks that the disclosed hashes
// are exactly its first len(hashes) draws. It returns the index of the first
// mismatch in the error.
func VerifyDraws(seed string, hashes []string) error {
	rng := NewHashChainRNG(seed)
	for range hashes {
		rng.Next()
	}
	replayed := rng.Draws()
	for i, h := range hashes {
		if replayed[i] != h {
			return fmt.Errorf("draw %d: expected hash %s, got %s", i, replayed[i], h)
		}
	}
	return nil
}
