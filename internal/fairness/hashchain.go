package fairness

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
)

// Source is a stream of floats in [0, 1)
type Source interface {
	Next() float64
}

// HashChainRNG is a deterministic random source driven by SHA-256.
// Draw n (counting from 1) hashes "{hex(sha256(seed))}:{n}", reads the first
// 4 bytes of the result as a big-endian uint32 and divides by 2^32
// (4294967296, not 0xFFFFFFFF), so every draw lies in [0, 1).
// Instances are single-spin and not safe for concurrent use.
type HashChainRNG struct {
	seed    string
	digest  string
	counter uint64
	draws   []string
}

// NewHashChainRNG builds a fresh chain for one seed
func NewHashChainRNG(seed string) *HashChainRNG {
	sum := sha256.Sum256([]byte(seed))
	return &HashChainRNG{
		seed:   seed,
		digest: hex.EncodeToString(sum[:]),
	}
}

// Next advances the counter and returns a value in [0, 1)
func (r *HashChainRNG) Next() float64 {
	r.counter++

	input := make([]byte, 0, len(r.digest)+len(CounterSeparator)+20)
	input = append(input, r.digest...)
	input = append(input, CounterSeparator...)
	input = strconv.AppendUint(input, r.counter, 10)

	sum := sha256.Sum256(input)
	r.draws = append(r.draws, hex.EncodeToString(sum[:]))

	// First 8 hex chars == first 4 bytes, big-endian
	prefix := binary.BigEndian.Uint32(sum[:DrawPrefixHexChars/2])
	return float64(prefix) / drawSpace
}

// NextInt returns an integer in [min, max] inclusive.
// Bounds given in the wrong order are swapped.
func (r *HashChainRNG) NextInt(min, max int) int {
	if min > max {
		min, max = max, min
	}
	span := float64(max - min + 1)
	return int(math.Floor(r.Next()*span)) + min
}

// Seed returns the seed the chain was built from
func (r *HashChainRNG) Seed() string {
	return r.seed
}

// Digest returns hex(sha256(seed))
func (r *HashChainRNG) Digest() string {
	return r.digest
}

// Counter returns how many draws have been taken
func (r *HashChainRNG) Counter() uint64 {
	return r.counter
}

// Draws returns a copy of the hex hash of every draw so far, in order
func (r *HashChainRNG) Draws() []string {
	out := make([]string, len(r.draws))
	copy(out, r.draws)
	return out
}
