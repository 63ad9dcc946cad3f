// Command verify replays a disclosed spin offline.
//
// Usage:
//
//	verify -seed crypto-slot-2024-06-01-1000-50-alice-7 -bet 50 -p 0.3 [-paytable configs/paytable.yaml] [-hashes h1,h2,...]
//
// It prints the symbols and payout the seed produces and, when -hashes is
// given, checks them against the hashes published with the spin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

func main() {
	seed := flag.String("seed", "", "disclosed spin seed")
	bet := flag.Int64("bet", 0, "clamped bet amount reported with the spin")
	prob := flag.Float64("p", -1, "disclosed win probability")
	tablePath := flag.String("paytable", "", "paytable file (embedded default when empty)")
	hashes := flag.String("hashes", "", "comma-separated draw hashes to check")
	flag.Parse()

	if err := run(*seed, *bet, *prob, *tablePath, *hashes); err != nil {
		fmt.Fprintln(os.Stderr, "verify:", err)
		os.Exit(1)
	}
}

func run(seed string, bet int64, prob float64, tablePath, hashes string) error {
	if seed == "" || bet <= 0 || prob < 0 {
		flag.Usage()
		return fmt.Errorf("-seed, -bet and -p are required")
	}

	table, err := paytable.Load(tablePath)
	if err != nil {
		return err
	}

	result, err := slots.Replay(table, seed, bet, prob)
	if err != nil {
		return err
	}

	if hashes != "" {
		published := strings.Split(hashes, ",")
		if err := fairness.VerifyDraws(seed, published); err != nil {
			return fmt.Errorf("published hashes do not match seed: %w", err)
		}
		if len(published) != len(result.DrawHashes) {
			return fmt.Errorf("published %d hashes but replay consumed %d draws", len(published), len(result.DrawHashes))
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
