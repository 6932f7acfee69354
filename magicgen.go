package chessmg

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Offline magic-number search. Steady-state runtime never calls this; the
// shipped constants cover the hot path. The cmd/magics tool regenerates the
// tables, and init falls back to a bounded search if a shipped constant
// ever fails verification.

const defaultMagicTries = 100_000_000

// randSparse draws a candidate multiplier with few set bits; sparse numbers
// are far more likely to produce collision-free hashes.
func randSparse(r *rand.Rand) uint64 {
	return r.Uint64() & r.Uint64() & r.Uint64()
}

// findMagic searches for a multiplier that perfectly hashes all occupancy
// subsets of the square's mask. The search is deterministic for a given
// seed. It returns the multiplier and the filled attack table, or a
// TableBuildError-wrapped failure after the allotted tries.
func findMagic(sq int, mask uint64, ref func(int, uint64) uint64, seed int64, tries int) (uint64, []uint64, error) {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < tries; i++ {
		magic := randSparse(r)
		// Cheap rejection: the hash of the full mask must populate the
		// high bits or most subsets will collide.
		if PopCount((mask*magic)&0xFF00000000000000) < 6 {
			continue
		}
		if table, ok := buildMagicTable(sq, mask, magic, ref); ok {
			return magic, table, nil
		}
	}
	return 0, nil, fmt.Errorf("no magic for square %s after %d tries: %w",
		Square(sq), tries, &TableBuildError{Square: Square(sq)})
}

// MagicSet holds freshly searched multipliers for both slider families.
type MagicSet struct {
	Rook   [64]uint64
	Bishop [64]uint64
}

// FindAllMagics searches all 128 square/family combinations. Each square is
// independent, so the search fans out across workers; every worker owns its
// own candidate tables and publishes only the accepted multiplier.
// workers <= 0 uses GOMAXPROCS.
func FindAllMagics(workers int, seed int64, tries int) (*MagicSet, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	set := &MagicSet{}
	var g errgroup.Group
	g.SetLimit(workers)
	for sq := 0; sq < 64; sq++ {
		sq := sq
		g.Go(func() error {
			magic, _, err := findMagic(sq, rookMaskFor(sq), rookAttacksRef, seed+int64(sq), tries)
			if err != nil {
				return err
			}
			set.Rook[sq] = magic
			return nil
		})
		g.Go(func() error {
			magic, _, err := findMagic(sq, bishopMaskFor(sq), bishopAttacksRef, seed+64+int64(sq), tries)
			if err != nil {
				return err
			}
			set.Bishop[sq] = magic
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}
