// Command verify runs the standard perft verification suite and reports
// per-position pass/fail. A non-zero exit code means at least one count
// diverged, which makes it usable as a CI gate.
package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/nathanaelweber/chessmg"
)

type suiteEntry struct {
	name   string
	fen    string
	counts []uint64 // counts[d-1] = perft(d)
}

var suite = []suiteEntry{
	{"initial", chessmg.FENStartPos,
		[]uint64{20, 400, 8902, 197281, 4865609, 119060324}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]uint64{48, 2039, 97862, 4085603, 193690690}},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]uint64{14, 191, 2812, 43238, 674624, 11030083}},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		[]uint64{6, 264, 9467, 422333, 15833292}},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		[]uint64{44, 1486, 62379, 2103487, 89941194}},
	{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		[]uint64{46, 2079, 89890, 3894594, 164075551}},
}

func main() {
	maxDepth := flag.Int("maxdepth", 5, "Deepest perft level to check per position")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Goroutines for the root-split walk")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	failed := 0
	for _, e := range suite {
		board, err := chessmg.ParseFEN(e.fen)
		if err != nil {
			log.Error().Err(err).Str("position", e.name).Msg("cannot parse suite position")
			failed++
			continue
		}
		for d, want := range e.counts {
			depth := d + 1
			if depth > *maxDepth {
				break
			}
			start := time.Now()
			got := board.PerftParallel(depth, *workers)
			ev := log.Info()
			if got != want {
				ev = log.Error()
				failed++
			}
			ev.Str("position", e.name).
				Int("depth", depth).
				Uint64("nodes", got).
				Uint64("want", want).
				Dur("elapsed", time.Since(start)).
				Msg("perft")
		}
	}
	if failed > 0 {
		log.Error().Int("failures", failed).Msg("verification failed")
		os.Exit(1)
	}
	log.Info().Msg("all positions verified")
}
