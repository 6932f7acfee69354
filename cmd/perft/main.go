package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/nathanaelweber/chessmg"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", 0, "Split root moves across N goroutines (0 = single-threaded)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *depth <= 0 {
		log.Fatal().Msg("-depth must be > 0")
	}

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("cannot parse position")
	}

	if *divide {
		div := board.PerftDivide(*depth)
		names := make([]string, 0, len(div))
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			names = append(names, m.String())
			byName[m.String()] = n
			sum += n
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if *workers > 0 {
			totalNodes += board.PerftParallel(*depth, *workers)
		} else {
			totalNodes += board.Perft(*depth)
		}
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	log.Info().
		Int("depth", *depth).
		Uint64("nodes", totalNodes).
		Dur("elapsed", elapsed).
		Float64("nps", nps).
		Msg("perft complete")
	fmt.Printf("%d\n", totalNodes)
}
