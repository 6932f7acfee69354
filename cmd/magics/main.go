// Command magics searches fresh magic multipliers for the rook and bishop
// attack tables and prints them as Go source, ready to paste into the
// package's constant tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/nathanaelweber/chessmg"
)

func main() {
	seed := flag.Int64("seed", 1, "Base seed for the per-square random searches")
	tries := flag.Int("tries", 100_000_000, "Candidate attempts per square before giving up")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Concurrent square searches")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	start := time.Now()
	set, err := chessmg.FindAllMagics(*workers, *seed, *tries)
	if err != nil {
		log.Fatal().Err(err).Msg("magic search failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("found magics for all 128 tables")

	printTable("rookMagicNumbers", &set.Rook)
	printTable("bishopMagicNumbers", &set.Bishop)
}

func printTable(name string, magics *[64]uint64) {
	fmt.Printf("var %s = [64]uint64{\n", name)
	for rank := 0; rank < 8; rank++ {
		fmt.Print("\t")
		for file := 0; file < 8; file++ {
			fmt.Printf("0x%016X, ", magics[rank*8+file])
		}
		fmt.Println()
	}
	fmt.Println("}")
}
