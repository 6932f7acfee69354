package chessmg_test

import (
	"math/rand"
	"sort"
	"testing"

	chessoracle "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/require"

	"github.com/nathanaelweber/chessmg"
)

// oracleMoveSet returns the sorted UCI strings of every legal move that the
// reference rules library finds in the position.
func oracleMoveSet(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chessoracle.FEN(fen)
	require.NoError(t, err, fen)
	game := chessoracle.NewGame(opt)
	pos := game.Position()
	moves := game.ValidMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, chessoracle.UCINotation{}.Encode(pos, &moves[i]))
	}
	sort.Strings(out)
	return out
}

func ourMoveSet(b *chessmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func TestLegalMoveSetMatchesRulesLibrary(t *testing.T) {
	fens := []string{
		chessmg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		b, err := chessmg.ParseFEN(fen)
		require.NoError(t, err, fen)
		require.Equal(t, oracleMoveSet(t, fen), ourMoveSet(b), "position %s", fen)
	}
}

// Play random legal moves and compare the full legal move set against the
// rules library at every step. Seeded, so a failure replays identically.
func TestRandomPlayoutsMatchRulesLibrary(t *testing.T) {
	const (
		games    = 20
		maxPlies = 60
	)
	rnd := rand.New(rand.NewSource(20260829))
	for g := 0; g < games; g++ {
		b, err := chessmg.ParseFEN(chessmg.FENStartPos)
		require.NoError(t, err)
		for ply := 0; ply < maxPlies; ply++ {
			fen := b.FEN()
			ours := ourMoveSet(b)
			require.Equal(t, oracleMoveSet(t, fen), ours,
				"game %d ply %d position %s", g, ply, fen)
			if len(ours) == 0 || b.IsDrawBy50() {
				break
			}
			moves := b.GenerateLegalMoves()
			m := moves[rnd.Intn(len(moves))]
			require.NoError(t, b.Push(m), "game %d ply %d move %s", g, ply, m)
		}
	}
}

// Cross-check node counts against an independent move generator.
func TestPerftMatchesReferenceGenerator(t *testing.T) {
	fens := []string{
		chessmg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		ours, err := chessmg.ParseFEN(fen)
		require.NoError(t, err, fen)
		ref := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 4; depth++ {
			want := uint64(dragontoothmg.Perft(&ref, depth))
			require.Equal(t, want, ours.Perft(depth), "position %s depth %d", fen, depth)
		}
	}
}
