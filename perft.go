package chessmg

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// perftCtx holds one move buffer per depth so the recursive walk performs no
// per-node allocation after the first visit of each depth.
type perftCtx struct {
	buffers [][]Move
}

func (c *perftCtx) buffer(depth int) []Move {
	for len(c.buffers) <= depth {
		c.buffers = append(c.buffers, make([]Move, 0, 64))
	}
	return c.buffers[depth]
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 is a single node, the current position.
func (b *Board) Perft(depth int) uint64 {
	ctx := &perftCtx{}
	return b.perft(depth, ctx)
}

func (b *Board) perft(depth int, ctx *perftCtx) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMovesInto(ctx.buffer(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := b.MakeMove(m)
		nodes += b.perft(depth-1, ctx)
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide returns the node count below each root move. The sum of the
// map values equals Perft(depth).
func (b *Board) PerftDivide(depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	ctx := &perftCtx{}
	for _, m := range b.GenerateLegalMoves() {
		st := b.MakeMove(m)
		result[m] = b.perft(depth-1, ctx)
		b.UnmakeMove(m, st)
	}
	return result
}

// PerftParallel splits the root moves across workers, each walking its
// subtree on a private copy of the board. workers <= 0 means GOMAXPROCS.
// The count is identical to Perft(depth).
func (b *Board) PerftParallel(depth, workers int) uint64 {
	if depth <= 0 {
		return 1
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := b.GenerateLegalMoves()
	counts := make([]uint64, len(moves))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, m := range moves {
		g.Go(func() error {
			child := b.Copy()
			st := child.MakeMove(m)
			counts[i] = child.perft(depth-1, &perftCtx{})
			child.UnmakeMove(m, st)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes
}
