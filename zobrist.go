package chessmg

import "math/rand"

// Zobrist keys: one per (piece, square), one per castling-rights state, one
// per en-passant file, and one for the side to move. Seeded deterministically
// so hashes are stable across runs and tests.
var zobristPiece [12][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	rnd := rand.New(rand.NewSource(0x5EED1E55))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// pieceKey maps a Piece to its slot in zobristPiece: white types 0..5,
// black types 6..11. Callers must not pass NoPiece.
func pieceKey(p Piece) int {
	return int(p&7) - 1 + 6*int(p>>3)
}

// ComputeZobrist recalculates the position hash from scratch. The board
// maintains the same value incrementally; this is the drift check.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.pieces[sq]; p != NoPiece {
			key ^= zobristPiece[pieceKey(p)][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[int(b.castlingRights)]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}
