package chessmg

import "testing"

// snapshot captures the full position state for bit-for-bit comparison.
type snapshot struct {
	pawns, knights, bishops, rooks, queens, kings [2]uint64
	occupancy                                     [2]uint64
	pieces                                        [64]Piece
	sideToMove                                    Color
	castlingRights                                CastlingRights
	enPassantSquare                               Square
	halfmoveClock                                 int
	fullmoveNumber                                int
	zobristKey                                    uint64
}

func snap(b *Board) snapshot {
	return snapshot{
		pawns: b.pawns, knights: b.knights, bishops: b.bishops,
		rooks: b.rooks, queens: b.queens, kings: b.kings,
		occupancy: b.occupancy, pieces: b.pieces,
		sideToMove: b.sideToMove, castlingRights: b.castlingRights,
		enPassantSquare: b.enPassantSquare, halfmoveClock: b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber, zobristKey: b.zobristKey,
	}
}

// Every legal move in a set of tactically rich positions must unmake back
// to the identical position, and the incremental hash must match a from-
// scratch recomputation after the make.
func TestMakeUnmakeRestoresEverything(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		before := snap(b)
		for _, m := range b.GenerateLegalMoves() {
			st := b.MakeMove(m)
			if got, want := b.zobristKey, b.ComputeZobrist(); got != want {
				t.Errorf("%q %s: incremental hash %#x, recomputed %#x", fen, m, got, want)
			}
			if !b.Validate() {
				t.Errorf("%q %s: inconsistent board after make", fen, m)
			}
			b.UnmakeMove(m, st)
			if snap(b) != before {
				t.Fatalf("%q %s: unmake did not restore the position", fen, m)
			}
		}
	}
}

func TestMakeMoveCastling(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := b.ParseMove("e1g1")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	st := b.MakeMove(m)
	if b.pieces[int(G1)] != WhiteKing || b.pieces[int(F1)] != WhiteRook {
		t.Fatal("kingside castle did not place king on g1 and rook on f1")
	}
	if b.pieces[int(E1)] != NoPiece || b.pieces[int(H1)] != NoPiece {
		t.Fatal("kingside castle left pieces on e1/h1")
	}
	if b.castlingRights&(CastlingWhiteK|CastlingWhiteQ) != 0 {
		t.Fatal("white castling rights survived castling")
	}
	if b.castlingRights&(CastlingBlackK|CastlingBlackQ) == 0 {
		t.Fatal("black castling rights were clobbered")
	}
	b.UnmakeMove(m, st)
	if b.FEN() != "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1" {
		t.Fatalf("unmake of castle: %s", b.FEN())
	}
}

func TestMakeMoveEnPassant(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := b.ParseMove("e5f6")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Flags&FlagEnPassant == 0 {
		t.Fatal("e5f6 should be flagged en passant")
	}
	st := b.MakeMove(m)
	if b.pieces[int(F5)] != NoPiece {
		t.Fatal("en passant did not remove the f5 pawn")
	}
	if b.pieces[int(F6)] != WhitePawn {
		t.Fatal("capturing pawn not on f6")
	}
	b.UnmakeMove(m, st)
	if b.pieces[int(F5)] != BlackPawn || b.pieces[int(E5)] != WhitePawn {
		t.Fatal("unmake did not restore the en passant capture")
	}
}

func TestMakeMovePromotion(t *testing.T) {
	b, err := ParseFEN("3n4/4P1k1/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := b.ParseMove("e7d8q")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	st := b.MakeMove(m)
	if b.pieces[int(D8)] != WhiteQueen {
		t.Fatalf("promotion square holds %v, want white queen", b.pieces[int(D8)])
	}
	if b.pawns[White]&bb(E7) != 0 {
		t.Fatal("promoting pawn still on the pawn bitboard")
	}
	b.UnmakeMove(m, st)
	if b.pieces[int(E7)] != WhitePawn || b.pieces[int(D8)] != BlackKnight {
		t.Fatal("unmake did not restore the promotion capture")
	}
}

// Capturing a rook on its home square must strip the matching castling
// right, or the opponent could castle with a ghost rook later.
func TestCapturingRookDropsCastlingRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := b.ParseMove("g2a8")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	st := b.MakeMove(m)
	if b.castlingRights&CastlingBlackQ != 0 {
		t.Fatal("black queenside right survived the a8 rook's capture")
	}
	if b.castlingRights&CastlingBlackK == 0 {
		t.Fatal("black kingside right should survive")
	}
	b.UnmakeMove(m, st)
	if b.castlingRights != CastlingWhiteK|CastlingWhiteQ|CastlingBlackK|CastlingBlackQ {
		t.Fatal("unmake did not restore castling rights")
	}
}

func TestDoublePushSetsEnPassant(t *testing.T) {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := b.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	b.MakeMove(m)
	if b.enPassantSquare != E3 {
		t.Fatalf("en passant square = %s, want e3", b.enPassantSquare)
	}
	m2, err := b.ParseMove("g8f6")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	b.MakeMove(m2)
	if b.enPassantSquare != NoSquare {
		t.Fatal("en passant square survived a non-double-push reply")
	}
}
