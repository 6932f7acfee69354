package chessmg

// Piece identifies a colored chess piece.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

// Color is a side, White or Black.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

// CastlingRights is a bitmask of the four castling permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ
)

// Square represents a board position, a1=0 up to h8=63.
type Square int

const NoSquare Square = -1

// Named squares, a1=0 through h8=63.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the square's file in [0..7].
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the square's rank in [0..7].
func (sq Square) Rank() int { return int(sq) / 8 }

// String returns the algebraic coordinate, e.g. "e4".
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board represents a chess position and its game state. It is mutated only
// through MakeMove/UnmakeMove (or the checked Push/Pop wrappers); the
// per-piece bitboards, the per-color occupancy and the mailbox stay in sync
// through every transition.
type Board struct {
	// Piece bitboards per type and color (index 0 = White, 1 = Black).
	// The twelve sets are pairwise disjoint.
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	// Per-side occupancy; overall occupancy is occupancy[0]|occupancy[1].
	occupancy [2]uint64

	// Mailbox: the piece on each square, NoPiece when empty.
	pieces [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square // NoSquare unless the last move was a double push
	halfmoveClock   int
	fullmoveNumber  int

	// Incrementally maintained Zobrist key for the current position.
	zobristKey uint64

	// Undo stack for Push/Pop. MakeMove/UnmakeMove do not touch it.
	history []MoveState
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current castling permissions.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns the number of half-moves since the last capture or
// pawn advance.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// PieceBitboard returns the bitboard of the given piece type for one side.
func (b *Board) PieceBitboard(c Color, pt PieceType) uint64 {
	ci := int(c)
	switch pt {
	case PieceTypePawn:
		return b.pawns[ci]
	case PieceTypeKnight:
		return b.knights[ci]
	case PieceTypeBishop:
		return b.bishops[ci]
	case PieceTypeRook:
		return b.rooks[ci]
	case PieceTypeQueen:
		return b.queens[ci]
	case PieceTypeKing:
		return b.kings[ci]
	default:
		return 0
	}
}

// Copy returns an independent copy of the board with an empty undo stack.
// Used to hand each perft worker its own exclusively owned position.
func (b *Board) Copy() *Board {
	c := *b
	c.history = nil
	return &c
}

// addPiece places a piece on an empty square and updates bitboards,
// occupancy and the Zobrist key.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	ci := int(p.Color())
	b.pieces[int(sq)] = p
	b.occupancy[ci] |= bb(sq)
	b.pieceSet(p)[ci] |= bb(sq)
	b.zobristKey ^= zobristPiece[pieceKey(p)][int(sq)]
}

// removePiece removes whatever piece sits on a square.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	ci := int(p.Color())
	mask := ^bb(sq)
	b.pieces[int(sq)] = NoPiece
	b.occupancy[ci] &= mask
	b.pieceSet(p)[ci] &= mask
	b.zobristKey ^= zobristPiece[pieceKey(p)][int(sq)]
	return p
}

// pieceSet returns a pointer to the per-color bitboard pair for the piece's type.
func (b *Board) pieceSet(p Piece) *[2]uint64 { return b.typeSet(p.Type()) }

func (b *Board) typeSet(pt PieceType) *[2]uint64 {
	switch pt {
	case PieceTypePawn:
		return &b.pawns
	case PieceTypeKnight:
		return &b.knights
	case PieceTypeBishop:
		return &b.bishops
	case PieceTypeRook:
		return &b.rooks
	case PieceTypeQueen:
		return &b.queens
	default:
		return &b.kings
	}
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps
// all derived state in sync. Intended for test setups, not for move making.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// Push validates that the move is legal in the current position, applies it,
// and records the undo state on the board's own stack. On an illegal move it
// returns an IllegalMoveError and leaves the board untouched.
func (b *Board) Push(m Move) error {
	legal := b.GenerateLegalMoves()
	found := false
	for _, lm := range legal {
		if lm == m {
			found = true
			break
		}
	}
	if !found {
		return &IllegalMoveError{Move: m}
	}
	st := b.MakeMove(m)
	b.history = append(b.history, st)
	return nil
}

// Pop undoes the most recent move applied with Push. Calling it with no
// matching prior Push is a contract violation reported as
// ErrUnmakeUnderflow.
func (b *Board) Pop() error {
	n := len(b.history)
	if n == 0 {
		return ErrUnmakeUnderflow
	}
	st := b.history[n-1]
	b.history = b.history[:n-1]
	b.UnmakeMove(st.move, st)
	return nil
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	return len(b.GenerateLegalMovesInto(buf)) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a fifty-move rule draw (the clock counts half-moves).
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsDrawByRepetition reports a draw by threefold repetition given a history
// of Zobrist keys of earlier positions. The current position counts as one
// occurrence; two more matches in the history make it threefold. The key
// already encodes side to move, castling rights and en-passant file, which
// the repetition rule requires.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	target := b.zobristKey
	end := len(history)
	// Do not double-count if the last history entry is the current position.
	if end > 0 && history[end-1] == target {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if history[i] == target {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// Validate checks internal consistency between the mailbox, the per-piece
// bitboards, the occupancy aggregates and the Zobrist key.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var sets [6][2]uint64
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		ci := int(p.Color())
		bit := uint64(1) << uint(sq)
		occ[ci] |= bit
		sets[int(p.Type())-1][ci] |= bit
	}
	if occ != b.occupancy {
		return false
	}
	want := [6][2]uint64{b.pawns, b.knights, b.bishops, b.rooks, b.queens, b.kings}
	if sets != want {
		return false
	}
	return b.zobristKey == b.ComputeZobrist()
}
