package chessmg

// MoveFlag is a bitmask tagging the special nature of a move. A quiet move
// carries no flags.
type MoveFlag uint8

const (
	FlagDoublePush MoveFlag = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagCapture
	FlagPromotion
)

// Move is an immutable value record of a single move. Equality is
// structural, so Move works as a map key (used by PerftDivide).
type Move struct {
	From     Square
	To       Square
	Piece    Piece // the moving piece
	Captured Piece // NoPiece if nothing is captured
	Promo    Piece // NoPiece unless promoting
	Flags    MoveFlag
}

// NewMove constructs a Move and derives the capture and promotion flags
// from the captured/promotion pieces so the flag set stays consistent.
func NewMove(from, to Square, piece, captured, promo Piece, flags MoveFlag) Move {
	if captured != NoPiece {
		flags |= FlagCapture
	}
	if promo != NoPiece {
		flags |= FlagPromotion
	}
	return Move{From: from, To: to, Piece: piece, Captured: captured, Promo: promo, Flags: flags}
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Flags&FlagCapture != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flags&FlagPromotion != 0 }

// IsCastle reports whether the move castles on either wing.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promo != NoPiece {
		switch m.Promo.Type() {
		case PieceTypeQueen:
			s += "q"
		case PieceTypeRook:
			s += "r"
		case PieceTypeBishop:
			s += "b"
		case PieceTypeKnight:
			s += "n"
		}
	}
	return s
}

// ParseMove converts a coordinate-notation string (e2e4, e7e8q) into a
// legal Move for the current position. It fails with IllegalMoveError when
// no legal move matches.
func (b *Board) ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, &ParseError{Reason: "move string must be 4 or 5 characters"}
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := PieceTypeNone
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = PieceTypeQueen
		case 'r':
			promo = PieceTypeRook
		case 'b':
			promo = PieceTypeBishop
		case 'n':
			promo = PieceTypeKnight
		default:
			return Move{}, &ParseError{Reason: "invalid promotion piece"}
		}
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From == from && m.To == to && m.Promo.Type() == promo {
			return m, nil
		}
	}
	return Move{}, &IllegalMoveError{Move: Move{From: from, To: to}}
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, &ParseError{Reason: "invalid square " + s}
	}
	return Square(int(s[0]-'a') + int(s[1]-'1')*8), nil
}
