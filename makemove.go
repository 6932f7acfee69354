package chessmg

// MoveState captures the irreversible parts of the position before a move so
// UnmakeMove can restore them exactly.
type MoveState struct {
	move          Move
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
}

// castlingClear[sq] holds the castling rights that are lost whenever the
// piece on sq moves away or is captured. Covers both kings and all four
// rook home squares.
var castlingClear = func() [64]CastlingRights {
	var t [64]CastlingRights
	t[A1] = CastlingWhiteQ
	t[H1] = CastlingWhiteK
	t[E1] = CastlingWhiteK | CastlingWhiteQ
	t[A8] = CastlingBlackQ
	t[H8] = CastlingBlackK
	t[E8] = CastlingBlackK | CastlingBlackQ
	return t
}()

// castleRookSquares returns the from/to squares of the rook for a castling
// move by the given side.
func castleRookSquares(c Color, kingside bool) (Square, Square) {
	if c == White {
		if kingside {
			return H1, F1
		}
		return A1, D1
	}
	if kingside {
		return H8, F8
	}
	return A8, D8
}

// MakeMove applies a pseudo-legal move unconditionally and returns the undo
// record. It performs no legality checking; callers that need validation use
// Push. The Zobrist key, both occupancies, the piece bitboards and the
// mailbox are all updated incrementally.
func (b *Board) MakeMove(m Move) MoveState {
	st := MoveState{
		move:          m,
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassantSquare,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevZobrist:   b.zobristKey,
	}
	us := b.sideToMove

	// XOR out the state terms that are about to change; piece terms are
	// handled inside addPiece/removePiece.
	b.zobristKey ^= zobristCastle[int(b.castlingRights)]
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}

	// Captures. En passant removes the pawn behind the target square.
	if m.Flags&FlagEnPassant != 0 {
		capSq := m.To - 8
		if us == Black {
			capSq = m.To + 8
		}
		b.removePiece(capSq)
	} else if m.Captured != NoPiece {
		b.removePiece(m.To)
	}

	// Move the piece; promotions replace the pawn at the destination.
	b.removePiece(m.From)
	if m.Promo != NoPiece {
		b.addPiece(m.To, m.Promo)
	} else {
		b.addPiece(m.To, m.Piece)
	}

	// Castling also relocates the rook.
	if m.Flags&FlagCastleKingside != 0 {
		rf, rt := castleRookSquares(us, true)
		b.addPiece(rt, b.removePiece(rf))
	} else if m.Flags&FlagCastleQueenside != 0 {
		rf, rt := castleRookSquares(us, false)
		b.addPiece(rt, b.removePiece(rf))
	}

	// Any move from or to a king/rook home square drops the matching rights.
	b.castlingRights &^= castlingClear[int(m.From)] | castlingClear[int(m.To)]

	// A double push leaves an en-passant target behind the pawn; every other
	// move clears it.
	if m.Flags&FlagDoublePush != 0 {
		if us == White {
			b.enPassantSquare = m.From + 8
		} else {
			b.enPassantSquare = m.From - 8
		}
	} else {
		b.enPassantSquare = NoSquare
	}

	if m.Piece.Type() == PieceTypePawn || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = us.Other()

	b.zobristKey ^= zobristCastle[int(b.castlingRights)]
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	b.zobristKey ^= zobristSide
	return st
}

// UnmakeMove is the exact inverse of MakeMove: applied with the MoveState
// that MakeMove returned, it restores every field of the board bit for bit.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	us := b.sideToMove.Other() // the side that made the move
	b.sideToMove = us

	// Take the moved (or promoted) piece off the destination and put the
	// original piece back on the origin.
	b.removePiece(m.To)
	b.addPiece(m.From, m.Piece)

	// Restore captured material.
	if m.Flags&FlagEnPassant != 0 {
		capSq := m.To - 8
		if us == Black {
			capSq = m.To + 8
		}
		b.addPiece(capSq, m.Captured)
	} else if m.Captured != NoPiece {
		b.addPiece(m.To, m.Captured)
	}

	// Walk the castling rook home.
	if m.Flags&FlagCastleKingside != 0 {
		rf, rt := castleRookSquares(us, true)
		b.addPiece(rf, b.removePiece(rt))
	} else if m.Flags&FlagCastleQueenside != 0 {
		rf, rt := castleRookSquares(us, false)
		b.addPiece(rf, b.removePiece(rt))
	}

	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.zobristKey = st.prevZobrist
}
