package chessmg

// GenerateLegalMoves returns every legal move for the side to move. The
// order is deterministic for a given position: pawns, knights, bishops,
// rooks, queens, king, castling, each scanning squares from a1 to h8.
func (b *Board) GenerateLegalMoves() []Move {
	return b.GenerateLegalMovesInto(make([]Move, 0, 48))
}

// GenerateLegalMovesInto appends the legal moves to dst[:0] and returns the
// filled slice. Reusing a buffer across calls avoids per-node allocation in
// perft and search loops.
func (b *Board) GenerateLegalMovesInto(dst []Move) []Move {
	pseudo := b.generatePseudoLegalInto(dst[:0])
	return b.filterLegal(pseudo)
}

// GenerateCaptures returns the legal captures and promotions only.
func (b *Board) GenerateCaptures() []Move {
	return b.GenerateCapturesInto(make([]Move, 0, 16))
}

// GenerateCapturesInto appends the legal captures and promotions to dst[:0].
func (b *Board) GenerateCapturesInto(dst []Move) []Move {
	all := b.generatePseudoLegalInto(dst[:0])
	noisy := all[:0]
	for _, m := range all {
		if m.IsCapture() || m.IsPromotion() {
			noisy = append(noisy, m)
		}
	}
	return b.filterLegal(noisy)
}

// filterLegal keeps the pseudo-legal moves after which the mover's own king
// is not attacked, compacting in place.
func (b *Board) filterLegal(pseudo []Move) []Move {
	us := b.sideToMove
	legal := pseudo[:0]
	for _, m := range pseudo {
		st := b.MakeMove(m)
		if !b.InCheck(us) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m, st)
	}
	return legal
}

// generatePseudoLegalInto appends every pseudo-legal move for the side to
// move. Castling is fully validated here (rights, empty path, king path not
// attacked); everything else may still leave the king in check and is
// filtered afterwards.
func (b *Board) generatePseudoLegalInto(moves []Move) []Move {
	us := b.sideToMove
	ci := int(us)
	ownOcc := b.occupancy[ci]
	oppOcc := b.occupancy[1-ci]
	occ := ownOcc | oppOcc

	moves = b.genPawnMoves(moves, us, occ, oppOcc)

	for bbK := b.knights[ci]; bbK != 0; {
		from := popLSB(&bbK)
		moves = appendLeaperMoves(moves, b, Square(from), knightAttacks[from]&^ownOcc)
	}
	for bbB := b.bishops[ci]; bbB != 0; {
		from := popLSB(&bbB)
		moves = appendLeaperMoves(moves, b, Square(from), bishopAttacks(from, occ)&^ownOcc)
	}
	for bbR := b.rooks[ci]; bbR != 0; {
		from := popLSB(&bbR)
		moves = appendLeaperMoves(moves, b, Square(from), rookAttacks(from, occ)&^ownOcc)
	}
	for bbQ := b.queens[ci]; bbQ != 0; {
		from := popLSB(&bbQ)
		moves = appendLeaperMoves(moves, b, Square(from), queenAttacks(from, occ)&^ownOcc)
	}

	kingSq := LSB(b.kings[ci])
	moves = appendLeaperMoves(moves, b, Square(kingSq), kingAttacks[kingSq]&^ownOcc)
	moves = b.genCastles(moves, us, occ)
	return moves
}

// appendLeaperMoves expands a target bitboard into moves from a single
// origin square.
func appendLeaperMoves(moves []Move, b *Board, from Square, targets uint64) []Move {
	piece := b.pieces[int(from)]
	for targets != 0 {
		to := Square(popLSB(&targets))
		moves = append(moves, NewMove(from, to, piece, b.pieces[int(to)], NoPiece, 0))
	}
	return moves
}

// genPawnMoves generates pawn pushes, double pushes, captures, en passant
// and promotions set-wise: the whole pawn bitboard is shifted at once and
// each set bit of the result is unpacked into a move.
func (b *Board) genPawnMoves(moves []Move, us Color, occ, oppOcc uint64) []Move {
	ci := int(us)
	pawns := b.pawns[ci]
	empty := ^occ
	pawn := PieceFromType(us, PieceTypePawn)

	var single, double, capsWest, capsEast uint64
	var up, westOff, eastOff int
	var promoRank uint64
	if us == White {
		up, westOff, eastOff = 8, 7, 9
		single = (pawns << 8) & empty
		double = ((single & Rank3) << 8) & empty
		capsWest = (pawns << 7) & notFileH & oppOcc
		capsEast = (pawns << 9) & notFileA & oppOcc
		promoRank = Rank8
	} else {
		up, westOff, eastOff = -8, -7, -9
		single = (pawns >> 8) & empty
		double = ((single & Rank6) >> 8) & empty
		capsWest = (pawns >> 7) & notFileA & oppOcc
		capsEast = (pawns >> 9) & notFileH & oppOcc
		promoRank = Rank1
	}

	for set := single &^ promoRank; set != 0; {
		to := popLSB(&set)
		moves = append(moves, NewMove(Square(to-up), Square(to), pawn, NoPiece, NoPiece, 0))
	}
	for set := double; set != 0; {
		to := popLSB(&set)
		moves = append(moves, NewMove(Square(to-2*up), Square(to), pawn, NoPiece, NoPiece, FlagDoublePush))
	}
	for set := capsWest &^ promoRank; set != 0; {
		to := popLSB(&set)
		moves = append(moves, NewMove(Square(to-westOff), Square(to), pawn, b.pieces[to], NoPiece, 0))
	}
	for set := capsEast &^ promoRank; set != 0; {
		to := popLSB(&set)
		moves = append(moves, NewMove(Square(to-eastOff), Square(to), pawn, b.pieces[to], NoPiece, 0))
	}

	// Promotions, quiet and capturing. Each target yields four moves.
	for set := single & promoRank; set != 0; {
		to := popLSB(&set)
		moves = appendPromotions(moves, Square(to-up), Square(to), pawn, NoPiece, us)
	}
	for set := capsWest & promoRank; set != 0; {
		to := popLSB(&set)
		moves = appendPromotions(moves, Square(to-westOff), Square(to), pawn, b.pieces[to], us)
	}
	for set := capsEast & promoRank; set != 0; {
		to := popLSB(&set)
		moves = appendPromotions(moves, Square(to-eastOff), Square(to), pawn, b.pieces[to], us)
	}

	// En passant: any of our pawns attacking the target square may take.
	if ep := b.enPassantSquare; ep != NoSquare {
		victim := PieceFromType(us.Other(), PieceTypePawn)
		for set := pawnAttackTable[1-ci][int(ep)] & pawns; set != 0; {
			from := popLSB(&set)
			moves = append(moves, NewMove(Square(from), ep, pawn, victim, NoPiece, FlagEnPassant))
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to Square, pawn, captured Piece, us Color) []Move {
	for _, pt := range [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight} {
		moves = append(moves, NewMove(from, to, pawn, captured, PieceFromType(us, pt), 0))
	}
	return moves
}

// genCastles emits fully legal castling moves: the right must be held, the
// rook must still sit on its home square, the squares between king and rook
// must be empty, and neither the king's square nor the two squares it
// crosses may be attacked.
func (b *Board) genCastles(moves []Move, us Color, occ uint64) []Move {
	them := us.Other()
	king := PieceFromType(us, PieceTypeKing)
	rook := PieceFromType(us, PieceTypeRook)

	type castle struct {
		right    CastlingRights
		kingFrom Square
		kingTo   Square
		rookHome Square
		between  uint64
		kingPath [3]Square // squares that must not be attacked
		flag     MoveFlag
	}
	var sides [2]castle
	if us == White {
		sides = [2]castle{
			{CastlingWhiteK, E1, G1, H1, bb(F1) | bb(G1), [3]Square{E1, F1, G1}, FlagCastleKingside},
			{CastlingWhiteQ, E1, C1, A1, bb(B1) | bb(C1) | bb(D1), [3]Square{E1, D1, C1}, FlagCastleQueenside},
		}
	} else {
		sides = [2]castle{
			{CastlingBlackK, E8, G8, H8, bb(F8) | bb(G8), [3]Square{E8, F8, G8}, FlagCastleKingside},
			{CastlingBlackQ, E8, C8, A8, bb(B8) | bb(C8) | bb(D8), [3]Square{E8, D8, C8}, FlagCastleQueenside},
		}
	}

	for _, c := range sides {
		if b.castlingRights&c.right == 0 {
			continue
		}
		if b.pieces[int(c.rookHome)] != rook || occ&c.between != 0 {
			continue
		}
		attacked := false
		for _, sq := range c.kingPath {
			if b.IsSquareAttacked(sq, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		moves = append(moves, NewMove(c.kingFrom, c.kingTo, king, NoPiece, NoPiece, c.flag))
	}
	return moves
}
