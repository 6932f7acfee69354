package chessmg

// Precomputed attack tables for the fixed-pattern pieces, indexed by square.
var knightAttacks [64]uint64
var kingAttacks [64]uint64

// pawnAttackTable[color][sq] is the set of squares a pawn of that color
// attacks from sq.
var pawnAttackTable [2][64]uint64

// Directional rays per square, excluding the origin. Used by the slow
// reference slider attacks that build and verify the magic tables.
// Rook directions: 0=N, 1=S, 2=E, 3=W.
var rookRays [64][4]uint64

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW.
var bishopRays [64][4]uint64

// One ordered setup pass: leapers, then rays, then the magic tables that
// depend on the ray-based reference attacks. Tables are immutable afterward.
func init() {
	initLeaperTables()
	initRays()
	initMagicTables()
}

// knightAttacksFrom computes the knight attack set for a single-bit board by
// shifting each of the eight offsets and masking off file wraps: one-file
// offsets use the single-file masks, two-file offsets the double-file masks.
func knightAttacksFrom(b uint64) uint64 {
	return (b<<17)&notFileA | (b<<15)&notFileH |
		(b<<10)&notFileAB | (b<<6)&notFileGH |
		(b>>17)&notFileH | (b>>15)&notFileA |
		(b>>10)&notFileGH | (b>>6)&notFileAB
}

// kingAttacksFrom computes the king attack set by the same shift-and-mask
// method; all eight offsets displace at most one file.
func kingAttacksFrom(b uint64) uint64 {
	return (b<<8 | b>>8) |
		(b<<1|b<<9|b>>7)&notFileA |
		(b>>1|b>>9|b<<7)&notFileH
}

// pawnAttacksFrom computes the two diagonal capture targets for a pawn of
// the given color.
func pawnAttacksFrom(b uint64, c Color) uint64 {
	if c == White {
		return (b<<7)&notFileH | (b<<9)&notFileA
	}
	return (b>>7)&notFileA | (b>>9)&notFileH
}

func initLeaperTables() {
	for sq := 0; sq < 64; sq++ {
		b := uint64(1) << uint(sq)
		knightAttacks[sq] = knightAttacksFrom(b)
		kingAttacks[sq] = kingAttacksFrom(b)
		pawnAttackTable[White][sq] = pawnAttacksFrom(b, White)
		pawnAttackTable[Black][sq] = pawnAttacksFrom(b, Black)
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var n, s, e, w uint64
		for r := rank + 1; r < 8; r++ {
			n |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r >= 0; r-- {
			s |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 8; f++ {
			e |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f >= 0; f-- {
			w |= 1 << uint(rank*8+f)
		}
		rookRays[sq] = [4]uint64{n, s, e, w}

		var ne, nw, se, sw uint64
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ne |= 1 << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			nw |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			se |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			sw |= 1 << uint(r*8+f)
		}
		bishopRays[sq] = [4]uint64{ne, nw, se, sw}
	}
}

// rookAttacksRef computes rook attacks by walking each ray to the first
// blocker. Slow reference used for table construction and verification; the
// hot path goes through the magic tables.
func rookAttacksRef(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := rayFirstBlocker(d, blockers)
			ray &^= rookRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacksRef is the diagonal counterpart of rookAttacksRef.
func bishopAttacksRef(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := diagFirstBlocker(d, blockers)
			ray &^= bishopRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// rayFirstBlocker picks the blocker nearest the origin: N and E rays grow
// toward higher indices, S and W toward lower ones.
func rayFirstBlocker(d int, blockers uint64) int {
	if d == 0 || d == 2 {
		return LSB(blockers)
	}
	return 63 - clz(blockers)
}

// diagFirstBlocker: NE and NW rays grow toward higher indices, SE and SW
// toward lower ones.
func diagFirstBlocker(d int, blockers uint64) int {
	if d == 0 || d == 1 {
		return LSB(blockers)
	}
	return 63 - clz(blockers)
}

// IsSquareAttacked reports whether the given square is attacked by the
// given color under the current occupancy. Used for legality filtering and
// castling validation.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(int(sq), by, b.AllOccupancy())
}

func (b *Board) isSquareAttackedWithOcc(s int, by Color, occ uint64) bool {
	bi := int(by)

	// A pawn of 'by' attacks s exactly when a pawn of the other color on s
	// would attack the pawn's square, so probe with the reversed template.
	if pawnAttackTable[by.Other()][s]&b.pawns[bi] != 0 {
		return true
	}
	if knightAttacks[s]&b.knights[bi] != 0 {
		return true
	}
	if kingAttacks[s]&b.kings[bi] != 0 {
		return true
	}
	if rq := b.rooks[bi] | b.queens[bi]; rq != 0 && rookAttacks(s, occ)&rq != 0 {
		return true
	}
	if bq := b.bishops[bi] | b.queens[bi]; bq != 0 && bishopAttacks(s, occ)&bq != 0 {
		return true
	}
	return false
}

// InCheck reports whether the specified color's king is currently attacked.
func (b *Board) InCheck(color Color) bool {
	kingBB := b.kings[int(color)]
	if kingBB == 0 {
		return false
	}
	return b.isSquareAttackedWithOcc(LSB(kingBB), color.Other(), b.AllOccupancy())
}
