package chessmg

// Magic bitboards give O(1) slider attacks: the board occupancy restricted
// to a square's relevant mask is perfect-hashed by a multiply-and-shift
// into a per-square attack table. The multipliers below are precomputed
// known-good constants so startup cost is just table filling plus
// verification against the ray-casting reference.

type magicEntry struct {
	mask    uint64   // relevant occupancy mask, edges excluded
	magic   uint64   // multiplier
	shift   uint8    // 64 - popcount(mask)
	attacks []uint64 // table of size 1<<popcount(mask)
}

var rookMagics [64]magicEntry
var bishopMagics [64]magicEntry

// Precomputed rook multipliers, one per square (a1 first, h8 last).
var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

// Precomputed bishop multipliers.
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

// rookMaskFor is the relevant-occupancy mask: the rook's lines of movement
// with board-edge squares dropped, since a blocker on the edge cannot hide
// any square beyond it.
func rookMaskFor(sq int) uint64 {
	file := sq % 8
	rank := sq / 8
	var m uint64
	for r := rank + 1; r < 7; r++ {
		m |= 1 << uint(r*8+file)
	}
	for r := rank - 1; r > 0; r-- {
		m |= 1 << uint(r*8+file)
	}
	for f := file + 1; f < 7; f++ {
		m |= 1 << uint(rank*8+f)
	}
	for f := file - 1; f > 0; f-- {
		m |= 1 << uint(rank*8+f)
	}
	return m
}

func bishopMaskFor(sq int) uint64 {
	file := sq % 8
	rank := sq / 8
	var m uint64
	for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
		m |= 1 << uint(r*8+f)
	}
	for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
		m |= 1 << uint(r*8+f)
	}
	for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
		m |= 1 << uint(r*8+f)
	}
	for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
		m |= 1 << uint(r*8+f)
	}
	return m
}

// buildMagicTable enumerates every subset of the mask with the
// Carry-Rippler trick, computes the true attack set by ray casting, and
// fills the hash table. Two subsets may share a slot only when their attack
// sets agree; any other collision rejects the multiplier.
func buildMagicTable(sq int, mask, magic uint64, ref func(int, uint64) uint64) ([]uint64, bool) {
	n := PopCount(mask)
	shift := uint(64 - n)
	table := make([]uint64, 1<<n)
	filled := make([]bool, 1<<n)
	for subset := uint64(0); ; {
		att := ref(sq, subset)
		idx := (subset * magic) >> shift
		if filled[idx] && table[idx] != att {
			return nil, false
		}
		table[idx] = att
		filled[idx] = true
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return table, true
}

// initMagicTables builds both slider families from the shipped constants.
// A constant that fails verification falls back to a bounded deterministic
// search; if that also fails the process panics with a TableBuildError,
// since running with bad attack tables corrupts every downstream result.
func initMagicTables() {
	for sq := 0; sq < 64; sq++ {
		rookMagics[sq] = buildEntry(sq, rookMaskFor(sq), rookMagicNumbers[sq], rookAttacksRef)
		bishopMagics[sq] = buildEntry(sq, bishopMaskFor(sq), bishopMagicNumbers[sq], bishopAttacksRef)
	}
}

func buildEntry(sq int, mask, magic uint64, ref func(int, uint64) uint64) magicEntry {
	table, ok := buildMagicTable(sq, mask, magic, ref)
	if !ok {
		m, t, err := findMagic(sq, mask, ref, int64(sq)+1, defaultMagicTries)
		if err != nil {
			panic(&TableBuildError{Square: Square(sq), Magic: magic})
		}
		magic, table = m, t
	}
	return magicEntry{
		mask:    mask,
		magic:   magic,
		shift:   uint8(64 - PopCount(mask)),
		attacks: table,
	}
}

// rookAttacks returns the rook attack set from sq under the given occupancy.
func rookAttacks(sq int, occ uint64) uint64 {
	e := &rookMagics[sq]
	return e.attacks[((occ&e.mask)*e.magic)>>e.shift]
}

// bishopAttacks returns the bishop attack set from sq under the given occupancy.
func bishopAttacks(sq int, occ uint64) uint64 {
	e := &bishopMagics[sq]
	return e.attacks[((occ&e.mask)*e.magic)>>e.shift]
}

// queenAttacks is the union of the rook and bishop attack sets.
func queenAttacks(sq int, occ uint64) uint64 {
	return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
}
