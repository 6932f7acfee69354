package chessmg

import "math/bits"

// File and rank masks. Bit 0 is a1, bit 63 is h8, so a file mask is the
// vertical stripe of eight squares sharing a file letter.
const (
	FileA uint64 = 0x0101010101010101
	FileB uint64 = FileA << 1
	FileG uint64 = FileA << 6
	FileH uint64 = FileA << 7

	Rank1 uint64 = 0x00000000000000FF
	Rank2 uint64 = Rank1 << 8
	Rank3 uint64 = Rank1 << 16
	Rank4 uint64 = Rank1 << 24
	Rank5 uint64 = Rank1 << 32
	Rank6 uint64 = Rank1 << 40
	Rank7 uint64 = Rank1 << 48
	Rank8 uint64 = Rank1 << 56
)

// Wrap-prevention masks. Shifting a bitboard east or west moves bits to the
// neighbouring file, and bits on the board edge would reappear on the
// opposite edge one rank off. Masking the shifted result with the
// complement of the destination edge file(s) discards those wrapped bits.
// Offsets that displace by one file use the single-file masks; knight
// offsets that displace by two files need the double-file masks.
const (
	notFileA  = ^FileA
	notFileH  = ^FileH
	notFileAB = ^(FileA | FileB)
	notFileGH = ^(FileG | FileH)
)

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// LSB returns the index of the least significant set bit. The result for an
// empty bitboard is 64; callers must test for emptiness first.
func LSB(mask uint64) int { return bits.TrailingZeros64(mask) }

// PopCount returns the number of set bits.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

// clz counts leading zeros; 63-clz is the index of the most significant set bit.
func clz(mask uint64) int { return bits.LeadingZeros64(mask) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
