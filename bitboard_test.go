package chessmg

import "testing"

func TestPopLSB(t *testing.T) {
	mask := uint64(0b10110)
	var got []int
	for mask != 0 {
		got = append(got, popLSB(&mask))
	}
	want := []int{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("popLSB extracted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("popLSB extracted %v, want %v", got, want)
		}
	}
	if mask != 0 {
		t.Fatalf("mask not drained: %#x", mask)
	}
}

func TestLSBEmpty(t *testing.T) {
	if got := LSB(0); got != 64 {
		t.Fatalf("LSB(0) = %d, want 64", got)
	}
}

func TestFileRankMasks(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		onA := bb(Square(sq))&FileA != 0
		if onA != (sq%8 == 0) {
			t.Errorf("square %s FileA membership wrong", Square(sq))
		}
		onR4 := bb(Square(sq))&Rank4 != 0
		if onR4 != (sq/8 == 3) {
			t.Errorf("square %s Rank4 membership wrong", Square(sq))
		}
	}
	if FileA|FileB|FileG|FileH == 0 || (FileA&FileH) != 0 {
		t.Fatal("file masks overlap")
	}
}

// Shifting with the wrap masks must move a bit exactly one file over, or
// drop it entirely when it started on the edge.
func TestWrapMasks(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		b := bb(Square(sq))
		east := (b << 1) & notFileA
		if sq%8 == 7 {
			if east != 0 {
				t.Errorf("east shift from %s should fall off the board", Square(sq))
			}
		} else if east != bb(Square(sq+1)) {
			t.Errorf("east shift from %s landed on %#x", Square(sq), east)
		}
		west := (b >> 1) & notFileH
		if sq%8 == 0 {
			if west != 0 {
				t.Errorf("west shift from %s should fall off the board", Square(sq))
			}
		} else if west != bb(Square(sq-1)) {
			t.Errorf("west shift from %s landed on %#x", Square(sq), west)
		}
	}
}
