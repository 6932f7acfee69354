package chessmg

import (
	"errors"
	"fmt"
)

// ParseError reports an invalid position description. No partial board is
// ever returned alongside it.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "invalid FEN: " + e.Reason }

// TableBuildError reports that a magic multiplier failed to perfectly hash
// a square's occupancy subsets. Attack tables must not be used after one.
type TableBuildError struct {
	Square Square
	Magic  uint64
}

func (e *TableBuildError) Error() string {
	return fmt.Sprintf("magic table build failed: square %s magic %#016x collides", e.Square, e.Magic)
}

// IllegalMoveError reports a Push of a move that is not legal in the
// current position. The board is left unchanged.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s", e.Move)
}

// ErrUnmakeUnderflow is returned by Pop when no prior Push exists. It marks
// a programming-contract violation, not a recoverable runtime condition.
var ErrUnmakeUnderflow = errors.New("unmake with empty undo history")
