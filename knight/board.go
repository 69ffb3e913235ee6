package knight

import "math"

// maxPrealloc caps buffer capacity taken from the board size; traversals
// on larger boards grow their buffers as squares are reached.
const maxPrealloc = 1 << 12

// Board is a rectangular board with 1-indexed squares (1,1)…(Width,Height).
// It is immutable once built and holds no traversal state, so a single
// Board may be shared by concurrent searches.
type Board struct {
	Width, Height int
}

// NewBoard constructs a Board of the given dimensions. Dimensions are
// stored as given: a board with a non-positive side has no valid squares.
func NewBoard(width, height int) *Board {
	return &Board{Width: width, Height: height}
}

// IsValid reports whether sq lies within [1,Width]×[1,Height].
// Complexity: O(1).
func (b *Board) IsValid(sq Square) bool {
	return sq.X >= 1 && sq.X <= b.Width && sq.Y >= 1 && sq.Y <= b.Height
}

// Size returns the number of valid squares, saturating at math.MaxInt
// when Width×Height does not fit in an int.
func (b *Board) Size() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	if b.Width > math.MaxInt/b.Height {
		return math.MaxInt
	}
	return b.Width * b.Height
}

// capHint is the initial capacity for per-traversal buffers.
func (b *Board) capHint() int {
	return min(b.Size(), maxPrealloc)
}

// Squares returns every valid square in row-major order (y outer, x inner).
// Complexity: O(W×H).
func (b *Board) Squares() []Square {
	out := make([]Square, 0, b.capHint())
	for y := 1; y <= b.Height; y++ {
		for x := 1; x <= b.Width; x++ {
			out = append(out, Square{X: x, Y: y})
		}
	}
	return out
}
