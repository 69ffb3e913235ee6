package knight

// Offsets lists the eight knight displacements in the order NextMoves
// evaluates them.
var Offsets = [8][2]int{
	{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
	{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
}

// NextMoves returns the squares reachable from sq by one knight move that
// are valid on b, in Offsets order. sq itself need not be valid.
// Complexity: O(1).
func (b *Board) NextMoves(sq Square) []Square {
	moves := make([]Square, 0, len(Offsets))
	for _, d := range Offsets {
		next := Square{X: sq.X + d[0], Y: sq.Y + d[1]}
		if b.IsValid(next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// IsKnightMove reports whether a and b are one knight move apart.
func IsKnightMove(a, b Square) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
