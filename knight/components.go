package knight

// ConnectedComponents partitions the board's squares into sets that are
// mutually reachable by knight moves. Components are ordered by their first
// square in row-major order; squares inside a component are in BFS
// discovery order from that first square.
//
// On most boards there is a single component; degenerate boards (1×N, 2×N,
// 3×3) split into several, and any two squares in different components make
// ShortestPath return ErrUnreachable.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for seen flags and output.
func (b *Board) ConnectedComponents() [][]Square {
	seen := make(map[Square]bool, b.capHint())
	var comps [][]Square

	for y := 1; y <= b.Height; y++ {
		for x := 1; x <= b.Width; x++ {
			s0 := Square{X: x, Y: y}
			if seen[s0] {
				continue
			}
			seen[s0] = true
			comp := []Square{s0}

			for qi := 0; qi < len(comp); qi++ {
				for _, next := range b.NextMoves(comp[qi]) {
					if !seen[next] {
						seen[next] = true
						comp = append(comp, next)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Connected reports whether a knight can travel between a and c on b.
// Off-board squares are never connected. The search stops as soon as c is
// found, so work is bounded by the squares reached, not the board size.
func (b *Board) Connected(a, c Square) bool {
	if !b.IsValid(a) || !b.IsValid(c) {
		return false
	}
	if a == c {
		return true
	}
	seen := map[Square]bool{a: true}
	queue := []Square{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, next := range b.NextMoves(queue[qi]) {
			if next == c {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
