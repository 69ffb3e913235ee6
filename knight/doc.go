// Package knight computes shortest knight paths on a rectangular board
// using breadth-first search over the implicit square graph.
//
// What
//
//   - Board: immutable W×H bounds with 1-indexed squares (1,1)…(W,H).
//   - NextMoves: the in-bounds knight moves from a square, in a fixed order.
//   - ShortestPath: fewest knight moves from start to dest, plus the path.
//   - Explore: the full BFS tree from a start square (distance to every square).
//   - ConnectedComponents: partition of the board into mutually reachable sets.
//
// Why
//
//   - Every knight move has weight 1, so BFS yields shortest paths in edge count.
//   - The graph is never materialised; neighbors are generated on demand.
//
// Determinism
//
//	Moves are generated in Offsets order and the frontier is FIFO, so the
//	returned path is fully reproducible for a given board, start and dest.
//
// Concurrency
//
//	A Board carries no traversal state. Each ShortestPath or Explore call owns
//	its visited map and frontier, so one Board can serve concurrent queries.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N)   (each square recorded once, ≤8 edges each)
//   - Memory: O(N)   (visited map and frontier)
//
// Usage
//
//	b := knight.NewBoard(8, 9)
//	p, err := knight.ShortestPath(b, knight.Square{X: 4, Y: 4}, knight.Square{X: 5, Y: 5})
//	switch {
//	case errors.Is(err, knight.ErrUnreachable):
//	    // dest cannot be reached from start on this board
//	case err != nil:
//	    // ErrBoardNil, ErrInvalidSquare, ErrOptionViolation, context or hook error
//	default:
//	    fmt.Println(p.Distance, p.Squares)
//	}
//
// Errors
//
//   - ErrBoardNil         if the board pointer is nil.
//   - ErrInvalidSquare    if start or dest lies off the board.
//   - ErrUnreachable      if the frontier empties before dest is reached.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrSquareSyntax     if ParseSquare cannot read its input.
package knight
