package knight

import "fmt"

// Tree is the breadth-first tree of every square reachable from Start:
//   - Order:  squares in the order they were recorded (non-decreasing depth).
//   - Depth:  square → knight moves from Start.
//   - Parent: square → predecessor in the tree; Start has no entry.
type Tree struct {
	Start  Square
	Order  []Square
	Depth  map[Square]int
	Parent map[Square]Square

	board *Board
}

// Explore runs breadth-first search from start over the whole board and
// returns the resulting Tree. It accepts the same Options as ShortestPath;
// with WithMaxDepth the tree stops at that depth.
//
// Returns ErrBoardNil, ErrOptionViolation, ErrInvalidSquare, the context
// error on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(W×H) time and memory.
func Explore(b *Board, start Square, opts ...Option) (*Tree, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkSquare(b, "start", start); err != nil {
		return nil, err
	}

	w := newWalker(b, o)
	if err = w.seed(start); err != nil {
		return nil, err
	}
	if _, err = w.loop(nil); err != nil {
		return nil, err
	}

	t := &Tree{
		Start:  start,
		Order:  w.order,
		Depth:  make(map[Square]int, len(w.visited)),
		Parent: make(map[Square]Square, len(w.visited)),
		board:  b,
	}
	for sq, v := range w.visited {
		t.Depth[sq] = v.depth
		if v.depth > 0 {
			t.Parent[sq] = v.parent
		}
	}
	return t, nil
}

// DistanceTo reports the knight distance from Start to sq and whether sq
// was reached at all.
func (t *Tree) DistanceTo(sq Square) (int, bool) {
	d, ok := t.Depth[sq]
	return d, ok
}

// PathTo reconstructs the path from Start to dest.
// Returns ErrInvalidSquare for off-board squares and ErrUnreachable for
// squares the tree never reached.
func (t *Tree) PathTo(dest Square) (*Path, error) {
	if err := checkSquare(t.board, "dest", dest); err != nil {
		return nil, err
	}
	if _, ok := t.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, dest, t.Start)
	}

	squares := []Square{}
	for cur := dest; ; {
		squares = append(squares, cur)
		prev, ok := t.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	reverse(squares)

	return &Path{
		Distance: len(squares) - 1,
		Squares:  squares,
		Explored: len(t.Order),
	}, nil
}

// Eccentricity returns the greatest depth in the tree: the most knight
// moves needed to reach any reachable square from Start.
func (t *Tree) Eccentricity() int {
	if len(t.Order) == 0 {
		return 0
	}
	// Order is sorted by non-decreasing depth.
	return t.Depth[t.Order[len(t.Order)-1]]
}

// Reached returns the number of squares in the tree, Start included.
func (t *Tree) Reached() int { return len(t.Order) }
