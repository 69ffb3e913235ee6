package knight

import (
	"context"
	"fmt"
)

// visit is a visited-map entry: the square a node was first reached from
// and its move count from the start. The start maps to itself at depth 0.
type visit struct {
	parent Square
	depth  int
}

// frontierItem pairs a discovered square with the square it was reached from.
type frontierItem struct {
	sq     Square
	parent Square
}

// walker encapsulates the mutable state of one traversal run.
// It is never shared between calls.
type walker struct {
	board   *Board
	opts    Options
	ctx     context.Context
	queue   []frontierItem
	visited map[Square]visit
	order   []Square
}

func newWalker(b *Board, o Options) *walker {
	n := b.capHint()
	return &walker{
		board:   b,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]frontierItem, 0, n),
		visited: make(map[Square]visit, n),
		order:   make([]Square, 0, n),
	}
}

// ShortestPath returns the fewest knight moves from start to dest on b,
// together with the path itself.
//
// Behavior:
//  1. Record start at depth 0 and seed the frontier with its moves.
//  2. Pop (square, parent); skip squares already recorded.
//  3. Record square at parent's depth + 1; stop once it is dest.
//  4. Otherwise push (neighbor, square) for every move from square.
//  5. Walk parent links back from dest to rebuild the path.
//
// When start == dest the result has Distance 0 and Squares [start] and no
// square is expanded.
//
// Returns ErrBoardNil, ErrOptionViolation, ErrInvalidSquare (checked before
// any traversal), ErrUnreachable when the frontier empties first, the
// context error on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(R) time and memory, R = squares reached before dest (≤ W×H).
func ShortestPath(b *Board, start, dest Square, opts ...Option) (*Path, error) {
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
	if err = checkSquare(b, "dest", dest); err != nil {
		return nil, err
	}

	w := newWalker(b, o)
	if err = w.seed(start); err != nil {
		return nil, err
	}
	if start != dest {
		found, err := w.loop(&dest)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%w: %v from %v on %dx%d board",
				ErrUnreachable, dest, start, b.Width, b.Height)
		}
	}

	return w.pathTo(dest), nil
}

func checkSquare(b *Board, role string, sq Square) error {
	if b.IsValid(sq) {
		return nil
	}
	return fmt.Errorf("%w: %s %v not in [1,%d]x[1,%d]",
		ErrInvalidSquare, role, sq, b.Width, b.Height)
}

// seed records start at depth 0 and pushes its moves.
func (w *walker) seed(start Square) error {
	w.visited[start] = visit{parent: start, depth: 0}
	w.order = append(w.order, start)
	if err := w.opts.OnVisit(start, 0); err != nil {
		return fmt.Errorf("knight: OnVisit error at %v: %w", start, err)
	}
	w.enqueueMoves(start, 0)
	return nil
}

// loop drains the frontier. With a non-nil dest it stops as soon as dest
// is recorded and reports whether that happened.
func (w *walker) loop(dest *Square) (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if _, seen := w.visited[item.sq]; seen {
			continue
		}
		depth := w.visited[item.parent].depth + 1
		w.visited[item.sq] = visit{parent: item.parent, depth: depth}
		w.order = append(w.order, item.sq)
		if err := w.opts.OnVisit(item.sq, depth); err != nil {
			return false, fmt.Errorf("knight: OnVisit error at %v: %w", item.sq, err)
		}

		if dest != nil && item.sq == *dest {
			return true, nil
		}
		w.enqueueMoves(item.sq, depth)
	}
	return false, nil
}

func (w *walker) dequeue() frontierItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueMoves pushes every move from sq unless sq sits at MaxDepth.
func (w *walker) enqueueMoves(sq Square, depth int) {
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return
	}
	for _, next := range w.board.NextMoves(sq) {
		w.opts.OnEnqueue(next, depth+1)
		w.queue = append(w.queue, frontierItem{sq: next, parent: sq})
	}
}

// pathTo rebuilds start→dest from parent links. dest must be recorded.
func (w *walker) pathTo(dest Square) *Path {
	squares := make([]Square, 0, w.visited[dest].depth+1)
	for cur := dest; ; {
		squares = append(squares, cur)
		v := w.visited[cur]
		if v.depth == 0 {
			break
		}
		cur = v.parent
	}
	reverse(squares)

	return &Path{
		Distance: len(squares) - 1,
		Squares:  squares,
		Explored: len(w.visited),
	}
}

func reverse(s []Square) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
