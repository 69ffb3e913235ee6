// Package knight defines squares, paths, tunable options and error
// definitions for knight-move breadth-first search.
package knight

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for knight path searches.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("knight: board is nil")

	// ErrInvalidSquare is returned when start or dest lies outside the board.
	ErrInvalidSquare = errors.New("knight: square outside board")

	// ErrUnreachable is returned when the frontier empties before dest is reached.
	ErrUnreachable = errors.New("knight: destination unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("knight: invalid option supplied")

	// ErrSquareSyntax is returned by ParseSquare for malformed input.
	ErrSquareSyntax = errors.New("knight: malformed square")
)

// Square is a board position. Squares compare by value.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the square as "(x, y)".
func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

// ParseSquare reads a square written as "x,y" (surrounding parentheses and
// spaces are tolerated, so String output round-trips).
func ParseSquare(text string) (Square, error) {
	t := strings.TrimSpace(text)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return Square{}, fmt.Errorf("%w: %q: want \"x,y\"", ErrSquareSyntax, text)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q: bad x: %v", ErrSquareSyntax, text, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q: bad y: %v", ErrSquareSyntax, text, err)
	}

	return Square{X: x, Y: y}, nil
}

// Step is a single knight move.
type Step struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// String renders the step as "from -> to".
func (s Step) String() string {
	return s.From.String() + " -> " + s.To.String()
}

// Path is a successful search result.
//   - Distance: number of knight moves from start to dest.
//   - Squares:  start, intermediate squares, dest; len(Squares) == Distance+1.
//   - Explored: squares recorded in the visited map when the search stopped.
type Path struct {
	Distance int
	Squares  []Square
	Explored int
}

// Start returns the first square of the path, or the zero Square when
// the path holds no squares.
func (p *Path) Start() Square {
	if len(p.Squares) == 0 {
		return Square{}
	}
	return p.Squares[0]
}

// Dest returns the last square of the path, or the zero Square when the
// path holds no squares.
func (p *Path) Dest() Square {
	if len(p.Squares) == 0 {
		return Square{}
	}
	return p.Squares[len(p.Squares)-1]
}

// Steps returns the consecutive moves of the path, in order.
// A zero-distance path has no steps.
func (p *Path) Steps() []Step {
	steps := make([]Step, 0, max(len(p.Squares)-1, 0))
	for i := 1; i < len(p.Squares); i++ {
		steps = append(steps, Step{From: p.Squares[i-1], To: p.Squares[i]})
	}
	return steps
}

// String renders the path as "(x, y) -> (x, y) -> …".
func (p *Path) String() string {
	parts := make([]string, len(p.Squares))
	for i, s := range p.Squares {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called whenever a square is pushed onto the frontier,
	// with the depth it would have if recorded. A square may be pushed
	// more than once; only the first pop records it.
	OnEnqueue func(sq Square, depth int)

	// OnVisit is called when a square is recorded in the visited map.
	// Returning an error aborts the search.
	OnVisit func(sq Square, depth int) error

	// MaxDepth, if > 0, stops expanding squares at this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(Square, int) {},
		OnVisit:   func(Square, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on every frontier push.
func WithOnEnqueue(fn func(sq Square, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a square is recorded;
// returning an error from it stops the search.
func WithOnVisit(fn func(sq Square, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding squares at depth d.
//
//	d > 0: squares farther than d moves are never recorded
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
