package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/knightpath/knight"
)

// errBadQuery marks malformed or missing query parameters.
var errBadQuery = errors.New("server: bad query")

type pathResponse struct {
	Distance int             `json:"distance"`
	Path     []knight.Square `json:"path"`
	Steps    []knight.Step   `json:"steps"`
	Explored int             `json:"explored"`
}

type distancesResponse struct {
	Start        knight.Square `json:"start"`
	Eccentricity int           `json:"eccentricity"`
	Reached      int           `json:"reached"`
	// Rows[y-1][x-1] is the distance to (x,y), or -1 if unreachable.
	Rows [][]int `json:"rows"`
}

type componentsResponse struct {
	Count      int               `json:"count"`
	Components [][]knight.Square `json:"components"`
}

func (s *Server) handlePath(c *gin.Context) {
	b, err := s.boardFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	from, err := squareFromQuery(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := squareFromQuery(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := knight.ShortestPath(b, from, to, knight.WithContext(c.Request.Context()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pathResponse{
		Distance: p.Distance,
		Path:     p.Squares,
		Steps:    p.Steps(),
		Explored: p.Explored,
	})
}

func (s *Server) handleDistances(c *gin.Context) {
	b, err := s.boardFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	from, err := squareFromQuery(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}

	tree, err := knight.Explore(b, from, knight.WithContext(c.Request.Context()))
	if err != nil {
		respondError(c, err)
		return
	}
	rows := make([][]int, b.Height)
	for y := 1; y <= b.Height; y++ {
		row := make([]int, b.Width)
		for x := 1; x <= b.Width; x++ {
			d, ok := tree.DistanceTo(knight.Square{X: x, Y: y})
			if !ok {
				d = -1
			}
			row[x-1] = d
		}
		rows[y-1] = row
	}
	c.JSON(http.StatusOK, distancesResponse{
		Start:        from,
		Eccentricity: tree.Eccentricity(),
		Reached:      tree.Reached(),
		Rows:         rows,
	})
}

func (s *Server) handleComponents(c *gin.Context) {
	b, err := s.boardFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	comps := b.ConnectedComponents()
	c.JSON(http.StatusOK, componentsResponse{Count: len(comps), Components: comps})
}

// boardFromQuery reads width and height. Unlike knight.NewBoard it rejects
// non-positive sides and boards larger than MaxSquares.
func (s *Server) boardFromQuery(c *gin.Context) (*knight.Board, error) {
	w, err := positiveInt(c, "width")
	if err != nil {
		return nil, err
	}
	h, err := positiveInt(c, "height")
	if err != nil {
		return nil, err
	}
	if w > s.cfg.MaxSquares/h {
		return nil, fmt.Errorf("%w: %dx%d board exceeds %d squares", errBadQuery, w, h, s.cfg.MaxSquares)
	}
	return knight.NewBoard(w, h), nil
}

func positiveInt(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", errBadQuery, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", errBadQuery, name, raw)
	}
	return v, nil
}

func squareFromQuery(c *gin.Context, name string) (knight.Square, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return knight.Square{}, fmt.Errorf("%w: missing %s", errBadQuery, name)
	}
	return knight.ParseSquare(raw)
}

// respondError maps search and parsing errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadQuery),
		errors.Is(err, knight.ErrSquareSyntax),
		errors.Is(err, knight.ErrInvalidSquare):
		status = http.StatusBadRequest
	case errors.Is(err, knight.ErrUnreachable):
		status = http.StatusNotFound
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
