package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knightpath/knight"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Mode = gin.TestMode
	cfg.MaxSquares = 10_000
	return cfg
}

// HandlerSuite drives the router through httptest.
type HandlerSuite struct {
	suite.Suite
	srv *Server
}

func (s *HandlerSuite) SetupTest() {
	srv, err := New(testConfig())
	require.NoError(s.T(), err)
	s.srv = srv
}

func (s *HandlerSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder, v any) {
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// TestHealthz checks liveness and the request id header.
func (s *HandlerSuite) TestHealthz() {
	first := s.get("/healthz")
	second := s.get("/healthz")
	require.Equal(s.T(), http.StatusOK, first.Code)
	require.JSONEq(s.T(), `{"status":"ok"}`, first.Body.String())
	assert.Equal(s.T(), "1", first.Header().Get("X-Request-Id"))
	assert.Equal(s.T(), "2", second.Header().Get("X-Request-Id"))
}

// TestPath covers the 8×9 reference query.
func (s *HandlerSuite) TestPath() {
	rec := s.get("/v1/path?width=8&height=9&from=4,4&to=5,5")
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var got pathResponse
	s.decode(rec, &got)
	require.Equal(s.T(), 2, got.Distance)
	require.Equal(s.T(), []knight.Square{{X: 4, Y: 4}, {X: 3, Y: 6}, {X: 5, Y: 5}}, got.Path)
	require.Len(s.T(), got.Steps, 2)
	require.Equal(s.T(), knight.Step{From: knight.Square{X: 4, Y: 4}, To: knight.Square{X: 3, Y: 6}}, got.Steps[0])
	require.Equal(s.T(), 19, got.Explored)
}

// TestPath_ZeroDistance: start == dest is a 200 with distance 0, not an error.
func (s *HandlerSuite) TestPath_ZeroDistance() {
	rec := s.get("/v1/path?width=1&height=1&from=1,1&to=1,1")
	require.Equal(s.T(), http.StatusOK, rec.Code)
	var got pathResponse
	s.decode(rec, &got)
	require.Zero(s.T(), got.Distance)
	require.Equal(s.T(), []knight.Square{{X: 1, Y: 1}}, got.Path)
	require.Empty(s.T(), got.Steps)
}

// TestPath_Errors maps every failure class onto its status code.
func (s *HandlerSuite) TestPath_Errors() {
	cases := []struct {
		name   string
		target string
		status int
	}{
		{"unreachable", "/v1/path?width=3&height=3&from=1,1&to=2,2", http.StatusNotFound},
		{"off board", "/v1/path?width=8&height=8&from=1,1&to=9,9", http.StatusBadRequest},
		{"bad square", "/v1/path?width=8&height=8&from=a,1&to=2,3", http.StatusBadRequest},
		{"missing to", "/v1/path?width=8&height=8&from=1,1", http.StatusBadRequest},
		{"missing width", "/v1/path?height=8&from=1,1&to=2,3", http.StatusBadRequest},
		{"zero height", "/v1/path?width=8&height=0&from=1,1&to=2,3", http.StatusBadRequest},
		{"too large", "/v1/path?width=1000&height=1000&from=1,1&to=2,3", http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.get(tc.target)
			require.Equal(s.T(), tc.status, rec.Code, rec.Body.String())
			var body map[string]string
			s.decode(rec, &body)
			require.NotEmpty(s.T(), body["error"])
		})
	}
}

// TestDistances_Errors covers query validation on the distances endpoint.
func (s *HandlerSuite) TestDistances_Errors() {
	cases := []struct {
		name   string
		target string
		status int
	}{
		{"missing from", "/v1/distances?width=8&height=8", http.StatusBadRequest},
		{"off board", "/v1/distances?width=8&height=8&from=9,1", http.StatusBadRequest},
		{"bad square", "/v1/distances?width=8&height=8&from=x,1", http.StatusBadRequest},
		{"missing width", "/v1/distances?height=8&from=1,1", http.StatusBadRequest},
		{"too large", "/v1/distances?width=101&height=100&from=1,1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.get(tc.target)
			require.Equal(s.T(), tc.status, rec.Code, rec.Body.String())
			var body map[string]string
			s.decode(rec, &body)
			require.NotEmpty(s.T(), body["error"])
		})
	}
}

// TestComponents_Errors covers board validation on the components endpoint.
func (s *HandlerSuite) TestComponents_Errors() {
	cases := []struct {
		name   string
		target string
	}{
		{"missing height", "/v1/components?width=3"},
		{"zero width", "/v1/components?width=0&height=3"},
		{"negative height", "/v1/components?width=3&height=-3"},
		{"too large", "/v1/components?width=10000&height=2"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.get(tc.target)
			require.Equal(s.T(), http.StatusBadRequest, rec.Code, rec.Body.String())
			var body map[string]string
			s.decode(rec, &body)
			require.NotEmpty(s.T(), body["error"])
		})
	}
}

// TestCancelledRequest: a search aborted by its request context is a server error.
func (s *HandlerSuite) TestCancelledRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, target := range []string{
		"/v1/path?width=8&height=8&from=1,1&to=8,8",
		"/v1/distances?width=8&height=8&from=1,1",
	} {
		s.Run(target, func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
			s.srv.Handler().ServeHTTP(rec, req)
			require.Equal(s.T(), http.StatusInternalServerError, rec.Code, rec.Body.String())
			var body map[string]string
			s.decode(rec, &body)
			require.Contains(s.T(), body["error"], context.Canceled.Error())
		})
	}
}

// TestDistances checks the distance table of a 3×3 board from a corner.
func (s *HandlerSuite) TestDistances() {
	rec := s.get("/v1/distances?width=3&height=3&from=1,1")
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var got distancesResponse
	s.decode(rec, &got)
	require.Equal(s.T(), knight.Square{X: 1, Y: 1}, got.Start)
	require.Equal(s.T(), 4, got.Eccentricity)
	require.Equal(s.T(), 8, got.Reached)
	require.Equal(s.T(), [][]int{{0, 3, 2}, {3, -1, 1}, {2, 1, 4}}, got.Rows)
}

// TestComponents checks the component split of a 3×3 board.
func (s *HandlerSuite) TestComponents() {
	rec := s.get("/v1/components?width=3&height=3")
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var got componentsResponse
	s.decode(rec, &got)
	require.Equal(s.T(), 2, got.Count)
	require.Len(s.T(), got.Components[0], 8)
	require.Equal(s.T(), []knight.Square{{X: 2, Y: 2}}, got.Components[1])
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// TestConfig_Validate rejects each unusable field.
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Addr: "", MaxSquares: 1, Mode: gin.TestMode},
		{Addr: ":0", MaxSquares: 0, Mode: gin.TestMode},
		{Addr: ":0", MaxSquares: 1, Mode: "verbose"},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		if !errors.Is(err, ErrConfig) {
			t.Errorf("Validate(%+v) = %v; want ErrConfig", cfg, err)
		}
		_, err = New(cfg)
		assert.ErrorIs(t, err, ErrConfig)
	}
}

// TestNew_LeavesGinMode ensures building a server does not switch gin's global mode.
func TestNew_LeavesGinMode(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = gin.ReleaseMode
	_, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, gin.TestMode, gin.Mode())
}
