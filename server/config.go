// Package server exposes knight path queries over HTTP.
//
// Every request builds its own Board from query parameters and runs its own
// search, so requests share no mutable state and are served concurrently.
//
// Endpoints
//
//	GET /healthz
//	GET /v1/path?width=8&height=9&from=4,4&to=5,5
//	GET /v1/distances?width=8&height=9&from=4,4
//	GET /v1/components?width=3&height=3
//
// Status codes
//
//   - 400 for missing or malformed parameters, off-board squares and boards
//     larger than Config.MaxSquares.
//   - 404 when the destination cannot be reached.
//   - 500 for anything else (cancelled requests, internal failures).
package server

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// ErrConfig is returned by Config.Validate and New for unusable settings.
var ErrConfig = errors.New("server: invalid config")

// Config holds the service settings.
type Config struct {
	// Addr is the TCP listen address, e.g. ":8080".
	Addr string
	// MaxSquares bounds width×height of any requested board.
	MaxSquares int
	// Mode is the gin mode: gin.DebugMode, gin.ReleaseMode or gin.TestMode.
	// gin keeps its mode in a package global, so New only validates it;
	// the binary applies it once with gin.SetMode before building servers.
	Mode string
}

// DefaultConfig returns Config with sane defaults:
//   - Addr ":8080"
//   - MaxSquares 1<<20 (a 1024×1024 board)
//   - release mode
func DefaultConfig() Config {
	return Config{
		Addr:       ":8080",
		MaxSquares: 1 << 20,
		Mode:       gin.ReleaseMode,
	}
}

// Validate reports the first unusable setting, wrapped in ErrConfig.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrConfig)
	}
	if c.MaxSquares <= 0 {
		return fmt.Errorf("%w: MaxSquares must be positive (%d)", ErrConfig, c.MaxSquares)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrConfig, c.Mode)
	}
	return nil
}
