// Command knightd serves knight path queries over HTTP.
//
//	knightd -addr :8080 -max-squares 1048576 -mode release
//
// The listen address falls back to $KNIGHTD_ADDR when -addr is not given.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/knightpath/server"
)

func main() {
	log.SetPrefix("knightd: ")

	cfg := server.DefaultConfig()
	if addr := os.Getenv("KNIGHTD_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.IntVar(&cfg.MaxSquares, "max-squares", cfg.MaxSquares, "largest board (width*height) a request may ask for")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "gin mode: debug, release or test")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.Mode)

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("listening on %s", cfg.Addr)
	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Print("stopped")
}
