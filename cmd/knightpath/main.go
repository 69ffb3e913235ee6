// Command knightpath prints the fewest knight moves between two squares.
//
//	knightpath -width 8 -height 9 -from 4,4 -to 5,5 -path
//
// Exit status is 0 on success, 1 when the destination is unreachable and
// 2 for invalid input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/knightpath/knight"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("knightpath: ")

	width := flag.Int("width", 8, "board width")
	height := flag.Int("height", 9, "board height")
	fromFlag := flag.String("from", "4,4", "start square as x,y")
	toFlag := flag.String("to", "5,5", "destination square as x,y")
	showPath := flag.Bool("path", false, "print each move as \"from -> to\"")
	flag.Parse()

	from, err := knight.ParseSquare(*fromFlag)
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}
	to, err := knight.ParseSquare(*toFlag)
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}

	b := knight.NewBoard(*width, *height)
	p, err := knight.ShortestPath(b, from, to)
	switch {
	case errors.Is(err, knight.ErrUnreachable):
		log.Printf("no path: %v", err)
		os.Exit(1)
	case err != nil:
		log.Print(err)
		os.Exit(2)
	}

	if *showPath {
		for _, s := range p.Steps() {
			fmt.Println(s)
		}
	}
	fmt.Println(p.Distance)
}
