package main

import (
	"flag"
	"log"
	"os"
)

const (
	exitOK = iota
	exitErr
)

var (
	squaresFlag = flag.String("squares", "", "comma separated squares to activate, e.g. a3,e4,h7")
	bitsFlag    = flag.String("bits", "", "raw mask bits (decimal, 0x hex or 0b binary), combined with -squares")
	colorFlag   = flag.String("color", "", "tag color for the mask: white or black")
	kindFlag    = flag.String("kind", "", "tag kind for the mask: pawn, knight, bishop, rook, queen or king")

	fenFlag = flag.String("fen", "", "load a position from FEN instead of building a mask")

	drawFlag = flag.Bool("draw", false, "draw with terminal colours")
	svgFlag  = flag.String("svg", "", "also write the board as SVG to this path")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	out := &output{w: os.Stdout, draw: *drawFlag, svgPath: *svgFlag}
	if *fenFlag != "" {
		return runPosition(out, *fenFlag)
	}
	return runMask(out, maskArgs{
		squares: *squaresFlag,
		bits:    *bitsFlag,
		color:   *colorFlag,
		kind:    *kindFlag,
	})
}
