package main

import (
	"fmt"
	"log"

	"github.com/notnil/chess"

	"github.com/chaes/chaes/interop"
)

func runPosition(out *output, fen string) error {
	log.Println("============ position")
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("load fen %q: %w", fen, err)
	}
	p := interop.FromNotnil(chess.NewGame(opt).Position().Board())
	if err := p.Validate(); err != nil {
		return err
	}
	return out.position(p)
}
