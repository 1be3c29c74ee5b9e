// Package interop converts positions to and from the board models of other
// chess libraries. Every library here numbers squares a1=0 .. h8=63, the same
// order as package square, so masks are copied bit for bit.
package interop

import (
	"fmt"

	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/position"
)

// colorOrder is the insertion order used when building positions: White
// masks first, each color in piece.Kinds order.
var colorOrder = []piece.Color{piece.White, piece.Black}

// fromMasks builds a position with one tagged mask per color and kind.
func fromMasks(mask func(c piece.Color, k piece.Kind) uint64) *position.Position {
	p := position.New()
	for _, c := range colorOrder {
		for _, k := range piece.Kinds {
			p.AddBitBoard(bitboard.New(mask(c, k), piece.New(c, k)))
		}
	}
	return p
}

// validated rejects positions a third-party board cannot hold.
func validated(p *position.Position) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("convert position: %w", err)
	}
	return nil
}
