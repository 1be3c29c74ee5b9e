package bitboard

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/chaes/chaes/square"
)

const (
	SymbolOccupied = "#"
	SymbolEmpty    = "."
)

var (
	colorLightCell = color.New(color.FgBlack, color.BgHiWhite)
	colorDarkCell  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

// SymbolFunc returns the text to print for sq, and false if sq is empty.
type SymbolFunc func(sq square.Square) (string, bool)

// Dump renders the mask as an 8x8 grid, rank 8 at the top and the a-file on
// the left, so bit 0 (a1) is the bottom-left cell and bit 63 (h8) the
// top-right. Active squares show the tag glyph, or SymbolOccupied when
// untagged.
func (bb BitBoard) Dump() string {
	return DumpFunc(bb.symbolAt)
}

func (bb BitBoard) String() string {
	return bb.Dump()
}

// Draw renders the same grid as Dump with coloured, checkered cells.
func (bb BitBoard) Draw() string {
	return DrawFunc(bb.symbolAt)
}

func (bb BitBoard) symbolAt(sq square.Square) (string, bool) {
	if !bb.Get(sq) {
		return "", false
	}
	if p, ok := bb.Piece(); ok {
		return p.Glyph(), true
	}
	return SymbolOccupied, true
}

// DumpFunc renders a grid in the orientation of Dump, asking sym for each cell.
func DumpFunc(sym SymbolFunc) string {
	builder := strings.Builder{}
	for y := int(square.MaxComponentScalar) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := 0; x < int(square.MaxComponentScalar); x++ {
			s, ok := sym(cell(x, y))
			if !ok || s == "" {
				s = SymbolEmpty
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := 0; x < int(square.MaxComponentScalar); x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", square.FileName(x)))
	}
	return builder.String()
}

// DrawFunc is DumpFunc with terminal colours. Colours are dropped when
// output is not a terminal, following color.NoColor.
func DrawFunc(sym SymbolFunc) string {
	builder := strings.Builder{}
	for y := int(square.MaxComponentScalar) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := 0; x < int(square.MaxComponentScalar); x++ {
			s, ok := sym(cell(x, y))
			if !ok || s == "" {
				s = " "
			}
			c := colorDarkCell
			if x%2^y%2 == 1 {
				c = colorLightCell
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", s))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < int(square.MaxComponentScalar); x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", square.FileName(x)))
	}
	return builder.String()
}

func cell(x, y int) square.Square {
	sq, err := square.FromCoordinates(x, y)
	if err != nil {
		panic(err) // x and y are loop bounded
	}
	return sq
}
