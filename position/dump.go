package position

import (
	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/square"
)

// Dump renders the board with ASCII piece letters, in the orientation of
// bitboard.BitBoard.Dump. Squares marked only by untagged masks show
// bitboard.SymbolOccupied.
func (p *Position) Dump() string {
	return bitboard.DumpFunc(p.symbolFunc(piece.Piece.Symbol))
}

// Draw renders the board with Unicode glyphs on coloured cells, marking
// untagged squares like Dump.
func (p *Position) Draw() string {
	return bitboard.DrawFunc(p.symbolFunc(piece.Piece.Glyph))
}

// SymbolAt reports what occupies sq: the text of the first tagged mask
// marking it, "" if only untagged masks mark it, and false if nothing does.
func (p *Position) SymbolAt(sq square.Square, text func(piece.Piece) string) (string, bool) {
	if pc, ok := p.PieceAt(sq); ok {
		return text(pc), true
	}
	if p.Occupied()&sq.Mask() != 0 {
		return "", true
	}
	return "", false
}

func (p *Position) symbolFunc(text func(piece.Piece) string) bitboard.SymbolFunc {
	return func(sq square.Square) (string, bool) {
		s, ok := p.SymbolAt(sq, text)
		if ok && s == "" {
			s = bitboard.SymbolOccupied
		}
		return s, ok
	}
}
