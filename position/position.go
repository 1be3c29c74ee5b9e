// Package position holds one board state as an ordered collection of tagged
// masks. Masks are appended freely; NoCollisions and Validate check that no
// two masks claim the same square.
package position

import (
	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/square"
)

// Position owns its masks. They are stored and returned by value, so a caller
// can never modify a mask held by a Position.
type Position struct {
	bitboards []bitboard.BitBoard
}

func New() *Position {
	return &Position{}
}

// AddBitBoard appends bb as the newest mask. Nothing is checked: a position
// may pass through colliding states while it is being built.
func (p *Position) AddBitBoard(bb bitboard.BitBoard) {
	p.bitboards = append(p.bitboards, bb)
}

func (p *Position) Len() int {
	return len(p.bitboards)
}

// At returns the i-th mask in insertion order.
func (p *Position) At(i int) bitboard.BitBoard {
	return p.bitboards[i]
}

// BitBoards returns a copy of every mask in insertion order.
func (p *Position) BitBoards() []bitboard.BitBoard {
	bbs := make([]bitboard.BitBoard, len(p.bitboards))
	copy(bbs, p.bitboards)
	return bbs
}

// NoCollisions reports whether every pair of masks is disjoint. It stops at
// the first overlapping pair. Positions with fewer than two masks have no
// collisions.
func (p *Position) NoCollisions() bool {
	for i := 0; i < len(p.bitboards); i++ {
		for j := i + 1; j < len(p.bitboards); j++ {
			if p.bitboards[i].Intersects(p.bitboards[j]) {
				return false
			}
		}
	}
	return true
}

// BitBoard returns the first mask, in insertion order, tagged with the given
// color and kind. Untagged masks never match.
func (p *Position) BitBoard(c piece.Color, k piece.Kind) (bitboard.BitBoard, bool) {
	want := piece.New(c, k)
	for _, bb := range p.bitboards {
		if got, ok := bb.Piece(); ok && got == want {
			return bb, true
		}
	}
	return bitboard.BitBoard{}, false
}

// PieceAt returns the tag of the first tagged mask marking sq.
func (p *Position) PieceAt(sq square.Square) (piece.Piece, bool) {
	for _, bb := range p.bitboards {
		if !bb.Get(sq) {
			continue
		}
		if got, ok := bb.Piece(); ok {
			return got, true
		}
	}
	return piece.None, false
}

// Occupied is the union of every mask.
func (p *Position) Occupied() uint64 {
	var u uint64
	for _, bb := range p.bitboards {
		u |= bb.Bits()
	}
	return u
}

func (p *Position) Clone() *Position {
	return &Position{bitboards: p.BitBoards()}
}
