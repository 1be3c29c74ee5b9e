// Package bitboard implements a 64-bit occupancy mask with an optional piece
// tag. Bit i is set when the square with index i is marked; what a mark means
// (a piece, an attacked square) is carried only by the tag.
package bitboard

import (
	"math/bits"

	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/square"
)

// BitBoard is a tagged occupancy mask. The zero value is an empty, untagged
// mask ready to use.
type BitBoard struct {
	bits  uint64
	piece piece.Piece
}

// New returns a mask holding the raw bits of mask, tagged with p. Pass
// piece.None for an untagged mask; a tag that is not a valid piece is dropped.
func New(mask uint64, p piece.Piece) BitBoard {
	bb := BitBoard{bits: mask}
	if p.Valid() {
		bb.piece = p
	}
	return bb
}

// WithPiece returns an empty mask tagged with the given color and kind.
func WithPiece(c piece.Color, k piece.Kind) BitBoard {
	var bb BitBoard
	bb.SetPiece(c, k)
	return bb
}

func (bb BitBoard) IsClear() bool {
	return bb.bits == 0
}

func (bb BitBoard) Bits() uint64 {
	return bb.bits
}

// Piece returns the tag, and false if the mask is untagged.
func (bb BitBoard) Piece() (piece.Piece, bool) {
	return bb.piece, bb.piece.Valid()
}

// SetPiece replaces the tag. The bits are left untouched.
func (bb *BitBoard) SetPiece(c piece.Color, k piece.Kind) {
	p := piece.New(c, k)
	if !p.Valid() {
		p = piece.None
	}
	bb.piece = p
}

func (bb *BitBoard) ClearPiece() {
	bb.piece = piece.None
}

func (bb BitBoard) Get(sq square.Square) bool {
	return bb.bits&sq.Mask() != 0
}

func (bb *BitBoard) Set(sq square.Square, active bool) {
	if active {
		bb.bits |= sq.Mask()
	} else {
		bb.bits &^= sq.Mask()
	}
}

// SetSquares applies Set to each square in order.
func (bb *BitBoard) SetSquares(sqs []square.Square, active bool) {
	for _, sq := range sqs {
		bb.Set(sq, active)
	}
}

// Squares returns the active squares in ascending index order.
func (bb BitBoard) Squares() []square.Square {
	sqs := make([]square.Square, 0, bb.Count())
	for m := bb.bits; m != 0; m &= m - 1 {
		sqs = append(sqs, square.Square(bits.TrailingZeros64(m)))
	}
	return sqs
}

func (bb BitBoard) Count() int {
	return bits.OnesCount64(bb.bits)
}

// Intersects reports whether the two masks share an active square. Tags are
// ignored.
func (bb BitBoard) Intersects(other BitBoard) bool {
	return bb.bits&other.bits != 0
}
