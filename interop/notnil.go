package interop

import (
	"github.com/notnil/chess"

	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/position"
	"github.com/chaes/chaes/square"
)

// FromNotnil returns the twelve piece masks of b.
func FromNotnil(b *chess.Board) *position.Position {
	masks := make(map[piece.Piece]uint64, 12)
	for sq, pc := range b.SquareMap() {
		p := fromNotnilPiece(pc)
		if !p.Valid() {
			continue
		}
		s, err := square.FromIndex(sq)
		if err != nil {
			continue
		}
		masks[p] |= s.Mask()
	}
	return fromMasks(func(c piece.Color, k piece.Kind) uint64 {
		return masks[piece.New(c, k)]
	})
}

// ToNotnil returns p as a notnil board. Untagged masks are ignored.
func ToNotnil(p *position.Position) (*chess.Board, error) {
	if err := validated(p); err != nil {
		return nil, err
	}
	m := make(map[chess.Square]chess.Piece)
	for _, bb := range p.BitBoards() {
		pc, ok := bb.Piece()
		if !ok {
			continue
		}
		for _, sq := range bb.Squares() {
			m[chess.Square(sq.Index())] = toNotnilPiece(pc)
		}
	}
	return chess.NewBoard(m), nil
}

func fromNotnilPiece(pc chess.Piece) piece.Piece {
	var c piece.Color
	switch pc.Color() {
	case chess.White:
		c = piece.White
	case chess.Black:
		c = piece.Black
	}
	var k piece.Kind
	switch pc.Type() {
	case chess.Pawn:
		k = piece.Pawn
	case chess.Knight:
		k = piece.Knight
	case chess.Bishop:
		k = piece.Bishop
	case chess.Rook:
		k = piece.Rook
	case chess.Queen:
		k = piece.Queen
	case chess.King:
		k = piece.King
	}
	return piece.New(c, k)
}

func toNotnilPiece(p piece.Piece) chess.Piece {
	c := chess.White
	if p.Color == piece.Black {
		c = chess.Black
	}
	var t chess.PieceType
	switch p.Kind {
	case piece.Pawn:
		t = chess.Pawn
	case piece.Knight:
		t = chess.Knight
	case piece.Bishop:
		t = chess.Bishop
	case piece.Rook:
		t = chess.Rook
	case piece.Queen:
		t = chess.Queen
	case piece.King:
		t = chess.King
	}
	return chess.NewPiece(t, c)
}
