package interop

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/position"
)

// FromDragontooth returns the twelve piece masks of b.
func FromDragontooth(b *dragontoothmg.Board) *position.Position {
	return fromMasks(func(c piece.Color, k piece.Kind) uint64 {
		bbs := &b.White
		if c == piece.Black {
			bbs = &b.Black
		}
		return dragontoothMask(bbs, k)
	})
}

// ToDragontooth returns the White and Black bitboard sets of p, with All
// filled in. Untagged masks are ignored.
func ToDragontooth(p *position.Position) (white, black dragontoothmg.Bitboards, err error) {
	if err := validated(p); err != nil {
		return white, black, err
	}
	for _, bb := range p.BitBoards() {
		pc, ok := bb.Piece()
		if !ok {
			continue
		}
		bbs := &white
		if pc.Color == piece.Black {
			bbs = &black
		}
		*dragontoothMaskPtr(bbs, pc.Kind) |= bb.Bits()
		bbs.All |= bb.Bits()
	}
	return white, black, nil
}

func dragontoothMask(bbs *dragontoothmg.Bitboards, k piece.Kind) uint64 {
	if m := dragontoothMaskPtr(bbs, k); m != nil {
		return *m
	}
	return 0
}

func dragontoothMaskPtr(bbs *dragontoothmg.Bitboards, k piece.Kind) *uint64 {
	switch k {
	case piece.Pawn:
		return &bbs.Pawns
	case piece.Knight:
		return &bbs.Knights
	case piece.Bishop:
		return &bbs.Bishops
	case piece.Rook:
		return &bbs.Rooks
	case piece.Queen:
		return &bbs.Queens
	case piece.King:
		return &bbs.Kings
	default:
		return nil
	}
}
