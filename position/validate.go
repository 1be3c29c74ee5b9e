package position

import (
	"errors"
	"fmt"

	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
)

var (
	// ErrCollision means two masks mark the same square.
	ErrCollision = errors.New("masks collide")

	// ErrDuplicatePiece means two masks carry the same tag.
	ErrDuplicatePiece = errors.New("duplicate piece tag")
)

// Collision is a pair of mask indexes, A < B, and the squares both mark.
type Collision struct {
	A, B    int
	Overlap uint64
}

func (c Collision) Squares() string {
	return fmt.Sprint(bitboard.New(c.Overlap, piece.None).Squares())
}

type CollisionError struct {
	Collision
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: bitboards %d and %d share %s", ErrCollision, e.A, e.B, e.Squares())
}

func (e *CollisionError) Unwrap() error {
	return ErrCollision
}

type DuplicatePieceError struct {
	Piece piece.Piece
	A, B  int
}

func (e *DuplicatePieceError) Error() string {
	return fmt.Sprintf("%s: bitboards %d and %d are both tagged %s", ErrDuplicatePiece, e.A, e.B, e.Piece)
}

func (e *DuplicatePieceError) Unwrap() error {
	return ErrDuplicatePiece
}

// Collisions lists every overlapping pair of masks, ordered by A then B.
func (p *Position) Collisions() []Collision {
	var cs []Collision
	for i := 0; i < len(p.bitboards); i++ {
		for j := i + 1; j < len(p.bitboards); j++ {
			if overlap := p.bitboards[i].Bits() & p.bitboards[j].Bits(); overlap != 0 {
				cs = append(cs, Collision{A: i, B: j, Overlap: overlap})
			}
		}
	}
	return cs
}

// Validate returns a *CollisionError for the first overlapping pair of masks,
// then a *DuplicatePieceError for the first pair sharing a tag, or nil.
func (p *Position) Validate() error {
	for i := 0; i < len(p.bitboards); i++ {
		for j := i + 1; j < len(p.bitboards); j++ {
			if overlap := p.bitboards[i].Bits() & p.bitboards[j].Bits(); overlap != 0 {
				return &CollisionError{Collision: Collision{A: i, B: j, Overlap: overlap}}
			}
		}
	}
	seen := make(map[piece.Piece]int, len(p.bitboards))
	for i, bb := range p.bitboards {
		pc, ok := bb.Piece()
		if !ok {
			continue
		}
		if j, dup := seen[pc]; dup {
			return &DuplicatePieceError{Piece: pc, A: j, B: i}
		}
		seen[pc] = i
	}
	return nil
}
