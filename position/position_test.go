package position

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/square"
)

func startingPosition() *Position {
	p := New()
	for _, bb := range []bitboard.BitBoard{
		bitboard.New(0x_00_00_00_00_00_00_FF_00, piece.New(piece.White, piece.Pawn)),
		bitboard.New(0x_00_00_00_00_00_00_00_42, piece.New(piece.White, piece.Knight)),
		bitboard.New(0x_00_00_00_00_00_00_00_24, piece.New(piece.White, piece.Bishop)),
		bitboard.New(0x_00_00_00_00_00_00_00_81, piece.New(piece.White, piece.Rook)),
		bitboard.New(0x_00_00_00_00_00_00_00_08, piece.New(piece.White, piece.Queen)),
		bitboard.New(0x_00_00_00_00_00_00_00_10, piece.New(piece.White, piece.King)),
		bitboard.New(0x_00_FF_00_00_00_00_00_00, piece.New(piece.Black, piece.Pawn)),
		bitboard.New(0x_42_00_00_00_00_00_00_00, piece.New(piece.Black, piece.Knight)),
		bitboard.New(0x_24_00_00_00_00_00_00_00, piece.New(piece.Black, piece.Bishop)),
		bitboard.New(0x_81_00_00_00_00_00_00_00, piece.New(piece.Black, piece.Rook)),
		bitboard.New(0x_08_00_00_00_00_00_00_00, piece.New(piece.Black, piece.Queen)),
		bitboard.New(0x_10_00_00_00_00_00_00_00, piece.New(piece.Black, piece.King)),
	} {
		p.AddBitBoard(bb)
	}
	return p
}

func TestEmptyPosition(t *testing.T) {
	t.Parallel()
	p := New()
	if !p.NoCollisions() {
		t.Error("empty position has collisions")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("unexpected length: got=%d want=%d", p.Len(), 0)
	}
	if _, ok := p.BitBoard(piece.White, piece.King); ok {
		t.Error("empty position has a white king")
	}
}

func TestSingleMaskHasNoCollisions(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(^uint64(0), piece.None))
	if !p.NoCollisions() {
		t.Error("single mask collides with itself")
	}
}

func TestPositionCollision(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		sqs  []square.Square
		want bool
	}{
		{name: "same square", sqs: []square.Square{square.B2, square.B2}, want: false},
		{name: "different squares", sqs: []square.Square{square.B2, square.B3}, want: true},
		{name: "first and last collide", sqs: []square.Square{square.A1, square.C3, square.D4, square.A1}, want: false},
		{name: "non-adjacent collide", sqs: []square.Square{square.H8, square.A1, square.H8, square.E4}, want: false},
		{name: "all distinct", sqs: []square.Square{square.A1, square.C3, square.D4, square.H8}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := New()
			for _, sq := range tt.sqs {
				var bb bitboard.BitBoard
				bb.Set(sq, true)
				p.AddBitBoard(bb)
			}
			if got := p.NoCollisions(); got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if got := len(p.Collisions()) == 0; got != tt.want {
				t.Errorf("Collisions disagrees with NoCollisions: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestGetBitBoard(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(1, piece.New(piece.Black, piece.King)))
	p.AddBitBoard(bitboard.New(2, piece.New(piece.White, piece.King)))
	p.AddBitBoard(bitboard.New(4, piece.New(piece.Black, piece.Pawn)))

	if !p.NoCollisions() {
		t.Error("disjoint kings and pawn collide")
	}
	bb, ok := p.BitBoard(piece.Black, piece.Pawn)
	if !ok {
		t.Fatal("black pawn mask expected: got=none")
	}
	if bb.Bits() != 4 {
		t.Errorf("unexpected bits: got=%d want=%d", bb.Bits(), 4)
	}
	if _, ok := p.BitBoard(piece.White, piece.Pawn); ok {
		t.Error("white pawn mask found in a position without one")
	}
}

func TestGetBitBoardSkipsUntagged(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(0xF0, piece.None))
	if _, ok := p.BitBoard(piece.ColorUnknown, piece.KindUnknown); ok {
		t.Error("untagged mask matched an empty tag")
	}
	p.AddBitBoard(bitboard.New(0x0F, piece.New(piece.White, piece.Rook)))
	bb, ok := p.BitBoard(piece.White, piece.Rook)
	if !ok || bb.Bits() != 0x0F {
		t.Errorf("unexpected result: got=%x,%v want=%x", bb.Bits(), ok, 0x0F)
	}
}

func TestDuplicatePieceFirstWins(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(square.E8.Mask(), piece.New(piece.Black, piece.King)))
	p.AddBitBoard(bitboard.New(square.D8.Mask(), piece.New(piece.Black, piece.King)))

	if p.Len() != 2 {
		t.Fatalf("duplicate tag rejected: got len=%d want=%d", p.Len(), 2)
	}
	if !p.NoCollisions() {
		t.Error("duplicate tags on disjoint squares reported as a collision")
	}
	bb, _ := p.BitBoard(piece.Black, piece.King)
	if bb.Bits() != square.E8.Mask() {
		t.Errorf("lookup is not first-wins: got=%x want=%x", bb.Bits(), square.E8.Mask())
	}

	err := p.Validate()
	if !errors.Is(err, ErrDuplicatePiece) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrDuplicatePiece)
	}
	var dupErr *DuplicatePieceError
	if !errors.As(err, &dupErr) {
		t.Fatalf("unexpected error type: %T", err)
	}
	if dupErr.A != 0 || dupErr.B != 1 || dupErr.Piece != piece.New(piece.Black, piece.King) {
		t.Errorf("unexpected duplicate: %+v", dupErr)
	}
}

func TestValidateCollision(t *testing.T) {
	t.Parallel()
	p := startingPosition()
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error on starting position: %v", err)
	}

	p.AddBitBoard(bitboard.New(square.E2.Mask()|square.E4.Mask(), piece.None))
	err := p.Validate()
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrCollision)
	}
	var colErr *CollisionError
	if !errors.As(err, &colErr) {
		t.Fatalf("unexpected error type: %T", err)
	}
	if colErr.A != 0 || colErr.B != 12 || colErr.Overlap != square.E2.Mask() {
		t.Errorf("unexpected collision: %+v", colErr.Collision)
	}
	if !strings.Contains(err.Error(), "e2") {
		t.Errorf("error does not name the square: %v", err)
	}
	if p.NoCollisions() {
		t.Error("NoCollisions missed the collision")
	}
}

func TestCollisionsListsEveryPair(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(0b011, piece.None))
	p.AddBitBoard(bitboard.New(0b110, piece.None))
	p.AddBitBoard(bitboard.New(0b100, piece.None))
	p.AddBitBoard(bitboard.New(0b1000, piece.None))

	got := p.Collisions()
	want := []Collision{
		{A: 0, B: 1, Overlap: 0b010},
		{A: 1, B: 2, Overlap: 0b100},
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("unexpected collisions: got=%v want=%v", got, want)
	}
}

func TestPieceAt(t *testing.T) {
	t.Parallel()
	p := startingPosition()
	tests := []struct {
		sq     square.Square
		want   piece.Piece
		wantOK bool
	}{
		{sq: square.E1, want: piece.New(piece.White, piece.King), wantOK: true},
		{sq: square.D8, want: piece.New(piece.Black, piece.Queen), wantOK: true},
		{sq: square.G8, want: piece.New(piece.Black, piece.Knight), wantOK: true},
		{sq: square.C2, want: piece.New(piece.White, piece.Pawn), wantOK: true},
		{sq: square.E4, want: piece.None, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := p.PieceAt(tt.sq)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("unexpected piece at %v: got=%v,%v want=%v,%v", tt.sq, got, ok, tt.want, tt.wantOK)
		}
	}

	q := New()
	q.AddBitBoard(bitboard.New(square.E4.Mask(), piece.None))
	q.AddBitBoard(bitboard.New(square.E4.Mask(), piece.New(piece.White, piece.Knight)))
	if got, ok := q.PieceAt(square.E4); !ok || got != piece.New(piece.White, piece.Knight) {
		t.Errorf("untagged mask not skipped: got=%v,%v", got, ok)
	}
}

func TestOwnership(t *testing.T) {
	t.Parallel()
	bb := bitboard.WithPiece(piece.White, piece.Bishop)
	bb.Set(square.C1, true)
	p := New()
	p.AddBitBoard(bb)

	bb.Set(square.F1, true)
	got, _ := p.BitBoard(piece.White, piece.Bishop)
	if got.Get(square.F1) {
		t.Error("mutating the caller's mask changed the position")
	}

	got.Set(square.H8, true)
	bbs := p.BitBoards()
	bbs[0].Set(square.A8, true)
	if p.At(0).Bits() != square.C1.Mask() {
		t.Errorf("returned masks alias the position: got=%x want=%x", p.At(0).Bits(), square.C1.Mask())
	}

	c := p.Clone()
	c.AddBitBoard(bitboard.New(1, piece.None))
	if p.Len() != 1 || c.Len() != 2 {
		t.Errorf("clone shares storage: len=%d clone=%d", p.Len(), c.Len())
	}
}

func TestOccupied(t *testing.T) {
	t.Parallel()
	if got := startingPosition().Occupied(); got != 0x_FF_FF_00_00_00_00_FF_FF {
		t.Errorf("unexpected occupancy: got=%x", got)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	lines := strings.Split(startingPosition().Dump(), "\n")
	if want := " 8 | r  n  b  q  k  b  n  r "; lines[0] != want {
		t.Errorf("unexpected rank 8: got=%q want=%q", lines[0], want)
	}
	if want := " 4 |" + strings.Repeat(" . ", 8); lines[4] != want {
		t.Errorf("unexpected rank 4: got=%q want=%q", lines[4], want)
	}
	if want := " 1 | R  N  B  Q  K  B  N  R "; lines[7] != want {
		t.Errorf("unexpected rank 1: got=%q want=%q", lines[7], want)
	}
	if out := startingPosition().Draw(); strings.Count(out, "♚") != 1 || strings.Count(out, "♙") != 8 {
		t.Errorf("unexpected glyphs in:\n%s", out)
	}
}

func BenchmarkNoCollisions(b *testing.B) {
	p := startingPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.NoCollisions() {
			b.Fatal("starting position collides")
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	p := startingPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Validate(); err != nil {
			b.Fatal(err)
		}
	}
}

func TestValidateReportsFirstCollision(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(0b0011, piece.New(piece.White, piece.Pawn)))
	p.AddBitBoard(bitboard.New(0b0110, piece.New(piece.White, piece.Pawn)))
	p.AddBitBoard(bitboard.New(0b1100, piece.None))

	var colErr *CollisionError
	if err := p.Validate(); !errors.As(err, &colErr) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrCollision)
	}
	want := Collision{A: 0, B: 1, Overlap: 0b0010}
	if colErr.Collision != want {
		t.Errorf("unexpected collision: got=%+v want=%+v", colErr.Collision, want)
	}
}

func TestDumpUntagged(t *testing.T) {
	t.Parallel()
	p := New()
	p.AddBitBoard(bitboard.New(square.A1.Mask(), piece.New(piece.White, piece.King)))
	p.AddBitBoard(bitboard.New(square.B1.Mask()|square.H8.Mask(), piece.None))

	lines := strings.Split(p.Dump(), "\n")
	if want := " 8 |" + strings.Repeat(" . ", 7) + " # "; lines[0] != want {
		t.Errorf("unexpected rank 8: got=%q want=%q", lines[0], want)
	}
	if want := " 1 | K  # " + strings.Repeat(" . ", 6); lines[7] != want {
		t.Errorf("unexpected rank 1: got=%q want=%q", lines[7], want)
	}
	if out := p.Draw(); strings.Count(out, bitboard.SymbolOccupied) != 2 || strings.Count(out, "♔") != 1 {
		t.Errorf("unexpected symbols in:\n%s", out)
	}

	if s, ok := p.SymbolAt(square.B1, piece.Piece.Symbol); !ok || s != "" {
		t.Errorf("unexpected symbol at b1: got=%q,%v want=%q,%v", s, ok, "", true)
	}
	if s, ok := p.SymbolAt(square.C1, piece.Piece.Symbol); ok || s != "" {
		t.Errorf("unexpected symbol at c1: got=%q,%v want=%q,%v", s, ok, "", false)
	}
}
