package square

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the number of files, and the number of ranks, on the board.
	MaxComponentScalar Square = 8

	// Total is the number of squares, and the width of a mask in bits.
	Total = int(MaxComponentScalar * MaxComponentScalar)
)

var (
	// ErrOutOfRange is returned when an integer does not name a bit index in [0, 64).
	ErrOutOfRange = errors.New("square index out of range")

	// ErrInvalidName represents a square name that is not a file letter followed by a rank digit.
	ErrInvalidName = errors.New("invalid square name")
)

// Square is a board location. Its value is the canonical bit index.
//
// Little-endian rank-file (LERF) mapping: a1 is bit 0, h1 is bit 7, a8 is
// bit 56 and h8 is bit 63. Every other package derives bit positions from
// Mask and never computes its own.
//
// Only the named constants and values returned by the From functions are
// valid squares. A value outside [0, 64) has an empty Mask, so masks never
// report it as set and setting it changes nothing.
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// FromIndex returns the square at bit index i. Any integer type is accepted so
// callers never have to narrow (and silently wrap) a value before checking it.
func FromIndex[T constraints.Integer](i T) (Square, error) {
	if i < 0 || i >= T(Total) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return Square(i), nil
}

// FromCoordinates returns the square on file x and rank y, both zero based.
func FromCoordinates(x, y int) (Square, error) {
	if x < 0 || x >= int(MaxComponentScalar) || y < 0 || y >= int(MaxComponentScalar) {
		return 0, fmt.Errorf("%w: file=%d rank=%d", ErrOutOfRange, x, y)
	}
	return Square(y)*MaxComponentScalar + Square(x), nil
}

// FromName parses a lowercase square name such as "e4".
func FromName(n string) (Square, error) {
	x, y, err := nameToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

// All returns every square in ascending index order.
func All() []Square {
	sqs := make([]Square, Total)
	for i := range sqs {
		sqs[i] = Square(i)
	}
	return sqs
}

func (s Square) Valid() bool {
	return s >= 0 && int(s) < Total
}

func (s Square) Index() int {
	return int(s)
}

// Mask returns the single-bit mask for s, or 0 if s is not valid.
func (s Square) Mask() uint64 {
	if !s.Valid() {
		return 0
	}
	return 1 << uint(s)
}

// File is the zero based file, 0 for the a-file.
func (s Square) File() int {
	return int(s % MaxComponentScalar)
}

// Rank is the zero based rank, 0 for the first rank.
func (s Square) Rank() int {
	return int(s / MaxComponentScalar)
}

func (s Square) String() string {
	return s.Name()
}

func (s Square) Name() string {
	if !s.Valid() {
		return ""
	}
	return FileName(s.File()) + RankName(s.Rank())
}

func FileName(x int) string {
	if x < 0 || int(MaxComponentScalar) <= x {
		return ""
	}
	return string(rune('a' + x))
}

func RankName(y int) string {
	if y < 0 || int(MaxComponentScalar) <= y {
		return ""
	}
	return string(rune('1' + y))
}

func nameToXY(n string) (Square, Square, error) {
	if len(n) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidName, n)
	}
	x, y := int(n[0])-'a', int(n[1])-'1'
	if x < 0 || int(MaxComponentScalar) <= x || y < 0 || int(MaxComponentScalar) <= y {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidName, n)
	}
	return Square(x), Square(y), nil
}
