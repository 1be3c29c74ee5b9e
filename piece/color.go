package piece

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	ColorUnknown Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return ""
	}
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return ColorUnknown
	}
}

// ParseColor accepts the color name or its first letter, in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white", "w", "light":
		return White, nil
	case "black", "b", "dark":
		return Black, nil
	default:
		return ColorUnknown, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}
