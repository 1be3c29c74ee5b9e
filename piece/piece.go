// Package piece holds the vocabulary shared by masks and positions: the two
// colors, the six kinds, and the (color, kind) pair used to tag a mask.
package piece

import "errors"

var (
	ErrUnknownColor = errors.New("unknown color")
	ErrUnknownKind  = errors.New("unknown kind")
)

// Piece identifies an occupant class such as "black bishop". The zero value
// is None and means "no piece".
type Piece struct {
	Color Color
	Kind  Kind
}

var None = Piece{}

func New(c Color, k Kind) Piece {
	return Piece{Color: c, Kind: k}
}

// Valid reports whether both the color and the kind are known.
func (p Piece) Valid() bool {
	return p.Color.Valid() && p.Kind.Valid()
}

func (p Piece) String() string {
	if !p.Valid() {
		return ""
	}
	return p.Color.String() + " " + p.Kind.String()
}

// Symbol is the ASCII letter of the piece, uppercase for White and lowercase
// for Black.
func (p Piece) Symbol() string {
	var sym rune
	switch p.Kind {
	case Pawn:
		sym = 'P'
	case Knight:
		sym = 'N'
	case Bishop:
		sym = 'B'
	case Rook:
		sym = 'R'
	case Queen:
		sym = 'Q'
	case King:
		sym = 'K'
	default:
		return ""
	}
	switch p.Color {
	case White:
	case Black:
		sym |= 0x20 // lowercase is +32 uppercase
	default:
		return ""
	}
	return string(sym)
}

// Glyph is the Unicode chess glyph of the piece, or "" if p is not valid.
func (p Piece) Glyph() string {
	switch p.Color {
	case White:
		switch p.Kind {
		case Pawn:
			return "♙"
		case Knight:
			return "♘"
		case Bishop:
			return "♗"
		case Rook:
			return "♖"
		case Queen:
			return "♕"
		case King:
			return "♔"
		}
	case Black:
		switch p.Kind {
		case Pawn:
			return "♟"
		case Knight:
			return "♞"
		case Bishop:
			return "♝"
		case Rook:
			return "♜"
		case Queen:
			return "♛"
		case King:
			return "♚"
		}
	}
	return ""
}
