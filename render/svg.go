// Package render draws masks and positions as SVG boards.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/position"
	"github.com/chaes/chaes/square"
)

const (
	DefaultSquareSize = 45
	DefaultLight      = "#f0d9b5"
	DefaultDark       = "#b58863"
	DefaultMark       = "#6a9955"
)

type config struct {
	size        int
	light, dark string
	mark        string
	coordinates bool
}

type Option func(*config)

// WithSquareSize sets the side of one square in pixels.
func WithSquareSize(px int) Option {
	return func(cfg *config) {
		if px > 0 {
			cfg.size = px
		}
	}
}

// WithColors sets the light and dark square fills.
func WithColors(light, dark string) Option {
	return func(cfg *config) {
		cfg.light, cfg.dark = light, dark
	}
}

// WithMarkColor sets the fill of active squares on untagged masks.
func WithMarkColor(mark string) Option {
	return func(cfg *config) {
		cfg.mark = mark
	}
}

// WithCoordinates prints file and rank names along the board edges.
func WithCoordinates(on bool) Option {
	return func(cfg *config) {
		cfg.coordinates = on
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		size:  DefaultSquareSize,
		light: DefaultLight,
		dark:  DefaultDark,
		mark:  DefaultMark,
	}
	for _, f := range opts {
		f(cfg)
	}
	return cfg
}

// SVG writes p as an SVG board. Squares marked only by untagged masks get a
// filled marker. Positions that fail Validate are rejected before anything
// is written.
func SVG(w io.Writer, p *position.Position, opts ...Option) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("render position: %w", err)
	}
	return draw(w, newConfig(opts), func(sq square.Square) (string, bool) {
		return p.SymbolAt(sq, piece.Piece.Glyph)
	})
}

// SVGMask writes bb as an SVG board. Active squares show the tag glyph, or a
// filled marker when bb is untagged.
func SVGMask(w io.Writer, bb bitboard.BitBoard, opts ...Option) error {
	return draw(w, newConfig(opts), func(sq square.Square) (string, bool) {
		if !bb.Get(sq) {
			return "", false
		}
		if pc, ok := bb.Piece(); ok {
			return pc.Glyph(), true
		}
		return "", true
	})
}

// draw lays the board out like bitboard.DumpFunc: rank 8 on top, a-file on
// the left.
func draw(w io.Writer, cfg *config, sym bitboard.SymbolFunc) error {
	ew := &errWriter{w: w}
	n := int(square.MaxComponentScalar)
	side := n * cfg.size
	canvas := svg.New(ew)
	canvas.Start(side, side)
	for _, sq := range square.All() {
		x := sq.File() * cfg.size
		y := (n - 1 - sq.Rank()) * cfg.size
		fill := cfg.dark
		if sq.File()%2^sq.Rank()%2 == 1 {
			fill = cfg.light
		}
		canvas.Rect(x, y, cfg.size, cfg.size, "fill:"+fill)

		s, ok := sym(sq)
		switch {
		case !ok:
		case s == "":
			r := cfg.size / 4
			canvas.Circle(x+cfg.size/2, y+cfg.size/2, r, "fill:"+cfg.mark)
		default:
			canvas.Text(x+cfg.size/2, y+cfg.size*3/4, s,
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", cfg.size*3/4))
		}

		if cfg.coordinates {
			label := fmt.Sprintf("font-size:%dpx;fill:#333", cfg.size/5)
			if sq.Rank() == 0 {
				canvas.Text(x+cfg.size-cfg.size/5, y+cfg.size-2, square.FileName(sq.File()), label)
			}
			if sq.File() == 0 {
				canvas.Text(x+2, y+cfg.size/5+2, square.RankName(sq.Rank()), label)
			}
		}
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
