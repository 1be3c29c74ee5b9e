package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/position"
	"github.com/chaes/chaes/render"
)

type output struct {
	w       io.Writer
	draw    bool
	svgPath string
}

func (o *output) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.w, format, a...)
}

func (o *output) mask(bb bitboard.BitBoard) error {
	if o.draw {
		o.printf("%s\n", bb.Draw())
	} else {
		o.printf("%s\n", bb.Dump())
	}
	return o.writeSVG(func(w io.Writer) error {
		return render.SVGMask(w, bb, render.WithCoordinates(true))
	})
}

func (o *output) position(p *position.Position) error {
	if o.draw {
		o.printf("%s\n", p.Draw())
	} else {
		o.printf("%s\n", p.Dump())
	}
	return o.writeSVG(func(w io.Writer) error {
		return render.SVG(w, p, render.WithCoordinates(true))
	})
}

func (o *output) writeSVG(f func(io.Writer) error) (err error) {
	if o.svgPath == "" {
		return nil
	}
	file, err := os.Create(o.svgPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return f(file)
}
