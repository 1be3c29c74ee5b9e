package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chaes/chaes/bitboard"
	"github.com/chaes/chaes/piece"
	"github.com/chaes/chaes/square"
)

type maskArgs struct {
	squares string
	bits    string
	color   string
	kind    string
}

func runMask(out *output, args maskArgs) error {
	bb, err := buildMask(args)
	if err != nil {
		return err
	}
	if err := out.mask(bb); err != nil {
		return err
	}
	out.printf("%s\n", describeBits(bb.Bits()))
	return nil
}

func buildMask(args maskArgs) (bitboard.BitBoard, error) {
	var bits uint64
	if args.bits != "" {
		b, err := strconv.ParseUint(strings.ReplaceAll(args.bits, "_", ""), 0, 64)
		if err != nil {
			return bitboard.BitBoard{}, fmt.Errorf("parse bits %q: %w", args.bits, err)
		}
		bits = b
	}
	bb := bitboard.New(bits, piece.None)

	if args.color != "" || args.kind != "" {
		c, err := piece.ParseColor(args.color)
		if err != nil {
			return bitboard.BitBoard{}, err
		}
		k, err := piece.ParseKind(args.kind)
		if err != nil {
			return bitboard.BitBoard{}, err
		}
		bb.SetPiece(c, k)
	}

	sqs, err := parseSquares(args.squares)
	if err != nil {
		return bitboard.BitBoard{}, err
	}
	bb.SetSquares(sqs, true)
	return bb, nil
}

func parseSquares(s string) ([]square.Square, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sqs []square.Square
	for _, n := range strings.Split(s, ",") {
		sq, err := square.FromName(strings.ToLower(strings.TrimSpace(n)))
		if err != nil {
			return nil, err
		}
		sqs = append(sqs, sq)
	}
	return sqs, nil
}

func describeBits(bits uint64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("decimal = %d\nhex = %016x\nbinary = %064b", bits, bits, bits)
}
