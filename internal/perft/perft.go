/*
 * chesscore - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package perft counts leaf nodes of the legal move tree to a fixed depth —
// the standard cross-check that a move generator produces exactly the right
// moves, no more and no fewer, since a single missing castling right or a
// wrongly-handled en-passant pin throws every depth off starting from where
// it occurs.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/types"
)

var out = message.NewPrinter(language.English)

// Result accumulates the node and event counts of one perft run.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Run computes Result for p to the given depth. Depth 0 counts the root
// position itself as a single node.
func Run(p *position.Position, depth int) Result {
	var r Result
	if depth == 0 {
		r.Nodes = 1
		return r
	}
	walk(p, depth, &r)
	return r
}

func walk(p *position.Position, depth int, r *Result) {
	moves := movegen.Legal(p, make([]types.Move, 0, 48))
	for _, m := range moves {
		if depth > 1 {
			walk(p.MakeMove(m), depth-1, r)
			continue
		}
		r.Nodes++
		switch {
		case m.IsEnPassant():
			r.EnPassant++
			r.Captures++
		case m.IsCapture():
			r.Captures++
		}
		if m.IsCastle() {
			r.Castles++
		}
		if m.IsPromotion() {
			r.Promotions++
		}
		next := p.MakeMove(m)
		if next.InCheck(next.SideToMove()) {
			r.Checks++
		}
	}
}

// RunAndReport runs perft and prints a human-readable summary, in the style
// of a command-line diagnostic tool rather than a library call.
func RunAndReport(fen string, depth int) (Result, error) {
	p, err := position.NewFromFen(fen)
	if err != nil {
		return Result{}, err
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	r := Run(p, depth)
	elapsed := time.Since(start)

	nps := (r.Nodes * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds()+1)
	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", r.Nodes)
	out.Printf("   Captures  : %d\n", r.Captures)
	out.Printf("   EnPassant : %d\n", r.EnPassant)
	out.Printf("   Castles   : %d\n", r.Castles)
	out.Printf("   Promotions: %d\n", r.Promotions)
	out.Printf("   Checks    : %d\n", r.Checks)
	out.Printf("-----------------------------------------\n")

	return r, nil
}
