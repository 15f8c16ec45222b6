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

// Package moveorder assigns search-facing sort values to a list of
// pseudo-legal moves and partitions quiescence captures by whether they are
// materially sound, so the external search layer can try the most promising
// moves first without itself knowing anything about SEE or killer slots.
package moveorder

import (
	"sort"

	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/types"
)

// hintValue puts the transposition-table best move ahead of anything SEE
// would rank it; killer1Value and killer2Value place the two per-ply killer
// slots below any capture that wins material and above quiet moves and even
// or losing captures, while SEE orders the captures among themselves.
const (
	hintValue    = types.Value(1 << 19)
	killer1Value = types.Value(2)
	killer2Value = types.Value(1)
)

// SortWith returns moves sorted descending by a search-relevant score: the
// hint move first, then captures ordered by SeeMove, with the two killer
// moves scored 2 and 1. Quiet moves score 0 and keep their generation order
// among themselves; captures with a negative SeeMove sort after them.
func SortWith(p *position.Position, moves []types.Move, hint types.Move, killers [2]types.Move) []types.Move {
	scored := make([]scoredMove, len(moves))
	hintBare := hint.MoveOf()
	killer1Bare, killer2Bare := killers[0].MoveOf(), killers[1].MoveOf()

	for i, m := range moves {
		bare := m.MoveOf()
		var v types.Value
		switch {
		case hint != types.MoveNone && bare == hintBare:
			v = hintValue
		case killers[0] != types.MoveNone && bare == killer1Bare:
			v = killer1Value
		case killers[1] != types.MoveNone && bare == killer2Bare:
			v = killer2Value
		case m.IsCapture():
			v = p.SeeMove(m)
		default:
			v = types.ValueZero
		}
		scored[i] = scoredMove{move: m, value: v}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].value > scored[j].value
	})

	out := make([]types.Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move.SetValue(sm.value)
	}
	return out
}

// QSort filters moves down to captures whose SeeMove is positive (a winning
// exchange) and returns them sorted descending by SEE value, the usual
// quiescence-search capture set.
func QSort(p *position.Position, moves []types.Move) []types.Move {
	var captures []scoredMove
	for _, m := range moves {
		if !m.IsCapture() {
			continue
		}
		if v := p.SeeMove(m); v > types.ValueZero {
			captures = append(captures, scoredMove{move: m, value: v})
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return captures[i].value > captures[j].value
	})
	out := make([]types.Move, len(captures))
	for i, sm := range captures {
		out[i] = sm.move.SetValue(sm.value)
	}
	return out
}

type scoredMove struct {
	move  types.Move
	value types.Value
}
