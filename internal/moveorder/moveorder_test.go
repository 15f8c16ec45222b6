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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/types"
)

// capturesAndAQuiet: black rook on d5 and bishop on f6 both hang to the
// white queen on d4 (one file-capture, one diagonal), and a4-a5 is a quiet
// pawn push with nothing to capture.
const ordTestFen = "4k3/8/5b2/3r4/P2Q4/8/8/4K3 w - - 0 1"

func TestSortWithPutsHintFirst(t *testing.T) {
	p, err := position.NewFromFen(ordTestFen)
	assert.NoError(t, err)

	quiet := types.NewMove(types.SqA4, types.SqA5, types.Quiet)
	takeRook := types.NewMove(types.SqD4, types.SqD5, types.Capture)
	moves := []types.Move{quiet, takeRook}

	sorted := SortWith(p, moves, quiet, [2]types.Move{types.MoveNone, types.MoveNone})
	assert.Equal(t, quiet, sorted[0].MoveOf())
}

func TestSortWithOrdersCapturesBySee(t *testing.T) {
	p, err := position.NewFromFen(ordTestFen)
	assert.NoError(t, err)

	takeRook := types.NewMove(types.SqD4, types.SqD5, types.Capture)
	takeBishop := types.NewMove(types.SqD4, types.SqF6, types.Capture)
	quiet := types.NewMove(types.SqA4, types.SqA5, types.Quiet)

	sorted := SortWith(p, []types.Move{quiet, takeBishop, takeRook}, types.MoveNone, [2]types.Move{types.MoveNone, types.MoveNone})

	assert.Equal(t, takeRook, sorted[0].MoveOf(), "rook is worth more than bishop, so its capture sorts first")
	assert.Equal(t, takeBishop, sorted[1].MoveOf())
	assert.Equal(t, quiet, sorted[2].MoveOf(), "quiet moves sort last behind winning captures")
}

func TestSortWithRanksKillerAheadOfOtherQuietMoves(t *testing.T) {
	p, err := position.NewFromFen(ordTestFen)
	assert.NoError(t, err)

	killer := types.NewMove(types.SqA4, types.SqA5, types.Quiet)
	otherQuiet := types.NewMove(types.SqE1, types.SqE2, types.Quiet)

	sorted := SortWith(p, []types.Move{otherQuiet, killer}, types.MoveNone, [2]types.Move{killer, types.MoveNone})
	assert.Equal(t, killer, sorted[0].MoveOf(), "killer slot ranks ahead of an ordinary quiet move")
}

func TestQSortFiltersOutQuietMoves(t *testing.T) {
	p, err := position.NewFromFen(ordTestFen)
	assert.NoError(t, err)

	takeRook := types.NewMove(types.SqD4, types.SqD5, types.Capture)
	quiet := types.NewMove(types.SqA4, types.SqA5, types.Quiet)

	out := QSort(p, []types.Move{takeRook, quiet})
	assert.Len(t, out, 1)
	assert.Equal(t, takeRook, out[0].MoveOf())
}

func TestQSortDropsLosingCapture(t *testing.T) {
	// White queen takes a pawn defended by a rook on the same file: losing
	// exchange for white (queen for pawn).
	p, err := position.NewFromFen("k2r4/8/8/3p4/3Q4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	losing := types.NewMove(types.SqD4, types.SqD5, types.Capture)
	out := QSort(p, []types.Move{losing})
	assert.Empty(t, out)
}
