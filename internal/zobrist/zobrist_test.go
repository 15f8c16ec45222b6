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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/types"
)

func TestPieceSquareWordsAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for pc := types.WhiteKing; pc <= types.BlackQueen; pc++ {
		if !pc.TypeOf().IsValid() {
			continue
		}
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			k := PieceSquare(pc, sq)
			assert.False(t, seen[k], "duplicate word for %v/%v", pc, sq)
			seen[k] = true
		}
	}
}

func TestBuildIsDeterministicAcrossRuns(t *testing.T) {
	before := PieceSquare(types.WhitePawn, types.SqE2)
	build()
	after := PieceSquare(types.WhitePawn, types.SqE2)
	assert.Equal(t, before, after, "same seed must reproduce the same table")
}

func TestCastlingRightsWordsCoverAllCombinations(t *testing.T) {
	seen := make(map[Key]bool)
	for cr := types.CastlingNone; cr <= types.CastlingAny; cr++ {
		k := CastlingRights(cr)
		seen[k] = true
	}
	assert.Len(t, seen, int(types.CastlingAny)+1)
}

func TestSideToMoveIsNonZero(t *testing.T) {
	assert.NotEqual(t, Key(0), SideToMove())
}
