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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/types"
)

func legalUci(t *testing.T, p *position.Position) []string {
	t.Helper()
	var out []string
	for _, m := range Legal(p, make([]types.Move, 0, 48)) {
		out = append(out, m.StringUci())
	}
	return out
}

func TestStartPositionHas20LegalMoves(t *testing.T) {
	p := position.New()
	assert.Len(t, legalUci(t, p), 20)
}

func TestCastlingBothSidesAvailableWhenPathClear(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := legalUci(t, p)
	assert.Contains(t, moves, "e1g1")
	assert.Contains(t, moves, "e1c1")
}

func TestCastlingBlockedWhenKingPassesThroughCheck(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := legalUci(t, p)
	assert.NotContains(t, moves, "e1g1", "f1 is attacked by the rook on f2")
	assert.Contains(t, moves, "e1c1")
}

func TestCastlingUnavailableWithoutRights(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1")
	assert.NoError(t, err)
	moves := legalUci(t, p)
	assert.NotContains(t, moves, "e1g1")
	assert.NotContains(t, moves, "e1c1")
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p, err := position.NewFromFen("8/8/8/3pP3/8/8/8/k6K w - d6 0 1")
	assert.NoError(t, err)
	moves := Legal(p, make([]types.Move, 0, 8))
	var found bool
	for _, m := range moves {
		if m.IsEnPassant() {
			found = true
			assert.Equal(t, types.SqE5, m.From())
			assert.Equal(t, types.SqD6, m.To())
		}
	}
	assert.True(t, found, "en-passant capture should be generated")
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	p, err := position.NewFromFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	moves := Legal(p, make([]types.Move, 0, 8))
	var promos int
	for _, m := range moves {
		if m.From() == types.SqA7 && m.To() == types.SqA8 {
			promos++
			assert.True(t, m.IsPromotion())
		}
	}
	assert.Equal(t, 4, promos)
}

func TestHasLegalMoveFalseOnStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move, not in check.
	p, err := position.NewFromFen("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.InCheck(types.Black))
	assert.False(t, HasLegalMove(p))
}

func TestFromUciMatchesLegalMove(t *testing.T) {
	p := position.New()
	m := FromUci(p, "e2e4")
	assert.True(t, m.IsValid())
	assert.Equal(t, types.SqE2, m.From())
	assert.Equal(t, types.SqE4, m.To())
	assert.True(t, m.IsDoublePawnPush())
}

func TestFromUciRejectsIllegalMove(t *testing.T) {
	p := position.New()
	assert.Equal(t, types.MoveNone, FromUci(p, "e2e5"))
}

func TestFromUciPromotion(t *testing.T) {
	p, err := position.NewFromFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	m := FromUci(p, "a7a8q")
	assert.True(t, m.IsValid())
	assert.Equal(t, types.Queen, m.PromotionType())
}
