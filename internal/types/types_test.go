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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "d5"} {
		sq := MakeSquare(s)
		assert.True(t, sq.IsValid())
		assert.Equal(t, s, sq.String())
	}
}

func TestSquareEdgeWrap(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqB2, SqA1.To(Northeast))
}

func TestBitboardPushPopHas(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardPopLsbDrainsInAscendingOrder(t *testing.T) {
	b := SqC3.Bb() | SqA1.Bb() | SqH8.Bb()
	var got []Square
	for b != 0 {
		got = append(got, b.PopLsb())
	}
	assert.Equal(t, []Square{SqA1, SqC3, SqH8}, got)
}

func TestShiftBitboardClipsFileEdges(t *testing.T) {
	assert.Equal(t, BbZero, ShiftBitboard(FileHBb, East))
	assert.Equal(t, BbZero, ShiftBitboard(FileABb, West))
	assert.Equal(t, FileBBb, ShiftBitboard(FileABb, East))
}

func TestGetAttacksBbRookOnEmptyBoard(t *testing.T) {
	attacks := GetAttacksBb(Rook, SqA1, BbZero)
	assert.Equal(t, (FileABb|Rank1Bb)&^SqA1.Bb(), attacks)
}

func TestGetAttacksBbRookBlocked(t *testing.T) {
	occ := SqA4.Bb()
	attacks := GetAttacksBb(Rook, SqA1, occ)
	assert.True(t, attacks.Has(SqA4), "slider attack set includes the first blocker")
	assert.False(t, attacks.Has(SqA5), "slider attack set stops at the first blocker")
}

func TestGetAttacksBbBishop(t *testing.T) {
	attacks := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.True(t, attacks.Has(SqA1))
	assert.True(t, attacks.Has(SqH8))
	assert.False(t, attacks.Has(SqD5))
}

func TestGetPseudoAttacksKnight(t *testing.T) {
	attacks := GetPseudoAttacks(Knight, SqB1)
	assert.Equal(t, 3, attacks.PopCount())
	assert.True(t, attacks.Has(SqA3))
	assert.True(t, attacks.Has(SqC3))
	assert.True(t, attacks.Has(SqD2))
}

func TestGetPawnAttacksEdgeClip(t *testing.T) {
	attacks := GetPawnAttacks(White, SqA2)
	assert.Equal(t, 1, attacks.PopCount())
	assert.True(t, attacks.Has(SqB3))
}

func TestMoveEncodingRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, DoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.True(t, m.IsDoublePawnPush())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestMoveValueIsStrippedByMoveOf(t *testing.T) {
	m := NewMove(SqE2, SqE4, Quiet)
	withValue := m.SetValue(Value(-5))
	assert.Equal(t, Value(-5), withValue.ValueOf())
	assert.Equal(t, m, withValue.MoveOf())
	assert.NotEqual(t, m, withValue, "sort value participates in raw equality")
}

func TestMoveIsCaptureCoversPromotionCaptures(t *testing.T) {
	quiet := NewPromotionMove(SqA7, SqA8, Queen, false)
	capture := NewPromotionMove(SqB7, SqA8, Queen, true)
	assert.False(t, quiet.IsCapture())
	assert.True(t, capture.IsCapture())
	assert.Equal(t, Queen, capture.PromotionType())
	assert.Equal(t, "b7a8q", capture.StringUci())
}

func TestMoveIsEnPassantSetsCaptureBit(t *testing.T) {
	m := NewMove(SqD5, SqE6, EnPassant)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
}

func TestCastlingRightsBitOrder(t *testing.T) {
	assert.True(t, CastlingWhite.Has(CastlingWhiteOO))
	assert.True(t, CastlingWhite.Has(CastlingWhiteOOO))
	assert.False(t, CastlingWhite.Has(CastlingBlackOO))
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "-", CastlingNone.String())
}

func TestCastlingRightsRemove(t *testing.T) {
	cr := CastlingAny
	cr.Remove(CastlingWhiteOO)
	assert.False(t, cr.Has(CastlingWhiteOO))
	assert.True(t, cr.Has(CastlingWhiteOOO))
}

func TestGetCastlingRightsBySquare(t *testing.T) {
	assert.Equal(t, CastlingWhiteOOO, GetCastlingRights(SqA1))
	assert.Equal(t, CastlingWhiteOO, GetCastlingRights(SqH1))
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingNone, GetCastlingRights(SqD4))
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestPieceTypeValueOfDefaults(t *testing.T) {
	assert.Equal(t, Value(100), Pawn.ValueOf())
	assert.Equal(t, Value(900), Queen.ValueOf())
}

func TestPieceTypeSetValueIgnoresKing(t *testing.T) {
	before := King.ValueOf()
	SetValue(King, Value(1))
	assert.Equal(t, before, King.ValueOf())
	SetValue(Pawn, Value(150))
	assert.Equal(t, Value(150), Pawn.ValueOf())
	SetValue(Pawn, Value(100)) // restore default for other tests in this package
}
