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
	"fmt"
	"strings"
)

// Move packs a chess move into a 32-bit integer: 16 bits of move encoding in
// the low bits, 16 bits of move-ordering sort value in the high bits.
//
//  BITMAP 32-bit
//  |-value ------------------------|-Move -------------------------|
//  3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------|--------------------------------
//                                  |                     1 1 1 1 1 1  to
//                                  |         1 1 1 1 1 1              from
//                                  | 1 1 1 1                          flags
//  1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 |                                  sort value
//
// Comparison for hint/killer matching is plain bitwise equality on MoveOf().
type Move uint32

// MoveNone is the zero value and never a legal move (from == to == a1).
const MoveNone Move = 0

// MoveFlag is the 4-bit flag nibble of a Move. Bit 2 (0b0100) is set on every
// capture, including en-passant and promotion-captures, so IsCapture is a
// single mask test. Bit 3 (0b1000) marks a promotion; its low two bits then
// select the promoted piece (knight/bishop/rook/queen).
type MoveFlag uint8

const (
	Quiet           MoveFlag = 0b0000
	DoublePawnPush  MoveFlag = 0b0001
	CastleKing      MoveFlag = 0b0010
	CastleQueen     MoveFlag = 0b0011
	Capture         MoveFlag = 0b0100
	EnPassant       MoveFlag = 0b0101
	PromoKnight     MoveFlag = 0b1000
	PromoBishop     MoveFlag = 0b1001
	PromoRook       MoveFlag = 0b1010
	PromoQueen      MoveFlag = 0b1011
	PromoKnightCap  MoveFlag = 0b1100
	PromoBishopCap  MoveFlag = 0b1101
	PromoRookCap    MoveFlag = 0b1110
	PromoQueenCap   MoveFlag = 0b1111

	captureBit    MoveFlag = 0b0100
	promotionBit  MoveFlag = 0b1000
	promoKindMask MoveFlag = 0b0011
)

const (
	toShift    uint  = 0
	fromShift  uint  = 6
	flagShift  uint  = 12
	valueShift uint  = 16
	squareMask Move  = 0x3F
	flagMask   Move  = 0xF
	moveMask   Move  = 0xFFFF
)

var promoKindToPieceType = [4]PieceType{Knight, Bishop, Rook, Queen}

// pieceTypeToPromoKind maps Knight/Bishop/Rook/Queen to the 2-bit promo kind.
func pieceTypeToPromoKind(pt PieceType) MoveFlag {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0 // Knight
	}
}

// NewMove encodes a move with no sort value.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(flag)<<flagShift
}

// NewPromotionMove encodes a promotion (or promotion-capture) move.
func NewPromotionMove(from, to Square, promo PieceType, isCapture bool) Move {
	flag := promotionBit | pieceTypeToPromoKind(promo)
	if isCapture {
		flag |= captureBit
	}
	return NewMove(from, to, flag)
}

// NewMoveValue encodes a move together with a move-ordering sort value.
func NewMoveValue(from, to Square, flag MoveFlag, value Value) Move {
	return Move(value)<<valueShift | NewMove(from, to, flag)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// Flag returns the 4-bit move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> flagShift) & flagMask)
}

// MoveOf strips the sort value, leaving only the 16-bit move encoding.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the move-ordering sort value encoded in the high 16 bits.
func (m Move) ValueOf() Value {
	return Value(int32(m) >> valueShift)
}

// SetValue returns m with its sort value replaced by v.
func (m Move) SetValue(v Value) Move {
	return m.MoveOf() | Move(uint32(v))<<valueShift
}

// IsCapture reports whether the destination square is non-empty, including
// en-passant and promotion-captures.
func (m Move) IsCapture() bool {
	return m.Flag()&captureBit != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag()&promotionBit != 0
}

// PromotionType returns the promoted-to piece kind. Only meaningful when
// IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return promoKindToPieceType[m.Flag()&promoKindMask]
}

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassant
}

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == DoublePawnPush
}

// IsCastleKing reports whether this move is a king-side castle.
func (m Move) IsCastleKing() bool {
	return m.Flag() == CastleKing
}

// IsCastleQueen reports whether this move is a queen-side castle.
func (m Move) IsCastleQueen() bool {
	return m.Flag() == CastleQueen
}

// IsCastle reports whether this move castles either side.
func (m Move) IsCastle() bool {
	return m.IsCastleKing() || m.IsCastleQueen()
}

// IsValid reports whether m has distinct, valid from/to squares. MoveNone is
// not valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

// String returns a human-readable description of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return fmt.Sprintf("%s [flag=%04b value=%d]", m.StringUci(), m.Flag(), m.ValueOf())
}
