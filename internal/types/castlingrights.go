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

import "strings"

// CastlingRights is a 4-bit mask {WK, WQ, BK, BQ}. White occupies the low
// bits, Black the high bits: WhiteOO=bit0, WhiteOOO=bit1, BlackOO=bit2,
// BlackOOO=bit3. (Resolves the source's open question on bit ordering; see
// DESIGN.md.)
type CastlingRights uint8

const (
	CastlingNone    CastlingRights = 0
	CastlingWhiteOO CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingWhite   CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingBlack   CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny     CastlingRights = CastlingWhite | CastlingBlack
	CastlingRightsLength int       = 16
)

// Has reports whether all bits of rhs are set.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given right(s) and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// Add sets the given right(s) and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// String returns the FEN castling-availability field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}

// kingRight and queenRight return the castling right bit for a color's
// king-side / queen-side castle, used by the <<color trick noted in the
// design: black's rights are white's shifted left by 2.
func kingRight(c Color) CastlingRights {
	return CastlingWhiteOO << (2 * CastlingRights(c))
}

func queenRight(c Color) CastlingRights {
	return CastlingWhiteOOO << (2 * CastlingRights(c))
}
