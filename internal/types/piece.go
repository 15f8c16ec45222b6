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

// Piece packs a PieceType (low 3 bits) and a Color (bit 3) into one small
// integer: piece & PieceTypeMask extracts kind, piece & ColorMask extracts
// color. PtAll|color is the aggregate-occupancy slot used to index Bitboard.
type Piece int8

const (
	PieceTypeMask Piece = 0b0111
	ColorMask     Piece = 0b1000

	PieceNone Piece = 0

	WhiteKing   Piece = Piece(King)
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteAll    Piece = Piece(PtAll)

	BlackKing   Piece = Piece(King) | ColorMask
	BlackPawn   Piece = Piece(Pawn) | ColorMask
	BlackKnight Piece = Piece(Knight) | ColorMask
	BlackBishop Piece = Piece(Bishop) | ColorMask
	BlackRook   Piece = Piece(Rook) | ColorMask
	BlackQueen  Piece = Piece(Queen) | ColorMask
	BlackAll    Piece = Piece(PtAll) | ColorMask

	PieceLength Piece = 16
)

// MakePiece returns the piece code for the given color and kind.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c)<<3 | Piece(pt)
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece kind, masking out the color bit.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & PieceTypeMask)
}

// ValueOf returns the material value of the piece (0 for PieceNone).
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToChar = " KPNBRQ- kpnbrq-"

// PieceFromChar returns the Piece for a FEN piece letter, or PieceNone if s
// is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx <= 0 || s == "-" {
		return PieceNone
	}
	return Piece(idx)
}

// Char returns the FEN letter for the piece (upper case white, lower case black).
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

// String is an alias for Char.
func (p Piece) String() string {
	return p.Char()
}
