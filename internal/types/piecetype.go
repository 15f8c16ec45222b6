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

// PieceType identifies the kind of a piece, independent of color.
// PtAll is a synthetic kind used only to address the aggregate
// occupancy slot of a color in Bitboard (see WhiteAll/BlackAll in piece.go).
type PieceType uint8

const (
	PtNone PieceType = 0
	King   PieceType = 1
	Pawn   PieceType = 2
	Knight PieceType = 3
	Bishop PieceType = 4
	Rook   PieceType = 5
	Queen  PieceType = 6
	PtAll  PieceType = 7
	PtLength PieceType = 8
)

// IsValid reports whether pt is a real piece kind (excludes PtAll).
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Queen
}

// pieceTypeValue holds engine-tunable material values; King uses a large
// sentinel so it dominates any SEE/ordering comparison without ever being a
// real capture target.
var pieceTypeValue = [PtLength]Value{PtNone: 0, King: 20000, Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900}

// ValueOf returns the material value used for move ordering and SEE.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// SetValue overrides the material value of pt, e.g. from a tunable
// configuration file. King is excluded: its sentinel value must stay larger
// than any reachable material sum.
func SetValue(pt PieceType, v Value) {
	if pt == King || !pt.IsValid() {
		return
	}
	pieceTypeValue[pt] = v
}

var pieceTypeToChar = [PtLength]string{"-", "K", "P", "N", "B", "R", "Q", "-"}

// Char returns a single upper case letter for the piece type.
func (pt PieceType) Char() string {
	return pieceTypeToChar[pt]
}

var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen", "All"}

// String returns the full name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}
