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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set with bit i representing square i (little-endian
// rank-file mapping: bit i = square i = file i%8, rank i/8). This convention
// is used uniformly throughout the package.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero

	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb          = Rank1Bb << (8 * 1)
	Rank3Bb          = Rank1Bb << (8 * 2)
	Rank4Bb          = Rank1Bb << (8 * 3)
	Rank5Bb          = Rank1Bb << (8 * 4)
	Rank6Bb          = Rank1Bb << (8 * 5)
	Rank7Bb          = Rank1Bb << (8 * 6)
	Rank8Bb          = Rank1Bb << (8 * 7)

	notFileABb = ^FileABb
	notFileHBb = ^FileHBb
)

// Bb returns the single-bit bitboard for a square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// PushSquare sets the bit for s.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b &^= s.Bb()
	return *b
}

// Has reports whether the bit for s is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would wrap around the east/west edge of the board.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		return b
	}
}

// Lsb returns the least-significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and clears it from b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	*b &= *b - 1
	return sq
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders the 64 bits as a little-endian bit string.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders the bitboard as an 8x8 ascii board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// Intermediate returns the squares strictly between sq1 and sq2 along a
// shared rank, file, or diagonal; BbZero if they do not share a line.
func Intermediate(sq1, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// GetCastlingRights returns the castling right(s) forfeited when a piece
// moves from (or is captured on) the given square.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsBySquare[sq]
}

// KingSideCastleMask returns the squares (excluding the king's home square)
// involved in king-side castling for the given color: f, g, h of the back rank.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastleMask returns the squares (excluding the king's home square)
// involved in queen-side castling for the given color: a, b, c, d of the back rank.
func QueenSideCastleMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetAttacksBb returns the attack set of a sliding piece (bishop, rook, or
// queen) on sq given the full-board occupancy, via magic-bitboard lookup.
// For knight and king, occupied is ignored.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attack set of a non-sliding piece (knight,
// king), or a slider's attack set on an empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the two diagonal capture squares of a pawn of color
// c standing on sq (clipped at the board edge).
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// package-level precomputed tables, built once by the package init function
// (see init.go).
var (
	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard
	rays          [8][SqLength]Bitboard
	intermediate  [SqLength][SqLength]Bitboard

	kingSideCastleMask       [2]Bitboard
	queenSideCastleMask      [2]Bitboard
	castlingRightsBySquare   [SqLength]CastlingRights
)
