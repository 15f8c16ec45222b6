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

// init builds every precomputed lookup table exactly once at package load:
// ray attacks and pseudo-attacks for all piece types, the intermediate-square
// table used for castling-path checks, the castling-rights-lost-per-
// square table, and the magic-bitboard attack tables for bishops and rooks.
//
// These tables are read-only after init and safe for concurrent use by any
// number of goroutines without further synchronization.
func init() {
	initRaysAndPseudoAttacks()
	initPawnAttacks()
	initIntermediate()
	initCastling()
	initMagicTable(&bishopMagics, bishopDirections)
	initMagicTable(&rookMagics, rookDirections)
}

func initRaysAndPseudoAttacks() {
	knightOffsets := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	for sq := SqA1; sq <= SqH8; sq++ {
		// king: one step in each of the 8 directions
		for _, d := range Directions {
			if to := sq.To(d); to != SqNone {
				pseudoAttacks[King][sq] |= to.Bb()
			}
		}

		// knight: the 8 L-shaped offsets, rejecting board-edge wraparound
		for _, off := range knightOffsets {
			f := int(sq.FileOf()) + off[0]
			r := int(sq.RankOf()) + off[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			pseudoAttacks[Knight][sq] |= SquareOf(File(f), Rank(r)).Bb()
		}

		// sliding pieces on an empty board
		pseudoAttacks[Bishop][sq] = slidingAttack(bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]

		// full-length rays, one per direction
		for i, d := range Directions {
			s := sq
			for {
				to := s.To(d)
				if to == SqNone {
					break
				}
				rays[i][sq] |= to.Bb()
				s = to
			}
		}
	}
}

func initPawnAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if to := sq.To(Northeast); to != SqNone {
			pawnAttacks[White][sq] |= to.Bb()
		}
		if to := sq.To(Northwest); to != SqNone {
			pawnAttacks[White][sq] |= to.Bb()
		}
		if to := sq.To(Southeast); to != SqNone {
			pawnAttacks[Black][sq] |= to.Bb()
		}
		if to := sq.To(Southwest); to != SqNone {
			pawnAttacks[Black][sq] |= to.Bb()
		}
	}
}

// initIntermediate derives, for every pair of squares sharing a rank, file,
// or diagonal, the bits strictly between them, by walking from sq1 in each
// direction and recording the squares passed before reaching each target.
func initIntermediate() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for _, d := range Directions {
			s := sq1
			line := BbZero
			for {
				to := s.To(d)
				if to == SqNone {
					break
				}
				intermediate[sq1][to] = line
				line |= to.Bb()
				s = to
			}
		}
	}
}

func initCastling() {
	for c := White; c < Color(ColorLength); c++ {
		backRank := Rank1
		if c == Black {
			backRank = Rank8
		}
		kingSideCastleMask[c] = SquareOf(FileF, backRank).Bb() | SquareOf(FileG, backRank).Bb() | SquareOf(FileH, backRank).Bb()
		queenSideCastleMask[c] = SquareOf(FileB, backRank).Bb() | SquareOf(FileC, backRank).Bb() | SquareOf(FileD, backRank).Bb() | SquareOf(FileA, backRank).Bb()
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		castlingRightsBySquare[sq] = CastlingNone
	}
	castlingRightsBySquare[SqE1] = CastlingWhite
	castlingRightsBySquare[SqA1] = CastlingWhiteOOO
	castlingRightsBySquare[SqH1] = CastlingWhiteOO
	castlingRightsBySquare[SqE8] = CastlingBlack
	castlingRightsBySquare[SqA8] = CastlingBlackOOO
	castlingRightsBySquare[SqH8] = CastlingBlackOO
}
