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

// Package zobrist provides the incremental hash keys used to identify chess
// positions: one random 64-bit word per (piece, square), per castling-rights
// combination, per en-passant file, and one for side-to-move. A position's
// hash is the XOR of the words for everything currently true about it, which
// lets making a move update the hash incrementally rather than recomputing it.
package zobrist

import (
	"github.com/frankkopp/chesscore/internal/types"
)

// Key is a Zobrist hash value.
type Key uint64

var (
	pieceSquare       [types.PieceLength][types.SqLength]Key
	castlingRightsKey [types.CastlingRightsLength]Key
	enPassantFile     [types.FileLength]Key
	sideToMove        Key
)

// deterministic seed of the Zobrist word stream (the magic-number search in
// package types uses its own per-rank seeds); must never be zero.
const seed = 1070372

func init() {
	build()
}

// build fills every table from one xorshift64star stream seeded
// deterministically, so the same position always hashes to the same key
// across runs and across machines.
func build() {
	r := newRandom(seed)
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			pieceSquare[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingNone; cr <= types.CastlingAny; cr++ {
		castlingRightsKey[cr] = Key(r.rand64())
	}
	for f := types.FileA; f <= types.FileH; f++ {
		enPassantFile[f] = Key(r.rand64())
	}
	sideToMove = Key(r.rand64())
}

// PieceSquare returns the word for a piece standing on a square.
func PieceSquare(p types.Piece, sq types.Square) Key {
	return pieceSquare[p][sq]
}

// CastlingRights returns the word for a full castling-rights combination.
// The whole 4-bit value is hashed as one composite, not per individual bit.
func CastlingRights(cr types.CastlingRights) Key {
	return castlingRightsKey[cr]
}

// EnPassantFile returns the word for an en-passant target file.
func EnPassantFile(f types.File) Key {
	return enPassantFile[f]
}

// SideToMove returns the word XORed in whenever it is Black to move.
func SideToMove() Key {
	return sideToMove
}
