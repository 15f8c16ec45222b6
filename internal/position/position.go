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

// Package position represents a single chess position: the 8x8 piece board,
// its equivalent piece bitboards, and the side-to-move/castling/en-passant/
// half-move state needed to apply moves.
//
// Positions are immutable from the caller's point of view: MakeMove and
// DoNullMove return a new *Position rather than mutating the receiver, so a
// search tree can hold many positions live at once with no undo bookkeeping.
package position

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/chesscore/internal/assert"
	mylog "github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/types"
	"github.com/frankkopp/chesscore/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = mylog.GetLog()
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position holds one fully self-contained chess position.
type Position struct {
	board [types.SqLength]types.Piece

	// piecesBb[c][pt] is the bitboard of a color's pieces of kind pt.
	// piecesBb[c][types.PtAll] is the aggregate occupancy of that color, kept
	// incrementally in step with every other slot by putPiece/removePiece.
	piecesBb [types.ColorLength][types.PtLength]types.Bitboard

	castlingRights  types.CastlingRights
	enPassantSquare types.Square
	sideToMove      types.Color
	halfMoveClock   int
	ply             int

	kingSquare [types.ColorLength]types.Square

	hash zobrist.Key

	lastMove          types.Move
	lastCapturedPiece types.Piece
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := NewFromFen(StartFen)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// Copy returns an independent copy of p. Because Position holds no slices,
// maps, or pointers, a plain value copy is a full deep copy.
func (p *Position) Copy() *Position {
	n := *p
	return &n
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() types.CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() types.Square { return p.enPassantSquare }

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move, for fifty-move-rule bookkeeping by the caller.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Ply returns the number of half-moves played since the root FEN.
func (p *Position) Ply() int { return p.ply }

// Hash returns the current Zobrist key.
func (p *Position) Hash() zobrist.Key { return p.hash }

// PieceOn returns the piece standing on sq, or types.PieceNone.
func (p *Position) PieceOn(sq types.Square) types.Piece { return p.board[sq] }

// Pieces returns the bitboard of a color's pieces of the given kind. Pass
// types.PtAll for a color's full occupancy.
func (p *Position) Pieces(c types.Color, pt types.PieceType) types.Bitboard {
	return p.piecesBb[c][pt]
}

// Occupied returns the union of both colors' occupancy.
func (p *Position) Occupied() types.Bitboard {
	return p.piecesBb[types.White][types.PtAll] | p.piecesBb[types.Black][types.PtAll]
}

// KingSquare returns the square of a color's king.
func (p *Position) KingSquare(c types.Color) types.Square { return p.kingSquare[c] }

// LastMove returns the move that produced this position, or MoveNone for a
// position created directly from a FEN.
func (p *Position) LastMove() types.Move { return p.lastMove }

// LastCapturedPiece returns the piece captured by LastMove, or PieceNone.
func (p *Position) LastCapturedPiece() types.Piece { return p.lastCapturedPiece }

// InCheck reports whether the given color's king is currently attacked.
func (p *Position) InCheck(c types.Color) bool {
	return p.IsAttacked(p.kingSquare[c], c.Flip())
}

// putPiece places piece on an empty square, updating the board array, both
// relevant bitboard slots (the piece's own kind and the color's aggregate
// occupancy slot), the king-square cache, and the incremental hash.
func (p *Position) putPiece(piece types.Piece, sq types.Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == types.PieceNone, "position: putPiece on occupied square %s", sq.String())
	}
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	p.piecesBb[color][pt].PushSquare(sq)
	p.piecesBb[color][types.PtAll].PushSquare(sq)
	if pt == types.King {
		p.kingSquare[color] = sq
	}
	p.hash ^= zobrist.PieceSquare(piece, sq)
}

// removePiece clears an occupied square and returns the piece that was there.
func (p *Position) removePiece(sq types.Square) types.Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != types.PieceNone, "position: removePiece on empty square %s", sq.String())
	}
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = types.PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.piecesBb[color][types.PtAll].PopSquare(sq)
	p.hash ^= zobrist.PieceSquare(piece, sq)
	return piece
}

// movePiece relocates the piece on fromSq to an empty toSq.
func (p *Position) movePiece(fromSq, toSq types.Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != types.SqNone {
		p.hash ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
		p.enPassantSquare = types.SqNone
	}
}

func (p *Position) setCastlingRights(cr types.CastlingRights) {
	p.hash ^= zobrist.CastlingRights(p.castlingRights)
	p.castlingRights = cr
	p.hash ^= zobrist.CastlingRights(p.castlingRights)
}

// removeCastlingRightsFor clears whatever castling right(s) the given
// from/to squares forfeit (a king or rook having moved off, or a rook
// having been captured on, its home square).
func (p *Position) removeCastlingRightsFor(fromSq, toSq types.Square) {
	if p.castlingRights == types.CastlingNone {
		return
	}
	lost := types.GetCastlingRights(fromSq) | types.GetCastlingRights(toSq)
	if lost == types.CastlingNone {
		return
	}
	next := p.castlingRights
	next.Remove(lost)
	p.setCastlingRights(next)
}

// String renders the position as its FEN.
func (p *Position) String() string {
	return p.Fen()
}
