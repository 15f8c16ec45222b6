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

package position

import (
	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/types"
	"github.com/frankkopp/chesscore/internal/zobrist"
)

// IsIrreversible reports whether m resets the half-move clock and breaks
// any repetition chain: pawn moves, captures, and castling. The search
// layer uses this to bound repetition and fifty-move-rule scans.
func (p *Position) IsIrreversible(m types.Move) bool {
	return m.IsCapture() || p.board[m.From()].TypeOf() == types.Pawn || m.IsCastle()
}

// MakeMove returns a new Position with m applied. No legality check is
// performed here; callers generating moves through the movegen package
// (or otherwise certain m is at least pseudo-legal) may rely on this being
// applied mechanically. The receiver is left unmodified.
func (p *Position) MakeMove(m types.Move) *Position {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position: MakeMove: invalid move %s", m.String())
		assert.Assert(p.board[m.From()] != types.PieceNone, "position: MakeMove: no piece on %s", m.From().String())
		assert.Assert(p.board[m.From()].ColorOf() == p.sideToMove, "position: MakeMove: piece on %s does not belong to side to move", m.From().String())
	}

	n := p.Copy()
	n.apply(m)
	return n
}

// DoNullMove returns a new Position identical to p except that the side to
// move has flipped and any en-passant square has been cleared; used by the
// search layer's null-move pruning, never generated as an ordinary move.
func (p *Position) DoNullMove() *Position {
	n := p.Copy()
	n.clearEnPassant()
	n.lastMove = types.MoveNone
	n.lastCapturedPiece = types.PieceNone
	n.sideToMove = n.sideToMove.Flip()
	n.hash ^= zobrist.SideToMove()
	n.ply++
	return n
}

func (p *Position) apply(m types.Move) {
	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	color := fromPc.ColorOf()
	targetPc := p.board[toSq]

	p.removeCastlingRightsFor(fromSq, toSq)
	p.clearEnPassant()

	switch {
	case m.IsCastleKing(), m.IsCastleQueen():
		p.applyCastle(color, m.IsCastleKing())
	case m.IsEnPassant():
		p.applyEnPassant(fromSq, toSq, color)
	case m.IsPromotion():
		p.applyPromotion(fromSq, toSq, m.PromotionType(), color, targetPc)
	default:
		if targetPc != types.PieceNone {
			p.removePiece(toSq)
		}
		p.movePiece(fromSq, toSq)
		if m.IsDoublePawnPush() {
			p.enPassantSquare = toSq.To(color.Flip().PawnDirection())
			p.hash ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
		}
	}

	if targetPc != types.PieceNone || fromPc.TypeOf() == types.Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.lastMove = m
	p.lastCapturedPiece = targetPc

	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.SideToMove()
	p.ply++
}

func (p *Position) applyCastle(color types.Color, kingSide bool) {
	backRank := types.Rank1
	if color == types.Black {
		backRank = types.Rank8
	}
	kingFrom := types.SquareOf(types.FileE, backRank)
	var kingTo, rookFrom, rookTo types.Square
	if kingSide {
		kingTo = types.SquareOf(types.FileG, backRank)
		rookFrom = types.SquareOf(types.FileH, backRank)
		rookTo = types.SquareOf(types.FileF, backRank)
	} else {
		kingTo = types.SquareOf(types.FileC, backRank)
		rookFrom = types.SquareOf(types.FileA, backRank)
		rookTo = types.SquareOf(types.FileD, backRank)
	}
	if assert.DEBUG {
		assert.Assert(p.board[kingFrom] == types.MakePiece(color, types.King), "position: castle: no king on %s", kingFrom.String())
		assert.Assert(p.board[rookFrom] == types.MakePiece(color, types.Rook), "position: castle: no rook on %s", rookFrom.String())
	}
	p.movePiece(kingFrom, kingTo)
	p.movePiece(rookFrom, rookTo)
}

func (p *Position) applyEnPassant(fromSq, toSq types.Square, color types.Color) {
	capSq := toSq.To(color.Flip().PawnDirection())
	if assert.DEBUG {
		assert.Assert(p.board[capSq] == types.MakePiece(color.Flip(), types.Pawn), "position: en-passant: no enemy pawn on %s", capSq.String())
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
}

func (p *Position) applyPromotion(fromSq, toSq types.Square, promo types.PieceType, color types.Color, targetPc types.Piece) {
	if targetPc != types.PieceNone {
		p.removePiece(toSq)
	}
	p.removePiece(fromSq)
	p.putPiece(types.MakePiece(color, promo), toSq)
}
