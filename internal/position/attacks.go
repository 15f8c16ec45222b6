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

import "github.com/frankkopp/chesscore/internal/types"

// IsAttacked reports whether sq is attacked by any piece of color by. This
// works by casting a reverse ray/jump from sq for each piece kind and
// testing whether it lands on one of by's pieces of that kind — the usual
// bitboard trick since attacks are symmetric.
func (p *Position) IsAttacked(sq types.Square, by types.Color) bool {
	if types.GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][types.Pawn] != 0 {
		return true
	}
	if types.GetPseudoAttacks(types.Knight, sq)&p.piecesBb[by][types.Knight] != 0 {
		return true
	}
	if types.GetPseudoAttacks(types.King, sq)&p.piecesBb[by][types.King] != 0 {
		return true
	}
	occupied := p.Occupied()
	if types.GetAttacksBb(types.Bishop, sq, occupied)&(p.piecesBb[by][types.Bishop]|p.piecesBb[by][types.Queen]) != 0 {
		return true
	}
	if types.GetAttacksBb(types.Rook, sq, occupied)&(p.piecesBb[by][types.Rook]|p.piecesBb[by][types.Queen]) != 0 {
		return true
	}
	return false
}

// attackersByType returns the bitboard of by's pieces of kind pt that attack
// sq given the supplied occupancy (passed explicitly so SEE can probe a
// position with pieces progressively removed, without mutating it).
func attackersByType(sq types.Square, by types.Color, pt types.PieceType, piecesOfKind types.Bitboard, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Pawn:
		return types.GetPawnAttacks(by.Flip(), sq) & piecesOfKind
	case types.Knight, types.King:
		return types.GetPseudoAttacks(pt, sq) & piecesOfKind
	default:
		return types.GetAttacksBb(pt, sq, occupied) & piecesOfKind
	}
}

// attackersOf returns every square occupied by a by-colored piece that
// attacks sq, given an explicit occupancy bitboard.
func (p *Position) attackersOf(sq types.Square, by types.Color, occupied types.Bitboard) types.Bitboard {
	var attackers types.Bitboard
	for pt := types.King; pt <= types.Queen; pt++ {
		attackers |= attackersByType(sq, by, pt, p.piecesBb[by][pt]&occupied, occupied)
	}
	return attackers
}

// leastValuableAttackerAmong returns the square and piece of the
// cheapest by-colored attacker of sq among the given occupied set, searching
// in pawn -> knight -> bishop -> rook -> queen -> king order, or (SqNone,
// PieceNone) if by has no attacker left.
func (p *Position) leastValuableAttackerAmong(sq types.Square, by types.Color, occupied types.Bitboard) (types.Square, types.Piece) {
	order := [...]types.PieceType{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen, types.King}
	for _, pt := range order {
		bb := attackersByType(sq, by, pt, p.piecesBb[by][pt]&occupied, occupied)
		if bb != 0 {
			from := bb.Lsb()
			return from, types.MakePiece(by, pt)
		}
	}
	return types.SqNone, types.PieceNone
}
