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

// SeeMove runs Static Exchange Evaluation on a capturing move: the net
// material result of playing it out and then letting both sides recapture
// on the destination square for as long as doing so gains material.
//
// Unlike a gain-array sweep over a fixed attacker list, this follows the
// capture chain by literally cloning the position and replaying it one ply
// at a time — simpler to state correctly, at the cost of an allocation per
// ply of the exchange (exchanges are short, so this is not a hot path).
func (p *Position) SeeMove(m types.Move) types.Value {
	if !m.IsCapture() {
		return types.ValueZero
	}

	fromSq, toSq := m.From(), m.To()
	color := p.board[fromSq].ColorOf()

	clone := p.Copy()
	var capturedValue types.Value
	if m.IsEnPassant() {
		capSq := toSq.To(color.Flip().PawnDirection())
		capturedValue = clone.removePiece(capSq).ValueOf()
		clone.movePiece(fromSq, toSq)
	} else {
		capturedValue = clone.board[toSq].ValueOf()
		clone.removePiece(toSq)
		clone.movePiece(fromSq, toSq)
	}

	return capturedValue - clone.see(toSq, color.Flip())
}

// see computes the value side can still win by capturing on sq (which
// currently holds an enemy piece) with its cheapest available attacker, then
// recursing for the opponent's best reply. A side always has the option to
// stop the exchange, so a losing continuation is clamped to zero.
func (p *Position) see(sq types.Square, side types.Color) types.Value {
	occupied := p.Occupied()
	attackerSq, _ := p.leastValuableAttackerAmong(sq, side, occupied)
	if attackerSq == types.SqNone {
		return types.ValueZero
	}

	capturedValue := p.board[sq].ValueOf()

	clone := p.Copy()
	clone.removePiece(sq)
	clone.movePiece(attackerSq, sq)

	value := capturedValue - clone.see(sq, side.Flip())
	if value < 0 {
		value = types.ValueZero
	}
	return value
}
