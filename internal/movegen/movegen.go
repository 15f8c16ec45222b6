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

// Package movegen generates pseudo-legal and fully legal chess moves for a
// position using bulk bitboard operations: pawn pushes/captures are produced
// by shifting the whole pawn bitboard at once, officer moves by looking up
// each piece's magic-bitboard attack set, rather than a per-square loop
// testing every target individually.
package movegen

import (
	"regexp"
	"strings"

	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/types"
)

// PseudoLegal appends to dst every pseudo-legal move for the side to move:
// legal except that it may leave, or fail to resolve, a check on its own
// king (castling's extra "does not cross an attacked square" rule is also
// deferred to Legal).
func PseudoLegal(p *position.Position, dst []types.Move) []types.Move {
	dst = genPawnMoves(p, dst)
	dst = genOfficerMoves(p, dst)
	dst = genKingMoves(p, dst)
	dst = genCastling(p, dst)
	return dst
}

// Legal returns every fully legal move: pseudo-legal moves that do not leave
// the mover's own king in check, with castling additionally required to
// start outside of check and never cross an attacked square.
func Legal(p *position.Position, dst []types.Move) []types.Move {
	us := p.SideToMove()
	pseudo := PseudoLegal(p, make([]types.Move, 0, 48))
	for _, m := range pseudo {
		if m.IsCastle() && !castlePathIsSafe(p, us, m) {
			continue
		}
		next := p.MakeMove(m)
		if !next.InCheck(us) {
			dst = append(dst, m)
		}
	}
	return dst
}

// HasLegalMove reports whether the side to move has at least one legal
// move, stopping at the first one found; used for stalemate/checkmate tests
// without paying for full generation.
func HasLegalMove(p *position.Position) bool {
	us := p.SideToMove()
	pseudo := PseudoLegal(p, make([]types.Move, 0, 48))
	for _, m := range pseudo {
		if m.IsCastle() && !castlePathIsSafe(p, us, m) {
			continue
		}
		next := p.MakeMove(m)
		if !next.InCheck(us) {
			return true
		}
	}
	return false
}

func castlePathIsSafe(p *position.Position, us types.Color, m types.Move) bool {
	if p.InCheck(us) {
		return false
	}
	passThrough := m.From().To(stepToward(m.From(), m.To()))
	return !p.IsAttacked(passThrough, us.Flip())
}

func stepToward(from, to types.Square) types.Direction {
	if to > from {
		return types.East
	}
	return types.West
}

func genCastling(p *position.Position, dst []types.Move) []types.Move {
	cr := p.CastlingRights()
	if cr == types.CastlingNone {
		return dst
	}
	us := p.SideToMove()
	occupied := p.Occupied()
	backRank := types.Rank1
	if us == types.Black {
		backRank = types.Rank8
	}
	kingFrom := types.SquareOf(types.FileE, backRank)

	kingSideRight, queenSideRight := types.CastlingWhiteOO, types.CastlingWhiteOOO
	if us == types.Black {
		kingSideRight, queenSideRight = types.CastlingBlackOO, types.CastlingBlackOOO
	}

	if cr.Has(kingSideRight) {
		rookSq := types.SquareOf(types.FileH, backRank)
		if types.Intermediate(kingFrom, rookSq)&occupied == 0 {
			dst = append(dst, types.NewMove(kingFrom, types.SquareOf(types.FileG, backRank), types.CastleKing))
		}
	}
	if cr.Has(queenSideRight) {
		rookSq := types.SquareOf(types.FileA, backRank)
		if types.Intermediate(kingFrom, rookSq)&occupied == 0 {
			dst = append(dst, types.NewMove(kingFrom, types.SquareOf(types.FileC, backRank), types.CastleQueen))
		}
	}
	return dst
}

func genKingMoves(p *position.Position, dst []types.Move) []types.Move {
	us := p.SideToMove()
	from := p.KingSquare(us)
	targets := types.GetPseudoAttacks(types.King, from)
	return genTargets(p, dst, from, targets, us)
}

func genOfficerMoves(p *position.Position, dst []types.Move) []types.Move {
	us := p.SideToMove()
	occupied := p.Occupied()
	for pt := types.Knight; pt <= types.Queen; pt++ {
		pieces := p.Pieces(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := types.GetAttacksBb(pt, from, occupied)
			dst = genTargets(p, dst, from, targets, us)
		}
	}
	return dst
}

// genTargets expands a from-square and its candidate target bitboard into
// capture and quiet moves, shared by king and officer generation.
func genTargets(p *position.Position, dst []types.Move, from types.Square, targets types.Bitboard, us types.Color) []types.Move {
	theirs := p.Pieces(us.Flip(), types.PtAll)
	captures := targets & theirs
	for captures != 0 {
		to := captures.PopLsb()
		dst = append(dst, types.NewMove(from, to, types.Capture))
	}
	quiet := targets &^ p.Occupied()
	for quiet != 0 {
		to := quiet.PopLsb()
		dst = append(dst, types.NewMove(from, to, types.Quiet))
	}
	return dst
}

func genPawnMoves(p *position.Position, dst []types.Move) []types.Move {
	us := p.SideToMove()
	them := us.Flip()
	pawns := p.Pieces(us, types.Pawn)
	occupied := p.Occupied()
	theirs := p.Pieces(them, types.PtAll)
	fwd := us.PawnDirection()

	for _, capDir := range [2]types.Direction{types.West, types.East} {
		captures := types.ShiftBitboard(pawns, fwd+capDir) & theirs
		promoCaptures := captures & us.PromotionRankBb()
		for promoCaptures != 0 {
			to := promoCaptures.PopLsb()
			from := to.To(them.PawnDirection() - capDir)
			dst = appendPromotions(dst, from, to, true)
		}
		plainCaptures := captures &^ us.PromotionRankBb()
		for plainCaptures != 0 {
			to := plainCaptures.PopLsb()
			from := to.To(them.PawnDirection() - capDir)
			dst = append(dst, types.NewMove(from, to, types.Capture))
		}
	}

	if ep := p.EnPassantSquare(); ep != types.SqNone {
		for _, capDir := range [2]types.Direction{types.West, types.East} {
			attacker := types.ShiftBitboard(ep.Bb(), them.PawnDirection()-capDir) & pawns
			if attacker != 0 {
				from := attacker.Lsb()
				dst = append(dst, types.NewMove(from, ep, types.EnPassant))
			}
		}
	}

	singlePush := types.ShiftBitboard(pawns, fwd) &^ occupied
	promoPush := singlePush & us.PromotionRankBb()
	for promoPush != 0 {
		to := promoPush.PopLsb()
		from := to.To(them.PawnDirection())
		dst = appendPromotions(dst, from, to, false)
	}
	quietPush := singlePush &^ us.PromotionRankBb()
	eligibleForDouble := quietPush & us.PawnDoubleRankBb()
	for quietPush != 0 {
		to := quietPush.PopLsb()
		from := to.To(them.PawnDirection())
		dst = append(dst, types.NewMove(from, to, types.Quiet))
	}

	doublePush := types.ShiftBitboard(eligibleForDouble, fwd) &^ occupied
	for doublePush != 0 {
		to := doublePush.PopLsb()
		from := to.To(them.PawnDirection()).To(them.PawnDirection())
		dst = append(dst, types.NewMove(from, to, types.DoublePawnPush))
	}

	return dst
}

func appendPromotions(dst []types.Move, from, to types.Square, isCapture bool) []types.Move {
	for _, pt := range [4]types.PieceType{types.Queen, types.Knight, types.Rook, types.Bishop} {
		dst = append(dst, types.NewPromotionMove(from, to, pt, isCapture))
	}
	return dst
}

var uciMoveRe = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// FromUci parses long algebraic notation ("e2e4", "a7a8q") against the set
// of legal moves for p and returns the matching Move, or MoveNone if uci is
// malformed or names no legal move in this position. The UCI driver is the
// only intended caller; the core itself never needs to stringify a move to
// apply it.
func FromUci(p *position.Position, uci string) types.Move {
	matches := uciMoveRe.FindStringSubmatch(uci)
	if matches == nil {
		return types.MoveNone
	}
	want := matches[1] + strings.ToLower(matches[2])
	for _, m := range Legal(p, make([]types.Move, 0, 48)) {
		if m.StringUci() == want {
			return m
		}
	}
	return types.MoveNone
}
