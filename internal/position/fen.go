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
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/internal/types"
	"github.com/frankkopp/chesscore/internal/zobrist"
)

// NewFromFen parses a FEN string into a Position. Only the piece-placement
// field is mandatory; every field after it falls back to its default
// (white to move, no castling rights, no en-passant square, clocks at zero).
func NewFromFen(fen string) (*Position, error) {
	p := &Position{enPassantSquare: types.SqNone}
	if err := p.parseFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) parseFen(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fmt.Errorf("position: fen must not be empty")
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return err
	}

	p.ply = 0
	p.enPassantSquare = types.SqNone
	p.sideToMove = types.White

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = types.White
		case "b":
			p.sideToMove = types.Black
			p.hash ^= zobrist.SideToMove()
		default:
			return fmt.Errorf("position: invalid side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 {
		cr, err := parseCastlingRights(fields[2])
		if err != nil {
			return err
		}
		p.castlingRights = cr
		p.hash ^= zobrist.CastlingRights(p.castlingRights)
	}

	if len(fields) >= 4 && fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if sq == types.SqNone {
			return fmt.Errorf("position: invalid en-passant square %q", fields[3])
		}
		if sq.RankOf() != types.Rank3 && sq.RankOf() != types.Rank6 {
			return fmt.Errorf("position: invalid en-passant square %q: rank must be 3 or 6", fields[3])
		}
		p.enPassantSquare = sq
		p.hash ^= zobrist.EnPassantFile(sq.FileOf())
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: invalid half-move clock %q: %w", fields[4], err)
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: invalid full-move number %q: %w", fields[5], err)
		}
		if n == 0 {
			n = 1
		}
		p.ply = 2*(n-1) + int(p.sideToMove)
	}

	return nil
}

func (p *Position) parsePlacement(placement string) error {
	sq := types.SqA8
	for _, c := range placement {
		switch {
		case c >= '1' && c <= '8':
			sq += types.Square(c - '0')
		case c == '/':
			// back from one past the end of this rank to file a of the rank below
			sq -= 16
		default:
			piece := types.PieceFromChar(string(c))
			if piece == types.PieceNone {
				return fmt.Errorf("position: invalid piece letter %q", string(c))
			}
			if !sq.IsValid() {
				return fmt.Errorf("position: piece placement runs past the board edge")
			}
			p.putPiece(piece, sq)
			sq++
		}
	}
	if sq != types.SqA2 {
		return fmt.Errorf("position: piece placement does not cover exactly 64 squares")
	}
	return nil
}

func parseCastlingRights(field string) (types.CastlingRights, error) {
	cr := types.CastlingNone
	if field == "-" {
		return cr, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			cr.Add(types.CastlingWhiteOO)
		case 'Q':
			cr.Add(types.CastlingWhiteOOO)
		case 'k':
			cr.Add(types.CastlingBlackOO)
		case 'q':
			cr.Add(types.CastlingBlackOOO)
		default:
			return 0, fmt.Errorf("position: invalid castling rights letter %q", string(c))
		}
	}
	return cr, nil
}

// Fen renders the position back to FEN notation.
func (p *Position) Fen() string {
	var sb strings.Builder

	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := p.board[types.SquareOf(f, r)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == types.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.ply/2 + 1))

	return sb.String()
}
