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

// Magic holds the precomputed magic-bitboard entry for one square of one
// sliding piece type: mask selects the relevant occupancy bits, magic is the
// multiplier that perfect-hashes that occupancy subset into an index, and
// attacksTable[index(occupied)] is the resulting attack set.
type Magic struct {
	mask         Bitboard
	magic        Bitboard
	attacksTable []Bitboard
	shift        uint
}

// index computes the table slot for a given full-board occupancy.
func (m *Magic) index(occupied Bitboard) uint {
	return uint((occupied & m.mask) * m.magic >> m.shift)
}

// attacks returns the precomputed attack set for a given full-board occupancy.
func (m *Magic) attacks(occupied Bitboard) Bitboard {
	return m.attacksTable[m.index(occupied)]
}

var (
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic

	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirections   = [4]Direction{North, East, South, West}
)

// slidingAttack rays out from sq along each of the four given directions,
// stopping (inclusive) at the first occupied square.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	attacks := BbZero
	for _, d := range directions {
		s := sq
		for {
			to := s.To(d)
			if to == SqNone {
				break
			}
			attacks |= to.Bb()
			s = to
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// edgeMask returns the board-edge squares not already excluded by the
// direction of travel: a slider's relevant occupancy excludes the outer ring
// because an edge square can never be "jumped" by a blocker beyond it.
func edgeMask(sq Square) Bitboard {
	edges := (Rank1Bb | Rank8Bb) &^ RankBb(sq.RankOf())
	edges |= (FileABb | FileHBb) &^ FileBb(sq.FileOf())
	return edges
}

// RankBb returns the bitboard of an entire rank.
func RankBb(r Rank) Bitboard {
	return Rank1Bb << (8 * uint(r))
}

// FileBb returns the bitboard of an entire file.
func FileBb(f File) Bitboard {
	return FileABb << uint(f)
}

// initMagicTable fills in magics[sq] for every square, computing a mask,
// enumerating every occupancy subset of that mask with the Carry-Rippler
// trick, and searching (via a deterministic PRNG seeded per rank) for a
// multiplier that hashes every subset to a unique table slot.
func initMagicTable(magics *[SqLength]Magic, directions [4]Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := edgeMask(sq)
		mask := slidingAttack(directions, sq, BbZero) &^ edges
		shift := uint(64 - mask.PopCount())

		size := 0
		b := BbZero
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - mask) & mask
			if b == BbZero {
				break
			}
		}

		m := &magics[sq]
		m.mask = mask
		m.shift = shift
		m.attacksTable = make([]Bitboard, size)

		prng := newPrnG(magicSeeds[sq.RankOf()])
		for i := 0; i < size; {
			magic := BbZero
			for magic == BbZero || Bitboard((magic*mask)>>56).PopCount() < 6 {
				magic = sparseRand(prng)
			}
			m.magic = magic

			cnt++
			i = 0
			for ; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacksTable[idx] = reference[i]
				} else if m.attacksTable[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// magicSeeds are per-rank seeds for the magic-number search PRNG, chosen
// empirically to keep the search fast (denser candidates for ranks with
// larger relevant-occupancy masks).
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// PrnG is a xorshift64star pseudo-random generator used to deterministically
// reproduce the magic-number tables across builds.
type PrnG struct {
	state uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{state: seed}
}

func (p *PrnG) rand64() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// sparseRand returns a random 64-bit value with relatively few set bits,
// which in practice yields far faster magic-number search than a uniform one.
func sparseRand(p *PrnG) Bitboard {
	return Bitboard(p.rand64() & p.rand64() & p.rand64())
}
