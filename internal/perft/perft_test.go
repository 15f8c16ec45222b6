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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/position"
)

// Perft reference values from https://www.chessprogramming.org/Perft_Results

func TestStandardPosition(t *testing.T) {
	var nodes = map[int]uint64{
		1: 20,
		2: 400,
		3: 8_902,
		4: 197_281,
		5: 4_865_609,
	}

	p := position.New()
	for depth := 1; depth <= 5; depth++ {
		r := Run(p, depth)
		assert.Equal(t, nodes[depth], r.Nodes, "depth %d", depth)
	}
}

func TestKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := position.NewFromFen(kiwipete)
	assert.NoError(t, err)

	r := Run(p, 3)
	assert.Equal(t, uint64(97_862), r.Nodes)
}

func TestPromotionsPosition(t *testing.T) {
	const promotions = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
	p, err := position.NewFromFen(promotions)
	assert.NoError(t, err)

	r := Run(p, 4)
	assert.Equal(t, uint64(182_838), r.Nodes)
}

func TestRootNodeOnly(t *testing.T) {
	p := position.New()
	r := Run(p, 0)
	assert.Equal(t, uint64(1), r.Nodes)
}
