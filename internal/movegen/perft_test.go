/*
 * corechess - a Go chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 corechess contributors
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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lkaiser/corechess/internal/position"
)

// Reference values from https://www.chessprogramming.org/Perft_Results.

// maxDepth6 is the canonical start-position perft depth (119,060,324 leaf
// nodes); -short drops to depth 5 since depth 6 takes long enough to matter
// in a fast test run.
func maxDepth6() int {
	if testing.Short() {
		return 5
	}
	return 6
}

func TestStandardPerft(t *testing.T) {
	maxDepth := maxDepth6()
	var perft Perft

	var results = [7][5]uint64{
		{1, 0, 0, 0, 0},
		{20, 0, 0, 0, 0},
		{400, 0, 0, 0, 0},
		{8_902, 34, 0, 12, 0},
		{197_281, 1_576, 0, 469, 8},
		{4_865_609, 82_719, 258, 27_351, 347},
		{119_060_324, 2_812_008, 5_248, 809_099, 10_828},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.Run(position.StartFen, depth, false)
		assert.Equal(t, results[depth][0], perft.Nodes, "depth %d nodes", depth)
		assert.Equal(t, results[depth][1], perft.CaptureCounter, "depth %d captures", depth)
		assert.Equal(t, results[depth][2], perft.EnpassantCounter, "depth %d ep", depth)
		assert.Equal(t, results[depth][3], perft.CheckCounter, "depth %d checks", depth)
		assert.Equal(t, results[depth][4], perft.CheckMateCounter, "depth %d mates", depth)
	}
}

func TestStandardPerftOnDemand(t *testing.T) {
	maxDepth := maxDepth6()
	var perft Perft

	var results = [7][5]uint64{
		{1, 0, 0, 0, 0},
		{20, 0, 0, 0, 0},
		{400, 0, 0, 0, 0},
		{8_902, 34, 0, 12, 0},
		{197_281, 1_576, 0, 469, 8},
		{4_865_609, 82_719, 258, 27_351, 347},
		{119_060_324, 2_812_008, 5_248, 809_099, 10_828},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.Run(position.StartFen, depth, true)
		assert.Equal(t, results[depth][0], perft.Nodes, "depth %d nodes", depth)
		assert.Equal(t, results[depth][1], perft.CaptureCounter, "depth %d captures", depth)
		assert.Equal(t, results[depth][2], perft.EnpassantCounter, "depth %d ep", depth)
		assert.Equal(t, results[depth][3], perft.CheckCounter, "depth %d checks", depth)
		assert.Equal(t, results[depth][4], perft.CheckMateCounter, "depth %d mates", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}
	var perft Perft
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - "

	var results = [6][7]uint64{
		{1, 0, 0, 0, 0, 0, 0},
		{48, 8, 0, 0, 0, 2, 0},
		{2_039, 351, 1, 3, 0, 91, 0},
		{97_862, 17_102, 45, 993, 1, 3_162, 0},
		{4_085_603, 757_163, 1_929, 25_523, 43, 128_013, 15_172},
		{193_690_690, 35_043_416, 73_365, 3_309_887, 30_171, 4_993_637, 8_392},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.Run(fen, depth, true)
		assert.Equal(t, results[depth][0], perft.Nodes, "depth %d nodes", depth)
		assert.Equal(t, results[depth][1], perft.CaptureCounter, "depth %d captures", depth)
		assert.Equal(t, results[depth][2], perft.EnpassantCounter, "depth %d ep", depth)
		assert.Equal(t, results[depth][3], perft.CheckCounter, "depth %d checks", depth)
		assert.Equal(t, results[depth][4], perft.CheckMateCounter, "depth %d mates", depth)
		assert.Equal(t, results[depth][5], perft.CastleCounter, "depth %d castles", depth)
		assert.Equal(t, results[depth][6], perft.PromotionCounter, "depth %d promotions", depth)
	}
}

// TestPos3Perft exercises "Position 3", chosen for its heavy en-passant and
// check traffic compared to the other canonical seeds.
func TestPos3Perft(t *testing.T) {
	maxDepth := 6
	if testing.Short() {
		maxDepth = 4
	}
	var perft Perft
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"

	var nodes = [7]uint64{1, 14, 191, 2_812, 43_238, 674_624, 11_030_083}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.Run(fen, depth, false)
		assert.Equal(t, nodes[depth], perft.Nodes, "depth %d nodes", depth)
	}
}

// TestPos4Perft exercises "Position 4", which stresses promotion and
// discovered-check generation from very few legal replies at the root.
func TestPos4Perft(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}
	var perft Perft
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -"

	var nodes = [6]uint64{1, 6, 264, 9_467, 422_333, 15_833_292}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.Run(fen, depth, false)
		assert.Equal(t, nodes[depth], perft.Nodes, "depth %d nodes", depth)
	}
}

func TestPos5Perft(t *testing.T) {
	maxDepth := 4
	var perft Perft
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -"

	var nodes = [5]uint64{1, 44, 1_486, 62_379, 2_103_487}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.Run(fen, depth, false)
		assert.Equal(t, nodes[depth], perft.Nodes, "depth %d nodes", depth)
	}
}
