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

package search

import (
	"math"

	"github.com/lkaiser/corechess/internal/config"
	. "github.com/lkaiser/corechess/internal/types"
)

// lmr is a lookup table for late move reductions, indexed by remaining
// depth and moves already searched at this node.
var lmr [64][64]int

// lmrReduction returns the depth reduction Late Move Reduction applies,
// given depth and the count of moves already searched in this node.
func lmrReduction(depth, movesSearched int) int {
	if depth >= len(lmr) {
		depth = len(lmr) - 1
	}
	if movesSearched >= len(lmr[0]) {
		movesSearched = len(lmr[0]) - 1
	}
	return lmr[depth][movesSearched]
}

// lmp is a lookup table for the move-count threshold Late Move Pruning
// stops searching quiet moves at, indexed by remaining depth.
var lmp [64]int

// lmpMovesSearched returns the move-count threshold for depth.
func lmpMovesSearched(depth int) int {
	if depth >= len(lmp) {
		depth = len(lmp) - 1
	}
	if depth < 0 {
		depth = 0
	}
	return lmp[depth]
}

// rfpMargin and futilityMargin scale the configured base margin linearly
// with remaining depth, capped at the configured max depth for each
// technique; beyond that depth the pruning is not attempted at all (see
// alphabeta.go).
var rfpMargin [64]Value
var futilityMargin [64]Value

// aspirationSteps widens the aspiration window by successive multiples of
// the configured base window, the last step always being the full window.
var aspirationSteps []Value

func init() {
	for depth := 0; depth < len(lmr); depth++ {
		for moves := 0; moves < len(lmr[depth]); moves++ {
			switch {
			case depth <= 3, moves <= 3:
				lmr[depth][moves] = 1
			default:
				lmr[depth][moves] = int(math.Round(float64(depth)*0.7*(float64(moves)*0.005) + 1.0))
			}
		}
	}

	for depth := 1; depth < len(lmp); depth++ {
		lmp[depth] = 6 + int(math.Pow(float64(depth)+0.5, 1.3))
	}

	base := Value(config.Settings.Search.RFPMargin)
	for depth := 0; depth < len(rfpMargin); depth++ {
		rfpMargin[depth] = base * Value(depth)
	}

	base = Value(config.Settings.Search.FutilityMargin)
	for depth := 0; depth < len(futilityMargin); depth++ {
		futilityMargin[depth] = base * Value(depth)
	}

	window := Value(config.Settings.Search.AspirationWindow)
	if window <= 0 {
		window = 25
	}
	aspirationSteps = []Value{window, window * 4, ValueMax}
}
