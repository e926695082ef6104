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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lkaiser/corechess/internal/config"
	. "github.com/lkaiser/corechess/internal/types"
)

func TestLmrReductionClampsIndices(t *testing.T) {
	// out-of-range indices must clamp to the last table row/column rather
	// than panic.
	assert.NotPanics(t, func() { lmrReduction(1000, 1000) })
	assert.Equal(t, lmr[len(lmr)-1][len(lmr[0])-1], lmrReduction(1000, 1000))
}

func TestLmrReductionIsAtLeastOneForShallowOrEarlyMoves(t *testing.T) {
	assert.Equal(t, 1, lmrReduction(2, 10))
	assert.Equal(t, 1, lmrReduction(10, 1))
}

func TestLmpMovesSearchedClamps(t *testing.T) {
	assert.Equal(t, lmp[0], lmpMovesSearched(-5))
	assert.Equal(t, lmp[len(lmp)-1], lmpMovesSearched(1000))
}

func TestMarginTablesScaleWithConfiguredBase(t *testing.T) {
	base := Value(config.Settings.Search.RFPMargin)
	assert.Equal(t, base*3, rfpMargin[3])

	base = Value(config.Settings.Search.FutilityMargin)
	assert.Equal(t, base*2, futilityMargin[2])
}

func TestAspirationStepsEndsAtFullWindow(t *testing.T) {
	assert.Equal(t, ValueMax, aspirationSteps[len(aspirationSteps)-1])
	assert.True(t, aspirationSteps[0] > 0)
	assert.True(t, aspirationSteps[1] > aspirationSteps[0])
}
