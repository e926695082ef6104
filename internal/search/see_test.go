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
	"github.com/stretchr/testify/require"

	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

func TestSeeWinningCaptureOfUndefendedPiece(t *testing.T) {
	p, err := position.NewPositionFen("6k1/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	move := CreateMove(SqE4, SqD5, Normal)
	assert.EqualValues(t, 320, see(p, move))
}

func TestSeeLosingCaptureAgainstDefendedPiece(t *testing.T) {
	p, err := position.NewPositionFen("6k1/8/4p3/3p4/8/8/8/3Q3K w - - 0 1")
	require.NoError(t, err)

	move := CreateMove(SqD1, SqD5, Normal)
	assert.EqualValues(t, -800, see(p, move))
}

func TestSeeEnPassantIsAlwaysAPawnGain(t *testing.T) {
	p, err := position.NewPositionFen("6k1/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	move := CreateMove(SqE5, SqD6, EnPassant)
	assert.EqualValues(t, 100, see(p, move))
}
