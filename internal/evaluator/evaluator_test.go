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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

func TestStartPositionIsBalanced(t *testing.T) {
	p := position.NewPosition()
	e := NewDefault(0)
	v := e.Evaluate(p)
	assert.InDelta(t, 0, int(v), 30, "the opening position should score close to equal plus a small tempo bonus")
}

func TestMaterialAdvantageIsPositive(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkb1r/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)
	e := NewDefault(0)
	v := e.Evaluate(p)
	assert.Greater(t, int(v), 0, "white is up a knight and to move")
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.NewPositionFen("8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	assert.NoError(t, err)
	e := NewDefault(0)
	assert.Equal(t, ValueDraw, e.Evaluate(p))
}

func TestDoubledPawnsAreMalused(t *testing.T) {
	clean, err := position.NewPositionFen("4k3/8/8/8/8/3P4/3P4/4K3 w - - 0 1")
	assert.NoError(t, err)
	spread, err := position.NewPositionFen("4k3/8/8/8/8/4P3/3P4/4K3 w - - 0 1")
	assert.NoError(t, err)

	e := NewDefault(0)
	doubled := e.Evaluate(clean)
	e2 := NewDefault(0)
	notDoubled := e2.Evaluate(spread)
	assert.Less(t, int(doubled), int(notDoubled))
}

func TestPawnCacheRoundTrip(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/3P4/3P4/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewDefault(1)
	first := e.Evaluate(p)
	second := e.Evaluate(p)
	assert.Equal(t, first, second, "a cache hit must reproduce the freshly computed score")
}

func TestScorePawnsOfColorPassedBeatsBlocked(t *testing.T) {
	passed := scorePawnsOfColor(SqD3.Bb(), BbZero, White)
	blocked := scorePawnsOfColor(SqD3.Bb(), SqD7.Bb(), White)
	assert.Greater(t, passed.MidGameValue, blocked.MidGameValue)
	assert.Greater(t, passed.EndGameValue, blocked.EndGameValue)
}

func TestScorePawnsOfColorIsolatedPawnIsMalused(t *testing.T) {
	isolated := scorePawnsOfColor(SqD3.Bb(), BbZero, White)
	supported := scorePawnsOfColor(SqD3.Bb()|SqC3.Bb(), BbZero, White)
	assert.Less(t, isolated.MidGameValue, supported.MidGameValue)
}

func TestScorePawnsOfColorDoubledPawnIsMalused(t *testing.T) {
	single := scorePawnsOfColor(SqD3.Bb(), BbZero, White)
	doubled := scorePawnsOfColor(SqD3.Bb()|SqD4.Bb(), BbZero, White)
	assert.Less(t, doubled.MidGameValue, 2*single.MidGameValue)
}
