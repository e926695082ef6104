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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkaiser/corechess/internal/hashtable"
	"github.com/lkaiser/corechess/internal/movegen"
	"github.com/lkaiser/corechess/internal/moveslice"
	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

// newTestSearch builds a bare Search with just enough state (TT, per-ply
// move generators and PV slices) for direct search/qsearch calls, bypassing
// Start's goroutine and limits machinery.
func newTestSearch() *Search {
	s := newSearch()
	s.tt = hashtable.NewTT(4)
	s.searchLimits = NewSearchLimits()
	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		s.mg = append(s.mg, movegen.NewMoveGen())
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}
	return s
}

func TestSavePVPrependsMoveAndKeepsTail(t *testing.T) {
	src := moveslice.NewMoveSlice(10)
	dest := moveslice.NewMoveSlice(10)

	src.PushBack(Move(1234))
	src.PushBack(Move(2345))
	src.PushBack(Move(3456))
	src.PushBack(Move(4567))

	savePV(Move(9999), src, dest)

	assert.EqualValues(t, 5, dest.Len())
	assert.EqualValues(t, 9999, dest.At(0))
	assert.EqualValues(t, 4567, dest.At(4))
}

func TestSearchFindsForcedMate(t *testing.T) {
	p, err := position.NewPositionFen("8/8/8/8/8/3K4/R7/5k2 w - -")
	require.NoError(t, err)

	limits := NewSearchLimits()
	limits.Depth = 8

	handle := Start(p, *limits, nil)
	require.Eventually(t, func() bool { return !IsSearching() }, 30*time.Second, time.Millisecond)
	handle.Stop()

	assert.True(t, engine.lastResult.BestValue.IsCheckMateValue())
	assert.True(t, engine.lastResult.BestValue > 0)
	assert.NotEqual(t, MoveNone, handle.BestMove())
}

func TestQsearchResolvesHangingCapture(t *testing.T) {
	p, err := position.NewPositionFen("6k1/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()

	value := s.qsearch(p, 0, ValueMin, ValueMax, true)
	assert.True(t, value > 0)
}
