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

	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

func TestSetupTimeControlSplitsRemainingTimeByMovesToGo(t *testing.T) {
	p := position.NewPosition()
	sl := &Limits{
		TimeControl: true,
		WhiteTime:   60 * time.Second,
		BlackTime:   60 * time.Second,
		WhiteInc:    2 * time.Second,
		BlackInc:    2 * time.Second,
		MovesToGo:   20,
	}
	timeLimit := engine.setupTimeControl(p, sl)
	assert.EqualValues(t, 4500, timeLimit.Milliseconds())
}

func TestStartRunsToCompletionAndReportsABestMove(t *testing.T) {
	p := position.NewPosition()
	limits := NewSearchLimits()
	limits.Depth = 3

	handle := Start(p, *limits, nil)
	require.Eventually(t, func() bool { return !IsSearching() }, 30*time.Second, time.Millisecond)
	handle.Stop()

	assert.False(t, IsSearching())
	assert.NotEqual(t, MoveNone, handle.BestMove())
	assert.NotEmpty(t, handle.PrincipalVariation())
}

func TestStartNotifiesObserverWithAFinalUpdate(t *testing.T) {
	p := position.NewPosition()
	limits := NewSearchLimits()
	limits.Depth = 2
	observer := make(chan Info, 64)

	handle := Start(p, *limits, observer)
	handle.Stop()

	var last Info
	for {
		select {
		case info := <-observer:
			last = info
			continue
		default:
		}
		break
	}
	assert.True(t, last.Final)
	assert.NotEqual(t, MoveNone, handle.BestMove())
}

func TestStopEndsAnInfiniteSearch(t *testing.T) {
	p := position.NewPosition()
	limits := NewSearchLimits()
	limits.Infinite = true

	done := make(chan struct{})
	go func() {
		handle := Start(p, *limits, nil)
		handle.Stop()
		close(done)
	}()

	require.Eventually(t, func() bool { return IsSearching() }, time.Second, time.Millisecond)
	Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("search did not stop")
	}
	assert.False(t, IsSearching())
}

func TestSetBookIsRejectedWhileSearching(t *testing.T) {
	p := position.NewPosition()
	limits := NewSearchLimits()
	limits.Infinite = true

	handle := Start(p, *limits, nil)
	defer handle.Stop()

	require.Eventually(t, func() bool { return IsSearching() }, time.Second, time.Millisecond)

	before := engine.book
	SetBook(stubBook{})
	assert.Equal(t, before, engine.book)
}

type stubBook struct{}

func (stubBook) Probe(p *position.Position) (Move, bool) { return MoveNone, false }
