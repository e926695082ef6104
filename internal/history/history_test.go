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

package history

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/lkaiser/corechess/internal/types"
)

func TestScoreZeroWhenUnsearched(t *testing.T) {
	h := NewHistory()
	assert.EqualValues(t, 0, h.Score(WhiteKnight, CreateMove(SqG1, SqF3, Normal)))
}

func TestGoodWeightsByDepthSquared(t *testing.T) {
	h := NewHistory()
	move := CreateMove(SqG1, SqF3, Normal)
	h.Searched(WhiteKnight, move)
	h.Good(WhiteKnight, move, 4)
	assert.EqualValues(t, 16, h.Score(WhiteKnight, move))

	h2 := NewHistory()
	h2.Searched(WhiteKnight, move)
	h2.Good(WhiteKnight, move, 2)
	assert.EqualValues(t, 4, h2.Score(WhiteKnight, move))
}

func TestSearchedWithoutCutoffLowersScore(t *testing.T) {
	h := NewHistory()
	move := CreateMove(SqG1, SqF3, Normal)
	h.Searched(WhiteKnight, move)
	h.Good(WhiteKnight, move, 4)
	before := h.Score(WhiteKnight, move)
	h.Searched(WhiteKnight, move)
	after := h.Score(WhiteKnight, move)
	assert.Less(t, after, before)
}

func TestAgeHalvesTables(t *testing.T) {
	h := NewHistory()
	move := CreateMove(SqG1, SqF3, Normal)
	h.Searched(WhiteKnight, move)
	h.Searched(WhiteKnight, move)
	h.Good(WhiteKnight, move, 4)
	scoreBefore := h.Score(WhiteKnight, move)
	h.Age()
	scoreAfter := h.Score(WhiteKnight, move)
	assert.Equal(t, scoreBefore, scoreAfter, "halving both tables leaves the ratio unchanged")
	assert.EqualValues(t, 8, h.historyCount[WhiteKnight][SqF3])
}

func TestCounterMoveRoundTrip(t *testing.T) {
	h := NewHistory()
	prev := CreateMove(SqE7, SqE5, Normal)
	reply := CreateMove(SqG1, SqF3, Normal)
	assert.Equal(t, MoveNone, h.CounterMove(prev))
	h.StoreCounterMove(prev, reply)
	assert.Equal(t, reply, h.CounterMove(prev))
}

func TestCounterMoveIgnoresMoveNone(t *testing.T) {
	h := NewHistory()
	h.StoreCounterMove(MoveNone, CreateMove(SqG1, SqF3, Normal))
	assert.Equal(t, MoveNone, h.CounterMove(MoveNone))
}

func TestClearResetsAllTables(t *testing.T) {
	h := NewHistory()
	move := CreateMove(SqG1, SqF3, Normal)
	h.Searched(WhiteKnight, move)
	h.Good(WhiteKnight, move, 4)
	h.StoreCounterMove(CreateMove(SqE7, SqE5, Normal), move)
	h.Clear()
	assert.EqualValues(t, 0, h.Score(WhiteKnight, move))
	assert.Equal(t, MoveNone, h.CounterMove(CreateMove(SqE7, SqE5, Normal)))
}

func TestConcurrentRowAccessDoesNotRace(t *testing.T) {
	h := NewHistory()
	move := CreateMove(SqG1, SqF3, Normal)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				h.Searched(WhiteKnight, move)
				h.Good(WhiteKnight, move, 3)
				h.Score(WhiteKnight, move)
			}
		}()
	}
	wg.Wait()
}
