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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/lkaiser/corechess/internal/types"
)

func TestPushBackPopBackOrder(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.PushBack(CreateMove(SqD2, SqD4, Normal))

	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, CreateMove(SqD2, SqD4, Normal), ms.PopBack())
	assert.Equal(t, 1, ms.Len())
}

func TestPushFrontPopFront(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.PushFront(CreateMove(SqD2, SqD4, Normal))

	require.Equal(t, 2, ms.Len())
	assert.Equal(t, CreateMove(SqD2, SqD4, Normal), ms.Front())
	assert.Equal(t, CreateMove(SqD2, SqD4, Normal), ms.PopFront())
	assert.Equal(t, CreateMove(SqE2, SqE4, Normal), ms.Front())
}

func TestAtAndSet(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.Set(0, CreateMove(SqG1, SqF3, Normal))
	assert.Equal(t, CreateMove(SqG1, SqF3, Normal), ms.At(0))
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	ms := NewMoveSlice(4)
	assert.Panics(t, func() { ms.At(0) })
}

func TestFilterKeepsOnlyMatchingIndices(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.PushBack(CreateMove(SqD2, SqD4, Normal))
	ms.PushBack(CreateMove(SqG1, SqF3, Normal))

	ms.Filter(func(i int) bool { return i != 1 })

	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, CreateMove(SqE2, SqE4, Normal), ms.At(0))
	assert.Equal(t, CreateMove(SqG1, SqF3, Normal), ms.At(1))
}

func TestFilterCopyLeavesSourceUnchanged(t *testing.T) {
	src := NewMoveSlice(4)
	src.PushBack(CreateMove(SqE2, SqE4, Normal))
	src.PushBack(CreateMove(SqD2, SqD4, Normal))
	dest := NewMoveSlice(4)

	src.FilterCopy(dest, func(i int) bool { return i == 0 })

	assert.Equal(t, 2, src.Len())
	assert.Equal(t, 1, dest.Len())
	assert.Equal(t, CreateMove(SqE2, SqE4, Normal), dest.At(0))
}

func TestCloneIsIndependent(t *testing.T) {
	src := NewMoveSlice(4)
	src.PushBack(CreateMove(SqE2, SqE4, Normal))

	clone := src.Clone()
	clone.PushBack(CreateMove(SqD2, SqD4, Normal))

	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestEquals(t *testing.T) {
	a := NewMoveSlice(4)
	a.PushBack(CreateMove(SqE2, SqE4, Normal))
	b := NewMoveSlice(4)
	b.PushBack(CreateMove(SqE2, SqE4, Normal))
	c := NewMoveSlice(4)
	c.PushBack(CreateMove(SqD2, SqD4, Normal))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestClear(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}

func TestSortOrdersByDescendingValue(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMoveValue(SqE2, SqE4, Normal, 100))
	ms.PushBack(CreateMoveValue(SqD2, SqD4, Normal, 900))
	ms.PushBack(CreateMoveValue(SqG1, SqF3, Normal, 320))

	ms.Sort()

	assert.Equal(t, Value(900), ms.At(0).ValueOf())
	assert.Equal(t, Value(320), ms.At(1).ValueOf())
	assert.Equal(t, Value(100), ms.At(2).ValueOf())
}

func TestStringUci(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.PushBack(CreateMove(SqE7, SqE5, Normal))

	assert.Equal(t, "e2e4 e7e5", ms.StringUci())
}
