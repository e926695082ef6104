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

// Package moveslice provides a slice-of-Move data structure with the
// operations the move generator and search need: append/pop from either
// end, in-place filtering, and a value-ordered stable sort.
package moveslice

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/lkaiser/corechess/internal/types"
)

// MoveSlice is a []Move with search/movegen-oriented helpers attached.
type MoveSlice []Move

// NewMoveSlice creates an empty move slice with the given capacity
// preallocated.
func NewMoveSlice(capacity int) *MoveSlice {
	moves := make([]Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int { return len(*ms) }

// Cap returns the slice's capacity.
func (ms *MoveSlice) Cap() int { return cap(*ms) }

// PushBack appends m to the end of the slice.
func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

// PopBack removes and returns the last move. Panics if empty.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	m := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return m
}

// PushFront prepends m, shifting every other element one slot.
func (ms *MoveSlice) PushFront(m Move) {
	*ms = append(*ms, MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// PopFront removes and returns the first move. Panics if empty.
func (ms *MoveSlice) PopFront() Move {
	if len(*ms) == 0 {
		panic("moveslice: PopFront on empty slice")
	}
	m := (*ms)[0]
	*ms = (*ms)[1:]
	return m
}

// Front returns the first move. Panics if empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) == 0 {
		panic("moveslice: Front on empty slice")
	}
	return (*ms)[0]
}

// Back returns the last move. Panics if empty.
func (ms *MoveSlice) Back() Move {
	if len(*ms) == 0 {
		panic("moveslice: Back on empty slice")
	}
	return (*ms)[len(*ms)-1]
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Set overwrites the move at index i. Panics if out of bounds.
func (ms *MoveSlice) Set(i int, move Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	(*ms)[i] = move
}

// Filter keeps only the elements for which f returns true, reusing the
// underlying array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, x := range *ms {
		if f(i) {
			b = append(b, x)
		}
	}
	*ms = b
}

// FilterCopy appends to dest every element for which f returns true,
// leaving ms unchanged.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, f func(index int) bool) {
	for i, x := range *ms {
		if f(i) {
			*dest = append(*dest, x)
		}
	}
}

// Clone returns an independent deep copy.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether ms and other hold the same moves in the same order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// ForEach calls f once per index, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// ForEachParallel calls f once per index from its own goroutine and waits
// for all to finish. f is responsible for any synchronization it needs.
func (ms *MoveSlice) ForEachParallel(f func(index int)) {
	var wg sync.WaitGroup
	wg.Add(len(*ms))
	for index := range *ms {
		go func(i int) {
			defer wg.Done()
			f(i)
		}(index)
	}
	wg.Wait()
}

// Clear empties the slice while retaining its capacity.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// Sort stably orders moves from highest encoded sort value to lowest, using
// insertion sort since move lists are small and usually close to sorted
// already (killers/PV moves are re-valued in place rather than re-sorted
// from scratch).
func (ms *MoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && (tmp&0xFFFF0000) > ((*ms)[j-1]&0xFFFF0000) {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci renders the slice as a space-separated list of UCI move strings.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
