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

package util

import "sync/atomic"

// Bool is a data race free bool backed by a uint32, used as the search
// cancellation flag shared between the search goroutine and its caller.
type Bool struct {
	v uint32
}

// NewBool returns a Bool initialized to the given value.
func NewBool(v bool) *Bool {
	b := &Bool{}
	b.Store(v)
	return b
}

// Load reads the current value.
func (b *Bool) Load() bool {
	return atomic.LoadUint32(&b.v) == 1
}

// Store sets the value unconditionally.
func (b *Bool) Store(v bool) {
	if v {
		atomic.StoreUint32(&b.v, 1)
	} else {
		atomic.StoreUint32(&b.v, 0)
	}
}

// Swap sets the value and returns the previous one.
func (b *Bool) Swap(v bool) bool {
	var n uint32
	if v {
		n = 1
	}
	return atomic.SwapUint32(&b.v, n) == 1
}

// CAS sets the value to new if it currently equals old, reporting whether the
// swap happened.
func (b *Bool) CAS(old, new bool) bool {
	var o, n uint32
	if old {
		o = 1
	}
	if new {
		n = 1
	}
	return atomic.CompareAndSwapUint32(&b.v, o, n)
}

// Toggle flips the value and returns the value it held before the flip.
func (b *Bool) Toggle() bool {
	for {
		old := b.Load()
		if b.CAS(old, !old) {
			return old
		}
	}
}
