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

// Package assert gives internal invariants a single call site so they read
// as assertions rather than ad-hoc panics, without any runtime cost in a
// release build.
package assert

import "fmt"

// DEBUG gates assertion checks. The Go compiler eliminates the guarded
// Assert call entirely when this is false, so callers still wrap every call
// in "if assert.DEBUG { ... }" to avoid evaluating the message arguments.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if DEBUG && !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
