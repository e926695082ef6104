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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupIsIdempotentAndKeepsDefaults(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	initialized = false
	Setup()
	assert.Equal(t, 64, Settings.Search.TTSizeMB)
	assert.True(t, Settings.Eval.UsePawnEval)

	Settings.Search.TTSizeMB = 128
	Setup()
	assert.Equal(t, 128, Settings.Search.TTSizeMB, "a second Setup call must not re-read or reset settings")
}

func TestStringListsBothSections(t *testing.T) {
	s := Settings.String()
	assert.Contains(t, s, "Search config:")
	assert.Contains(t, s, "Eval config:")
	assert.Contains(t, s, "TTSizeMB")
}
