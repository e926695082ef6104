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

package hashtable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lkaiser/corechess/internal/types"
	"github.com/lkaiser/corechess/internal/zobrist"
)

func TestTtEntrySize(t *testing.T) {
	assert.EqualValues(t, 16, TtEntrySize)
}

func TestTtPutProbeRoundTrip(t *testing.T) {
	tt := NewTT(1)
	key := zobrist.Key(0x1234_5678_9abc_def0)
	entry := TtEntry{Move: types.CreateMove(types.SqE2, types.SqE4, types.Normal), Value: 42, Eval: 17, Depth: 6, Bound: types.BoundExact}
	tt.Put(key, entry)

	got, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, entry.Move, got.Move)
	assert.Equal(t, entry.Value, got.Value)
	assert.Equal(t, entry.Eval, got.Eval)
	assert.Equal(t, entry.Depth, got.Depth)
	assert.Equal(t, entry.Bound, got.Bound)
}

func TestTtProbeMiss(t *testing.T) {
	tt := NewTT(1)
	_, ok := tt.Probe(zobrist.Key(0xdead_beef))
	assert.False(t, ok)
}

func TestTtReplacementPrefersHigherDepth(t *testing.T) {
	tt := NewTT(1)
	key := zobrist.Key(0xaa)
	tt.Put(key, TtEntry{Depth: 4, Bound: types.BoundLower})
	tt.Put(key, TtEntry{Depth: 2, Bound: types.BoundExact})
	got, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.EqualValues(t, 4, got.Depth, "a shallower entry must not overwrite a deeper one at equal generation")

	tt.Put(key, TtEntry{Depth: 4, Bound: types.BoundExact})
	got, ok = tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, types.BoundExact, got.Bound, "an exact entry at equal depth replaces a bound")
}

func TestTtStaleGenerationAlwaysLoses(t *testing.T) {
	tt := NewTT(1)
	key := zobrist.Key(0xbb)
	tt.Put(key, TtEntry{Depth: 10, Bound: types.BoundExact})
	tt.MarkNewGeneration()
	tt.Put(key, TtEntry{Depth: 1, Bound: types.BoundUpper})
	got, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.EqualValues(t, 1, got.Depth, "a new-generation entry replaces a stale one even at lower depth")
}

func TestTtClear(t *testing.T) {
	tt := NewTT(1)
	key := zobrist.Key(0xcc)
	tt.Put(key, TtEntry{Depth: 1})
	assert.EqualValues(t, 1, tt.Len())
	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	_, ok := tt.Probe(key)
	assert.False(t, ok)
}

func TestTtHashfull(t *testing.T) {
	tt := NewTT(1)
	assert.Equal(t, 0, tt.Hashfull())
	for i := 0; i < 100; i++ {
		tt.Put(zobrist.Key(i+1), TtEntry{Depth: int8(i % 8)})
	}
	assert.Greater(t, tt.Hashfull(), 0)
}

// TestTtConcurrentAccessDoesNotPanic also checks that a hit is never a torn
// read: every worker writes a depth that encodes its own key, so a payload
// returned for that key must carry back that same depth or the probe must
// report a miss - never a hit with a mismatched payload.
func TestTtConcurrentAccessDoesNotPanic(t *testing.T) {
	tt := NewTT(4)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				key := zobrist.Key(worker*100_000 + i)
				wantDepth := int8(i % 32)
				tt.Put(key, TtEntry{Depth: wantDepth, Bound: types.BoundExact})
				if got, ok := tt.Probe(key); ok {
					assert.Equal(t, wantDepth, got.Depth, "a hit must never carry a payload from a different entry")
					assert.Equal(t, types.BoundExact, got.Bound)
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestEtNewerGenerationWins(t *testing.T) {
	et := NewET(1)
	key := zobrist.Key(0x01)
	et.Put(key, EtEntry{Value: 5, Bound: types.BoundUpper})
	et.MarkNewGeneration()
	et.Put(key, EtEntry{Value: -5, Bound: types.BoundLower})
	got, ok := et.Probe(key)
	assert.True(t, ok)
	assert.EqualValues(t, -5, got.Value)
}

func TestEtExactDisplacesBoundAtSameGeneration(t *testing.T) {
	et := NewET(1)
	key := zobrist.Key(0x02)
	et.Put(key, EtEntry{Value: 1, Bound: types.BoundUpper})
	et.Put(key, EtEntry{Value: 2, Bound: types.BoundLower})
	got, _ := et.Probe(key)
	assert.EqualValues(t, 1, got.Value, "a bound does not displace an existing bound of equal standing")

	et.Put(key, EtEntry{Value: 3, Bound: types.BoundExact})
	got, _ = et.Probe(key)
	assert.EqualValues(t, 3, got.Value)
}

func TestPtPutProbeRoundTrip(t *testing.T) {
	pt := NewPT(1)
	key := zobrist.Key(0x03)
	pt.Put(key, PtEntry{MidValue: 12, EndValue: -8})
	got, ok := pt.Probe(key)
	assert.True(t, ok)
	assert.EqualValues(t, 12, got.MidValue)
	assert.EqualValues(t, -8, got.EndValue)
}

func TestResizeClampsToMax(t *testing.T) {
	tt := NewTT(MaxSizeInMB + 1)
	sizeInMB := uint64(len(tt.t.data)) * uint64(TtEntrySize) / types.MB
	assert.LessOrEqual(t, sizeInMB, uint64(MaxSizeInMB))
}
