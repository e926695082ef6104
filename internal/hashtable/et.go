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
	"github.com/lkaiser/corechess/internal/types"
	"github.com/lkaiser/corechess/internal/zobrist"
)

// payload bit layout: value(16) bound(2) generation(6)
const (
	etValueShift = 0
	etBoundShift = 16
	etGenShift   = 18

	etValueMask = uint64(0xFFFF)
	etBoundMask = uint64(0b11)
)

// EtEntry is a cached static evaluation for a position.
type EtEntry struct {
	Value types.Value
	Bound types.Bound
}

func packEt(e EtEntry, generation uint64) uint64 {
	return uint64(uint16(e.Value))<<etValueShift |
		uint64(e.Bound)<<etBoundShift |
		(generation&generationMask)<<etGenShift
}

func unpackEt(payload uint64) (EtEntry, uint64) {
	return EtEntry{
		Value: types.Value(int16(uint16(payload >> etValueShift & etValueMask))),
		Bound: types.Bound(payload >> etBoundShift & etBoundMask),
	}, payload >> etGenShift & generationMask
}

// ET is the evaluator's cache, keyed by the position's full Zobrist key:
// a static evaluation is typically more expensive than a TT probe and
// changes only when the position does.
type ET struct{ t *rawTable }

// NewET creates an evaluation cache sized to fit within sizeInMByte.
func NewET(sizeInMByte int) *ET { return &ET{t: newRawTable("ET", sizeInMByte)} }

// Resize rebuilds the table at a new size, discarding all entries.
func (et *ET) Resize(sizeInMByte int) { et.t.resize(sizeInMByte) }

// Clear empties every slot.
func (et *ET) Clear() { et.t.clear() }

// MarkNewGeneration bumps the generation counter.
func (et *ET) MarkNewGeneration() { et.t.markNewGeneration() }

// Len returns the number of occupied slots.
func (et *ET) Len() uint64 { return et.t.len() }

// Hashfull returns how full the table is in permille.
func (et *ET) Hashfull() int { return et.t.loadFactor() }

// Probe looks up key, returning the cached evaluation and true on a hit.
func (et *ET) Probe(key zobrist.Key) (EtEntry, bool) {
	payload, ok := et.t.probe(uint64(key))
	if !ok {
		return EtEntry{}, false
	}
	entry, _ := unpackEt(payload)
	return entry, true
}

// Put stores an entry for key. A newer-generation entry always wins; within
// the same generation, an exact value displaces a bound.
func (et *ET) Put(key zobrist.Key, e EtEntry) {
	newPayload := packEt(e, et.t.currentGeneration())
	et.t.put(uint64(key), newPayload, func(oldPayload uint64) bool {
		old, oldGen := unpackEt(oldPayload)
		if oldGen != et.t.currentGeneration() {
			return true
		}
		return e.Bound == types.BoundExact && old.Bound != types.BoundExact
	})
}
