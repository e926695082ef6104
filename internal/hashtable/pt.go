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

// payload bit layout: midValue(16) endValue(16) generation(6)
const (
	ptMidShift = 0
	ptEndShift = 16
	ptGenShift = 32

	ptValueMask = uint64(0xFFFF)
)

// PtEntry is a cached pawn-structure evaluation: midgame and endgame
// components, combined by the caller's own game-phase interpolation the
// same way piece-square values are.
type PtEntry struct {
	MidValue types.Value
	EndValue types.Value
}

func packPt(e PtEntry, generation uint64) uint64 {
	return uint64(uint16(e.MidValue))<<ptMidShift |
		uint64(uint16(e.EndValue))<<ptEndShift |
		(generation&generationMask)<<ptGenShift
}

func unpackPt(payload uint64) (PtEntry, uint64) {
	return PtEntry{
		MidValue: types.Value(int16(uint16(payload >> ptMidShift & ptValueMask))),
		EndValue: types.Value(int16(uint16(payload >> ptEndShift & ptValueMask))),
	}, payload >> ptGenShift & generationMask
}

// PT is the pawn-structure cache, keyed by Position.PawnKey - the
// incremental hash of only pawn and king placement, which changes far less
// often than the full Zobrist key and so gets much better reuse across a
// search tree.
type PT struct{ t *rawTable }

// NewPT creates a pawn-structure cache sized to fit within sizeInMByte.
func NewPT(sizeInMByte int) *PT { return &PT{t: newRawTable("PT", sizeInMByte)} }

// Resize rebuilds the table at a new size, discarding all entries.
func (pt *PT) Resize(sizeInMByte int) { pt.t.resize(sizeInMByte) }

// Clear empties every slot.
func (pt *PT) Clear() { pt.t.clear() }

// MarkNewGeneration bumps the generation counter.
func (pt *PT) MarkNewGeneration() { pt.t.markNewGeneration() }

// Len returns the number of occupied slots.
func (pt *PT) Len() uint64 { return pt.t.len() }

// Hashfull returns how full the table is in permille.
func (pt *PT) Hashfull() int { return pt.t.loadFactor() }

// Probe looks up pawnKey, returning the cached pawn-structure score and
// true on a hit.
func (pt *PT) Probe(pawnKey zobrist.Key) (PtEntry, bool) {
	payload, ok := pt.t.probe(uint64(pawnKey))
	if !ok {
		return PtEntry{}, false
	}
	entry, _ := unpackPt(payload)
	return entry, true
}

// Put stores an entry for pawnKey. Pawn structure has no bound concept (the
// evaluator always computes it exactly), so a newer generation is the only
// thing that lets a new entry win over an occupant with the same key slot
// collision; same-generation entries for the same pawnKey are always
// identical and never need replacing.
func (pt *PT) Put(pawnKey zobrist.Key, e PtEntry) {
	newPayload := packPt(e, pt.t.currentGeneration())
	pt.t.put(uint64(pawnKey), newPayload, func(oldPayload uint64) bool {
		_, oldGen := unpackPt(oldPayload)
		return oldGen != pt.t.currentGeneration()
	})
}
