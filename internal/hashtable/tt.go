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
	"unsafe"

	"github.com/lkaiser/corechess/internal/types"
	"github.com/lkaiser/corechess/internal/zobrist"
)

// TtEntrySize is the size in bytes of each TT slot (key + payload).
const TtEntrySize = int(unsafe.Sizeof(slot{}))

// payload bit layout: move(16) value(16) eval(16) depth(8) bound(2) generation(6)
const (
	ttMoveShift       = 0
	ttValueShift      = 16
	ttEvalShift       = 32
	ttDepthShift      = 48
	ttBoundShift      = 56
	ttGenerationShift = 58

	ttMoveMask  = uint64(0xFFFF)
	ttValueMask = uint64(0xFFFF)
	ttEvalMask  = uint64(0xFFFF)
	ttDepthMask = uint64(0xFF)
	ttBoundMask = uint64(0b11)
)

// TtEntry is a decoded view of one transposition table slot.
type TtEntry struct {
	Move       types.Move
	Value      types.Value
	Eval       types.Value
	Depth      int8
	Bound      types.Bound
	generation uint64
}

func packTt(e TtEntry, generation uint64) uint64 {
	return uint64(uint16(e.Move))<<ttMoveShift |
		uint64(uint16(e.Value))<<ttValueShift |
		uint64(uint16(e.Eval))<<ttEvalShift |
		uint64(uint8(e.Depth))<<ttDepthShift |
		uint64(e.Bound)<<ttBoundShift |
		(generation&generationMask)<<ttGenerationShift
}

func unpackTt(payload uint64) TtEntry {
	return TtEntry{
		Move:       types.Move(uint16(payload >> ttMoveShift & ttMoveMask)),
		Value:      types.Value(int16(uint16(payload >> ttValueShift & ttValueMask))),
		Eval:       types.Value(int16(uint16(payload >> ttEvalShift & ttEvalMask))),
		Depth:      int8(uint8(payload >> ttDepthShift & ttDepthMask)),
		Bound:      types.Bound(payload >> ttBoundShift & ttBoundMask),
		generation: payload >> ttGenerationShift & generationMask,
	}
}

// TT is the transposition table: the search's principal cache of
// previously evaluated positions, keyed by the position's full Zobrist key.
type TT struct{ t *rawTable }

// NewTT creates a transposition table sized to fit within sizeInMByte.
func NewTT(sizeInMByte int) *TT { return &TT{t: newRawTable("TT", sizeInMByte)} }

// Resize rebuilds the table at a new size, discarding all entries. Not
// safe to call while a search is using the table.
func (tt *TT) Resize(sizeInMByte int) { tt.t.resize(sizeInMByte) }

// Clear empties every slot. Not safe to call while a search is using the
// table.
func (tt *TT) Clear() { tt.t.clear() }

// MarkNewGeneration bumps the generation counter. Call once per search, so
// entries from a prior search are recognized as stale by Put's replacement
// rule even if they share the same depth.
func (tt *TT) MarkNewGeneration() { tt.t.markNewGeneration() }

// Len returns the number of occupied slots.
func (tt *TT) Len() uint64 { return tt.t.len() }

// Hashfull returns how full the table is in permille, as per the UCI "info"
// hashfull field.
func (tt *TT) Hashfull() int { return tt.t.loadFactor() }

// Probe looks up key, returning the stored entry and true on a hit. A torn
// read is reported as a miss; an entry from an earlier generation is still
// returned as a hit.
func (tt *TT) Probe(key zobrist.Key) (TtEntry, bool) {
	payload, ok := tt.t.probe(uint64(key))
	if !ok {
		return TtEntry{}, false
	}
	return unpackTt(payload), true
}

// Put stores an entry for key, replacing whatever is in its slot only when
// the new entry beats it: depth at least as high, and not worsening a
// bound away from EXACT; a stale-generation occupant always loses
// regardless of depth.
func (tt *TT) Put(key zobrist.Key, e TtEntry) {
	newPayload := packTt(e, tt.t.currentGeneration())
	tt.t.put(uint64(key), newPayload, func(oldPayload uint64) bool {
		old := unpackTt(oldPayload)
		if old.generation != tt.t.currentGeneration() {
			return true
		}
		return e.Depth >= old.Depth && (e.Bound == types.BoundExact || old.Bound != types.BoundExact)
	})
}
