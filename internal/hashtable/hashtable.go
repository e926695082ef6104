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

// Package hashtable implements the fixed-capacity, concurrently accessible
// hash tables shared by search workers: the transposition table (TT),
// evaluation cache (ET) and pawn-structure cache (PT). All three are thin,
// differently-packed views over one lock-free raw table: two independent
// uint64 atomics per slot, a lock word and a payload, written and read
// through the Hyatt XOR trick (as in Crafty and other lock-free engine hash
// tables) rather than a real key - there is no portable 128-bit
// compare-and-swap in sync/atomic to do a single-step 128-bit write. The
// lock word always holds key XOR payload, never the bare key; a lookup
// reconstructs the key as storedLock XOR loadedPayload and only accepts the
// slot if that reconstruction equals the key being searched for. A reader
// racing a writer sees some interleaving of old and new lock/payload words,
// and the reconstructed key from a mismatched pair will not equal the real
// key except by the same astronomically unlikely collision that lets two
// different positions share a Zobrist key - so a torn read is rejected
// outright rather than returned as a hit with a stale payload.
package hashtable

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	corelog "github.com/lkaiser/corechess/internal/logging"
	"github.com/lkaiser/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB is the largest table size a single instance will allocate.
const MaxSizeInMB = 65_536

// generationBits is the width of the generation field packed into every
// entry's payload; replacement rules only ever compare it against the
// table's current generation, so it only needs to distinguish "this" from
// "stale", wrapping is harmless.
const generationBits = 6
const generationMask = uint64(1<<generationBits) - 1

// slot.lock never holds a bare key; it holds key XOR payload, so that
// reconstructing the key on read doubles as the torn-read check.
type slot struct {
	lock    uint64
	payload uint64
}

// rawTable is the lock-free, fixed-capacity backing store shared by TT, ET
// and PT. It knows nothing about what a payload means - only how to find,
// read and write a slot for a key.
type rawTable struct {
	log        *logging.Logger
	name       string
	data       []slot
	mask       uint64
	generation uint32
	entries    uint64
}

func newRawTable(name string, sizeInMByte int) *rawTable {
	t := &rawTable{log: corelog.GetLog("hashtable"), name: name}
	t.resize(sizeInMByte)
	return t
}

func (t *rawTable) resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("%s: requested size %d MB reduced to max of %d MB", t.name, sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	sizeInByte := uint64(sizeInMByte) * types.MB
	entrySize := uint64(unsafe.Sizeof(slot{}))
	numEntries := uint64(0)
	if sizeInByte >= entrySize {
		numEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/entrySize))))
	}
	t.mask = numEntries - 1
	t.data = make([]slot, numEntries)
	t.entries = 0
	t.log.Info(out.Sprintf("%s: resized to %d MByte, capacity %d entries (%d Byte each)",
		t.name, (numEntries*entrySize)/types.MB, numEntries, entrySize))
}

func (t *rawTable) clear() {
	t.data = make([]slot, len(t.data))
	t.entries = 0
}

// hash1 and hash2 are the two probe addresses for a key, derived from
// disjoint halves of the 64-bit key so a collision on one almost never
// collides on the other too.
func (t *rawTable) hash1(key uint64) uint64 { return key & t.mask }
func (t *rawTable) hash2(key uint64) uint64 { return (key >> 32) & t.mask }

// load reads the slot at index and reconstructs its key via the XOR trick:
// key = storedLock XOR loadedPayload. A concurrent writer partway through
// its own store leaves lock and payload from different generations, and
// XOR-ing a mismatched pair back together yields garbage that will not
// equal any real key the caller is looking for - the torn read is rejected
// by the caller's own key comparison, not by anything load does.
func (t *rawTable) load(index uint64) (key, payload uint64) {
	if len(t.data) == 0 {
		return 0, 0
	}
	s := &t.data[index]
	lock := atomic.LoadUint64(&s.lock)
	payload = atomic.LoadUint64(&s.payload)
	return lock ^ payload, payload
}

func (t *rawTable) store(index uint64, key, payload uint64) {
	s := &t.data[index]
	wasEmpty := atomic.LoadUint64(&s.lock) == 0 && atomic.LoadUint64(&s.payload) == 0
	atomic.StoreUint64(&s.payload, payload)
	atomic.StoreUint64(&s.lock, key^payload)
	if wasEmpty {
		t.entries++
	}
}

// markNewGeneration bumps the table-wide generation counter used by the
// per-kind replacement rules to detect stale entries left over from a
// previous search.
func (t *rawTable) markNewGeneration() {
	t.generation = (t.generation + 1) & uint32(generationMask)
}

func (t *rawTable) currentGeneration() uint64 { return uint64(t.generation) }

// loadFactor approximates how full the table is, in permille, for
// reporting to a UI the way the teacher's Hashfull does.
func (t *rawTable) loadFactor() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.entries) / uint64(len(t.data)))
}

func (t *rawTable) len() uint64 { return t.entries }

// probe looks up key at both its candidate slots, returning the matching
// payload if found. load already reconstructs each slot's key through the
// XOR trick, so a torn read and a genuine miss both fail the k == key
// check below and are indistinguishable to the caller - which is exactly
// what the concurrency model requires: the search layer additionally
// re-validates anything it gets back against the current position before
// trusting it.
func (t *rawTable) probe(key uint64) (payload uint64, ok bool) {
	if len(t.data) == 0 {
		return 0, false
	}
	if k, p := t.load(t.hash1(key)); k == key {
		return p, true
	}
	if k, p := t.load(t.hash2(key)); k == key {
		return p, true
	}
	return 0, false
}

// put writes (key, newPayload) into its first free candidate slot, or into
// whichever occupied slot the same key already lives in provided beats
// reports the new entry should replace what's there. If both slots are
// occupied by different keys, h2 is overwritten unconditionally - the
// two-hash addressing scheme's fallback rule.
func (t *rawTable) put(key uint64, newPayload uint64, beats func(oldPayload uint64) bool) {
	if len(t.data) == 0 {
		return
	}
	i1 := t.hash1(key)
	if k1, p1 := t.load(i1); k1 == 0 {
		t.store(i1, key, newPayload)
		return
	} else if k1 == key {
		if beats(p1) {
			t.store(i1, key, newPayload)
		}
		return
	}
	i2 := t.hash2(key)
	if k2, p2 := t.load(i2); k2 == 0 {
		t.store(i2, key, newPayload)
		return
	} else if k2 == key {
		if beats(p2) {
			t.store(i2, key, newPayload)
		}
		return
	}
	t.store(i2, key, newPayload)
}
