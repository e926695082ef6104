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

// Package history provides the tables search updates as it goes: a
// history/butterfly counter pair and a counter-move table. Killer moves are
// kept per ply by internal/movegen's Movegen, not here. Search writes these
// tables on cutoffs and searched moves but does not read them back to order
// moves.
package history

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/lkaiser/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// History is the history-heuristic move-ordering state shared by a search
// (or, per the preferred per-thread scheme, owned by one search worker and
// never shared). Tables are indexed [piece][to-square] as specified, rather
// than the coarser [color][from][to] some engines use, so promotions and
// different piece types landing on the same square never share a slot.
type History struct {
	rowLocks     [PieceLength]sync.Mutex
	historyCount [PieceLength][SqLength]int64
	butterfly    [PieceLength][SqLength]int64
	counterMoves [SqLength][SqLength]Move
}

// NewHistory creates an empty history table.
func NewHistory() *History { return &History{} }

// Good records that move produced a beta cutoff at the given depth,
// crediting the history table proportionally to depth squared so deeper
// cutoffs count for much more than shallow ones. Writes to a piece's row
// and Score's reads of it are serialized by that row's lock.
func (h *History) Good(piece Piece, move Move, depth int) {
	to := move.To()
	h.rowLocks[piece].Lock()
	h.historyCount[piece][to] += int64(depth) * int64(depth)
	h.rowLocks[piece].Unlock()
}

// Searched records that move was searched at all (cutoff or not), crediting
// the butterfly table. Called once per move actually searched, per §4.7's
// "incremented on every searched move".
func (h *History) Searched(piece Piece, move Move) {
	to := move.To()
	h.rowLocks[piece].Lock()
	h.butterfly[piece][to]++
	h.rowLocks[piece].Unlock()
}

// Score returns the move-ordering score for piece moving to move's
// destination: history[p][t] / butterfly[p][t], zero if the move has never
// been searched.
func (h *History) Score(piece Piece, move Move) int64 {
	to := move.To()
	h.rowLocks[piece].Lock()
	defer h.rowLocks[piece].Unlock()
	b := h.butterfly[piece][to]
	if b == 0 {
		return 0
	}
	return h.historyCount[piece][to] / b
}

// Age halves both tables between root iterations, so old signal decays and
// the most recent iteration's cutoffs dominate move ordering.
func (h *History) Age() {
	for p := PieceNone; p < PieceLength; p++ {
		h.rowLocks[p].Lock()
		for sq := 0; sq < SqLength; sq++ {
			h.historyCount[p][sq] /= 2
			h.butterfly[p][sq] /= 2
		}
		h.rowLocks[p].Unlock()
	}
}

// StoreCounterMove records that move was played in response to the
// opponent's previousMove, for the counter-move ordering heuristic: a move
// that refuted a given opponent move before is worth trying early again
// when that same opponent move recurs.
func (h *History) StoreCounterMove(previousMove, move Move) {
	if previousMove == MoveNone {
		return
	}
	h.counterMoves[previousMove.From()][previousMove.To()] = move
}

// CounterMove returns the recorded counter to previousMove, or MoveNone if
// none has been stored.
func (h *History) CounterMove(previousMove Move) Move {
	if previousMove == MoveNone {
		return MoveNone
	}
	return h.counterMoves[previousMove.From()][previousMove.To()]
}

// Clear resets every table to zero.
func (h *History) Clear() {
	for p := PieceNone; p < PieceLength; p++ {
		h.rowLocks[p].Lock()
		h.historyCount[p] = [SqLength]int64{}
		h.butterfly[p] = [SqLength]int64{}
		h.rowLocks[p].Unlock()
	}
	h.counterMoves = [SqLength][SqLength]Move{}
}

func (h *History) String() string {
	var sb strings.Builder
	for p := PieceNone; p < PieceLength; p++ {
		for sq := 0; sq < SqLength; sq++ {
			b := h.butterfly[p][sq]
			if b == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("piece=%s to=%s history=%d butterfly=%d score=%d\n",
				p.String(), Square(sq).String(), h.historyCount[p][sq], b, h.historyCount[p][sq]/b))
		}
	}
	return sb.String()
}
