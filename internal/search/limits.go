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

package search

import (
	"time"

	"github.com/lkaiser/corechess/internal/moveslice"
)

// movesLeftBase and movesLeftPhaseSpan describe the heuristic used to guess
// how many moves remain in the game when the GUI sends no moves-to-go: 15
// in the endgame, ramping up to 40 at the start of the game.
const (
	movesLeftBase      = 15
	movesLeftPhaseSpan = 25

	// timeSafetyMarginShort and timeSafetyMarginLong trim the computed
	// per-move time budget so the engine has room to unwind its call stack
	// and still answer before the GUI's own clock runs out.
	timeSafetyMarginShort = 0.8
	timeSafetyMarginLong  = 0.9
	shortTimeThreshold    = 100 * time.Millisecond

	moveTimeSafetyMargin = 20 * time.Millisecond
)

// Limits controls how a single search is bounded: no limit at all
// (Infinite/Ponder), a fixed depth or node budget, or one of the two time
// control modes (fixed time per move, or clock-plus-increment).
type Limits struct {
	Infinite bool
	Ponder   bool
	Mate     int

	Depth int
	Nodes uint64
	Moves moveslice.MoveSlice

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewSearchLimits returns an empty Limits; every field defaults to "no
// limit", so a caller wanting a bounded search must set at least one field.
func NewSearchLimits() *Limits {
	return &Limits{}
}
