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

	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

// Result is the final outcome of one Start call.
type Result struct {
	BestMove    Move
	BestValue   Value
	PonderMove  Move
	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int
	BookMove    bool
	Pv          []Move
}

func (r Result) String() string {
	return out.Sprintf("best move: %s ponder: %s value: %s depth: %d/%d time: %s book: %t",
		r.BestMove.StringUci(), r.PonderMove.StringUci(), r.BestValue.String(),
		r.SearchDepth, r.ExtraDepth, r.SearchTime, r.BookMove)
}

// ScoreType describes how Info.Score relates to the true value of the
// position: exact, or a bound produced by an aspiration-window fail.
type ScoreType = Bound

// Info is one progress update pushed to a search's observer channel.
type Info struct {
	Depth     int
	Score     Value
	ScoreType ScoreType
	Nodes     uint64
	Elapsed   time.Duration
	PV        []Move
	Final     bool
}

// SearchHandle controls and reads the single search a Start call launched.
type SearchHandle interface {
	// Stop signals the search to stop and blocks until it has.
	Stop()
	// BestMove returns the best move of the most recently finished search,
	// or MoveNone if no search has finished yet.
	BestMove() Move
	// PrincipalVariation returns the best line of the most recently
	// finished search.
	PrincipalVariation() []Move
}

// BookProbe looks up an opening-book move for a position. Search consults
// it, when set and the search runs under time control, before running
// iterative deepening at all.
type BookProbe interface {
	Probe(p *position.Position) (Move, bool)
}

// Outcome is a tablebase probe's verdict: win, draw or loss from the
// probed side's perspective.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeWin
	OutcomeDraw
	OutcomeLoss
)

// TablebaseProbe looks up the win/draw/loss outcome for a position. Search
// stores the probe installed by SetTablebase, but no search stage calls it.
type TablebaseProbe interface {
	ProbeWDL(p *position.Position) (Outcome, bool)
}
