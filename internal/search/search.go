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

// Package search implements iterative-deepening negamax alpha-beta search
// with principal variation search, quiescence search and the usual family
// of pruning and reduction techniques, on top of internal/position and
// internal/movegen. The public entry point is Start.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/lkaiser/corechess/internal/config"
	"github.com/lkaiser/corechess/internal/evaluator"
	"github.com/lkaiser/corechess/internal/hashtable"
	"github.com/lkaiser/corechess/internal/history"
	corelog "github.com/lkaiser/corechess/internal/logging"
	"github.com/lkaiser/corechess/internal/movegen"
	"github.com/lkaiser/corechess/internal/moveslice"
	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
	"github.com/lkaiser/corechess/internal/util"
)

var out = message.NewPrinter(language.German)

// Search holds all state for one engine instance. The zero value is not
// usable; construct with newSearch.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	book      BookProbe
	tablebase TablebaseProbe
	tt        *hashtable.TT
	eval      evaluator.Evaluator
	history   *history.History

	observer chan<- Info

	stopFlag        util.Bool
	startTime       time.Time
	currentPosition *position.Position
	searchLimits    *Limits
	timeLimit       time.Duration
	extraTime       time.Duration
	nodesVisited    uint64

	mg        []*movegen.Movegen
	pv        []*moveslice.MoveSlice
	rootMoves *moveslice.MoveSlice

	statistics Statistics
	lastResult *Result
}

// engine is the package-level singleton Start operates on. Book and
// tablebase collaborators, and hash sizing, are configured on it directly
// since Start's signature (fixed by callers across the package) carries
// only a position, limits and an observer channel.
var engine = newSearch()

func newSearch() *Search {
	return &Search{
		log:           corelog.GetLog("search"),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		eval:          evaluator.NewDefault(config.Settings.Search.PTSizeMB),
		history:       history.NewHistory(),
	}
}

// SetBook installs the opening book consulted before a time-controlled
// search starts. Pass
// nil to stop using a book. Ignored while a search is running.
func SetBook(b BookProbe) {
	if IsSearching() {
		engine.log.Warning("Can't change book while searching")
		return
	}
	engine.book = b
}

// SetTablebase installs a tablebase probe; the search itself does not call
// it. Pass nil to remove it. Ignored while a search is running.
func SetTablebase(t TablebaseProbe) {
	if IsSearching() {
		engine.log.Warning("Can't change tablebase while searching")
		return
	}
	engine.tablebase = t
}

// NewGame resets hash table and move-ordering history for a new game,
// stopping any search still running.
func NewGame() {
	Stop()
	if engine.tt != nil {
		engine.tt.Clear()
	}
	engine.history = history.NewHistory()
}

// ClearHash empties the transposition table. Ignored with a warning while
// searching.
func ClearHash() {
	if IsSearching() {
		engine.log.Warning("Can't clear hash while searching")
		return
	}
	if engine.tt != nil {
		engine.tt.Clear()
	}
}

// ResizeHash rebuilds the transposition table at sizeMB. Ignored with a
// warning while searching.
func ResizeHash(sizeMB int) {
	if IsSearching() {
		engine.log.Warning("Can't resize hash while searching")
		return
	}
	if engine.tt != nil {
		engine.tt.Resize(sizeMB)
	} else {
		engine.tt = hashtable.NewTT(sizeMB)
	}
}

// IsSearching reports whether a search is currently running.
func IsSearching() bool {
	if !engine.isRunning.TryAcquire(1) {
		return true
	}
	engine.isRunning.Release(1)
	return false
}

// Stop signals a running search to stop and blocks until it has. A no-op
// when nothing is searching.
func Stop() {
	engine.stopFlag.Store(true)
	_ = engine.isRunning.Acquire(context.Background(), 1)
	engine.isRunning.Release(1)
}

// handle implements SearchHandle for one Start call.
type handle struct {
	s *Search
}

func (h *handle) Stop() { Stop() }

func (h *handle) BestMove() Move {
	if h.s.lastResult == nil {
		return MoveNone
	}
	return h.s.lastResult.BestMove
}

func (h *handle) PrincipalVariation() []Move {
	if h.s.lastResult == nil {
		return nil
	}
	return h.s.lastResult.Pv
}

// Start launches a new search on a copy of p bounded by limits, pushing
// progress updates to observer until the search stops. observer may be nil,
// in which case updates are simply dropped; sends never block the search
// goroutine, so a slow or absent reader cannot stall it. Start blocks until
// the search goroutine has completed its initialization (TT/book/eval setup)
// and begun searching, then returns a handle to control and read it.
func Start(p *position.Position, limits Limits, observer chan<- Info) SearchHandle {
	startPos := p.Clone()

	_ = engine.initSemaphore.Acquire(context.Background(), 1)
	engine.currentPosition = startPos
	engine.searchLimits = &limits
	engine.observer = observer

	go engine.run(startPos, &limits)

	_ = engine.initSemaphore.Acquire(context.Background(), 1)
	engine.initSemaphore.Release(1)

	return &handle{s: engine}
}

// notify pushes an Info update to the observer channel without blocking;
// a full or nil channel simply drops the update.
func (s *Search) notify(info Info) {
	if s.observer == nil {
		return
	}
	select {
	case s.observer <- info:
	default:
	}
}

// run is the search goroutine launched by Start. It performs initialization,
// time control setup, the optional book probe, iterative deepening, and
// finally publishes the final result.
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", p.StringFen())

	s.stopFlag.Store(false)
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.initialize()

	s.setupSearchLimits(p, sl)
	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	var bookMove Move
	hadBookMove := false
	if s.book != nil && sl.TimeControl {
		if mv, found := s.book.Probe(p); found {
			bookMove = mv
			hadBookMove = true
			s.log.Debugf("Book move: %s", bookMove.StringUci())
		}
	}

	if s.tt != nil {
		s.tt.MarkNewGeneration()
	}

	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		s.mg = append(s.mg, movegen.NewMoveGen())
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	s.initSemaphore.Release(1)

	var result *Result
	if hadBookMove {
		result = &Result{BestMove: bookMove, BookMove: true}
	} else {
		result = s.iterativeDeepening(p)
	}

	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag.Load() {
		for !s.stopFlag.Load() && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	result.SearchTime = time.Since(s.startTime)
	if s.pv[0].Len() > 0 {
		result.Pv = append([]Move(nil), []Move(*s.pv[0])...)
	}

	s.log.Info(out.Sprintf("Search finished after %s, depth %d(%d), %d nodes, %d nps",
		result.SearchTime, result.SearchDepth, result.ExtraDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, result.SearchTime)))

	s.lastResult = result
	s.stopFlag.Store(true)

	s.notify(Info{
		Depth:     result.SearchDepth,
		Score:     result.BestValue,
		ScoreType: BoundExact,
		Nodes:     s.nodesVisited,
		Elapsed:   result.SearchTime,
		PV:        result.Pv,
		Final:     true,
	})
}

// initialize sets up the transposition table if not already present. Safe
// to call repeatedly.
func (s *Search) initialize() {
	if s.tt == nil {
		sizeInMByte := config.Settings.Search.TTSizeMB
		if sizeInMByte == 0 {
			sizeInMByte = 64
		}
		s.tt = hashtable.NewTT(sizeInMByte)
	}
}

// stopConditions reports whether the search must stop now: explicit stop,
// or a node budget reached.
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
	return s.stopFlag.Load()
}

func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
	}
}

// setupTimeControl computes the wall-clock budget for the current search
// from sl, following either fixed move-time or clock-plus-increment mode.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		duration := sl.MoveTime - moveTimeSafetyMargin
		if duration < 0 {
			s.log.Warningf("Very short move time: %s", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = int64(movesLeftBase + movesLeftPhaseSpan*p.GamePhaseFactor())
	}
	if movesLeft <= 0 {
		movesLeft = 1
	}

	var timeLeft time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft = sl.WhiteTime + time.Duration(movesLeft*sl.WhiteInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}

	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	if timeLimit < shortTimeThreshold {
		timeLimit = time.Duration(int64(timeSafetyMarginShort * float64(timeLimit.Nanoseconds())))
	} else {
		timeLimit = time.Duration(int64(timeSafetyMarginLong * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// addExtraTime adjusts the remaining time budget by factor f (1.1 extends
// by 10%, 0.9 reduces by 10%); a no-op under fixed move-time control.
func (s *Search) addExtraTime(f float64) {
	if s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		s.extraTime += time.Duration(int64((f - 1.0) * float64(s.timeLimit.Nanoseconds())))
	}
}

// startTimer launches a goroutine that sets stopFlag once timeLimit plus
// any extraTime has elapsed.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		s.stopFlag.Store(true)
	}()
}

// checkDrawRepAnd50 reports whether p is already a draw by repetition or
// the fifty-move rule, so iterativeDeepening can bail out before searching
// a single node.
func (s *Search) checkDrawRepAnd50(p *position.Position, reps int) bool {
	return p.CheckRepetitions(reps) || p.HalfMoveClock() >= 100
}

func (s *Search) getNps() uint64 {
	elapsed := time.Since(s.startTime)
	return util.Nps(s.nodesVisited, elapsed)
}

// iterativeDeepening searches p one ply deeper on each iteration until a
// search limit is reached, returning the result of the last completed
// iteration. When an iteration is stopped before it finishes, pv[0], the
// best value and the reported depth are restored to those of the previous
// iteration, so a partial iteration never replaces pv[0].
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	if s.checkDrawRepAnd50(p, 2) {
		s.log.Warning("Search called on a position that is already a draw")
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = s.mg[0].GenerateLegalMoves(p, movegen.GenAll)

	if s.rootMoves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			s.log.Warning("Search called on a mate position")
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		s.log.Warning("Search called on a stalemate position")
		return &Result{BestValue: ValueDraw}
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	bestValue := ValueNA

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.nodesVisited++
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		prevPv := append([]Move(nil), []Move(*s.pv[0])...)
		prevValue := bestValue

		switch {
		case config.Settings.Search.UseAspiration && iterationDepth > 3:
			bestValue = s.aspirationSearch(p, iterationDepth, bestValue)
		case config.Settings.Search.UseMTDf && iterationDepth > 3:
			bestValue = s.mtdf(p, iterationDepth, bestValue)
		default:
			s.rootSearch(p, iterationDepth, ValueMin, ValueMax)
			bestValue = s.pv[0].At(0).ValueOf()
		}

		if s.stopConditions() && iterationDepth > 1 {
			s.pv[0].Clear()
			*s.pv[0] = append(*s.pv[0], prevPv...)
			bestValue = prevValue
			s.statistics.CurrentIterationDepth = iterationDepth - 1
		}

		if !s.stopConditions() && s.rootMoves.Len() > 1 {
			s.rootMoves.Sort()
			s.statistics.CurrentBestRootMoveValue = bestValue
			s.notify(Info{
				Depth:     iterationDepth,
				Score:     bestValue,
				ScoreType: BoundExact,
				Nodes:     s.nodesVisited,
				Elapsed:   time.Since(s.startTime),
				PV:        append([]Move(nil), []Move(*s.pv[0])...),
			})
		} else {
			break
		}
	}

	result := &Result{
		BestMove:    s.pv[0].At(0).MoveOf(),
		BestValue:   bestValue,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
	} else if s.tt != nil {
		p.DoMove(result.BestMove)
		if ttEntry, ok := s.tt.Probe(p.ZobristKey()); ok {
			result.PonderMove = ttEntry.Move.MoveOf()
		}
		p.UndoMove()
	}

	return result
}
