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

// Package evaluator scores chess positions. The core defines Evaluator as a
// contract; search only ever talks to that interface, so a caller is free to
// plug in a different scorer (a neural one, a simpler material-only one, a
// test stub) without touching anything else. Default gives the contract's
// one shipped implementation: material, piece-square tables and a real
// pawn-structure term backed by a shared pawn hash.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lkaiser/corechess/internal/config"
	"github.com/lkaiser/corechess/internal/hashtable"
	corelog "github.com/lkaiser/corechess/internal/logging"
	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator scores a position from the perspective of the side to move.
// Implementations must be safe to call repeatedly from a single search
// worker; nothing in the core shares an Evaluator across goroutines.
type Evaluator interface {
	Evaluate(p *position.Position) Value
}

// Default is the shipped Evaluator: material + PSQT + pawn structure, with
// a lazy-eval early exit once the cheap terms already decide the position.
type Default struct {
	log *logging.Logger

	pawnCache *hashtable.PT

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color

	score Score
}

var tmpScore = Score{}

var lazyThreshold [GamePhaseMax + 1]int

func init() {
	for i := 0; i <= GamePhaseMax; i++ {
		gpf := float64(i) / GamePhaseMax
		base := config.Settings.Eval.LazyEvalThreshold
		lazyThreshold[i] = base + int(float64(base)*gpf)
	}
}

// NewDefault creates the shipped Evaluator. pawnCacheSizeMB may be zero to
// disable the pawn hash, in which case pawn structure is recomputed on every
// call.
func NewDefault(pawnCacheSizeMB int) *Default {
	e := &Default{log: corelog.GetLog("evaluator")}
	if config.Settings.Eval.UsePawnCache && pawnCacheSizeMB > 0 {
		e.pawnCache = hashtable.NewPT(pawnCacheSizeMB)
	} else {
		e.log.Info("pawn cache disabled")
	}
	return e
}

// initEval primes the per-call fields that evaluate reads.
func (e *Default) initEval(p *position.Position) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.NextPlayer()
	e.them = e.us.Flip()
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0
}

// Evaluate implements Evaluator.
func (e *Default) Evaluate(p *position.Position) Value {
	e.initEval(p)
	return e.evaluate()
}

func (e *Default) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	// every term below is computed from White's perspective; finalEval
	// flips the sign for Black at the very end.
	if config.Settings.Eval.UseMaterial {
		e.score.MidGameValue = int(e.position.Material(White) - e.position.Material(Black))
		e.score.EndGameValue = e.score.MidGameValue
	}

	if config.Settings.Eval.UsePsqt {
		e.score.MidGameValue += int(e.position.PsqMidValue(White) - e.position.PsqMidValue(Black))
		e.score.EndGameValue += int(e.position.PsqEndValue(White) - e.position.PsqEndValue(Black))
	}

	e.score.MidGameValue += config.Settings.Eval.Tempo

	valueFromScore := e.value()
	th := lazyThreshold[e.position.GamePhase()]
	if int(valueFromScore) > th || int(valueFromScore) < -th {
		return e.finalEval(valueFromScore)
	}

	if config.Settings.Eval.UsePawnEval {
		e.score.Add(e.evaluatePawns())
	}

	return e.finalEval(e.value())
}

func (e *Default) value() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

func (e *Default) finalEval(value Value) Value {
	return value * Value(e.position.NextPlayer().Direction())
}

// Report renders a human-readable breakdown, useful from a bench/debug
// command; never called from inside search.
func (e *Default) Report() string {
	var sb strings.Builder
	sb.WriteString("Evaluation Report\n")
	sb.WriteString(out.Sprintf("position: %s\n", e.position.StringFen()))
	sb.WriteString(out.Sprintf("game phase factor: %f\n", e.position.GamePhaseFactor()))
	sb.WriteString(out.Sprintf("value (side to move): %d\n", e.Evaluate(e.position)))
	return sb.String()
}
