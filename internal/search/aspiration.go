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
	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

// aspirationSearch searches iterationDepth around lastValue with a
// successively widening window (aspirationSteps), falling back to a full
// window once every step has failed. A tight window lets most iterations
// re-search only a small band around the previous best score, at the cost
// of occasionally failing high or low and having to retry wider.
func (s *Search) aspirationSearch(p *position.Position, iterationDepth int, lastValue Value) Value {
	if lastValue == ValueNA {
		s.rootSearch(p, iterationDepth, ValueMin, ValueMax)
		return s.pv[0].At(0).ValueOf()
	}

	for _, window := range aspirationSteps {
		alpha := lastValue - window
		beta := lastValue + window
		if alpha < ValueMin {
			alpha = ValueMin
		}
		if beta > ValueMax {
			beta = ValueMax
		}

		s.rootSearch(p, iterationDepth, alpha, beta)
		if s.stopConditions() {
			return s.pv[0].At(0).ValueOf()
		}

		value := s.pv[0].At(0).ValueOf()
		if value > alpha && value < beta {
			return value
		}
		if window == ValueMax {
			return value
		}
	}

	s.rootSearch(p, iterationDepth, ValueMin, ValueMax)
	return s.pv[0].At(0).ValueOf()
}

// mtdf searches iterationDepth with MTD(f): a sequence of zero-width
// windows around a moving guess f, each one a null-window rootSearch that
// either raises or lowers the guess, converging on the minimax value.
func (s *Search) mtdf(p *position.Position, iterationDepth int, firstGuess Value) Value {
	f := firstGuess
	if f == ValueNA {
		f = ValueDraw
	}

	upperBound := ValueMax
	lowerBound := ValueMin

	for lowerBound < upperBound {
		beta := f
		if f == lowerBound {
			beta++
		}

		s.rootSearch(p, iterationDepth, beta-1, beta)
		if s.stopConditions() {
			return s.pv[0].At(0).ValueOf()
		}

		f = s.pv[0].At(0).ValueOf()
		if f < beta {
			upperBound = f
		} else {
			lowerBound = f
		}
	}

	return f
}
