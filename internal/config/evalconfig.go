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

package config

// evalConfiguration holds the tunables the default evaluator reads. The
// pawn-structure bonuses/maluses are expressed in centipawns and applied to
// the midgame and endgame scores separately wherever a pawn formation's
// value is known to shift between phases (passed pawns above all).
type evalConfiguration struct {
	UseMaterial bool
	UsePsqt     bool
	UsePawnEval bool
	UsePawnCache bool

	Tempo int

	LazyEvalThreshold int

	// pawn structure, in centipawns
	IsolatedPawnMidMalus  int
	IsolatedPawnEndMalus  int
	DoubledPawnMidMalus   int
	DoubledPawnEndMalus   int
	BackwardPawnMidMalus  int
	BackwardPawnEndMalus  int
	PhalanxPawnMidBonus   int
	PhalanxPawnEndBonus   int
	SupportedPawnMidBonus int
	SupportedPawnEndBonus int

	// passed pawns scale with how close to promotion they are; indexed by
	// the pawn's rank from its own point of view (index 1 = its starting
	// rank, index 6 = one step from promotion).
	PassedPawnMidBonus [8]int
	PassedPawnEndBonus [8]int
}

func init() {
	Settings.Eval = evalConfiguration{
		UseMaterial:  true,
		UsePsqt:      true,
		UsePawnEval:  true,
		UsePawnCache: true,

		Tempo: 20,

		LazyEvalThreshold: 700,

		IsolatedPawnMidMalus:  10,
		IsolatedPawnEndMalus:  20,
		DoubledPawnMidMalus:   10,
		DoubledPawnEndMalus:   20,
		BackwardPawnMidMalus:  8,
		BackwardPawnEndMalus:  12,
		PhalanxPawnMidBonus:   5,
		PhalanxPawnEndBonus:   3,
		SupportedPawnMidBonus: 7,
		SupportedPawnEndBonus: 5,

		PassedPawnMidBonus: [8]int{0, 5, 8, 15, 25, 45, 75, 0},
		PassedPawnEndBonus: [8]int{0, 10, 15, 25, 45, 80, 130, 0},
	}
}
