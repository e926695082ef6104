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

package evaluator

import (
	"github.com/lkaiser/corechess/internal/config"
	"github.com/lkaiser/corechess/internal/hashtable"
	. "github.com/lkaiser/corechess/internal/types"
)

// evaluatePawns scores the pawn structure for both sides from White's
// perspective, probing the pawn hash first since the structure only changes
// when a pawn moves or is captured - most positions along a search line
// share the same pawn key as their parent.
func (e *Default) evaluatePawns() Score {
	key := e.position.PawnKey()

	if e.pawnCache != nil {
		if entry, ok := e.pawnCache.Probe(key); ok {
			return Score{MidGameValue: int(entry.MidValue), EndGameValue: int(entry.EndValue)}
		}
	}

	s := Score{}
	s.Add(scorePawnsOfColor(e.position.PiecesBb(White, Pawn), e.position.PiecesBb(Black, Pawn), White))
	s.Sub(scorePawnsOfColor(e.position.PiecesBb(Black, Pawn), e.position.PiecesBb(White, Pawn), Black))

	if e.pawnCache != nil {
		e.pawnCache.Put(key, hashtable.PtEntry{MidValue: Value(s.MidGameValue), EndValue: Value(s.EndGameValue)})
	}
	return s
}

// scorePawnsOfColor scores one side's pawns: isolated, doubled, backward,
// phalanx and supported pawns, plus a passed-pawn bonus ramping with rank.
func scorePawnsOfColor(ourPawns, theirPawns Bitboard, us Color) Score {
	them := us.Flip()
	cfg := &config.Settings.Eval

	s := Score{}
	for bb := ourPawns; bb != BbZero; {
		sq := bb.PopLsb()

		onFile := sq.FileBb() & ourPawns
		neighbours := sq.NeighbourFilesMask() & ourPawns

		if neighbours == BbZero {
			s.MidGameValue -= cfg.IsolatedPawnMidMalus
			s.EndGameValue -= cfg.IsolatedPawnEndMalus
		}

		if onFile.PopCount() > 1 {
			s.MidGameValue -= cfg.DoubledPawnMidMalus
			s.EndGameValue -= cfg.DoubledPawnEndMalus
		}

		if sq.NeighbourFilesMask()&sq.RankBb()&ourPawns != BbZero {
			s.MidGameValue += cfg.PhalanxPawnMidBonus
			s.EndGameValue += cfg.PhalanxPawnEndBonus
		}

		if GetPawnAttacks(them, sq)&ourPawns != BbZero {
			s.MidGameValue += cfg.SupportedPawnMidBonus
			s.EndGameValue += cfg.SupportedPawnEndBonus
		} else if isBackward(sq, us, ourPawns, theirPawns) {
			s.MidGameValue -= cfg.BackwardPawnMidMalus
			s.EndGameValue -= cfg.BackwardPawnEndMalus
		}

		if sq.PassedPawnMask(us)&theirPawns == BbZero {
			rankFromOwnSide := passedPawnRankIndex(sq, us)
			s.MidGameValue += cfg.PassedPawnMidBonus[rankFromOwnSide]
			s.EndGameValue += cfg.PassedPawnEndBonus[rankFromOwnSide]
		}
	}
	return s
}

// isBackward reports whether the pawn on sq has no own pawn able to defend
// it from an adjacent file and its stop square is swept by an enemy pawn.
func isBackward(sq Square, us Color, ourPawns, theirPawns Bitboard) bool {
	behind := sq.RanksSouthMask()
	if us == Black {
		behind = sq.RanksNorthMask()
	}
	if sq.NeighbourFilesMask()&behind&ourPawns != BbZero {
		return false
	}
	stop := ShiftBitboard(sq.Bb(), us.MoveDirection())
	return stop != BbZero && GetPawnAttacks(us.Flip(), stop.Lsb())&theirPawns != BbZero
}

// passedPawnRankIndex maps sq to 0..7 counting ranks from us's own back
// rank, so a pawn on its starting rank is index 1 and index 6 is one square
// from promoting regardless of color.
func passedPawnRankIndex(sq Square, us Color) int {
	if us == White {
		return int(sq.RankOf())
	}
	return 7 - int(sq.RankOf())
}
