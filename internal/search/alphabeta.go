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
	"github.com/lkaiser/corechess/internal/config"
	"github.com/lkaiser/corechess/internal/hashtable"
	"github.com/lkaiser/corechess/internal/movegen"
	"github.com/lkaiser/corechess/internal/moveslice"
	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

// rootSearch runs alpha beta over every root move, storing each move's
// value back into rootMoves for next iteration's sort, and the best line
// into pv[0]. Root moves get their own loop, separate from search, because
// they are never pruned or reduced - only pv[0] is ever the actual answer.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) {
	bestNodeValue := ValueNA
	var value Value

	for i, m := range *s.rootMoves {
		p.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else if i == 0 {
			value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
		} else {
			s.statistics.RootPvsResearches++
			value = -s.search(p, depth-1, 1, -alpha-1, -alpha, false, true)
			if value > alpha && value < beta && !s.stopConditions() {
				value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
			}
		}

		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() && depth > 1 {
			return
		}

		s.rootMoves.Set(i, m.SetValue(value))

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
		}
	}
}

// search is negamax alpha beta with the usual family of pruning and
// reduction techniques, called recursively for every ply after the root.
// depth == 0 drops into qsearch.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, isPV, doNull bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	if depth <= 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	if config.Settings.Search.UseMDP {
		if alpha < -ValueCheckMate+Value(ply) {
			alpha = -ValueCheckMate + Value(ply)
		}
		if beta > ValueCheckMate-Value(ply) {
			beta = ValueCheckMate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttBound := BoundUpper
	hasCheck := p.HasCheck()
	mateThreat := false

	var ttEntry hashtable.TtEntry
	var ttHit bool
	ttEntry, ttHit = s.tt.Probe(p.ZobristKey())
	if ttHit {
		s.statistics.TTHit++
		ttMove = ttEntry.Move.MoveOf()
		if ttMove != MoveNone && !s.mg[ply].ValidateMove(p, ttMove) {
			// A corrupted or stale-key entry can carry a move that is not
			// legal in this position; trusting it would feed DoMove a
			// structurally bogus move. Drop it silently, as if no TT move
			// had been found.
			s.statistics.TTMoveRejected++
			ttMove = MoveNone
		}
		if int(ttEntry.Depth) >= depth {
			ttValue := valueFromTT(ttEntry.Value, ply)
			cut := false
			switch {
			case !ttValue.IsValid():
				cut = false
			case ttEntry.Bound == BoundExact:
				cut = true
			case ttEntry.Bound == BoundUpper && ttValue <= alpha:
				cut = true
			case ttEntry.Bound == BoundLower && ttValue >= beta:
				cut = true
			}
			if cut {
				s.getPVLine(p, s.pv[ply], depth, s.mg[ply])
				s.statistics.TTCuts++
				return ttValue
			}
			s.statistics.TTNoCuts++
		}
	} else {
		s.statistics.TTMiss++
	}

	// Reverse Futility Pruning: if the static eval already clears beta by
	// a depth-scaled margin, assume any real move only does better.
	if config.Settings.Search.UseRFP &&
		doNull && !isPV && !hasCheck &&
		depth <= config.Settings.Search.RFPMaxDepth {
		staticEval := s.evaluate(p, ply)
		if staticEval-rfpMargin[depth] >= beta {
			s.statistics.RfpPrunings++
			return staticEval - rfpMargin[depth]
		}
	}

	// Null Move Pruning: if passing the move entirely still holds beta,
	// a real move is assumed to hold it too.
	if config.Settings.Search.UseNullMove &&
		doNull && !isPV && !hasCheck &&
		depth >= config.Settings.Search.NullMoveMinDepth &&
		p.MaterialNonPawn(us) > 0 {

		r := config.Settings.Search.NullMoveReduction
		if depth > 8 || (depth > 6 && p.GamePhase() >= 3) {
			r++
		}
		newDepth := depth - r - 1
		if newDepth < 0 {
			newDepth = 0
		}

		p.DoNullMove()
		s.nodesVisited++
		nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false)
		p.UndoNullMove()

		if s.stopConditions() {
			return ValueNA
		}

		if nValue > ValueCheckMateThreshold {
			s.statistics.NMPMateBeta++
			nValue = ValueCheckMateThreshold
		} else if nValue < -ValueCheckMateThreshold {
			s.statistics.NMPMateAlpha++
			mateThreat = true
		}

		if nValue >= beta {
			// At high depth a null move cutoff can be a zugzwang mirage;
			// verify with a shallow real search before trusting it.
			verified := true
			if depth >= config.Settings.Search.NullMoveVerifyDepth {
				verifyDepth := depth - r - 1
				if verifyDepth < 1 {
					verifyDepth = 1
				}
				verified = s.search(p, verifyDepth, ply, alpha, beta, false, false) >= beta
			}
			if verified {
				s.statistics.NullMoveCuts++
				s.storeTT(p, depth, ply, ttMove, nValue, BoundLower)
				return nValue
			}
		}
	}

	// Internal Iterative Deepening: no TT move to search first, so find
	// one with a reduced-depth search before the real one.
	if config.Settings.Search.UseIID &&
		depth >= config.Settings.Search.IIDMinDepth &&
		ttMove == MoveNone && doNull && isPV {

		newDepth := depth - config.Settings.Search.IIDReduction
		if newDepth < 0 {
			newDepth = 0
		}
		s.search(p, newDepth, ply, alpha, beta, isPV, true)
		s.statistics.IIDsearches++

		if s.stopConditions() {
			return ValueNA
		}
		if s.pv[ply].Len() > 0 {
			s.statistics.IIDmoves++
			ttMove = s.pv[ply].At(0).MoveOf()
		}
	}

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
		myMg.SetPvMove(ttMove)
	} else {
		s.statistics.NoTTMove++
	}

	var value Value
	movesSearched := 0
	killers := myMg.KillerMoves()

	for move := myMg.GetNextMove(p, movegen.GenAll); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll) {
		from := move.From()

		newDepth := depth - 1
		lmrDepth := newDepth
		extension := 0

		givesCheck := p.GivesCheck(move)

		if config.Settings.Search.UseCheckExtension && givesCheck {
			s.statistics.CheckExtension++
			extension = 1
		}
		if config.Settings.Search.UseThreatExtension && mateThreat {
			s.statistics.ThreatExtension++
			extension = 1
		}
		newDepth += extension

		// Forward pruning only applies to uninteresting, quiet moves.
		if !isPV && extension == 0 &&
			move != ttMove && move != killers[0] && move != killers[1] &&
			!move.MoveType().IsPromotion() &&
			!p.IsCapturingMove(move) &&
			!hasCheck && !givesCheck && !mateThreat {

			materialEval := p.Material(us) - p.Material(us.Flip())
			moveGain := p.GetPiece(move.To()).ValueOf()

			if config.Settings.Search.UseFutility && depth <= config.Settings.Search.FutilityMaxDepth {
				if materialEval+moveGain+futilityMargin[depth] <= alpha {
					if materialEval+moveGain > bestNodeValue {
						bestNodeValue = materialEval + moveGain
					}
					s.statistics.FpPrunings++
					continue
				}
			}

			if config.Settings.Search.UseLMP && depth <= config.Settings.Search.LMPMaxDepth {
				if movesSearched >= lmpMovesSearched(depth) {
					s.statistics.LmpCuts++
					continue
				}
			}

			if config.Settings.Search.UseLMR &&
				depth >= config.Settings.Search.LMRMinDepth &&
				movesSearched >= config.Settings.Search.LMRMinMoveNo {
				lmrDepth -= lmrReduction(depth, movesSearched)
				s.statistics.LmrReductions++
				if lmrDepth < 0 {
					lmrDepth = 0
				}
			}
		}

		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else if movesSearched == 0 {
			value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
		} else {
			value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && !s.stopConditions() {
				if lmrDepth < newDepth {
					s.statistics.LmrResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				} else if value < beta {
					s.statistics.PvsResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				}
			}
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					piece := p.GetPiece(from)
					if config.Settings.Search.UseKiller > 0 && !p.IsCapturingMove(move) {
						myMg.StoreKiller(move)
					}
					if config.Settings.Search.UseHistory {
						s.history.Good(piece, move, depth)
					}
					if config.Settings.Search.UseCounterMove {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.StoreCounterMove(lastMove, move)
						}
					}
					ttBound = BoundLower
					break
				}
				alpha = value
				ttBound = BoundExact
			}
		}
		if config.Settings.Search.UseHistory && !p.IsCapturingMove(move) {
			s.history.Searched(p.GetPiece(from), move)
		}
	}

	if movesSearched == 0 && !s.stopConditions() {
		if hasCheck {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttBound = BoundExact
	}

	s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttBound)

	return bestNodeValue
}

// qsearch extends the search along capture (and, in check, every) move
// until the position is quiet, avoiding the horizon effect of stopping
// cold at depth zero.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value, isPV bool) Value {
	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !config.Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	if config.Settings.Search.UseMDP {
		if alpha < -ValueCheckMate+Value(ply) {
			alpha = -ValueCheckMate + Value(ply)
		}
		if beta > ValueCheckMate-Value(ply) {
			beta = ValueCheckMate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	bestNodeValue := ValueNA
	ttBound := BoundUpper
	ttMove := MoveNone
	hasCheck := p.HasCheck()

	if !hasCheck {
		staticEval := s.evaluate(p, ply)
		if staticEval > alpha {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				return staticEval
			}
			alpha = staticEval
		}
		bestNodeValue = staticEval
	}

	ttEntry, ttHit := s.tt.Probe(p.ZobristKey())
	if ttHit {
		s.statistics.TTHit++
		ttMove = ttEntry.Move.MoveOf()
		if ttMove != MoveNone && !s.mg[ply].ValidateMove(p, ttMove) {
			s.statistics.TTMoveRejected++
			ttMove = MoveNone
		}
		ttValue := valueFromTT(ttEntry.Value, ply)
		cut := false
		switch {
		case !ttValue.IsValid():
			cut = false
		case ttEntry.Bound == BoundExact:
			cut = true
		case ttEntry.Bound == BoundUpper && ttValue <= alpha:
			cut = true
		case ttEntry.Bound == BoundLower && ttValue >= beta:
			cut = true
		}
		if cut {
			s.statistics.TTCuts++
			return ttValue
		}
		s.statistics.TTNoCuts++
	} else {
		s.statistics.TTMiss++
	}

	bestNodeMove := MoveNone
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
		myMg.SetPvMove(ttMove)
	} else {
		s.statistics.NoTTMove++
	}

	var value Value
	movesSearched := 0

	mode := movegen.GenCap
	if hasCheck {
		mode = movegen.GenAll
	}

	for move := myMg.GetNextMove(p, mode); move != MoveNone; move = myMg.GetNextMove(p, mode) {
		if !hasCheck && !s.goodCapture(p, move) {
			continue
		}

		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)

		if hasCheck && s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if config.Settings.Search.UseCounterMove {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.StoreCounterMove(lastMove, move)
						}
					}
					ttBound = BoundLower
					break
				}
				alpha = value
				ttBound = BoundExact
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() && hasCheck {
		s.statistics.Checkmates++
		bestNodeValue = -ValueCheckMate + Value(ply)
		ttBound = BoundExact
	}

	s.storeTT(p, 0, ply, bestNodeMove, bestNodeValue, ttBound)

	return bestNodeValue
}

// evaluate consults the TT for a cached static evaluation before falling
// back to the evaluator.
func (s *Search) evaluate(p *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++

	if ttEntry, ok := s.tt.Probe(p.ZobristKey()); ok {
		s.statistics.TTHit++
		return ttEntry.Eval
	}

	s.statistics.Evaluations++
	return s.eval.Evaluate(p)
}

// goodCapture filters quiescence search down to captures worth looking
// at, either by SEE or, when SEE is disabled, cheap heuristics.
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	if config.Settings.Search.UseSEE {
		return see(p, move) > 0
	}
	return p.GetPiece(move.From()).ValueOf()+50 < p.GetPiece(move.To()).ValueOf() ||
		(p.LastMove() != MoveNone && p.LastMove().To() == move.To() && p.LastCapturedPiece() != PieceNone) ||
		!p.IsAttacked(move.To(), p.NextPlayer().Flip())
}

// savePV makes move the first move of dest, followed by every move in src.
func savePV(move Move, src, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT records one node's search result in the transposition table,
// adjusting mate scores for the distance from the root first.
func (s *Search) storeTT(p *position.Position, depth, ply int, move Move, value Value, bound Bound) {
	s.tt.Put(p.ZobristKey(), hashtable.TtEntry{
		Move:  move.MoveOf(),
		Value: valueToTT(value, ply),
		Eval:  value,
		Depth: int8(depth),
		Bound: bound,
	})
}

// getPVLine reconstructs the principal variation from depth plies of TT
// entries below p, as a fallback when a TT cutoff skips the normal
// move-loop PV update. Each TT move is checked with mg.ValidateMove before
// it is played; the line ends at the first move that fails.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int, mg *movegen.Movegen) {
	pv.Clear()
	counter := 0
	entry, ok := s.tt.Probe(p.ZobristKey())
	for ok && entry.Move != MoveNone && counter < depth && mg.ValidateMove(p, entry.Move.MoveOf()) {
		pv.PushBack(entry.Move.MoveOf())
		p.DoMove(entry.Move.MoveOf())
		counter++
		entry, ok = s.tt.Probe(p.ZobristKey())
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// valueToTT shifts a checkmate score by ply so it is stored relative to
// the node it was found at, not the root.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses valueToTT's shift when reading a stored value back
// in at ply.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}
