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

package movegen

import (
	"time"

	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

// Perft counts the leaf positions reached by exhaustive move generation to
// a fixed depth, the standard correctness check for a move generator: the
// leaf/capture/en-passant/castle/promotion/check counts at each depth are
// published reference values for many starting positions.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	stopFlag bool
}

// NewPerft creates an empty Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop ends a Run in progress; checked between moves at every depth, so it
// takes effect promptly rather than instantly.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Run counts leaf positions reached from fen in exactly depth plies,
// recording the result on perft and returning the leaf count. onDemand
// selects incremental (GetNextMove) move generation over generating the
// full pseudo-legal list up front; both visit the same leaves.
func (perft *Perft) Run(fen string, depth int, onDemand bool) uint64 {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.reset()

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Errorf("perft: invalid fen %q: %s", fen, err)
		return 0
	}

	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	start := time.Now()
	var result uint64
	if onDemand {
		result = perft.miniMaxOnDemand(depth, p, mgList)
	} else {
		result = perft.miniMax(depth, p, mgList)
	}
	elapsed := time.Since(start)

	if perft.stopFlag {
		log.Info("perft stopped before completion")
		return 0
	}
	perft.Nodes = result
	log.Infof("perft depth %d: %d nodes in %s (%d nps)",
		depth, result, elapsed, uint64(float64(result)/elapsed.Seconds()+0.5))
	return result
}

func (perft *Perft) miniMax(depth int, p *position.Position, mgList []*Movegen) uint64 {
	var total uint64
	moves := mgList[depth].GeneratePseudoLegalMoves(p, GenAll)
	for _, move := range *moves {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				total += perft.miniMax(depth-1, p, mgList)
			}
			p.UndoMove()
			continue
		}
		total += perft.countLeaf(move, p, mgList[0])
	}
	return total
}

func (perft *Perft) miniMaxOnDemand(depth int, p *position.Position, mgList []*Movegen) uint64 {
	var total uint64
	mg := mgList[depth]
	mg.ResetOnDemand()
	for move := mg.GetNextMove(p, GenAll); move != MoveNone; move = mg.GetNextMove(p, GenAll) {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				total += perft.miniMaxOnDemand(depth-1, p, mgList)
			}
			p.UndoMove()
			continue
		}
		total += perft.countLeaf(move, p, mgList[0])
	}
	return total
}

// countLeaf plays move, tallies it if legal, and unmakes it.
func (perft *Perft) countLeaf(move Move, p *position.Position, rootMg *Movegen) uint64 {
	capture := p.GetPiece(move.To()) != PieceNone
	enpassant := move.MoveType() == EnPassant
	castling := move.MoveType().IsCastle()
	promotion := move.MoveType().IsPromotion()

	p.DoMove(move)
	defer p.UndoMove()
	if !p.WasLegalMove() {
		return 0
	}

	if enpassant {
		perft.EnpassantCounter++
		perft.CaptureCounter++
	} else if capture {
		perft.CaptureCounter++
	}
	if castling {
		perft.CastleCounter++
	}
	if promotion {
		perft.PromotionCounter++
	}
	if p.HasCheck() {
		perft.CheckCounter++
		if !rootMg.HasLegalMove(p) {
			perft.CheckMateCounter++
		}
	}
	return 1
}

func (perft *Perft) reset() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
