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

// Package movegen generates moves on a chess position: full pseudo-legal and
// legal move lists, and an on-demand staged generator (PV move, then
// captures, then killers and quiet moves) for use inside search, where
// generating the full list up front is usually wasted work on a beta cutoff.
package movegen

import (
	"fmt"

	"github.com/op/go-logging"

	corelog "github.com/lkaiser/corechess/internal/logging"
	"github.com/lkaiser/corechess/internal/moveslice"
	"github.com/lkaiser/corechess/internal/position"
	. "github.com/lkaiser/corechess/internal/types"
)

var log *logging.Logger = corelog.GetLog("movegen")

// GenMode selects which kind of moves to generate.
type GenMode int

const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// on-demand generator stages
const (
	odNew = iota
	odPv
	od1
	od2
	od3
	od4
	od5
	od6
	od7
	od8
	odEnd
)

// Movegen holds the reusable move buffers and per-ply state (PV move,
// killer slots, on-demand generator cursor) a search thread needs. Create
// one per search goroutine with NewMoveGen; it is not safe to share across
// goroutines.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
	onDemandMoves    *moveslice.MoveSlice
	killerMoves      [2]Move

	currentIteratorKey position.Key
	takeIndex          int
	pvMove             Move
	currentODStage     int8
	pvMovePushed       bool
}

// NewMoveGen creates a ready-to-use move generator.
func NewMoveGen() *Movegen {
	return &Movegen{
		pseudoLegalMoves:   moveslice.NewMoveSlice(MaxMoves),
		legalMoves:         moveslice.NewMoveSlice(MaxMoves),
		onDemandMoves:      moveslice.NewMoveSlice(MaxMoves),
		killerMoves:        [2]Move{MoveNone, MoveNone},
		pvMove:             MoveNone,
		currentODStage:     odNew,
		currentIteratorKey: 0,
	}
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side to
// move in mode. Pseudo-legal means check rules are not yet applied: the
// king may be left in check, or may pass through an attacked square while
// castling. Use GenerateLegalMoves when that matters.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	if mode&GenCap != 0 {
		mg.generatePawnMoves(p, GenCap, mg.pseudoLegalMoves)
		mg.generateCastling(p, GenCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenCap, mg.pseudoLegalMoves)
		mg.generateMoves(p, GenCap, mg.pseudoLegalMoves)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateCastling(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateMoves(p, GenNonCap, mg.pseudoLegalMoves)
	}
	mg.pseudoLegalMoves.ForEach(func(i int) {
		at := mg.pseudoLegalMoves.At(i)
		switch {
		case at.MoveOf() == mg.pvMove:
			mg.pseudoLegalMoves.Set(i, at.SetValue(ValueMax))
		case at.MoveOf() == mg.killerMoves[0]:
			mg.pseudoLegalMoves.Set(i, at.SetValue(-4000))
		case at.MoveOf() == mg.killerMoves[1]:
			mg.pseudoLegalMoves.Set(i, at.SetValue(-4001))
		}
	})
	mg.pseudoLegalMoves.Sort()
	mg.pseudoLegalMoves.ForEach(func(i int) {
		mg.pseudoLegalMoves.Set(i, mg.pseudoLegalMoves.At(i).MoveOf())
	})
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves returns every legal move for the side to move in mode,
// built by filtering GeneratePseudoLegalMoves through Position.IsLegalMove.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(p, mode)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return p.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// GetNextMove returns moves for p one at a time in stages (PV move first,
// then captures, then killers and quiet moves), generating the next stage
// lazily only once the current one is exhausted. Returns MoveNone once
// every stage has been drained. Callers should call ResetOnDemand before
// reusing the generator on the same position (it resets itself
// automatically when the position's Zobrist key changes).
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode) Move {
	if p.ZobristKey() != mg.currentIteratorKey {
		mg.onDemandMoves.Clear()
		mg.currentODStage = odNew
		mg.pvMovePushed = false
		mg.takeIndex = 0
		mg.currentIteratorKey = p.ZobristKey()
	}

	if mg.onDemandMoves.Len() == 0 {
		mg.fillOnDemandMoveList(p, mode)
	}

	if mg.onDemandMoves.Len() != 0 {
		if mg.currentODStage != od1 &&
			mg.pvMovePushed &&
			(*mg.onDemandMoves)[mg.takeIndex].MoveOf() == mg.pvMove.MoveOf() {

			mg.takeIndex++
			mg.pvMovePushed = false

			if mg.takeIndex >= mg.onDemandMoves.Len() {
				mg.takeIndex = 0
				mg.onDemandMoves.Clear()
				mg.fillOnDemandMoveList(p, mode)
				if mg.onDemandMoves.Len() == 0 {
					return MoveNone
				}
			}
		}

		move := (*mg.onDemandMoves)[mg.takeIndex].MoveOf()
		mg.takeIndex++
		if mg.takeIndex >= mg.onDemandMoves.Len() {
			mg.takeIndex = 0
			mg.onDemandMoves.Clear()
		}
		return move
	}

	mg.takeIndex = 0
	mg.pvMovePushed = false
	return MoveNone
}

// ResetOnDemand restarts the on-demand generator from scratch, discarding
// the PV move; the killer slots are kept.
func (mg *Movegen) ResetOnDemand() {
	mg.onDemandMoves.Clear()
	mg.currentODStage = odNew
	mg.currentIteratorKey = 0
	mg.pvMove = MoveNone
	mg.pvMovePushed = false
	mg.takeIndex = 0
}

// SetPvMove tells the on-demand generator to return move first.
func (mg *Movegen) SetPvMove(move Move) { mg.pvMove = move.MoveOf() }

// StoreKiller records move as a killer for the current ply, so the
// on-demand generator returns it as soon as it is actually generated.
// Keeps the two most recent distinct killers, most recent first.
func (mg *Movegen) StoreKiller(move Move) {
	moveOf := move.MoveOf()
	switch moveOf {
	case mg.killerMoves[0]:
		return
	case mg.killerMoves[1]:
		mg.killerMoves[1] = mg.killerMoves[0]
		mg.killerMoves[0] = moveOf
	default:
		mg.killerMoves[1] = mg.killerMoves[0]
		mg.killerMoves[0] = moveOf
	}
}

// HasLegalMove reports whether p has at least one legal move, without
// generating and filtering the full move list. Checked roughly in order of
// the most likely source of a legal move first: king moves, pawn captures
// and pushes, officer moves, en passant.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	nextPlayer := p.NextPlayer()
	nextPlayerBb := p.OccupiedBb(nextPlayer)

	kingSquare := p.KingSquare(nextPlayer)
	tmpMoves := GetPseudoAttacks(King, kingSquare) &^ nextPlayerBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		if p.IsLegalMove(CreateMove(kingSquare, toSquare, Normal)) {
			return true
		}
	}

	myPawns := p.PiecesBb(nextPlayer, Pawn)
	opponentBb := p.OccupiedBb(nextPlayer.Flip())

	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()*North+West) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()*North + East)
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal)) {
			return true
		}
	}

	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()*North+East) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()*North + West)
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal)) {
			return true
		}
	}

	occupiedBb := p.OccupiedAll()
	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()*North) &^ occupiedBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() * North)
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal)) {
			return true
		}
	}

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetPseudoAttacks(pt, fromSquare) &^ nextPlayerBb
			for moves != 0 {
				toSquare := moves.PopLsb()
				if pt > Knight {
					if Intermediate(fromSquare, toSquare)&occupiedBb == 0 {
						if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal)) {
							return true
						}
					}
				} else if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal)) {
					return true
				}
			}
		}
	}

	if enPassantSquare := p.GetEnPassantSquare(); enPassantSquare != SqNone {
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()*North+West) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if p.IsLegalMove(CreateMove(fromSquare, fromSquare.To(nextPlayer.MoveDirection()*North+East), EnPassant)) {
				return true
			}
		}
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()*North+East) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if p.IsLegalMove(CreateMove(fromSquare, fromSquare.To(nextPlayer.MoveDirection()*North+West), EnPassant)) {
				return true
			}
		}
	}

	return false
}

// ValidateMove reports whether move is a legal move on p.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *ml {
		if move.MoveOf() == m {
			return true
		}
	}
	return false
}

// MoveFromUci matches a UCI move string against p's legal moves.
func (mg *Movegen) MoveFromUci(p *position.Position, uci string) Move {
	return position.MoveFromUci(*mg.GenerateLegalMoves(p, GenAll), uci)
}

// MoveFromSan matches a SAN move string against p's legal moves.
func (mg *Movegen) MoveFromSan(p *position.Position, san string) Move {
	return position.MoveFromSan(p, *mg.GenerateLegalMoves(p, GenAll), san)
}

// PvMove returns the move currently set as the on-demand generator's PV move.
func (mg *Movegen) PvMove() Move { return mg.pvMove }

// KillerMoves returns the on-demand generator's two killer-move slots.
func (mg *Movegen) KillerMoves() *[2]Move { return &mg.killerMoves }

func (mg *Movegen) String() string {
	return fmt.Sprintf("Movegen: { OnDemand stage: %d PV: %s Killer1: %s Killer2: %s }",
		mg.currentODStage, mg.pvMove.String(), mg.killerMoves[0].String(), mg.killerMoves[1].String())
}

func (mg *Movegen) fillOnDemandMoveList(p *position.Position, mode GenMode) {
	for mg.onDemandMoves.Len() == 0 && mg.currentODStage < odEnd {
		switch mg.currentODStage {
		case odNew:
			mg.currentODStage = odPv
			fallthrough
		case odPv:
			if mg.pvMove != MoveNone {
				switch mode {
				case GenAll:
					mg.pvMovePushed = true
					mg.onDemandMoves.PushBack(mg.pvMove)
				case GenCap:
					if p.IsCapturingMove(mg.pvMove) {
						mg.pvMovePushed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
					}
				case GenNonCap:
					if !p.IsCapturingMove(mg.pvMove) {
						mg.pvMovePushed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
					}
				}
			}
			if mode&GenCap != 0 {
				mg.currentODStage = od1
			} else {
				mg.currentODStage = od4
			}
		case od1:
			mg.generatePawnMoves(p, GenCap, mg.onDemandMoves)
			mg.currentODStage = od2
		case od2:
			mg.generateMoves(p, GenCap, mg.onDemandMoves)
			mg.currentODStage = od3
		case od3:
			mg.generateKingMoves(p, GenCap, mg.onDemandMoves)
			mg.currentODStage = od4
		case od4:
			if mode&GenNonCap != 0 {
				mg.currentODStage = od5
			} else {
				mg.currentODStage = odEnd
			}
		case od5:
			mg.generatePawnMoves(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = od6
		case od6:
			mg.generateCastling(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = od7
		case od7:
			mg.generateMoves(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = od8
		case od8:
			mg.generateKingMoves(p, GenNonCap, mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = odEnd
		}
		if mg.onDemandMoves.Len() > 0 {
			mg.onDemandMoves.Sort()
		}
	}
}

// pushKiller re-values any killer move already present in m so Sort moves
// it to the front. Killers are stored per-ply and may not even be pseudo-
// legal on the current position, so we only act on them once the normal
// generation has already produced them.
func (mg *Movegen) pushKiller(m *moveslice.MoveSlice) {
	for i := 0; i < m.Len(); i++ {
		move := m.At(i)
		switch move.MoveOf() {
		case mg.killerMoves[1]:
			m.Set(i, move.SetValue(-4001))
		case mg.killerMoves[0]:
			m.Set(i, move.SetValue(-4000))
		}
	}
}

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	myPawns := p.PiecesBb(nextPlayer, Pawn)
	oppPieces := p.OccupiedBb(nextPlayer.Flip())
	gamePhase := p.GamePhase()
	piece := MakePiece(nextPlayer, Pawn)

	// Sort values are descending (highest value first): captures are
	// ordered by MVV-LVA (most valuable victim, least valuable attacker),
	// non-captures by promotion piece value and then position value.
	pushPromotions := func(fromSquare, toSquare Square, base Value) {
		ml.PushBack(CreateMoveValue(fromSquare, toSquare, PromoteQueen, base+Queen.ValueOf()))
		ml.PushBack(CreateMoveValue(fromSquare, toSquare, PromoteKnight, base+Knight.ValueOf()))
		ml.PushBack(CreateMoveValue(fromSquare, toSquare, PromoteRook, base+Rook.ValueOf()-Value(2000)))
		ml.PushBack(CreateMoveValue(fromSquare, toSquare, PromoteBishop, base+Bishop.ValueOf()-Value(2000)))
	}

	if mode&GenCap != 0 {
		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			tmpCaptures = ShiftBitboard(myPawns, nextPlayer.MoveDirection()*North+dir) & oppPieces
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()*North - dir)
				value := p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase)
				pushPromotions(fromSquare, toSquare, value)
			}
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()*North - dir)
				value := p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
			}
		}

		if enPassantSquare := p.GetEnPassantSquare(); enPassantSquare != SqNone {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()*North+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := fromSquare.To(nextPlayer.MoveDirection()*North - dir)
					value := PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, EnPassant, value))
				}
			}
		}
	}

	if mode&GenNonCap != 0 {
		tmpMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()*North) &^ p.OccupiedAll()
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), nextPlayer.MoveDirection()*North) &^ p.OccupiedAll()

		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() * North)
			pushPromotions(fromSquare, toSquare, Value(-10_000))
		}
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() * North).To(nextPlayer.Flip().MoveDirection() * North)
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
		}
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() * North)
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
		}
	}
}

func (mg *Movegen) generateCastling(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	if mode&GenNonCap == 0 || p.CastlingRights() == CastlingNone {
		return
	}
	nextPlayer := p.NextPlayer()
	occupiedBB := p.OccupiedAll()
	cr := p.CastlingRights()

	if nextPlayer == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupiedBB == 0 {
			ml.PushBack(CreateMoveValue(SqE1, SqG1, ShortCastle, Value(-5000)))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupiedBB == 0 {
			ml.PushBack(CreateMoveValue(SqE1, SqC1, LongCastle, Value(-5000)))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupiedBB == 0 {
			ml.PushBack(CreateMoveValue(SqE8, SqG8, ShortCastle, Value(-5000)))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupiedBB == 0 {
			ml.PushBack(CreateMoveValue(SqE8, SqC8, LongCastle, Value(-5000)))
		}
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	piece := MakePiece(nextPlayer, King)
	gamePhase := p.GamePhase()
	kingSquareBb := p.PiecesBb(nextPlayer, King)
	fromSquare := kingSquareBb.PopLsb()

	pseudoMoves := GetPseudoAttacks(King, fromSquare)

	if mode&GenCap != 0 {
		captures := pseudoMoves & p.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			value := p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() +
				PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
		}
	}
	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ p.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
		}
	}
}

// generateMoves generates knight/bishop/rook/queen moves using the magic
// attack tables directly, rather than pseudo-attacks plus an Intermediate
// occupancy check: the magic tables already bake the blocker set in, so
// this avoids a redundant check for every slider move.
func (mg *Movegen) generateMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	gamePhase := p.GamePhase()
	occupiedBb := p.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt)
		piece := MakePiece(nextPlayer, pt)

		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb)

			if mode&GenCap != 0 {
				captures := moves & p.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					value := p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
				}
			}
			if mode&GenNonCap != 0 {
				nonCaptures := moves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, value))
				}
			}
		}
	}
}
