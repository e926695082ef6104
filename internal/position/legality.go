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

package position

import (
	. "github.com/lkaiser/corechess/internal/types"
)

// IsAttacked reports whether sq is attacked by a piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) ||
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) {
		return true
	}

	occupied := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occupied)&p.piecesBb[by][Bishop] > 0 ||
		GetAttacksBb(Rook, sq, occupied)&p.piecesBb[by][Rook] > 0 ||
		GetAttacksBb(Queen, sq, occupied)&p.piecesBb[by][Queen] > 0 {
		return true
	}

	if p.enPassantSquare != SqNone {
		switch by {
		case White:
			if p.board[p.enPassantSquare.To(South)] == BlackPawn &&
				p.enPassantSquare.To(South) == sq {
				if p.board[sq.To(West)] == WhitePawn {
					return true
				}
				return p.board[sq.To(East)] == WhitePawn
			}
		case Black:
			if p.board[p.enPassantSquare.To(North)] == WhitePawn &&
				p.enPassantSquare.To(North) == sq {
				if p.board[sq.To(West)] == BlackPawn {
					return true
				}
				return p.board[sq.To(East)] == BlackPawn
			}
		}
	}
	return false
}

// isCastleTransitAttacked reports whether the opponent attacks any square
// the king crosses (from-square included) while making the castling move m.
func (p *Position) isCastleTransitAttacked(m Move) bool {
	opponent := p.nextPlayer.Flip()
	if p.IsAttacked(m.From(), opponent) {
		return true
	}
	switch m.To() {
	case SqG1:
		return p.IsAttacked(SqF1, opponent)
	case SqC1:
		return p.IsAttacked(SqD1, opponent)
	case SqG8:
		return p.IsAttacked(SqF8, opponent)
	case SqC8:
		return p.IsAttacked(SqD8, opponent)
	default:
		return false
	}
}

// IsLegalMove reports whether move is legal on the current position: the
// king may not pass through or land on an attacked square while castling,
// and may not be left in check after the move.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType().IsCastle() && p.isCastleTransitAttacked(move) {
		return false
	}
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove reports whether the last move made (if any) was legal: the
// moving side's king must not now be in check, and if the last move
// castled, the king must not have crossed an attacked square.
func (p *Position) WasLegalMove() bool {
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return false
	}
	if p.historyCounter > 0 {
		move := p.history[p.historyCounter-1].move
		if move.MoveType().IsCastle() {
			opponent := p.nextPlayer
			if p.IsAttacked(move.From(), opponent) {
				return false
			}
			switch move.To() {
			case SqG1:
				if p.IsAttacked(SqF1, opponent) {
					return false
				}
			case SqC1:
				if p.IsAttacked(SqD1, opponent) {
					return false
				}
			case SqG8:
				if p.IsAttacked(SqF8, opponent) {
					return false
				}
			case SqC8:
				if p.IsAttacked(SqD8, opponent) {
					return false
				}
			}
		}
	}
	return true
}
