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

// see computes the Static Exchange Evaluation of move: the material balance
// after every possible recapture on move's destination square resolves,
// least-valuable-attacker-first. A positive value means the capturing side
// comes out ahead even after all recaptures.
func see(p *position.Position, move Move) Value {
	if move.MoveType() == EnPassant {
		return 100
	}

	var gain [32]Value

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.GetPiece(fromSquare)
	nextPlayer := p.NextPlayer()

	occupied := p.OccupiedAll()
	remainingAttacks := AttacksTo(p, toSquare, White) | AttacksTo(p, toSquare, Black)

	gain[ply] = p.GetPiece(toSquare).ValueOf()

	for {
		ply++
		nextPlayer = nextPlayer.Flip()

		if move.MoveType().IsPromotion() {
			gain[ply] = move.MoveType().PromotionPieceType().ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.ValueOf() - gain[ply-1]
		}

		if seeMax(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		remainingAttacks.PopSquare(fromSquare)
		occupied.PopSquare(fromSquare)

		remainingAttacks |= revealedAttacks(p, toSquare, occupied, White) |
			revealedAttacks(p, toSquare, occupied, Black)

		fromSquare = getLeastValuablePiece(p, remainingAttacks, nextPlayer)
		if fromSquare == SqNone {
			break
		}

		movedPiece = p.GetPiece(fromSquare)
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -seeMax(-gain[ply-1], gain[ply])
		ply--
	}

	return gain[0]
}

// AttacksTo returns every square occupied by a color piece that attacks
// square, given the current occupancy. En passant is deliberately excluded:
// the move preceding an en passant capture is never itself a capture, so it
// never participates in a SEE exchange.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupied := p.OccupiedAll()
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupied) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupied) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))
}

// revealedAttacks returns the slider attacks on square that only exist once
// occupied has had an attacker's square cleared - an x-ray revealed behind
// the piece that just "moved" in the simulated exchange.
func revealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}

// getLeastValuablePiece returns the cheapest attacker of color in bitboard,
// breaking ties by least-significant-bit square.
var seeAttackerOrder = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func getLeastValuablePiece(p *position.Position, bitboard Bitboard, color Color) Square {
	for _, pt := range seeAttackerOrder {
		if attackers := bitboard & p.PiecesBb(color, pt); attackers != BbZero {
			return attackers.Lsb()
		}
	}
	return SqNone
}

func seeMax(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
