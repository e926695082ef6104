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

package types

import "fmt"

// MoveType distinguishes the eight kinds of move the engine can make. Unlike
// a coarse Normal/Promotion/EnPassant/Castling split, the promoted piece and
// the castling side are both folded directly into the type so callers never
// need a second field to know what a move does.
type MoveType uint8

const (
	Normal MoveType = iota
	ShortCastle
	LongCastle
	EnPassant
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
	moveTypeLength
)

func (t MoveType) IsValid() bool { return t < moveTypeLength }

// IsPromotion reports whether the move type promotes a pawn.
func (t MoveType) IsPromotion() bool {
	return t >= PromoteQueen && t <= PromoteKnight
}

// IsCastle reports whether the move type castles.
func (t MoveType) IsCastle() bool {
	return t == ShortCastle || t == LongCastle
}

// PromotionPieceType returns the piece type this move type promotes to.
// Only valid when IsPromotion is true.
func (t MoveType) PromotionPieceType() PieceType {
	switch t {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return PtNone
	}
}

// PromotionMoveType returns the move type that promotes to pt, or Normal if
// pt does not name a promotable piece.
func PromotionMoveType(pt PieceType) MoveType {
	switch pt {
	case Queen:
		return PromoteQueen
	case Rook:
		return PromoteRook
	case Bishop:
		return PromoteBishop
	case Knight:
		return PromoteKnight
	default:
		return Normal
	}
}

var moveTypeToString = [moveTypeLength]string{"Normal", "O-O", "O-O-O", "EnPassant", "=Q", "=R", "=B", "=N"}

func (t MoveType) String() string {
	if !t.IsValid() {
		panic(fmt.Sprintf("invalid move type %d", t))
	}
	return moveTypeToString[t]
}
