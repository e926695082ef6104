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

import (
	"fmt"
	"strings"

	"github.com/lkaiser/corechess/internal/assert"
)

// Move packs a chess move and an optional search sort value into a single
// scalar so move lists are plain slices of a primitive type with no pointer
// chasing.
//
//	BITMAP 32-bit
//	|-value ------------------------|-Move -------------------------|
//	3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//	1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	--------------------------------|--------------------------------
//	                                |                     1 1 1 1 1 1  to
//	                                |         1 1 1 1 1 1              from
//	                                |   1 1 1                          move type (0-7)
//	1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 |                                  move sort value
//
// The move type alone carries promotion piece and castle side, so there is
// no separate promotion-type field the way a coarser MoveType encoding needs.
type Move uint32

// MoveNone is the zero value: never a legal move, used as a sentinel.
const MoveNone Move = 0

// CreateMove encodes a move with no sort value.
func CreateMove(from, to Square, t MoveType) Move {
	return Move(to) | Move(from)<<fromShift | Move(t)<<typeShift
}

// CreateMoveValue encodes a move together with a sort value used to order
// move lists during search.
func CreateMoveValue(from, to Square, t MoveType, value Value) Move {
	return Move(value-ValueNA)<<valueShift |
		Move(to) |
		Move(from)<<fromShift |
		Move(t)<<typeShift
}

// MoveType returns the move's type.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips the sort value, leaving only the move-identity bits. Two
// moves with the same From/To/MoveType but different sort values compare
// equal after MoveOf.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the move's sort value, or ValueNA if none was set.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue encodes v as the move's sort value. A no-op on MoveNone.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "invalid value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&moveMask | Move(v-ValueNA)<<valueShift
	return *m
}

// IsValid reports whether the move has valid squares and move type.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%-9s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.ValueOf(), m)
}

// StringUci renders the move in UCI's long algebraic form, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType().IsPromotion() {
		sb.WriteString(strings.ToLower(m.MoveType().PromotionPieceType().Char()))
	}
	return sb.String()
}

// StringBits renders the raw bit layout, useful when debugging encoding bugs.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Type[%-0.3b](%s) value[%-0.16b](%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(), m.ValueOf(),
		m)
}

const (
	fromShift  uint = 6
	typeShift  uint = 12
	valueShift uint = 16

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	moveTypeMask Move = 7 << typeShift
	moveMask     Move = 0xFFFF
	valueMask    Move = 0xFFFF << valueShift
)
