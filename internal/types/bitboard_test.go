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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBbHasExactlyOneBit(t *testing.T) {
	b := SqE4.Bb()
	assert.Equal(t, 1, b.PopCount())
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqD4))
}

func TestPushSquareAndPopSquare(t *testing.T) {
	b := BbZero
	b = PushSquare(b, SqA1)
	b = PushSquare(b, SqH8)
	assert.True(t, b.Has(SqA1))
	assert.True(t, b.Has(SqH8))

	b = PopSquare(b, SqA1)
	assert.False(t, b.Has(SqA1))
	assert.True(t, b.Has(SqH8))
}

func TestLsbAndMsbOnEmptyBitboard(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
}

func TestLsbMsbPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())

	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	assert.Equal(t, 2, b.PopCount())
	assert.False(t, b.Has(SqA1))
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 8, Rank1Bb.PopCount())
	assert.Equal(t, 8, FileABb.PopCount())
}

func TestFileBbAndRankBb(t *testing.T) {
	assert.Equal(t, FileEBb, SqE4.FileBb())
	assert.Equal(t, Rank4Bb, SqE4.RankBb())
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}

func TestGetAttacksBbKnightFromCorner(t *testing.T) {
	attacks := GetAttacksBb(Knight, SqA1, BbZero)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.Has(SqB3))
	assert.True(t, attacks.Has(SqC2))
}

func TestGetAttacksBbRookOnOpenFile(t *testing.T) {
	attacks := GetAttacksBb(Rook, SqA1, BbZero)
	assert.True(t, attacks.Has(SqA8))
	assert.True(t, attacks.Has(SqH1))
	assert.False(t, attacks.Has(SqB2))
}

func TestGetAttacksBbRookBlockedByOccupancy(t *testing.T) {
	occupied := SqA4.Bb()
	attacks := GetAttacksBb(Rook, SqA1, occupied)
	assert.True(t, attacks.Has(SqA2))
	assert.True(t, attacks.Has(SqA3))
	assert.True(t, attacks.Has(SqA4))
	assert.False(t, attacks.Has(SqA5))
}

func TestGetAttacksBbPanicsOnPawn(t *testing.T) {
	assert.Panics(t, func() { GetAttacksBb(Pawn, SqE4, BbZero) })
}

func TestIntermediateBetweenSquares(t *testing.T) {
	between := Intermediate(SqA1, SqA4)
	assert.True(t, between.Has(SqA2))
	assert.True(t, between.Has(SqA3))
	assert.False(t, between.Has(SqA1))
	assert.False(t, between.Has(SqA4))

	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3))
}
