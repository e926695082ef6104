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

func TestMakeSquareParsesAlgebraicNotation(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare(""))
	assert.Equal(t, SqNone, MakeSquare("i4"))
	assert.Equal(t, SqNone, MakeSquare("e9"))
}

func TestSquareOfRoundTripsFileOfRankOf(t *testing.T) {
	for _, sq := range []Square{SqA1, SqH1, SqA8, SqH8, SqE4, SqD5} {
		assert.Equal(t, sq, SquareOf(sq.FileOf(), sq.RankOf()))
	}
}

func TestSquareOfRejectsOutOfRangeFileOrRank(t *testing.T) {
	assert.Equal(t, SqNone, SquareOf(File(8), Rank(0)))
	assert.Equal(t, SqNone, SquareOf(File(0), Rank(8)))
}

func TestMakePieceRoundTripsColorOfTypeOf(t *testing.T) {
	assert.Equal(t, WhiteKing, MakePiece(White, King))
	assert.Equal(t, BlackKnight, MakePiece(Black, Knight))
	assert.Equal(t, White, WhiteKing.ColorOf())
	assert.Equal(t, Knight, BlackKnight.TypeOf())
}

func TestPieceValueOfMatchesMaterialTable(t *testing.T) {
	assert.EqualValues(t, 2000, WhiteKing.ValueOf())
	assert.EqualValues(t, 100, WhitePawn.ValueOf())
	assert.EqualValues(t, 320, BlackKnight.ValueOf())
	assert.EqualValues(t, 330, WhiteBishop.ValueOf())
	assert.EqualValues(t, 500, BlackRook.ValueOf())
	assert.EqualValues(t, 900, WhiteQueen.ValueOf())
}

func TestPieceFromCharParsesFenLetters(t *testing.T) {
	assert.Equal(t, PieceNone, PieceFromChar(""))
	assert.Equal(t, PieceNone, PieceFromChar("xx"))
	assert.Equal(t, PieceNone, PieceFromChar("-"))
	assert.Equal(t, WhiteKing, PieceFromChar("K"))
	assert.Equal(t, BlackKing, PieceFromChar("k"))
	assert.Equal(t, WhiteKnight, PieceFromChar("N"))
	assert.Equal(t, BlackQueen, PieceFromChar("q"))
}

func TestPieceStringRoundTripsWithPieceFromChar(t *testing.T) {
	for _, p := range []Piece{WhiteKing, WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen,
		BlackKing, BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen} {
		assert.Equal(t, p, PieceFromChar(p.String()))
	}
}
