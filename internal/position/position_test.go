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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/lkaiser/corechess/internal/types"
)

func TestNewPositionIsStartPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.StringFen())
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, WhiteKing, p.GetPiece(SqE1))
	assert.Equal(t, BlackKing, p.GetPiece(SqE8))
}

func TestNewPositionFenRejectsInvalidFen(t *testing.T) {
	p, err := NewPositionFen("not a fen")
	assert.Nil(t, p)
	assert.Error(t, err)
}

func TestNewPositionFenRoundTripsThroughStringFen(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := NewPositionFen(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.StringFen())
}

func TestDoMoveThenUndoMoveRestoresPosition(t *testing.T) {
	p := NewPosition()
	before := p.StringFen()
	beforeKey := p.ZobristKey()

	move := CreateMove(SqE2, SqE4, Normal)
	p.DoMove(move)
	assert.NotEqual(t, before, p.StringFen())
	assert.Equal(t, Black, p.NextPlayer())

	p.UndoMove()
	assert.Equal(t, before, p.StringFen())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestDoMoveSetsEnPassantSquareOnDoublePawnPush(t *testing.T) {
	p := NewPosition()
	p.DoMove(CreateMove(SqE2, SqE4, Normal))
	assert.Equal(t, SqE3, p.GetEnPassantSquare())
}

func TestDoMoveEnPassantCapturesThePassedPawn(t *testing.T) {
	p, err := NewPositionFen("6k1/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE5, SqD6, EnPassant))
	assert.Equal(t, PieceNone, p.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, p.GetPiece(SqD6))
}

func TestDoMoveCastlingMovesBothKingAndRook(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE1, SqG1, ShortCastle))
	assert.Equal(t, WhiteKing, p.GetPiece(SqG1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.Equal(t, PieceNone, p.GetPiece(SqE1))
	assert.Equal(t, PieceNone, p.GetPiece(SqH1))
}

func TestDoMoveCastlingRemovesBothCastlingRights(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE1, SqG1, ShortCastle))
	assert.Equal(t, CastlingBlack, p.CastlingRights())
}

func TestDoMovePromotionReplacesThePawn(t *testing.T) {
	p, err := NewPositionFen("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE7, SqE8, PromoteQueen))
	assert.Equal(t, WhiteQueen, p.GetPiece(SqE8))
	assert.Equal(t, PieceNone, p.GetPiece(SqE7))
}

func TestHasCheckDetectsRookCheck(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasCheck())

	p2, err := NewPositionFen("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, p2.HasCheck())
}

func TestIsCapturingMove(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, p.IsCapturingMove(CreateMove(SqE4, SqD5, Normal)))
	assert.False(t, p.IsCapturingMove(CreateMove(SqE1, SqE2, Normal)))
}

func TestHasInsufficientMaterialKingVsKing(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithRook(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	p := NewPosition()
	clone := p.Clone()

	clone.DoMove(CreateMove(SqE2, SqE4, Normal))
	assert.Equal(t, StartFen, p.StringFen())
	assert.NotEqual(t, StartFen, clone.StringFen())
}

func TestLastMoveAndLastCapturedPiece(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, MoveNone, p.LastMove())
	move := CreateMove(SqE4, SqD5, Normal)
	p.DoMove(move)
	assert.Equal(t, move.MoveOf(), p.LastMove().MoveOf())
	assert.Equal(t, BlackPawn, p.LastCapturedPiece())
	assert.True(t, p.WasCapturingMove())
}

func TestDoNullMoveFlipsSideToMoveAndClearsEnPassant(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	key := p.ZobristKey()
	p.DoNullMove()
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())

	p.UndoNullMove()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, SqD6, p.GetEnPassantSquare())
	assert.Equal(t, key, p.ZobristKey())
}

func TestCheckRepetitionsDetectsThreefold(t *testing.T) {
	p := NewPosition()
	knightOut := CreateMove(SqG1, SqF3, Normal)
	knightBack := CreateMove(SqF3, SqG1, Normal)
	blackOut := CreateMove(SqG8, SqF6, Normal)
	blackBack := CreateMove(SqF6, SqG8, Normal)

	for i := 0; i < 2; i++ {
		p.DoMove(knightOut)
		p.DoMove(blackOut)
		p.DoMove(knightBack)
		p.DoMove(blackBack)
	}
	assert.True(t, p.CheckRepetitions(2))
}
