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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lkaiser/corechess/internal/types"
)

func TestPieceKeysAreDistinctAcrossSquaresAndPieces(t *testing.T) {
	seen := make(map[Key]bool)
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			key := Base.Piece(pc, sq)
			assert.False(t, seen[key], "duplicate key for piece %v on %v", pc, sq)
			seen[key] = true
		}
	}
}

func TestCastlingRightsKeysAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for cr := types.CastlingNone; cr < types.CastlingRightsLength; cr++ {
		key := Base.CastlingRights(cr)
		assert.False(t, seen[key], "duplicate key for castling rights %v", cr)
		seen[key] = true
	}
}

func TestEnPassantFileKeysAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for f := types.FileA; f <= types.FileH; f++ {
		key := Base.EnPassantFile(f)
		assert.False(t, seen[key], "duplicate key for file %v", f)
		seen[key] = true
	}
}

func TestIsPawnOrKingKey(t *testing.T) {
	assert.True(t, IsPawnOrKingKey(types.WhitePawn))
	assert.True(t, IsPawnOrKingKey(types.BlackKing))
	assert.False(t, IsPawnOrKingKey(types.WhiteQueen))
	assert.False(t, IsPawnOrKingKey(types.BlackKnight))
}

func TestPawnKingKeyOnlyCountsPawnsAndKings(t *testing.T) {
	board := map[types.Square]types.Piece{
		types.SqE1: types.WhiteKing,
		types.SqE8: types.BlackKing,
		types.SqE2: types.WhitePawn,
		types.SqD8: types.BlackQueen,
	}
	pieceAt := func(sq types.Square) types.Piece {
		if pc, ok := board[sq]; ok {
			return pc
		}
		return types.PieceNone
	}

	key := PawnKingKey(pieceAt)
	expected := Base.Piece(types.WhiteKing, types.SqE1) ^
		Base.Piece(types.BlackKing, types.SqE8) ^
		Base.Piece(types.WhitePawn, types.SqE2)
	assert.Equal(t, expected, key)
}

func TestNextPlayerKeyIsNonZero(t *testing.T) {
	assert.NotZero(t, Base.NextPlayer())
}
