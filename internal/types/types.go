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

// Package types contains the fundamental value types shared by every layer of
// the engine: squares, files, ranks, pieces, moves, bitboards and the magic
// bitboard attack tables. Most of these would be plain enums in a language
// that has them; Go does not, so they are small integer types with named
// constants and methods.
package types

import (
	corelog "github.com/lkaiser/corechess/internal/logging"
)

var log = corelog.GetLog("types")

var initialized = false

func init() {
	if initialized {
		return
	}
	log.Debug("initializing precomputed data tables")
	initSquareTo()
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth the engine will ever reach;
	// per-ply arrays (PV, move generators, killer tables) are sized to it.
	MaxDepth = 128

	// MaxMoves bounds the move and unmake history arrays for a single game.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is 1024 KB.
	MB uint64 = KB * KB
	// GB is 1024 MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value, derived from the
	// non-pawn, non-king material still on the board.
	GamePhaseMax = 24
)
