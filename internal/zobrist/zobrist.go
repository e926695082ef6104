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

// Package zobrist holds the random key tables a Position XORs incrementally
// on every make/unmake to maintain its hash, plus the narrower pawn+king key
// used by the pawn-structure cache.
package zobrist

import "github.com/lkaiser/corechess/internal/types"

// Key is a 64-bit Zobrist hash.
type Key uint64

// Table holds one draw of random keys for every piece/square combination,
// castling-rights state, en-passant file and side to move. A Position XORs
// entries in and out as it makes and unmakes moves rather than recomputing
// its key from scratch.
type Table struct {
	pieces         [types.PieceLength][types.SqLength]Key
	castlingRights [types.CastlingRightsLength]Key
	enPassantFile  [8]Key
	nextPlayer     Key
}

// Base is the single table used by every Position in the process. Keys are
// only meaningful within one run: nothing persists them across processes, so
// reproducibility across runs is not a goal, only determinism within one.
var Base = newTable()

func newTable() *Table {
	t := &Table{}
	r := &keyRand{s: 1070372}
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			t.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingNone; cr < types.CastlingRightsLength; cr++ {
		t.castlingRights[cr] = Key(r.rand64())
	}
	for f := types.FileA; f <= types.FileH; f++ {
		t.enPassantFile[f] = Key(r.rand64())
	}
	t.nextPlayer = Key(r.rand64())
	return t
}

// Piece returns the key contribution of piece pc standing on sq.
func (t *Table) Piece(pc types.Piece, sq types.Square) Key {
	return t.pieces[pc][sq]
}

// CastlingRights returns the key contribution of a given castling-rights
// state. Callers XOR the outgoing state out and the incoming state in.
func (t *Table) CastlingRights(cr types.CastlingRights) Key {
	return t.castlingRights[cr]
}

// EnPassantFile returns the key contribution of an en-passant capture being
// available on file f.
func (t *Table) EnPassantFile(f types.File) Key {
	return t.enPassantFile[f]
}

// NextPlayer is XORed in on every ply to distinguish positions that differ
// only in side to move.
func (t *Table) NextPlayer() Key {
	return t.nextPlayer
}

// IsPawnOrKingKey reports whether pc contributes to the narrower pawn+king
// key the pawn-structure cache is keyed on. Kings are included because king
// position drives pawn shelter/shield scoring, which the pawn cache also
// stores.
func IsPawnOrKingKey(pc types.Piece) bool {
	pt := pc.TypeOf()
	return pt == types.Pawn || pt == types.King
}

// PawnKingKey recomputes the pawn+king key from scratch given a callback
// that reports which piece (if any) occupies each square. Used to seed a
// Position's incremental pawnKey when a position is set up from FEN.
func PawnKingKey(pieceAt func(types.Square) types.Piece) Key {
	var key Key
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		pc := pieceAt(sq)
		if pc != types.PieceNone && IsPawnOrKingKey(pc) {
			key ^= Base.Piece(pc, sq)
		}
	}
	return key
}

// keyRand is the xorshift64star generator used to draw the table's random
// keys. Kept distinct from the magic-number search PRNG in internal/types
// since the two are drawn at different times for different purposes and
// have no reason to share state.
type keyRand struct {
	s uint64
}

func (r *keyRand) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
