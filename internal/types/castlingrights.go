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

import "strings"

// CastlingRights is a bitmask of the four individual castling availabilities.
type CastlingRights uint8

const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO     CastlingRights = CastlingWhiteOO << 1
	CastlingWhite        CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO      CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO     CastlingRights = CastlingBlackOO << 1
	CastlingBlack        CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny          CastlingRights = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether any of rhs's bits is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears rhs's bits from cr and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets rhs's bits on cr and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// Coarse collapses the per-side rights into the spec's {NONE,SHORT,LONG,ALL}
// view for the given color.
type CastlingSide uint8

const (
	CastleNone CastlingSide = iota
	CastleShort
	CastleLong
	CastleBoth
)

// Coarse returns the coarse castling availability for color c.
func (cr CastlingRights) Coarse(c Color) CastlingSide {
	var oo, ooo CastlingRights
	if c == White {
		oo, ooo = CastlingWhiteOO, CastlingWhiteOOO
	} else {
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
	}
	switch {
	case cr.Has(oo) && cr.Has(ooo):
		return CastleBoth
	case cr.Has(oo):
		return CastleShort
	case cr.Has(ooo):
		return CastleLong
	default:
		return CastleNone
	}
}

// String renders the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteString("q")
	}
	return b.String()
}
