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

// File represents a board file a-h.
type File uint8

const (
	FileA    File = 0
	FileB    File = 1
	FileC    File = 2
	FileD    File = 3
	FileE    File = 4
	FileF    File = 5
	FileG    File = 6
	FileH    File = 7
	FileNone File = 8
	FileLength    = FileNone
)

func (f File) IsValid() bool { return f < FileNone }

const fileLabels = "abcdefgh"

func (f File) String() string {
	if f > FileH {
		return "-"
	}
	return string(fileLabels[f])
}

// Rank represents a board rank 1-8.
type Rank uint8

const (
	Rank1      Rank = 0
	Rank2      Rank = 1
	Rank3      Rank = 2
	Rank4      Rank = 3
	Rank5      Rank = 4
	Rank6      Rank = 5
	Rank7      Rank = 6
	Rank8      Rank = 7
	RankNone   Rank = 8
	RankLength      = RankNone
)

func (r Rank) IsValid() bool { return r < RankNone }

const rankLabels = "12345678"

func (r Rank) String() string {
	if r > Rank8 {
		return "-"
	}
	return string(rankLabels[r])
}

// Direction is an offset used to step a Square across the board.
type Direction int8

const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// Directions lists all eight in the order the Square.To lookup table uses.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Color is White or Black.
type Color uint8

const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposing color.
func (c Color) Flip() Color { return c ^ 1 }

func (c Color) IsValid() bool { return c < 2 }

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var moveDirectionFactor = [2]int{1, -1}

// Direction returns +1 for White, -1 for Black.
func (c Color) Direction() int { return moveDirectionFactor[c] }

var pawnDir = [2]Direction{North, South}

// MoveDirection returns the forward direction of a pawn of this color.
func (c Color) MoveDirection() Direction { return pawnDir[c] }

var promRankBb = [2]Bitboard{Rank8Bb, Rank1Bb}

// PromotionRankBb returns the rank this color's pawns promote on.
func (c Color) PromotionRankBb() Bitboard { return promRankBb[c] }

var pawnDoubleRankBb = [2]Bitboard{Rank3Bb, Rank6Bb}

// PawnDoubleRank returns the rank a pawn of this color passes over on a
// double push: rank 3 for White, rank 6 for Black.
func (c Color) PawnDoubleRank() Bitboard { return pawnDoubleRankBb[c] }

// Square is one of the 64 board squares, SqA1..SqH8, or SqNone.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

func (sq Square) IsValid() bool { return sq < SqNone }

// FileOf returns the file the square sits on.
func (sq Square) FileOf() File { return File(sq & 7) }

// RankOf returns the rank the square sits on.
func (sq Square) RankOf() Rank { return Rank(sq >> 3) }

// MakeSquare parses a two-character algebraic square name, returning SqNone
// if s does not name a valid square.
func MakeSquare(s string) Square {
	if len(s) < 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf combines a file and rank into a square, or SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// To returns the square reached by stepping one square in direction d, or
// SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [64][8]Square

func initSquareTo() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.toPrecompute(dir)
		}
	}
}

func (sq Square) toPrecompute(d Direction) Square {
	switch d {
	case North, South:
		sq += Square(d)
	case East, Northeast, Southeast:
		if sq.FileOf() < FileH {
			sq += Square(d)
		} else {
			return SqNone
		}
	case West, Southwest, Northwest:
		if sq.FileOf() > FileA {
			sq += Square(d)
		} else {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if sq.IsValid() {
		return sq
	}
	return SqNone
}

// PieceType is a piece kind without color. Bit 0b0100 marks sliding pieces
// (bishop, rook, queen).
type PieceType uint8

const (
	PtNone   PieceType = 0b0000
	King     PieceType = 0b0001
	Pawn     PieceType = 0b0010
	Knight   PieceType = 0b0011
	Bishop   PieceType = 0b0100
	Rook     PieceType = 0b0101
	Queen    PieceType = 0b0110
	PtLength PieceType = 0b0111
)

func (pt PieceType) IsValid() bool { return pt < 7 }

var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue is this piece type's weight toward the game-phase score.
func (pt PieceType) GamePhaseValue() int { return gamePhaseValue[pt] }

var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf is this piece type's static material value in centipawns.
func (pt PieceType) ValueOf() Value { return pieceTypeValue[pt] }

var pieceTypeToString = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

func (pt PieceType) String() string { return pieceTypeToString[pt] }

const pieceTypeToChar = "-KPNBRQ"

// Char returns the single uppercase FEN-style letter for the piece type.
func (pt PieceType) Char() string { return string(pieceTypeToChar[pt]) }

// Piece is a colored piece: PieceNone, or color<<3 | PieceType.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

func (p Piece) ColorOf() Color   { return Color(p >> 3) }
func (p Piece) TypeOf() PieceType { return PieceType(p & 7) }

// ValueOf is the static material value of the piece's type.
func (p Piece) ValueOf() Value { return pieceTypeValue[p.TypeOf()] }

const pieceToStringChars = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter, returning PieceNone on
// anything else.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	for i := 0; i < len(pieceToStringChars); i++ {
		if pieceToStringChars[i] == s[0] {
			return Piece(i)
		}
	}
	return PieceNone
}

func (p Piece) String() string { return string(pieceToStringChars[p]) }

var pieceToUnicode = []string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-", " ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// UniChar returns a unicode glyph for the piece.
func (p Piece) UniChar() string { return pieceToUnicode[p] }
