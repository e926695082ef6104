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
	"regexp"
	"strings"

	. "github.com/lkaiser/corechess/internal/types"
)

// regex for the piece-placement field of a FEN
var regexFenPos = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)

// regex for the side-to-move field of a FEN
var regexWorB = regexp.MustCompile(`^[wb]$`)

// regex for the castling-availability field of a FEN
var regexCastlingRights = regexp.MustCompile(`^(K?Q?k?q?|-)$`)

// regex for the en passant field of a FEN
var regexEnPassant = regexp.MustCompile(`^([a-h][1-8]|-)$`)

// regex for UCI long algebraic notation, e.g. "e2e4" or "e7e8q"
var regexUciMove = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// regex for standard algebraic notation, e.g. "Nf3", "exd5", "O-O", "e8=Q+"
var regexSanMove = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?[!?+#]*$`)

// MoveFromUci matches uci against legalMoves (the position's full legal move
// list, generated by the caller) and returns the matching move, or MoveNone
// if uci does not parse or has no match. Takes the legal move list as a
// parameter rather than generating it itself so this package has no
// dependency on internal/movegen.
func MoveFromUci(legalMoves []Move, uci string) Move {
	matches := regexUciMove.FindStringSubmatch(uci)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := strings.ToUpper(matches[2])
	for _, m := range legalMoves {
		if m.StringUci() == strings.ToLower(movePart+promotionPart) {
			return m
		}
	}
	return MoveNone
}

// MoveFromSan matches san against legalMoves (the position's full legal move
// list, generated by the caller) and returns the matching move, or MoveNone
// if san does not parse, is ambiguous, or has no match.
func MoveFromSan(p *Position, legalMoves []Move, san string) Move {
	matches := regexSanMove.FindStringSubmatch(san)
	if matches == nil {
		return MoveNone
	}

	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]

	found := MoveNone
	count := 0

	for _, m := range legalMoves {
		if m.MoveType().IsCastle() {
			var castleStr string
			switch m.To() {
			case SqG1, SqG8:
				castleStr = "O-O"
			case SqC1, SqC8:
				castleStr = "O-O-O"
			default:
				continue
			}
			if castleStr == toSquare {
				found = m
				count++
			}
			continue
		}

		if m.To().String() != toSquare {
			continue
		}

		legalPt := p.GetPiece(m.From()).TypeOf()
		legalPtChar := legalPt.Char()
		if (len(pieceType) == 0 || legalPtChar != pieceType) &&
			(len(pieceType) != 0 || legalPt != Pawn) {
			continue
		}
		if len(disambFile) != 0 && m.From().FileOf().String() != disambFile {
			continue
		}
		if len(disambRank) != 0 && m.From().RankOf().String() != disambRank {
			continue
		}
		if (len(promotion) != 0 && (!m.MoveType().IsPromotion() || m.MoveType().PromotionPieceType().Char() != promotion)) ||
			(len(promotion) == 0 && m.MoveType().IsPromotion()) {
			continue
		}

		found = m
		count++
	}

	if count != 1 {
		return MoveNone
	}
	return found
}
