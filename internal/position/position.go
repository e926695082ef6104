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

// Package position represents a chess position as an 8x8 piece board kept in
// sync with per-color/per-type bitboards, a fixed-capacity history array for
// make/unmake, and an incrementally maintained Zobrist key, material score
// and piece-square score.
//
// Create an instance with NewPosition (start position) or NewPositionFen.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/lkaiser/corechess/internal/assert"
	corelog "github.com/lkaiser/corechess/internal/logging"
	. "github.com/lkaiser/corechess/internal/types"
	"github.com/lkaiser/corechess/internal/zobrist"
)

var log *logging.Logger = corelog.GetLog("position")

// StartFen is the FEN of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position represents one chess position. It is not safe for concurrent use;
// callers needing independent searches on the same starting position should
// create one Position per goroutine (e.g. via Clone).
type Position struct {
	zobristKey Key
	pawnKey    Key

	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	historyCounter int
	history        [maxHistory]historyState

	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	psqMidValue     [ColorLength]Value
	psqEndValue     [ColorLength]Value
	gamePhase       int

	hasCheckFlag int
}

type historyState struct {
	zobristKey      Key
	pawnKey         Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enpassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

const maxHistory int = MaxMoves

// state flag for the cached HasCheck result
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

// Key aliases zobrist.Key so callers of this package need not import
// internal/zobrist just to name a position's hash.
type Key = zobrist.Key

// NewPosition creates a position. With no argument it is the start
// position; an extra fen string argument overrides it. For an invalid fen
// it returns nil without the error — use NewPositionFen to observe it.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a position from fen, or returns nil and an error if
// fen does not parse.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// Clone returns an independent copy of p, suitable for handing to a search
// goroutine that will make and unmake moves of its own.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// DoMove commits m to the board. The caller is responsible for only ever
// passing a legal (or at least pseudo-legal) move; DoMove does not validate
// legality itself — see IsLegalMove.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "Position DoMove: piece to move does not belong to next player %s", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "Position DoMove: king cannot be captured, target piece is %s", targetPc.String())
	}

	h := p.historyCounter
	p.history[h].zobristKey = p.zobristKey
	p.history[h].pawnKey = p.pawnKey
	p.history[h].move = m
	p.history[h].fromPiece = fromPc
	p.history[h].capturedPiece = targetPc
	p.history[h].castlingRights = p.castlingRights
	p.history[h].enpassantSquare = p.enPassantSquare
	p.history[h].halfMoveClock = p.halfMoveClock
	p.history[h].hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case ShortCastle, LongCastle:
		p.doCastlingMove(m.MoveType(), fromPc, myColor, toSq, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromPc, fromSq)
	default: // promotions
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	}

	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.Base.NextPlayer()
}

// UndoMove restores the position to the state before the last DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: cannot undo initial position")
	}

	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	h := p.historyCounter
	move := p.history[h].move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if p.history[h].capturedPiece != PieceNone {
			p.putPiece(p.history[h].capturedPiece, move.To())
		}
	case ShortCastle, LongCastle:
		p.movePiece(move.To(), move.From()) // king
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		default:
			panic("Position UndoMove: invalid castle target square")
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	default: // promotions
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if p.history[h].capturedPiece != PieceNone {
			p.putPiece(p.history[h].capturedPiece, move.To())
		}
	}

	p.castlingRights = p.history[h].castlingRights
	p.enPassantSquare = p.history[h].enpassantSquare
	p.halfMoveClock = p.history[h].halfMoveClock
	p.hasCheckFlag = p.history[h].hasCheckFlag
	p.zobristKey = p.history[h].zobristKey
	p.pawnKey = p.history[h].pawnKey
}

// DoNullMove flips the side to move without making a move on the board, used
// by null-move pruning. The external view of the position (FEN, Zobrist key)
// is unchanged once UndoNullMove is called, even though the board itself was
// momentarily in a different state (en passant cleared) in between.
func (p *Position) DoNullMove() {
	h := p.historyCounter
	p.history[h].zobristKey = p.zobristKey
	p.history[h].pawnKey = p.pawnKey
	p.history[h].move = MoveNone
	p.history[h].fromPiece = PieceNone
	p.history[h].capturedPiece = PieceNone
	p.history[h].castlingRights = p.castlingRights
	p.history[h].enpassantSquare = p.enPassantSquare
	p.history[h].halfMoveClock = p.halfMoveClock
	p.history[h].hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	p.hasCheckFlag = flagTBD
	p.clearEnPassant()
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.Base.NextPlayer()
}

// UndoNullMove restores the state from before DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	h := p.historyCounter
	p.castlingRights = p.history[h].castlingRights
	p.enPassantSquare = p.history[h].enpassantSquare
	p.halfMoveClock = p.history[h].halfMoveClock
	p.hasCheckFlag = p.history[h].hasCheckFlag
	p.zobristKey = p.history[h].zobristKey
	p.pawnKey = p.history[h].pawnKey
}

// HasCheck reports whether the side to move is in check. The result is
// cached for the current position, so repeated calls are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove reports whether move captures a piece on this position,
// including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// CheckRepetitions reports whether the current position has occurred reps
// times earlier in the game's history (so reps==2 tests for 3-fold
// repetition including the current occurrence).
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
		}
		if counter >= reps {
			return true
		}
		i -= 2
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough material
// to force a mate. This does not rule out a helpmate the opponent would have
// to cooperate in.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() == 0 && p.piecesBb[Black][Pawn].PopCount() == 0 {
		if p.materialNonPawn[White] < 400 && p.materialNonPawn[Black] < 400 {
			return true
		}
		if (p.materialNonPawn[White] == 2*Knight.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Knight.ValueOf() && p.materialNonPawn[White] <= Bishop.ValueOf()) {
			return true
		}
		if (p.materialNonPawn[White] == 2*Bishop.ValueOf() && p.materialNonPawn[Black] == Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Bishop.ValueOf() && p.materialNonPawn[White] == Bishop.ValueOf()) {
			return true
		}
		if p.materialNonPawn[White] == 2*Bishop.ValueOf() || p.materialNonPawn[Black] == 2*Bishop.ValueOf() {
			return false
		}
		if (p.materialNonPawn[White] < 2*Bishop.ValueOf() && p.materialNonPawn[Black] > 0 && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[White] > 0 && p.materialNonPawn[White] <= Bishop.ValueOf() && p.materialNonPawn[Black] < 2*Bishop.ValueOf()) {
			return true
		}
	}
	return false
}

// GivesCheck reports whether move would give check to the opponent if
// played on the current position.
func (p *Position) GivesCheck(move Move) bool {
	us := p.nextPlayer
	them := us.Flip()
	kingSq := p.kingSquare[them]

	fromSq := move.From()
	toSq := move.To()
	fromPc := p.board[fromSq]
	fromPt := fromPc.TypeOf()
	epTargetSq := SqNone
	moveType := move.MoveType()

	switch {
	case moveType.IsPromotion():
		fromPt = moveType.PromotionPieceType()
	case moveType.IsCastle():
		fromPt = Rook
		switch toSq {
		case SqG1:
			toSq = SqF1
		case SqC1:
			toSq = SqD1
		case SqG8:
			toSq = SqF8
		case SqC8:
			toSq = SqD8
		}
	case moveType == EnPassant:
		epTargetSq = toSq.To(them.MoveDirection())
	}

	boardAfterMove := p.OccupiedAll()
	boardAfterMove.PopSquare(fromSq)
	boardAfterMove.PushSquare(toSq)
	if moveType == EnPassant {
		boardAfterMove.PopSquare(epTargetSq)
	}

	switch fromPt {
	case Pawn:
		if GetPawnAttacks(us, toSq).Has(kingSq) {
			return true
		}
	case King:
		// a king move can never give direct check
	default:
		if GetAttacksBb(fromPt, toSq, boardAfterMove).Has(kingSq) {
			return true
		}
	}

	switch {
	case GetAttacksBb(Bishop, kingSq, boardAfterMove)&p.piecesBb[us][Bishop] > 0:
		return true
	case GetAttacksBb(Rook, kingSq, boardAfterMove)&p.piecesBb[us][Rook] > 0:
		return true
	case GetAttacksBb(Queen, kingSq, boardAfterMove)&p.piecesBb[us][Queen] > 0:
		return true
	}
	return false
}

func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	os.WriteString(fmt.Sprintf("Game Phase     : %d\n", p.gamePhase))
	os.WriteString(fmt.Sprintf("Material White : %d\n", p.material[White]))
	os.WriteString(fmt.Sprintf("Material Black : %d\n", p.material[Black]))
	os.WriteString(fmt.Sprintf("Pos value White: %d/%d\n", p.psqMidValue[White], p.psqEndValue[White]))
	os.WriteString(fmt.Sprintf("Pos value Black: %d/%d\n", p.psqMidValue[Black], p.psqEndValue[Black]))
	return os.String()
}

// StringFen returns the FEN of the current position.
func (p *Position) StringFen() string { return p.fen() }

// StringBoard returns an 8x8 ASCII board diagram.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, Rank8-r)].Char())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

func (p *Position) doNormalMove(fromSq, toSq Square, targetPc, fromPc Piece, myColor Color) {
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobrist.Base.CastlingRights(p.castlingRights)
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobrist.Base.CastlingRights(p.castlingRights)
		}
	}
	p.clearEnPassant()
	if targetPc != PieceNone {
		p.removePiece(toSq)
		p.halfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
			p.zobristKey ^= zobrist.Base.EnPassantFile(p.enPassantSquare.FileOf())
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(mt MoveType, fromPc Piece, myColor Color, toSq, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, King), "Position DoMove: castling move but from piece not king")
	}
	switch toSq {
	case SqG1:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH1, SqF1)
		p.updateCastlingRights(CastlingWhite)
	case SqC1:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA1, SqD1)
		p.updateCastlingRights(CastlingWhite)
	case SqG8:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH8, SqF8)
		p.updateCastlingRights(CastlingBlack)
	case SqC8:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA8, SqD8)
		p.updateCastlingRights(CastlingBlack)
	default:
		panic("Position DoMove: invalid castle target square")
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) updateCastlingRights(side CastlingRights) {
	p.zobristKey ^= zobrist.Base.CastlingRights(p.castlingRights)
	p.castlingRights.Remove(side)
	p.zobristKey ^= zobrist.Base.CastlingRights(p.castlingRights)
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromPc Piece, fromSq Square) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: en passant move but from piece not pawn")
		assert.Assert(p.enPassantSquare != SqNone, "Position DoMove: en passant move without en passant square set")
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "Position DoMove: captured en passant piece invalid")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: promotion move but from piece not pawn")
		assert.Assert(myColor.PromotionRankBb().Has(toSq), "Position DoMove: promotion move on wrong rank")
	}
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.updateCastlingRights(cr)
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.MoveType().PromotionPieceType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "tried to put a piece on an occupied square: %s", square.String())
		assert.Assert(!p.piecesBb[color][pieceType].Has(square), "tried to set a bit already set on piecesBb: %s", square.String())
		assert.Assert(!p.occupiedBb[color].Has(square), "tried to set a bit already set on occupiedBb: %s", square.String())
	}

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= zobrist.Base.Piece(piece, square)
	if zobrist.IsPawnOrKingKey(piece) {
		p.pawnKey ^= zobrist.Base.Piece(piece, square)
	}
	p.gamePhase += pieceType.GamePhaseValue()
	if p.gamePhase > GamePhaseMax {
		p.gamePhase = GamePhaseMax
	}
	p.material[color] += pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] != PieceNone, "tried to remove a piece from an empty square: %s", square.String())
		assert.Assert(p.piecesBb[color][pieceType].Has(square), "tried to clear an unset bit on piecesBb: %s", square.String())
		assert.Assert(p.occupiedBb[color].Has(square), "tried to clear an unset bit on occupiedBb: %s", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= zobrist.Base.Piece(removed, square)
	if zobrist.IsPawnOrKingKey(removed) {
		p.pawnKey ^= zobrist.Base.Piece(removed, square)
	}
	p.gamePhase -= pieceType.GamePhaseValue()
	if p.gamePhase < 0 {
		p.gamePhase = 0
	}
	p.material[color] -= pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.Base.EnPassantFile(p.enPassantSquare.FileOf())
		p.enPassantSquare = SqNone
	}
}

func (p *Position) fen() string {
	var fen strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return fen.String()
}

func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	currentSquare := SqA8
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil {
			currentSquare = Square(int(currentSquare) + number*int(East))
		} else if string(c) == "/" {
			currentSquare = currentSquare.To(South).To(South)
		} else {
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 {
		return errors.New("fen position does not cover all 64 squares")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		if fenParts[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobrist.Base.NextPlayer()
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobrist.Base.CastlingRights(p.castlingRights)
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
		}
	}

	if len(fenParts) >= 5 {
		number, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.halfMoveClock = number
	}

	if len(fenParts) >= 6 {
		moveNumber, e := strconv.Atoi(fenParts[5])
		if e != nil {
			return e
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
	}

	p.pawnKey = zobrist.PawnKingKey(func(sq Square) Piece { return p.board[sq] })

	return nil
}

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// PawnKey returns the narrower pawn+king Zobrist hash the pawn-structure
// cache is keyed on.
func (p *Position) PawnKey() Key { return p.pawnKey }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// GetPiece returns the piece on sq, or PieceNone if sq is empty.
func (p *Position) GetPiece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedAll returns a bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBb returns a bitboard of squares occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// GamePhase returns the current game-phase value (24 at the start of the
// game, 0 once all officers are gone).
func (p *Position) GamePhase() int { return p.gamePhase }

// GamePhaseFactor returns GamePhase scaled to [0,1].
func (p *Position) GamePhaseFactor() float64 { return float64(p.gamePhase) / GamePhaseMax }

// GetEnPassantSquare returns the en passant target square, or SqNone.
func (p *Position) GetEnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the position's castling-rights bitmask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// CoarseCastlingRights returns color c's castling rights as the coarser
// {NONE,SHORT,LONG,ALL} view.
func (p *Position) CoarseCastlingRights(c Color) CastlingSide {
	return p.castlingRights.Coarse(c)
}

// KingSquare returns the current square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the position's half-move (50-move rule) clock.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Material returns color c's material value.
func (p *Position) Material(c Color) Value { return p.material[c] }

// MaterialNonPawn returns color c's non-pawn material value.
func (p *Position) MaterialNonPawn(c Color) Value { return p.materialNonPawn[c] }

// PsqMidValue returns color c's midgame piece-square value.
func (p *Position) PsqMidValue(c Color) Value { return p.psqMidValue[c] }

// PsqEndValue returns color c's endgame piece-square value.
func (p *Position) PsqEndValue(c Color) Value { return p.psqEndValue[c] }

// LastMove returns the last move made, or MoveNone if there is no history.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the last move, or
// PieceNone if the last move did not capture or there is no history.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove reports whether the last move made captured a piece.
func (p *Position) WasCapturingMove() bool { return p.LastCapturedPiece() != PieceNone }
