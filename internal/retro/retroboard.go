//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package retro

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/RetroGo/internal/assert"
	"github.com/frankkopp/RetroGo/internal/attacks"
	"github.com/frankkopp/RetroGo/internal/config"
	. "github.com/frankkopp/RetroGo/internal/types"
)

// RetroBoard holds a chess position together with the extra bookkeeping
// retrograde analysis needs: a pocket of captured material per color and
// the color to un-move next (retro-turn). It is constructed from an
// extended FEN - a standard six-field FEN optionally followed by two
// pocket tokens (white's, then black's) - and is mutated in place by
// Push/Pop as the search walks backwards through predecessor positions.
//
// Castling rights parsed from the FEN are carried as "uncastling rights":
// they round-trip through String/Push/Pop unchanged but are never
// consulted by the generator or the legality filter, since reconstructing
// whether a rook or king had previously moved is outside what a single
// position can tell us.
type RetroBoard struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	kingSquare [ColorLength]Square

	retroTurn Color
	pockets   [ColorLength]Pocket

	epSquare  Square
	epHistory []Square

	uncastling CastlingRights

	halfMoveClock  int
	fullMoveNumber int
}

// NewRetroBoard parses an extended FEN and returns a ready-to-use
// RetroBoard. Returns a *ParseFenError for a malformed FEN or an invalid
// pocket token, and an *IllegalSetupError for a structurally valid FEN
// that cannot be a RetroBoard (missing king, pawn on the back rank, the
// side to un-move already in check).
func NewRetroBoard(fen string) (*RetroBoard, error) {
	rb := &RetroBoard{}
	if err := rb.setup(fen); err != nil {
		return nil, err
	}
	return rb, nil
}

var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")
var regexWorB = regexp.MustCompile("^[wb]$")
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")
var regexEnPassant = regexp.MustCompile("^([a-h][1-8]|-)$")

func (rb *RetroBoard) setup(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Fields(fen)
	if len(fenParts) < 1 {
		return &ParseFenError{Fen: fen, Reason: "fen must not be empty"}
	}

	if !regexFenPos.MatchString(fenParts[0]) {
		return &ParseFenError{Fen: fen, Reason: "piece placement contains invalid characters"}
	}
	currentSquare := SqA8
	for _, c := range fenParts[0] {
		switch {
		case c >= '1' && c <= '8':
			currentSquare = Square(int(currentSquare) + (int(c-'0') * int(East)))
		case c == '/':
			currentSquare = currentSquare.To(South).To(South)
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return &ParseFenError{Fen: fen, Reason: fmt.Sprintf("invalid piece character %q", string(c))}
			}
			rb.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 {
		return &ParseFenError{Fen: fen, Reason: "piece placement does not cover all 64 squares"}
	}

	rb.epSquare = SqNone
	rb.fullMoveNumber = 1

	sideToMove := White
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return &ParseFenError{Fen: fen, Reason: "side to move must be w or b"}
		}
		if fenParts[1] == "b" {
			sideToMove = Black
		}
	}
	rb.retroTurn = sideToMove.Flip()

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return &ParseFenError{Fen: fen, Reason: "castling rights contains invalid characters"}
		}
		for _, c := range fenParts[2] {
			switch c {
			case 'K':
				rb.uncastling.Add(CastlingWhiteOO)
			case 'Q':
				rb.uncastling.Add(CastlingWhiteOOO)
			case 'k':
				rb.uncastling.Add(CastlingBlackOO)
			case 'q':
				rb.uncastling.Add(CastlingBlackOOO)
			}
		}
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return &ParseFenError{Fen: fen, Reason: "en passant square contains invalid characters"}
		}
		if fenParts[3] != "-" {
			rb.epSquare = MakeSquare(fenParts[3])
		}
	}

	if len(fenParts) >= 5 {
		n, err := strconv.Atoi(fenParts[4])
		if err != nil {
			return &ParseFenError{Fen: fen, Reason: "half move clock is not a number", Err: err}
		}
		rb.halfMoveClock = n
	}

	if len(fenParts) >= 6 {
		n, err := strconv.Atoi(fenParts[5])
		if err != nil {
			return &ParseFenError{Fen: fen, Reason: "full move number is not a number", Err: err}
		}
		rb.fullMoveNumber = n
	}

	if len(fenParts) >= 7 {
		p, err := ParsePocket(fenParts[6])
		if err != nil {
			return &ParseFenError{Fen: fen, Reason: "white pocket", Err: err}
		}
		rb.pockets[White] = p
	}
	if len(fenParts) >= 8 {
		p, err := ParsePocket(fenParts[7])
		if err != nil {
			return &ParseFenError{Fen: fen, Reason: "black pocket", Err: err}
		}
		rb.pockets[Black] = p
	}

	return rb.validateSetup()
}

func (rb *RetroBoard) validateSetup() error {
	if rb.piecesBb[White][King] == 0 || rb.piecesBb[Black][King] == 0 {
		return &IllegalSetupError{Reason: "both colors must have exactly one king"}
	}
	if rb.piecesBb[White][King].PopCount() != 1 || rb.piecesBb[Black][King].PopCount() != 1 {
		return &IllegalSetupError{Reason: "both colors must have exactly one king"}
	}
	if (rb.piecesBb[White][Pawn]|rb.piecesBb[Black][Pawn])&(Rank1_Bb|Rank8_Bb) != 0 {
		return &IllegalSetupError{Reason: "pawns cannot stand on the first or eighth rank"}
	}
	us := rb.retroTurn
	if rb.attackedBy(rb.kingSquare[us], us.Flip()) {
		return &IllegalSetupError{Reason: "the side to un-move is in check, which a legal forward move could never leave it in"}
	}
	if config.Settings.Retro.StrictUncastling {
		if err := rb.validateUncastling(); err != nil {
			return err
		}
	}
	return nil
}

// validateUncastling rejects uncastling rights that cannot possibly be
// genuine because the king or rook they name has already moved away from
// its castling home square. Off by default (see
// config.Settings.Retro.StrictUncastling) since uncastling rights are
// otherwise carried as inert bookkeeping and never consulted by generation
// or the legality filter.
func (rb *RetroBoard) validateUncastling() error {
	type check struct {
		right    CastlingRights
		king     Square
		kingColr Color
		rook     Square
	}
	checks := []check{
		{CastlingWhiteOO, SqE1, White, SqH1},
		{CastlingWhiteOOO, SqE1, White, SqA1},
		{CastlingBlackOO, SqE8, Black, SqH8},
		{CastlingBlackOOO, SqE8, Black, SqA8},
	}
	for _, c := range checks {
		if !rb.uncastling.Has(c.right) {
			continue
		}
		if rb.board[c.king] != MakePiece(c.kingColr, King) {
			return &IllegalSetupError{Reason: "uncastling right " + c.right.String() + " claimed without the king on its home square"}
		}
		if rb.board[c.rook] != MakePiece(c.kingColr, Rook) {
			return &IllegalSetupError{Reason: "uncastling right " + c.right.String() + " claimed without the rook on its home square"}
		}
	}
	return nil
}

// attackedBy reports whether sq is attacked by a piece of color by, using
// the reverse-attack technique (see internal/attacks.AttackersOf): the
// filter needs this for both construction validation and discovered-check
// analysis on hypothetical, not-yet-materialized boards.
func (rb *RetroBoard) attackedBy(sq Square, by Color) bool {
	return rb.attackersOf(sq, by) != 0
}

func (rb *RetroBoard) attackersOf(sq Square, by Color) Bitboard {
	occupied := rb.occupiedBb[White] | rb.occupiedBb[Black]
	return attacks.AttackersOf(sq, occupied,
		rb.piecesBb[by][Pawn], rb.piecesBb[by][Knight], rb.piecesBb[by][King],
		rb.piecesBb[by][Rook]|rb.piecesBb[by][Queen],
		rb.piecesBb[by][Bishop]|rb.piecesBb[by][Queen],
		by)
}

// //////////////////////////////////////////////////////
// Getters
// //////////////////////////////////////////////////////

// RetroTurn returns the color to un-move next.
func (rb *RetroBoard) RetroTurn() Color {
	return rb.retroTurn
}

// PieceAt returns the piece on sq, or PieceNone if sq is empty.
func (rb *RetroBoard) PieceAt(sq Square) Piece {
	return rb.board[sq]
}

// PiecesBb returns the bitboard of pieces of kind pt and color c.
func (rb *RetroBoard) PiecesBb(c Color, pt PieceType) Bitboard {
	return rb.piecesBb[c][pt]
}

// OccupiedBb returns the bitboard of all pieces of color c.
func (rb *RetroBoard) OccupiedBb(c Color) Bitboard {
	return rb.occupiedBb[c]
}

// OccupiedAll returns the bitboard of all occupied squares.
func (rb *RetroBoard) OccupiedAll() Bitboard {
	return rb.occupiedBb[White] | rb.occupiedBb[Black]
}

// KingSquare returns the square of color c's king.
func (rb *RetroBoard) KingSquare(c Color) Square {
	return rb.kingSquare[c]
}

// Pocket returns a copy of color c's pocket.
func (rb *RetroBoard) Pocket(c Color) Pocket {
	return rb.pockets[c]
}

// EnPassantSquare returns the current en passant square, or SqNone.
func (rb *RetroBoard) EnPassantSquare() Square {
	return rb.epSquare
}

// UncastlingRights returns the bookkeeping-only castling rights carried
// through from the FEN. Never consulted by generation or legality.
func (rb *RetroBoard) UncastlingRights() CastlingRights {
	return rb.uncastling
}

// String renders the extended FEN: a standard six-field FEN followed by
// the white and black pocket tokens.
func (rb *RetroBoard) String() string {
	var fen strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := rb.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(rb.retroTurn.Flip().String())
	fen.WriteString(" ")
	fen.WriteString(rb.uncastling.String())
	fen.WriteString(" ")
	fen.WriteString(rb.epSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(rb.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(rb.fullMoveNumber))
	fen.WriteString(" ")
	fen.WriteString(rb.pockets[White].String(White))
	fen.WriteString(" ")
	fen.WriteString(rb.pockets[Black].String(Black))
	return fen.String()
}

// //////////////////////////////////////////////////////
// Board mutation primitives
// //////////////////////////////////////////////////////

func (rb *RetroBoard) putPiece(piece Piece, sq Square) {
	color := piece.ColorOf()
	pt := piece.TypeOf()
	if assert.DEBUG {
		assert.Assert(rb.board[sq] == PieceNone, "RetroBoard putPiece: square %s is occupied", sq.String())
	}
	rb.board[sq] = piece
	if pt == King {
		rb.kingSquare[color] = sq
	}
	rb.piecesBb[color][pt].PushSquare(sq)
	rb.occupiedBb[color].PushSquare(sq)
}

func (rb *RetroBoard) removePiece(sq Square) Piece {
	removed := rb.board[sq]
	color := removed.ColorOf()
	pt := removed.TypeOf()
	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "RetroBoard removePiece: square %s is empty", sq.String())
	}
	rb.board[sq] = PieceNone
	rb.piecesBb[color][pt].PopSquare(sq)
	rb.occupiedBb[color].PopSquare(sq)
	return removed
}

func (rb *RetroBoard) movePiece(from Square, to Square) {
	rb.putPiece(rb.removePiece(from), to)
}

// //////////////////////////////////////////////////////
// Push / Pop
// //////////////////////////////////////////////////////

// Push applies an unmove, transforming the board into the predecessor
// position it describes: the piece on u.To returns to u.From, pockets are
// debited or credited to match, the en passant square is cleared and then
// possibly reset, and retro-turn flips. u must be one the legality filter
// has already accepted for the current board; Push performs no legality
// checking of its own.
func (rb *RetroBoard) Push(u UnMove) {
	us := rb.retroTurn
	them := us.Flip()
	mover := rb.board[u.To]

	if assert.DEBUG {
		assert.Assert(mover != PieceNone, "RetroBoard Push: no piece on %s", u.To.String())
		assert.Assert(mover.ColorOf() == us, "RetroBoard Push: piece on %s does not belong to retro-turn", u.To.String())
		assert.Assert(rb.board[u.From] == PieceNone, "RetroBoard Push: origin %s is not empty", u.From.String())
	}

	rb.epHistory = append(rb.epHistory, rb.epSquare)
	rb.epSquare = SqNone

	switch u.Tag {
	case Normal:
		rb.movePiece(u.To, u.From)
	case Uncapture:
		rb.movePiece(u.To, u.From)
		rb.putPiece(MakePiece(them, u.Captured), u.To)
		rb.pockets[them].Decr(u.Captured)
	case Unpromotion:
		if assert.DEBUG {
			assert.Assert(mover.TypeOf() == u.Promoted, "RetroBoard Push: piece on %s is not the promoted kind %s", u.To.String(), u.Promoted.String())
		}
		rb.removePiece(u.To)
		rb.putPiece(MakePiece(us, Pawn), u.From)
	case UnpromotionUncapture:
		if assert.DEBUG {
			assert.Assert(mover.TypeOf() == u.Promoted, "RetroBoard Push: piece on %s is not the promoted kind %s", u.To.String(), u.Promoted.String())
		}
		rb.removePiece(u.To)
		rb.putPiece(MakePiece(us, Pawn), u.From)
		rb.putPiece(MakePiece(them, u.Captured), u.To)
		rb.pockets[them].Decr(u.Captured)
	case EnPassant:
		rb.movePiece(u.To, u.From)
		capturedSq := u.To.To(them.MoveDirection())
		rb.putPiece(MakePiece(them, Pawn), capturedSq)
		// the predecessor carries the ep square the capture was made on
		rb.epSquare = u.To
	}

	if u.Tag == Normal && mover.TypeOf() == Pawn && SquareDistance(u.From, u.To) == 2 {
		rb.epSquare = u.To.To(us.Flip().MoveDirection())
	}

	rb.retroTurn = them
}

// Pop reverses the most recent Push, given the same unmove that was
// pushed. No history of the unmove itself is kept - the caller supplies
// u - but the displaced en passant square is kept on an internal stack so
// it can be restored exactly, the same way Position keeps a history array
// for UndoMove.
func (rb *RetroBoard) Pop(u UnMove) {
	them := rb.retroTurn
	us := them.Flip()

	switch u.Tag {
	case Normal:
		rb.movePiece(u.From, u.To)
	case Uncapture:
		rb.removePiece(u.To)
		rb.movePiece(u.From, u.To)
		rb.pockets[them].Incr(u.Captured)
	case Unpromotion:
		rb.removePiece(u.From)
		rb.putPiece(MakePiece(us, u.Promoted), u.To)
	case UnpromotionUncapture:
		rb.removePiece(u.To)
		rb.removePiece(u.From)
		rb.putPiece(MakePiece(us, u.Promoted), u.To)
		rb.pockets[them].Incr(u.Captured)
	case EnPassant:
		capturedSq := u.To.To(them.MoveDirection())
		rb.removePiece(capturedSq)
		rb.movePiece(u.From, u.To)
	}

	n := len(rb.epHistory)
	rb.epSquare = rb.epHistory[n-1]
	rb.epHistory = rb.epHistory[:n-1]

	rb.retroTurn = us
}
