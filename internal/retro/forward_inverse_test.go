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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/RetroGo/internal/movegen"
	"github.com/frankkopp/RetroGo/internal/moveslice"
	"github.com/frankkopp/RetroGo/internal/position"
	. "github.com/frankkopp/RetroGo/internal/types"
)

// forwardMoveType maps an unmove's tag to the MoveType of the forward move
// that, played from the reconstructed predecessor, recreates the successor
// the unmove was generated from.
func forwardMoveType(tag UnMoveTag) MoveType {
	switch tag {
	case Unpromotion, UnpromotionUncapture:
		return Promotion
	case EnPassant:
		return EnPassant
	default:
		return Normal
	}
}

// findMatchingMove searches the legal moves of a position for the one
// matching a given origin, destination and move type, returning it together
// with whether it was found.
func findMatchingMove(moves *moveslice.MoveSlice, from, to Square, mt MoveType, promType PieceType) (Move, bool) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != from || m.To() != to || m.MoveType() != mt {
			continue
		}
		if mt == Promotion && m.PromotionType() != promType {
			continue
		}
		return m, true
	}
	return Move(0), false
}

// assertForwardInverse checks, for every legal unmove of the given position,
// that pushing it onto the retro-board yields a predecessor from which a
// legal forward move exists that recreates the original piece placement -
// the forward-inverse relationship retrograde analysis depends on.
func assertForwardInverse(t *testing.T, fen string) {
	t.Helper()

	rb, err := NewRetroBoard(fen)
	assert.NoError(t, err)

	var before [int(SqNone)]Piece
	for sq := SqA1; sq < SqNone; sq++ {
		before[sq] = rb.PieceAt(sq)
	}

	mg := NewRetroMovegen()
	unmoves := mg.GenerateLegalUnmoves(rb)
	assert.True(t, unmoves.Len() > 0, "expected at least one legal unmove for %s", fen)

	unmoves.ForEach(func(_ int, u UnMove) {
		rb.Push(u)

		pos, err := position.NewPositionFen(rb.String())
		assert.NoError(t, err, "predecessor fen %s", rb.String())

		promType := PtNone
		if u.Tag == Unpromotion || u.Tag == UnpromotionUncapture {
			promType = u.Promoted
		}

		forward, found := findMatchingMove(movegen.NewMoveGen().GenerateLegalMoves(pos, movegen.GenAll), u.From, u.To, forwardMoveType(u.Tag), promType)
		assert.True(t, found, "no forward move recreates unmove %s from predecessor %s", u.String(before[u.To].TypeOf()), rb.String())

		if found {
			pos.DoMove(forward)
			for sq := SqA1; sq < SqNone; sq++ {
				assert.Equal(t, before[sq], pos.GetPiece(sq), "square %s after replaying %s", sq.String(), u.String(before[u.To].TypeOf()))
			}
		}

		rb.Pop(u)
	})
}

func TestForwardMoveRecreatesSuccessorStartingPosition(t *testing.T) {
	assertForwardInverse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
}

func TestForwardMoveRecreatesSuccessorDiscoveredCheck(t *testing.T) {
	assertForwardInverse(t, "8/8/8/8/8/5k2/8/K3N2B b - - 0 1")
}

func TestForwardMoveRecreatesSuccessorEnPassant(t *testing.T) {
	assertForwardInverse(t, "k7/8/P7/8/8/8/8/K7 b - a6 0 1")
}

func TestForwardMoveRecreatesSuccessorUnpromotion(t *testing.T) {
	assertForwardInverse(t, "1Q6/8/8/8/8/8/8/k3K3 b - - 0 1 - q")
}
