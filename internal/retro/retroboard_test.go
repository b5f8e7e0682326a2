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

	"github.com/frankkopp/RetroGo/internal/config"
	. "github.com/frankkopp/RetroGo/internal/types"
)

func TestNewRetroBoardStartingPositionFields(t *testing.T) {
	rb, err := NewRetroBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, White, rb.RetroTurn())
	assert.Equal(t, SqE1, rb.KingSquare(White))
	assert.Equal(t, SqE8, rb.KingSquare(Black))
	assert.Equal(t, SqNone, rb.EnPassantSquare())
	assert.Equal(t, MakePiece(White, Rook), rb.PieceAt(SqA1))
	assert.Equal(t, PieceNone, rb.PieceAt(SqE4))
}

func TestRetroBoardStringRoundTrip(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1"
	rb, err := NewRetroBoard(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen+" - -", rb.String())
}

func TestRetroBoardStringRoundTripWithPockets(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3 b - - 0 1 Q q"
	rb, err := NewRetroBoard(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen, rb.String())
}

func TestNewRetroBoardRejectsMissingKing(t *testing.T) {
	_, err := NewRetroBoard("8/8/8/8/8/8/8/4K3 b - - 0 1")
	assert.Error(t, err)
	var iserr *IllegalSetupError
	assert.ErrorAs(t, err, &iserr)
}

func TestNewRetroBoardRejectsTwoKingsOfOneColor(t *testing.T) {
	_, err := NewRetroBoard("4k3/4K3/8/8/8/8/8/4K3 b - - 0 1")
	assert.Error(t, err)
}

func TestNewRetroBoardRejectsPawnOnBackRank(t *testing.T) {
	_, err := NewRetroBoard("4k3/8/8/8/8/8/8/P3K3 b - - 0 1")
	assert.Error(t, err)
}

func TestNewRetroBoardRejectsUnMoverAlreadyInCheck(t *testing.T) {
	// retro-turn is White (side to move in the FEN is black); a rook
	// already attacking the white king cannot have been left there by a
	// legal move that just arrived at this position.
	_, err := NewRetroBoard("4k3/8/8/8/8/8/8/r3K3 b - - 0 1")
	assert.Error(t, err)
}

func TestNewRetroBoardRejectsMalformedFen(t *testing.T) {
	_, err := NewRetroBoard("not-a-fen b - - 0 1")
	assert.Error(t, err)
	var perr *ParseFenError
	assert.ErrorAs(t, err, &perr)
}

func TestValidateUncastlingOffByDefaultAcceptsBogusRights(t *testing.T) {
	config.Settings.Retro.StrictUncastling = false
	_, err := NewRetroBoard("4k3/8/8/8/8/8/8/4K3 b KQkq - 0 1")
	assert.NoError(t, err)
}

func TestValidateUncastlingStrictRejectsRightsWithoutHomeSquares(t *testing.T) {
	config.Settings.Retro.StrictUncastling = true
	defer func() { config.Settings.Retro.StrictUncastling = false }()

	_, err := NewRetroBoard("4k3/8/8/8/8/8/8/4K3 b KQkq - 0 1")
	assert.Error(t, err)
}

func TestValidateUncastlingStrictAcceptsRightsWithHomeSquaresPresent(t *testing.T) {
	config.Settings.Retro.StrictUncastling = true
	defer func() { config.Settings.Retro.StrictUncastling = false }()

	_, err := NewRetroBoard("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)
}

// Push/Pop must restore the board bit-exactly, including the en-passant
// square, for every unmove tag it knows how to reverse.
func TestPushPopRoundTripsBoardState(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"normal", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1"},
		{"uncapture", "4k3/8/8/8/8/8/8/4K3 b - - 0 1 Q q"},
		{"enpassant", "k7/8/P7/8/8/8/8/K7 b - a6 0 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rb, err := NewRetroBoard(c.fen)
			assert.NoError(t, err)
			before := rb.String()

			mg := NewRetroMovegen()
			legal := mg.GenerateLegalUnmoves(rb)
			assert.Greater(t, legal.Len(), 0)

			legal.ForEach(func(_ int, u UnMove) {
				rb.Push(u)
				rb.Pop(u)
				assert.Equal(t, before, rb.String())
			})
		})
	}
}

// Pushing an unmove must conserve total pocket material: an Uncapture
// debits exactly what Pop later credits back.
func TestPushDebitsPocketPopCreditsItBack(t *testing.T) {
	rb, err := NewRetroBoard("4k3/8/8/8/8/8/8/4K3 b - - 0 1 Q q")
	assert.NoError(t, err)

	mg := NewRetroMovegen()
	legal := mg.GenerateLegalUnmoves(rb)

	var found bool
	legal.ForEach(func(_ int, u UnMove) {
		if u.Tag != Uncapture {
			return
		}
		found = true
		beforeBlack := rb.Pocket(Black)
		rb.Push(u)
		assert.Equal(t, beforeBlack.Count(u.Captured)-1, rb.Pocket(Black).Count(u.Captured))
		rb.Pop(u)
		assert.Equal(t, beforeBlack, rb.Pocket(Black))
	})
	assert.True(t, found)
}
