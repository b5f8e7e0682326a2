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

func pseudoUnmovesFor(t *testing.T, fen string) *UnMoveSlice {
	t.Helper()
	rb, err := NewRetroBoard(fen)
	assert.NoError(t, err)
	ml := NewUnMoveSlice(MaxMoves)
	GeneratePseudoUnmoves(rb, ml)
	return ml
}

// In the starting position every back-rank piece and every pawn is boxed
// in by its own rank; only the two knights reach an empty square (two
// each, on rank 3).
func TestGeneratePseudoUnmovesStartingPositionOnlyKnights(t *testing.T) {
	ml := pseudoUnmovesFor(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.Equal(t, 4, ml.Len())
	ml.ForEach(func(_ int, u UnMove) {
		assert.Equal(t, Normal, u.Tag)
		assert.Equal(t, Rank3, u.From.RankOf())
	})
}

// config.Settings.Retro.GenerateEnPassant gates emission of the en-passant
// unmove entirely: turning it off drops exactly the one en-passant
// candidate and leaves every other pseudo-unmove untouched.
func TestGenerateEnPassantConfigGate(t *testing.T) {
	fen := "k7/8/P7/8/8/8/8/K7 b - a6 0 1"

	withEp := pseudoUnmovesFor(t, fen)
	assert.Equal(t, 5, withEp.Len())

	config.Settings.Retro.GenerateEnPassant = false
	defer func() { config.Settings.Retro.GenerateEnPassant = true }()

	withoutEp := pseudoUnmovesFor(t, fen)
	assert.Equal(t, 4, withoutEp.Len())
	withoutEp.ForEach(func(_ int, u UnMove) {
		assert.NotEqual(t, EnPassant, u.Tag)
	})
}

// A pocket kind of Pawn is never a legal Captured for an un-promotion
// un-capture (rule E): an officer standing on the promotion rank can
// still revert by a plain Unpromotion, but no diagonal origin competes
// with a pawn un-capture hypothesis.
func TestGenerateUnpromotionUncaptureNeverTargetsPawnPocket(t *testing.T) {
	ml := pseudoUnmovesFor(t, "1Q6/8/8/8/8/8/8/k3K3 b - - 0 1 - p")

	var unpromotions, unpromotionUncaptures int
	ml.ForEach(func(_ int, u UnMove) {
		switch u.Tag {
		case Unpromotion:
			unpromotions++
			assert.Equal(t, Queen, u.Promoted)
			assert.Equal(t, SqB7, u.From)
		case UnpromotionUncapture:
			unpromotionUncaptures++
		}
	})
	assert.Equal(t, 1, unpromotions)
	assert.Equal(t, 0, unpromotionUncaptures)
}

// generateOfficerUnmoves treats a piece on the promotion rank as equally
// explicable by an ordinary officer unmove; both hypotheses coexist in
// the pseudo list for the legality filter to sort out.
func TestGenerateOfficerAndUnpromotionHypothesesCoexist(t *testing.T) {
	ml := pseudoUnmovesFor(t, "1Q6/8/8/8/8/8/8/k3K3 b - - 0 1 - p")

	var officerFromB7, unpromotionFromB7 bool
	ml.ForEach(func(_ int, u UnMove) {
		if u.To != SqB8 || u.From != SqB7 {
			return
		}
		switch u.Tag {
		case Normal:
			officerFromB7 = true
		case Unpromotion:
			unpromotionFromB7 = true
		}
	})
	assert.True(t, officerFromB7)
	assert.True(t, unpromotionFromB7)
}

// A pawn's reverse trajectory - straight push or diagonal un-capture - must
// never place it on rank 1 or 8: no pawn can ever rest there, the same rule
// validateSetup enforces on construction.
func TestGeneratePawnUnmovesRejectBackRankOrigin(t *testing.T) {
	ml := pseudoUnmovesFor(t, "4k3/8/8/8/8/8/1P6/4K3 b - - 0 1 - n")
	ml.ForEach(func(_ int, u UnMove) {
		assert.NotEqual(t, SqB2, u.To, "pawn unmove %s implies an origin on the back rank", u.String(Pawn))
	})
}

func TestNewRetroMovegenReusesBuffersAcrossCalls(t *testing.T) {
	mg := NewRetroMovegen()
	rb1, err := NewRetroBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.NoError(t, err)
	first := mg.GenerateLegalUnmoves(rb1)
	assert.Equal(t, 4, first.Len())

	rb2, err := NewRetroBoard("8/4k3/3B1B2/8/8/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)
	second := mg.GenerateLegalUnmoves(rb2)
	assert.Equal(t, 0, second.Len())
}
