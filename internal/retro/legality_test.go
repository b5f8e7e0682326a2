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

	. "github.com/frankkopp/RetroGo/internal/types"
)

func legalUnmovesFor(t *testing.T, fen string) *UnMoveSlice {
	t.Helper()
	rb, err := NewRetroBoard(fen)
	assert.NoError(t, err)
	mg := NewRetroMovegen()
	return mg.GenerateLegalUnmoves(rb)
}

// Starting position: both knights each reach two empty squares, every
// other piece and every pawn is boxed in by its own back rank.
func TestLegalityStartingPositionKnightUnmovesOnly(t *testing.T) {
	legal := legalUnmovesFor(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.Equal(t, 4, legal.Len())
	legal.ForEach(func(_ int, u UnMove) {
		assert.Equal(t, Normal, u.Tag)
	})
}

// Knight on e1 and bishop on h1 both give check to the black king on f3.
// Only the unmove that explains the bishop's check as newly discovered -
// the knight departing g2, the one square on the bishop's line - is legal;
// every other geometrically reachable knight origin, and the bishop's own
// unmove, would leave the black king in check on the reconstructed
// predecessor.
func TestLegalityDiscoveredCheckOnlyOneUnmoveSurvives(t *testing.T) {
	legal := legalUnmovesFor(t, "8/8/8/8/8/5k2/8/K3N2B b - - 0 1")
	assert.Equal(t, 1, legal.Len())
	got := legal.At(0)
	assert.Equal(t, Normal, got.Tag)
	assert.Equal(t, SqG2, got.From)
	assert.Equal(t, SqE1, got.To)
}

// The bishop on b2 checks the black king on a1 along an unblockable
// adjacent diagonal. Every pseudo-unmove - the rook, the queen, the king,
// and the bishop's own single reachable origin a3 - leaves that check in
// place or introduces another one, so nothing survives.
func TestLegalityAdjacentDiagonalCheckUnblockable(t *testing.T) {
	legal := legalUnmovesFor(t, "8/8/8/8/R7/2Q5/1B6/k1K5 b - - 0 1")
	assert.Equal(t, 0, legal.Len())
}

// Two bishops both give check to the black king on e7 directly; no piece
// moving away from its current square can undo either one.
func TestLegalityDoubleSliderCheckUnresolvable(t *testing.T) {
	legal := legalUnmovesFor(t, "8/4k3/3B1B2/8/8/8/8/4K3 b - - 0 1")
	assert.Equal(t, 0, legal.Len())
}

// A white pawn on a6 with the en-passant square recorded as a6 itself can
// be explained either by an ordinary single push from a5 or by a capture
// en passant of a black pawn that is restored to a5 on Push. Both kings
// sit far from every candidate, so all pseudo-unmoves - three king steps,
// the pawn push, and the en-passant unmove - survive the legality filter.
func TestLegalityEnPassantAlongsideOrdinaryPush(t *testing.T) {
	legal := legalUnmovesFor(t, "k7/8/P7/8/8/8/8/K7 b - a6 0 1")
	assert.Equal(t, 5, legal.Len())

	var epCount int
	var normalPawnCount int
	legal.ForEach(func(_ int, u UnMove) {
		switch {
		case u.Tag == EnPassant:
			epCount++
			assert.Equal(t, SqB5, u.From)
			assert.Equal(t, SqA6, u.To)
		case u.To == SqA6 && u.Tag == Normal:
			normalPawnCount++
			assert.Equal(t, SqA5, u.From)
		}
	})
	assert.Equal(t, 1, epCount)
	assert.Equal(t, 1, normalPawnCount)
}

// Without the ep square recorded, the same board offers no en-passant
// explanation - the pawn can only have arrived by an ordinary push.
func TestLegalityEnPassantRequiresMatchingEpSquare(t *testing.T) {
	legal := legalUnmovesFor(t, "k7/8/P7/8/8/8/8/K7 b - - 0 1")
	legal.ForEach(func(_ int, u UnMove) {
		assert.NotEqual(t, EnPassant, u.Tag)
	})
}

// ApplyLegalityFilter is the allocating counterpart of
// RetroMovegen.GenerateLegalUnmoves; both must agree on a given position.
func TestApplyLegalityFilterAgreesWithMovegen(t *testing.T) {
	rb, err := NewRetroBoard("8/8/8/8/8/5k2/8/K3N2B b - - 0 1")
	assert.NoError(t, err)

	pseudo := NewUnMoveSlice(MaxMoves)
	GeneratePseudoUnmoves(rb, pseudo)
	filtered := ApplyLegalityFilter(rb, pseudo)

	mg := NewRetroMovegen()
	viaMovegen := mg.GenerateLegalUnmoves(rb)

	assert.Equal(t, viaMovegen.Len(), filtered.Len())
}
