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

func TestFlipHorizontalSqKnownMappings(t *testing.T) {
	assert.Equal(t, SqH1, flipHorizontalSq(SqA1))
	assert.Equal(t, SqA8, flipHorizontalSq(SqH8))
	assert.Equal(t, SqE4, flipHorizontalSq(SqD4))
}

func TestFlipVerticalSqKnownMappings(t *testing.T) {
	assert.Equal(t, SqA8, flipVerticalSq(SqA1))
	assert.Equal(t, SqH1, flipVerticalSq(SqH8))
}

func TestFlipDiagonalSqKnownMappings(t *testing.T) {
	assert.Equal(t, SqA1, flipDiagonalSq(SqA1))
	assert.Equal(t, SqH8, flipDiagonalSq(SqH8))
	assert.Equal(t, SqA8, flipDiagonalSq(SqH1))
}

func TestFlipAntiDiagonalSqKnownMappings(t *testing.T) {
	assert.Equal(t, SqH8, flipAntiDiagonalSq(SqA1))
	assert.Equal(t, SqA1, flipAntiDiagonalSq(SqH8))
}

func TestSquareFlipsAreInvolutions(t *testing.T) {
	fns := map[string]func(Square) Square{
		"horizontal":    flipHorizontalSq,
		"vertical":      flipVerticalSq,
		"diagonal":      flipDiagonalSq,
		"anti-diagonal": flipAntiDiagonalSq,
	}
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			for sq := SqA1; sq < SqNone; sq++ {
				assert.Equal(t, sq, fn(fn(sq)), "square %s", sq.String())
			}
		})
	}
}

func TestRetroBoardFlipHorizontalIsInvolution(t *testing.T) {
	rb, err := NewRetroBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.NoError(t, err)
	twice := rb.FlipHorizontal().FlipHorizontal()
	assert.Equal(t, rb.String(), twice.String())
}

func TestRetroBoardRotate180IsTwoRotate90s(t *testing.T) {
	rb, err := NewRetroBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, rb.Rotate180().String(), rb.Rotate90().Rotate90().String())
}

func TestRetroBoardRotate90ThenRotate270IsIdentity(t *testing.T) {
	rb, err := NewRetroBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, rb.String(), rb.Rotate90().Rotate270().String())
}

// A geometric transform of the board preserves legal-unmove count: the
// transform remaps every square consistently, so every pseudo-unmove and
// every attack relation it depends on carries over unchanged in shape.
func TestTransformPreservesLegalUnmoveCount(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1",
		"8/8/8/8/8/5k2/8/K3N2B b - - 0 1",
	}
	transforms := map[string]func(*RetroBoard) *RetroBoard{
		"FlipHorizontal":   (*RetroBoard).FlipHorizontal,
		"FlipVertical":     (*RetroBoard).FlipVertical,
		"FlipDiagonal":     (*RetroBoard).FlipDiagonal,
		"FlipAntiDiagonal": (*RetroBoard).FlipAntiDiagonal,
		"Rotate90":         (*RetroBoard).Rotate90,
		"Rotate180":        (*RetroBoard).Rotate180,
		"Rotate270":        (*RetroBoard).Rotate270,
	}
	for _, fen := range cases {
		rb, err := NewRetroBoard(fen)
		assert.NoError(t, err)
		mg := NewRetroMovegen()
		want := mg.GenerateLegalUnmoves(rb).Len()

		for name, fn := range transforms {
			t.Run(name, func(t *testing.T) {
				transformed := fn(rb)
				got := NewRetroMovegen().GenerateLegalUnmoves(transformed).Len()
				assert.Equal(t, want, got)
			})
		}
	}
}
