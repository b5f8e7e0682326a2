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

func TestUnMoveSlicePushBackAndAt(t *testing.T) {
	ml := NewUnMoveSlice(4)
	assert.Equal(t, 0, ml.Len())
	ml.PushBack(UnMove{From: SqG2, To: SqE1, Tag: Normal})
	ml.PushBack(UnMove{From: SqD3, To: SqE1, Tag: Normal})
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, SqG2, ml.At(0).From)
	assert.Equal(t, SqD3, ml.At(1).From)
}

func TestUnMoveSliceClearKeepsCapacity(t *testing.T) {
	ml := NewUnMoveSlice(4)
	ml.PushBack(UnMove{From: SqG2, To: SqE1, Tag: Normal})
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
	ml.PushBack(UnMove{From: SqC2, To: SqE1, Tag: Normal})
	assert.Equal(t, 1, ml.Len())
	assert.Equal(t, SqC2, ml.At(0).From)
}

func TestUnMoveSliceFilterCopyLeavesSourceUnmodified(t *testing.T) {
	ml := NewUnMoveSlice(4)
	ml.PushBack(UnMove{From: SqG2, To: SqE1, Tag: Normal})
	ml.PushBack(UnMove{From: SqD3, To: SqE1, Tag: Uncapture, Captured: Pawn})

	dest := NewUnMoveSlice(4)
	ml.FilterCopy(dest, func(i int) bool {
		return ml.At(i).Tag == Normal
	})

	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, 1, dest.Len())
	assert.Equal(t, Normal, dest.At(0).Tag)
}

func TestUnMoveSliceForEachVisitsInOrder(t *testing.T) {
	ml := NewUnMoveSlice(4)
	ml.PushBack(UnMove{From: SqG2, To: SqE1, Tag: Normal})
	ml.PushBack(UnMove{From: SqD3, To: SqE1, Tag: Normal})

	var froms []Square
	ml.ForEach(func(_ int, u UnMove) {
		froms = append(froms, u.From)
	})
	assert.Equal(t, []Square{SqG2, SqD3}, froms)
}

func TestUnMoveSliceString(t *testing.T) {
	rb, err := NewRetroBoard("8/8/8/8/8/5k2/8/K3N2B b - - 0 1")
	assert.NoError(t, err)

	ml := NewUnMoveSlice(4)
	ml.PushBack(UnMove{From: SqG2, To: SqE1, Tag: Normal})
	assert.Equal(t, "Ne1g2", ml.String(rb))
}
