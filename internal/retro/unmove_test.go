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

func TestUnMoveTagString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "uncapture", Uncapture.String())
	assert.Equal(t, "unpromotion", Unpromotion.String())
	assert.Equal(t, "unpromotion-uncapture", UnpromotionUncapture.String())
	assert.Equal(t, "enpassant", EnPassant.String())
}

func TestUnMoveStringNormal(t *testing.T) {
	u := UnMove{From: SqG2, To: SqE1, Tag: Normal}
	assert.Equal(t, "Ne1g2", u.String(Knight))
}

func TestUnMoveStringUncapture(t *testing.T) {
	u := UnMove{From: SqB5, To: SqA6, Tag: Uncapture, Captured: Pawn}
	assert.Equal(t, "UPa6b5xP", u.String(Pawn))
}

func TestUnMoveStringUnpromotion(t *testing.T) {
	u := UnMove{From: SqB7, To: SqB8, Tag: Unpromotion, Promoted: Queen}
	assert.Equal(t, "Qb8b7=P", u.String(Queen))
}

func TestUnMoveStringEnPassant(t *testing.T) {
	u := UnMove{From: SqB5, To: SqA6, Tag: EnPassant}
	assert.Equal(t, "EPa6b5", u.String(Pawn))
}

func TestUnMoveEqualityIsStructural(t *testing.T) {
	a := UnMove{From: SqG2, To: SqE1, Tag: Normal}
	b := UnMove{From: SqG2, To: SqE1, Tag: Normal}
	c := UnMove{From: SqG2, To: SqE1, Tag: Uncapture, Captured: Pawn}
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
