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

func TestPocketEmptyByDefault(t *testing.T) {
	var p Pocket
	assert.Equal(t, 0, p.Total())
	assert.False(t, p.Has(Queen))
	assert.Equal(t, "-", p.String(White))
}

func TestPocketIncrDecr(t *testing.T) {
	var p Pocket
	p.Incr(Queen)
	p.Incr(Queen)
	p.Incr(Pawn)
	assert.Equal(t, 2, p.Count(Queen))
	assert.Equal(t, 1, p.Count(Pawn))
	assert.Equal(t, 3, p.Total())
	p.Decr(Queen)
	assert.Equal(t, 1, p.Count(Queen))
}

func TestPocketForEachOrder(t *testing.T) {
	var p Pocket
	p.Incr(Pawn)
	p.Incr(Rook)
	p.Incr(Queen)
	var seen []PieceType
	p.ForEach(func(pt PieceType) {
		seen = append(seen, pt)
	})
	assert.Equal(t, []PieceType{Queen, Rook, Pawn}, seen)
}

func TestPocketStringRoundTrip(t *testing.T) {
	var p Pocket
	p.Incr(Queen)
	p.Incr(Rook)
	p.Incr(Rook)
	p.Incr(Pawn)

	wantWhite := "P2RQ"
	assert.Equal(t, wantWhite, p.String(White))
	assert.Equal(t, "p2rq", p.String(Black))

	parsed, err := ParsePocket(wantWhite)
	assert.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestParsePocketDash(t *testing.T) {
	p, err := ParsePocket("-")
	assert.NoError(t, err)
	assert.Equal(t, Pocket{}, p)

	p, err = ParsePocket("")
	assert.NoError(t, err)
	assert.Equal(t, Pocket{}, p)
}

func TestParsePocketCaseInsensitive(t *testing.T) {
	p, err := ParsePocket("qrp")
	assert.NoError(t, err)
	assert.True(t, p.Has(Queen))
	assert.True(t, p.Has(Rook))
	assert.True(t, p.Has(Pawn))
}

func TestParsePocketUnrecognizedLetter(t *testing.T) {
	_, err := ParsePocket("qx")
	assert.Error(t, err)
	var perr *ParsePocketError
	assert.ErrorAs(t, err, &perr)
}

func TestParsePocketDanglingCount(t *testing.T) {
	_, err := ParsePocket("2")
	assert.Error(t, err)
}

func TestParsePocketCountOverflow(t *testing.T) {
	config.Settings.Retro.MaxPocketCount = 16
	_, err := ParsePocket("17q")
	assert.Error(t, err)

	p, err := ParsePocket("16q")
	assert.NoError(t, err)
	assert.Equal(t, 16, p.Count(Queen))
}
