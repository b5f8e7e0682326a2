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

// Package retro implements retrograde move generation: enumerating the legal
// predecessor positions ("unmoves") of a chess position for endgame
// tablebase construction.
package retro

import (
	"strconv"
	"strings"

	"github.com/frankkopp/RetroGo/internal/assert"
	"github.com/frankkopp/RetroGo/internal/config"
	. "github.com/frankkopp/RetroGo/internal/types"
)

// Pocket holds, for one color, the multiset of piece kinds that color may
// place back on the board as an un-capture. Kings are never captured and
// therefore never held in a pocket. Indexed directly by PieceType so the
// zero value (all counts 0) is a valid empty pocket.
type Pocket [PtLength]int8

// pocketKinds is the order un-captures are drawn from a pocket in: highest
// value first. Only iteration order - not required for correctness, but
// kept deterministic so unmove enumeration order is reproducible.
var pocketKinds = [5]PieceType{Queen, Rook, Bishop, Knight, Pawn}

// Count returns how many pieces of kind pt are currently in the pocket.
func (p Pocket) Count(pt PieceType) int {
	return int(p[pt])
}

// Has reports whether the pocket holds at least one piece of kind pt.
func (p Pocket) Has(pt PieceType) bool {
	return p[pt] > 0
}

// Incr adds one piece of kind pt to the pocket.
func (p *Pocket) Incr(pt PieceType) {
	if assert.DEBUG {
		assert.Assert(pt == Pawn || pt == Knight || pt == Bishop || pt == Rook || pt == Queen,
			"Pocket Incr: invalid piece kind %s", pt.String())
	}
	p[pt]++
}

// Decr removes one piece of kind pt from the pocket. Underflow is a
// programming error - the legality filter must never call this when the
// pocket is empty for pt.
func (p *Pocket) Decr(pt PieceType) {
	if assert.DEBUG {
		assert.Assert(p[pt] > 0, "Pocket Decr: underflow for kind %s", pt.String())
	}
	p[pt]--
}

// ForEach calls f once for every unit of count held in the pocket, in
// descending-value kind order (queens, rooks, bishops, knights, pawns).
// A kind with count N is yielded N times.
func (p Pocket) ForEach(f func(pt PieceType)) {
	for _, pt := range pocketKinds {
		for i := 0; i < int(p[pt]); i++ {
			f(pt)
		}
	}
}

// Total returns the sum of all counts held in the pocket.
func (p Pocket) Total() int {
	t := 0
	for _, pt := range pocketKinds {
		t += int(p[pt])
	}
	return t
}

// pocketLetters maps a piece kind to its upper-case FEN-style letter, in
// the PNBRQ encoding order used by String/ParsePocket.
var pocketLetters = [5]struct {
	pt PieceType
	ch byte
}{
	{Pawn, 'P'},
	{Knight, 'N'},
	{Bishop, 'B'},
	{Rook, 'R'},
	{Queen, 'Q'},
}

// String renders the pocket in PNBRQ order for the given color: white
// renders upper case letters, black lower case. A count of 1 is a bare
// letter; a count of 2 or more is prefixed by the count; a count of 0
// omits the letter entirely. An empty pocket renders as "-".
func (p Pocket) String(c Color) string {
	var sb strings.Builder
	for _, e := range pocketLetters {
		n := p[e.pt]
		if n == 0 {
			continue
		}
		if n > 1 {
			sb.WriteString(strconv.Itoa(int(n)))
		}
		ch := e.ch
		if c == Black {
			ch = ch - 'A' + 'a'
		}
		sb.WriteByte(ch)
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

var pocketLetterToKind = map[byte]PieceType{
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
}

// ParsePocket parses a pocket token in the textual form described by
// Pocket.String (case-insensitive on the letter; the token's case is not
// itself validated against an expected color since the caller already
// knows which color's token it is reading). Returns a ParsePocketError on
// a non-recognized letter, a count with no following letter, or a count
// that overflows config.Settings.Retro.MaxPocketCount.
func ParsePocket(token string) (Pocket, error) {
	var p Pocket
	if token == "-" || token == "" {
		return p, nil
	}
	maxCount := config.Settings.Retro.MaxPocketCount
	count := 0
	haveCount := false
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
			haveCount = true
			if count > maxCount {
				return Pocket{}, &ParsePocketError{Token: token, Reason: "count overflow"}
			}
		default:
			upper := c
			if upper >= 'a' && upper <= 'z' {
				upper = upper - 'a' + 'A'
			}
			pt, ok := pocketLetterToKind[upper]
			if !ok {
				return Pocket{}, &ParsePocketError{Token: token, Reason: "unrecognized letter '" + string(c) + "'"}
			}
			if !haveCount {
				count = 1
			}
			p[pt] += int8(count)
			count = 0
			haveCount = false
		}
	}
	if haveCount {
		return Pocket{}, &ParsePocketError{Token: token, Reason: "count without following letter"}
	}
	return p, nil
}
