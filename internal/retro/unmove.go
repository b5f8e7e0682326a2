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

	. "github.com/frankkopp/RetroGo/internal/types"
)

// UnMoveTag discriminates the five reverse-move shapes a Retroboard can
// push/pop.
type UnMoveTag uint8

const (
	Normal UnMoveTag = iota
	Uncapture
	Unpromotion
	UnpromotionUncapture
	EnPassant
)

// String returns a short label for the tag, used only by UnMove.String.
func (t UnMoveTag) String() string {
	switch t {
	case Normal:
		return "normal"
	case Uncapture:
		return "uncapture"
	case Unpromotion:
		return "unpromotion"
	case UnpromotionUncapture:
		return "unpromotion-uncapture"
	case EnPassant:
		return "enpassant"
	default:
		return "invalid"
	}
}

// UnMove is a single reverse move: the piece currently on To returns to
// From. Tag selects which additional bookkeeping push/pop performs.
// Captured names the piece kind materialized on To for Uncapture and
// UnpromotionUncapture (ignored otherwise - En passant always restores a
// pawn and does not need the field). Promoted names the piece kind
// standing on To for Unpromotion and UnpromotionUncapture - Pop needs it
// to recreate that piece, since by the time Pop runs the board itself
// only shows the pawn Push already restored to From.
//
// All fields are comparable, so UnMove equality is plain struct ==, which
// satisfies the structural-equality requirement laid out for this type.
type UnMove struct {
	From     Square
	To       Square
	Tag      UnMoveTag
	Captured PieceType
	Promoted PieceType
}

// String renders a test-only stringly form: a prefix (U for uncapture
// variants, E for en passant, nothing for normal/unpromotion), the kind of
// the piece currently standing on To, the destination, the origin, and a
// trailing un-capture/un-promotion suffix. pieceOnTo is read off the
// RetroBoard by the caller before popping, since UnMove itself does not
// carry it - for Unpromotion/UnpromotionUncapture this is the promoted
// piece kind (e.g. Queen), not the pawn it reverts to.
func (u UnMove) String(pieceOnTo PieceType) string {
	var prefix string
	switch u.Tag {
	case Uncapture, UnpromotionUncapture:
		prefix = "U"
	case EnPassant:
		prefix = "E"
	}
	s := fmt.Sprintf("%s%s%s%s", prefix, pieceOnTo.Char(), u.To.String(), u.From.String())
	switch u.Tag {
	case Uncapture:
		s += "x" + u.Captured.Char()
	case Unpromotion:
		s += "=" + Pawn.Char()
	case UnpromotionUncapture:
		s += "=" + Pawn.Char() + "x" + u.Captured.Char()
	}
	return s
}
