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

// Package attacks provides square-attacker queries used by the retrograde
// legality filter to reason about direct and discovered checks. Unlike a
// search-time evaluator, the filter needs attacker sets for hypothetical,
// not-yet-materialized board states (a piece slid back to its origin, an
// un-captured piece placed back on the board), so these functions take
// explicit piece-type bitboards and an occupancy rather than a live
// position.Position.
package attacks

import (
	. "github.com/frankkopp/RetroGo/internal/types"
)

// AttackersOf returns the bitboard of origin squares from which a piece of
// attackerColor attacks "square", given the full board occupancy and
// attackerColor's own piece-type bitboards. It uses the reverse-attack
// technique: attacks are generated as if each piece type sat on "square"
// and intersected with where that piece type actually sits.
func AttackersOf(square Square, occupied Bitboard, pawns, knights, king, rooksAndQueens, bishopsAndQueens Bitboard, attackerColor Color) Bitboard {
	return (GetPawnAttacks(attackerColor.Flip(), square) & pawns) |
		(GetAttacksBb(Knight, square, occupied) & knights) |
		(GetAttacksBb(King, square, occupied) & king) |
		(GetAttacksBb(Rook, square, occupied) & rooksAndQueens) |
		(GetAttacksBb(Bishop, square, occupied) & bishopsAndQueens)
}

// RevealedAttackers returns sliding attacks on "square" given a hypothetical
// occupancy, intersected with the attacker's rook/queen and bishop/queen
// bitboards. Only sliders can have their attacks revealed by a vacated
// square, so non-sliding piece types are not considered here. Callers use
// this with an occupancy that has the mover's origin square cleared and its
// destination square filled to test whether a second, discovered attacker
// would appear.
func RevealedAttackers(square Square, occupied Bitboard, rooksAndQueens, bishopsAndQueens Bitboard) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & rooksAndQueens & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & bishopsAndQueens & occupied)
}
