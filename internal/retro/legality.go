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
	. "github.com/frankkopp/RetroGo/internal/types"
)

// ApplyLegalityFilter returns the subset of pseudo that describes an actually
// legal predecessor position. pseudo is left unmodified; the returned slice
// is newly allocated.
//
// Cheap, purely local checks (source-square availability, pocket material,
// en-passant/un-capture bookkeeping, un-captured pawn placement) run first
// and reject most illegal candidates before any board state is touched. The
// remaining candidates are validated the same make-move/check-attacked/
// unmake-move shape Position.IsLegalMove uses forward - materialize the
// position with Push, test a king for check, Pop - but mirrored for which
// king and which board matters. Position.IsLegalMove tests the mover's own
// king on the board AFTER its move; here that board is rb itself, fixed
// before any Push runs, so it never varies per candidate - it was already
// settled once, for every candidate at once, by validateSetup at
// construction. What DOES vary per candidate is the reconstructed
// predecessor: the side not-to-move there (the un-mover's opponent, "them")
// can never legally be found in check in a position where it is not their
// turn, so that is the one check performed, on the board Push produces.
// Checking the un-mover's own king on that same predecessor board would be
// wrong: being in check in a position is entirely normal for the side about
// to move there, and un-moves that describe an escape-by-blocking would be
// rejected by mistake if that were tested. This sidesteps hand-rolled ray
// enumeration entirely: the reverse-attack technique in package attacks
// computes slider x-rays against the real post-Push occupancy regardless of
// how many pieces give check, so the double-check edge cases (an
// equidistant stepper and slider, or one slider discovered behind another)
// fall out correctly without being special-cased here.
func ApplyLegalityFilter(rb *RetroBoard, pseudo *UnMoveSlice) *UnMoveSlice {
	legal := NewUnMoveSlice(pseudo.Len())
	pseudo.FilterCopy(legal, func(i int) bool {
		return unmoveIsLegal(rb, pseudo.At(i))
	})
	return legal
}

func unmoveIsLegal(rb *RetroBoard, u UnMove) bool {
	us := rb.retroTurn
	them := us.Flip()
	if !sourceAvailable(rb, u, them) {
		return false
	}
	if !specialRulesOk(rb, u) {
		return false
	}
	if !uncapturedPlacementOk(u) {
		return false
	}
	return leavesOpponentKingUnattacked(rb, u, us, them)
}

// sourceAvailable is rule (A): from must be empty, and un-captures/
// un-promotion-un-captures need the named kind in the opponent's pocket.
func sourceAvailable(rb *RetroBoard, u UnMove, them Color) bool {
	if rb.OccupiedAll().Has(u.From) {
		return false
	}
	switch u.Tag {
	case Uncapture, UnpromotionUncapture:
		return rb.pockets[them].Has(u.Captured)
	}
	return true
}

// specialRulesOk is rule (D)'s en-passant clause. The un-promotion rank
// match and the reverse double-push emptiness requirements are already
// structural preconditions in GeneratePseudoUnmoves, so they need no
// separate check here.
//
// An en-passant unmove is only legal when the board's recorded ep square is
// exactly "to": that is the one condition under which the current position
// could not also be explained by an ordinary diagonal capture of a pawn
// standing on "to" (such a capture would have cleared the ep square).
// Consequently, when the ep square does match, that competing ordinary
// Uncapture(Pawn) hypothesis for the same square pair is withdrawn.
func specialRulesOk(rb *RetroBoard, u UnMove) bool {
	switch u.Tag {
	case EnPassant:
		return rb.epSquare == u.To
	case Uncapture:
		if u.Captured == Pawn && rb.epSquare == u.To {
			return false
		}
	}
	return true
}

// uncapturedPlacementOk is rule (E): a pawn materializing back onto the
// board may not land on the first or eighth rank.
func uncapturedPlacementOk(u UnMove) bool {
	if u.Captured != Pawn {
		return true
	}
	switch u.Tag {
	case Uncapture, UnpromotionUncapture:
		r := u.To.RankOf()
		return r != Rank1 && r != Rank8
	}
	return true
}

// leavesOpponentKingUnattacked is rule (B)+(C) combined: materializes u with
// Push, checks whether the un-mover's opponent - "them", not on move in the
// reconstructed predecessor - is in check there, then restores rb with Pop.
// us and them are fixed at the un-mover's colors before the push;
// rb.retroTurn flips during the push/pop but piece-color bitboards are
// addressed by absolute color throughout, so the king lookup stays correct
// regardless.
func leavesOpponentKingUnattacked(rb *RetroBoard, u UnMove, us Color, them Color) bool {
	rb.Push(u)
	safe := !rb.attackedBy(rb.kingSquare[them], us)
	rb.Pop(u)
	return safe
}
