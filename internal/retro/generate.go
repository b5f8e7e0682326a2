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
	"github.com/frankkopp/RetroGo/internal/config"
	. "github.com/frankkopp/RetroGo/internal/types"
)

// RetroMovegen holds reusable pseudo/legal unmove buffers so repeated
// GenerateLegalUnmoves calls, as happens walking a retrograde search tree,
// do not allocate a fresh slice per position. Create with NewRetroMovegen;
// the zero value is not ready to use.
type RetroMovegen struct {
	pseudoUnmoves *UnMoveSlice
	legalUnmoves  *UnMoveSlice
}

// NewRetroMovegen creates a generator with MaxMoves of slice capacity
// pre-allocated.
func NewRetroMovegen() *RetroMovegen {
	return &RetroMovegen{
		pseudoUnmoves: NewUnMoveSlice(MaxMoves),
		legalUnmoves:  NewUnMoveSlice(MaxMoves),
	}
}

// GenerateLegalUnmoves fills and returns the generator's legal-unmove
// buffer for rb: GeneratePseudoUnmoves followed by ApplyLegalityFilter's
// checks, without the intermediate allocation ApplyLegalityFilter itself
// would perform on its own.
func (mg *RetroMovegen) GenerateLegalUnmoves(rb *RetroBoard) *UnMoveSlice {
	GeneratePseudoUnmoves(rb, mg.pseudoUnmoves)
	mg.legalUnmoves.Clear()
	mg.pseudoUnmoves.FilterCopy(mg.legalUnmoves, func(i int) bool {
		return unmoveIsLegal(rb, mg.pseudoUnmoves.At(i))
	})
	return mg.legalUnmoves
}

// pawnReverseDiagDirs gives, per un-mover color, the two directions a pawn
// currently standing on "to" must have come from to explain a diagonal
// forward capture: white captures towards North, so its predecessor square
// lies Southeast/Southwest of "to"; black captures towards South, so its
// predecessor square lies Northeast/Northwest.
var pawnReverseDiagDirs = [ColorLength][2]Direction{
	{Southeast, Southwest},
	{Northeast, Northwest},
}

// GeneratePseudoUnmoves fills ml with every structurally possible unmove for
// the side to un-move on rb, with no king-safety or checker-consistency
// analysis (see ApplyLegalityFilter for that). ml is cleared first.
func GeneratePseudoUnmoves(rb *RetroBoard, ml *UnMoveSlice) {
	ml.Clear()
	us := rb.retroTurn
	them := us.Flip()

	for pt := Knight; pt <= Queen; pt++ {
		generateOfficerUnmoves(rb, us, them, pt, ml)
		generateUnpromotionUnmoves(rb, us, them, pt, ml)
	}
	generateKingUnmoves(rb, us, them, ml)
	generatePawnUnmoves(rb, us, them, ml)
}

// generateOfficerUnmoves produces reverse slides/jumps for knights, bishops,
// rooks and queens: every empty square the piece currently attacks is a
// candidate "from"; each candidate also yields one Uncapture unmove per
// piece kind present in the opponent's pocket. This function doesn't care
// whether the piece sits on its color's promotion rank - a promoted piece
// can equally well have just been a long-lived officer, and
// generateUnpromotionUnmoves adds the competing hypothesis separately.
func generateOfficerUnmoves(rb *RetroBoard, us Color, them Color, pt PieceType, ml *UnMoveSlice) {
	occAll := rb.OccupiedAll()
	pieces := rb.piecesBb[us][pt]
	for pieces != 0 {
		to := pieces.PopLsb()
		var attacked Bitboard
		if pt == Knight {
			attacked = GetPseudoAttacks(Knight, to)
		} else {
			attacked = GetAttacksBb(pt, to, occAll)
		}
		candidates := attacked &^ occAll
		for candidates != 0 {
			from := candidates.PopLsb()
			ml.PushBack(UnMove{From: from, To: to, Tag: Normal})
			for _, kind := range pocketKinds {
				if rb.pockets[them].Has(kind) {
					ml.PushBack(UnMove{From: from, To: to, Tag: Uncapture, Captured: kind})
				}
			}
		}
	}
}

// generateKingUnmoves mirrors generateOfficerUnmoves for the single king,
// using the non-sliding pseudo-attack table directly. Castling is never
// reversed (see uncastling rights).
func generateKingUnmoves(rb *RetroBoard, us Color, them Color, ml *UnMoveSlice) {
	occAll := rb.OccupiedAll()
	to := rb.kingSquare[us]
	candidates := GetPseudoAttacks(King, to) &^ occAll
	for candidates != 0 {
		from := candidates.PopLsb()
		ml.PushBack(UnMove{From: from, To: to, Tag: Normal})
		for _, kind := range pocketKinds {
			if rb.pockets[them].Has(kind) {
				ml.PushBack(UnMove{From: from, To: to, Tag: Uncapture, Captured: kind})
			}
		}
	}
}

// generateUnpromotionUnmoves handles the reverse of a pawn promotion: an
// officer piece standing on the un-mover's promotion rank may revert to a
// pawn on the rank one step back towards its own start, either by a
// straight reverse push (plain Unpromotion) or by a reverse diagonal
// un-capture (UnpromotionUncapture, one candidate per pocket kind).
func generateUnpromotionUnmoves(rb *RetroBoard, us Color, them Color, pt PieceType, ml *UnMoveSlice) {
	occAll := rb.OccupiedAll()
	onPromotionRank := rb.piecesBb[us][pt] & us.PromotionRankBb()
	for onPromotionRank != 0 {
		to := onPromotionRank.PopLsb()

		straightFrom := to.To(us.Flip().MoveDirection())
		if straightFrom != SqNone && !occAll.Has(straightFrom) {
			ml.PushBack(UnMove{From: straightFrom, To: to, Tag: Unpromotion, Promoted: pt})
		}

		for _, dir := range pawnReverseDiagDirs[us] {
			from := to.To(dir)
			if from == SqNone || occAll.Has(from) {
				continue
			}
			for _, kind := range pocketKinds {
				if kind == Pawn {
					// to sits on us' promotion rank, illegal for any pawn
					// regardless of color (rule E) - never a legal target.
					continue
				}
				if rb.pockets[them].Has(kind) {
					ml.PushBack(UnMove{From: from, To: to, Tag: UnpromotionUncapture, Promoted: pt, Captured: kind})
				}
			}
		}
	}
}

// generatePawnUnmoves covers every reverse pawn trajectory: straight single
// and double pushes, diagonal un-captures, and the en-passant unmove. Pawns
// standing on the promotion rank never occur (validateSetup forbids it);
// officers standing there are handled by generateUnpromotionUnmoves
// instead.
func generatePawnUnmoves(rb *RetroBoard, us Color, them Color, ml *UnMoveSlice) {
	occAll := rb.OccupiedAll()
	back := us.Flip().MoveDirection()
	ownPawns := rb.piecesBb[us][Pawn]

	pawns := ownPawns
	for pawns != 0 {
		to := pawns.PopLsb()

		// straight single push back
		from := to.To(back)
		if from != SqNone && !occAll.Has(from) && !(Rank1_Bb|Rank8_Bb).Has(from) {
			ml.PushBack(UnMove{From: from, To: to, Tag: Normal})

			// straight double push back: "from" (the intermediate square a
			// single push lands on) must be the un-mover's own
			// PawnDoubleRank square, with both the intermediate and the
			// origin square empty.
			if us.PawnDoubleRank().Has(from) {
				origin := from.To(back)
				if origin != SqNone && !occAll.Has(origin) {
					ml.PushBack(UnMove{From: origin, To: to, Tag: Normal})
				}
			}
		}

		// diagonal un-captures
		for _, dir := range pawnReverseDiagDirs[us] {
			diagFrom := to.To(dir)
			if diagFrom == SqNone || occAll.Has(diagFrom) || (Rank1_Bb|Rank8_Bb).Has(diagFrom) {
				continue
			}
			for _, kind := range pocketKinds {
				if rb.pockets[them].Has(kind) {
					ml.PushBack(UnMove{From: diagFrom, To: to, Tag: Uncapture, Captured: kind})
				}
			}
		}
	}

	if !config.Settings.Retro.GenerateEnPassant {
		return
	}

	// en passant: a pawn sitting on the en-passant destination rank for us
	// (the rank "them" would land an intermediate double-push square on)
	// may have just captured en passant, provided the square the captured
	// pawn would reappear on is currently empty.
	epRankPawns := ownPawns & them.PawnDoubleRank()
	for epRankPawns != 0 {
		to := epRankPawns.PopLsb()
		capturedSq := to.To(them.MoveDirection())
		if capturedSq == SqNone || occAll.Has(capturedSq) {
			continue
		}
		for _, dir := range pawnReverseDiagDirs[us] {
			from := to.To(dir)
			if from == SqNone || occAll.Has(from) {
				continue
			}
			ml.PushBack(UnMove{From: from, To: to, Tag: EnPassant})
		}
	}
}
