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

// These square remappings mirror the bit-twiddling rotations bitboard.go
// already defines for whole bitboards (RotateR90/RotateL90 and their
// RotateSquareXX counterparts); flips have no existing counterpart there
// since the engine itself never needed them, so they are derived directly
// from file/rank arithmetic instead.

func flipHorizontalSq(sq Square) Square {
	return SquareOf(FileH-sq.FileOf(), sq.RankOf())
}

func flipVerticalSq(sq Square) Square {
	return SquareOf(sq.FileOf(), Rank8-sq.RankOf())
}

func flipDiagonalSq(sq Square) Square {
	return SquareOf(File(sq.RankOf()), Rank(sq.FileOf()))
}

func flipAntiDiagonalSq(sq Square) Square {
	return SquareOf(File(Rank8-sq.RankOf()), Rank(FileH-sq.FileOf()))
}

// transformed returns a new RetroBoard with every piece and the en
// passant square remapped through remap. Pockets, retro-turn, uncastling
// rights and the move counters are copied unchanged - only geometry
// moves.
func (rb *RetroBoard) transformed(remap func(Square) Square) *RetroBoard {
	out := &RetroBoard{
		retroTurn:      rb.retroTurn,
		pockets:        rb.pockets,
		uncastling:     rb.uncastling,
		halfMoveClock:  rb.halfMoveClock,
		fullMoveNumber: rb.fullMoveNumber,
		epSquare:       SqNone,
	}
	for sq := SqA1; sq < SqNone; sq++ {
		pc := rb.board[sq]
		if pc == PieceNone {
			continue
		}
		out.putPiece(pc, remap(sq))
	}
	if rb.epSquare != SqNone {
		out.epSquare = remap(rb.epSquare)
	}
	return out
}

// FlipHorizontal mirrors the board across the d/e-files boundary (a<->h,
// b<->g, ...), keeping ranks fixed.
func (rb *RetroBoard) FlipHorizontal() *RetroBoard {
	return rb.transformed(flipHorizontalSq)
}

// FlipVertical mirrors the board across the 4th/5th-rank boundary
// (rank1<->rank8, ...), keeping files fixed.
func (rb *RetroBoard) FlipVertical() *RetroBoard {
	return rb.transformed(flipVerticalSq)
}

// FlipDiagonal transposes the board across the a1-h8 diagonal.
func (rb *RetroBoard) FlipDiagonal() *RetroBoard {
	return rb.transformed(flipDiagonalSq)
}

// FlipAntiDiagonal transposes the board across the a8-h1 diagonal.
func (rb *RetroBoard) FlipAntiDiagonal() *RetroBoard {
	return rb.transformed(flipAntiDiagonalSq)
}

// Rotate90 rotates the board 90 degrees clockwise.
func (rb *RetroBoard) Rotate90() *RetroBoard {
	return rb.transformed(RotateSquareR90)
}

// Rotate180 rotates the board 180 degrees.
func (rb *RetroBoard) Rotate180() *RetroBoard {
	return rb.transformed(func(sq Square) Square {
		return RotateSquareR90(RotateSquareR90(sq))
	})
}

// Rotate270 rotates the board 270 degrees clockwise (90 counter-clockwise).
func (rb *RetroBoard) Rotate270() *RetroBoard {
	return rb.transformed(RotateSquareL90)
}
