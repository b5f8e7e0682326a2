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

package types

// MoveType distinguishes the four forward move kinds a Move can encode.
// Packed into 2 bits inside Move (see move.go's bit layout comment).
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
	MoveTypeLength
)

// IsValid checks if mt represents a valid move type
func (mt MoveType) IsValid() bool {
	return mt < MoveTypeLength
}

var moveTypeToString = [MoveTypeLength]string{"n", "p", "e", "c"}

// String returns a single letter abbreviation of the move type
func (mt MoveType) String() string {
	if !mt.IsValid() {
		return "-"
	}
	return moveTypeToString[mt]
}
