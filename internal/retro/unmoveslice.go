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

import "strings"

// UnMoveSlice is a growable container of UnMove, modeled on moveslice.MoveSlice.
type UnMoveSlice []UnMove

// NewUnMoveSlice creates an empty slice with the given capacity.
func NewUnMoveSlice(cap int) *UnMoveSlice {
	moves := make([]UnMove, 0, cap)
	return (*UnMoveSlice)(&moves)
}

// Len returns the number of unmoves currently stored.
func (us *UnMoveSlice) Len() int {
	return len(*us)
}

// PushBack appends an unmove at the end of the slice.
func (us *UnMoveSlice) PushBack(u UnMove) {
	*us = append(*us, u)
}

// At returns the unmove at index i.
func (us *UnMoveSlice) At(i int) UnMove {
	return (*us)[i]
}

// Clear empties the slice while keeping its backing array.
func (us *UnMoveSlice) Clear() {
	*us = (*us)[:0]
}

// FilterCopy appends every element for which f returns true to dest,
// leaving us unmodified.
func (us *UnMoveSlice) FilterCopy(dest *UnMoveSlice, f func(index int) bool) {
	for i, u := range *us {
		if f(i) {
			*dest = append(*dest, u)
		}
	}
}

// ForEach calls f once per stored unmove, in order.
func (us *UnMoveSlice) ForEach(f func(i int, u UnMove)) {
	for i, u := range *us {
		f(i, u)
	}
}

// String renders each unmove with the piece kind currently standing on its
// To square, comma separated.
func (us *UnMoveSlice) String(rb *RetroBoard) string {
	var sb strings.Builder
	for i, u := range *us {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(u.String(rb.PieceAt(u.To).TypeOf()))
	}
	return sb.String()
}
