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

import "fmt"

// ParsePocketError reports a malformed pocket token.
type ParsePocketError struct {
	Token  string
	Reason string
}

func (e *ParsePocketError) Error() string {
	return fmt.Sprintf("retro: invalid pocket token %q: %s", e.Token, e.Reason)
}

// ParseFenError reports a malformed extended FEN. Wraps a ParsePocketError
// when the failure originated while reading one of the trailing pocket
// tokens.
type ParseFenError struct {
	Fen    string
	Reason string
	Err    error
}

func (e *ParseFenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retro: invalid fen %q: %s: %v", e.Fen, e.Reason, e.Err)
	}
	return fmt.Sprintf("retro: invalid fen %q: %s", e.Fen, e.Reason)
}

func (e *ParseFenError) Unwrap() error {
	return e.Err
}

// IllegalSetupError reports a structurally valid FEN that does not describe
// a position a RetroBoard can represent (missing king, pawn on the back
// rank, too many pieces of a kind).
type IllegalSetupError struct {
	Reason string
}

func (e *IllegalSetupError) Error() string {
	return fmt.Sprintf("retro: illegal setup: %s", e.Reason)
}
