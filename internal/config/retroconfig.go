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

package config

// retroConfiguration holds settings for the retrograde unmove generator.
type retroConfiguration struct {
	// MaxPocketCount is the upper bound accepted for a single pocket
	// piece kind count when parsing an extended FEN pocket token.
	MaxPocketCount int

	// StrictUncastling rejects extended FEN input that carries
	// uncastling rights inconsistent with king/rook placement.
	StrictUncastling bool

	// GenerateEnPassant toggles emission of the en-passant unmove
	// candidate by the pseudo-unmove generator. Exposed for test
	// harnesses that want to isolate the ep rule; production use
	// always leaves this on.
	GenerateEnPassant bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Retro.MaxPocketCount = 16
	Settings.Retro.StrictUncastling = false
	Settings.Retro.GenerateEnPassant = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupRetro() {

}
