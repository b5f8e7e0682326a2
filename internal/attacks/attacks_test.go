/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package attacks

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/RetroGo/internal/types"
)

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestAttackersOfKnight(t *testing.T) {
	// white knight on e1, is it an attacker of f3?
	knights := SqE1.Bb()
	occupied := knights
	attackers := AttackersOf(SqF3, occupied, BbZero, knights, BbZero, BbZero, BbZero, White)
	assert.Equal(t, SqE1.Bb(), attackers)
}

func TestAttackersOfSliderAndBlocker(t *testing.T) {
	// white rook a4, bishop b2, queen c3 - bishop attacks a1 along the diagonal,
	// the rook attacks it down the open a-file, the queen is blocked by the bishop
	rook := SqA4.Bb()
	bishop := SqB2.Bb()
	queen := SqC3.Bb()
	occupied := rook | bishop | queen
	attackers := AttackersOf(SqA1, occupied, BbZero, BbZero, BbZero, rook, bishop, White)
	assert.Equal(t, rook|bishop, attackers)
}

func TestRevealedAttackers(t *testing.T) {
	// queen on c3, bishop on b2 blocks the ray to a1. Remove the bishop and
	// the queen's attack on a1 is revealed.
	queen := SqC3.Bb()
	bishop := SqB2.Bb()
	occupiedWithBishop := queen | bishop
	revealed := RevealedAttackers(SqA1, occupiedWithBishop, BbZero, queen|bishop)
	assert.Equal(t, bishop, revealed, "with the bishop present only it (the closer slider) attacks a1")

	occupiedWithoutBishop := queen
	revealed = RevealedAttackers(SqA1, occupiedWithoutBishop, BbZero, queen)
	assert.Equal(t, queen, revealed, "with the bishop removed the queen's ray to a1 is clear")
}
