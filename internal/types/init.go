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

import (
	"github.com/fkopp/frankygo-lite/internal/logging"
)

var log = logging.GetLog("types")

var initialized = false

const (
	// MaxDepth is the maximum search depth supported by the engine.
	MaxDepth = 128

	// MaxMoves is the maximum number of plies tracked for a single game.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is KB * KB.
	MB = KB * KB
	// GB is KB * MB.
	GB = KB * MB

	// GamePhaseMax is the maximum tapered-eval game phase value, reached
	// when all officers (non-pawn, non-king pieces) are still on the board.
	GamePhaseMax = 24
)

// init precomputes the bitboard lookup tables and positional value tables
// used throughout the package. Safe to rely on at package load time since
// Go guarantees init() runs before any other package code.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing board representation tables")
	initBb()
	initPosValues()
	initialized = true
}
