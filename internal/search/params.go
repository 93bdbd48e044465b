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

package search

import (
	"math"

	"github.com/fkopp/frankygo-lite/internal/types"
)

// Pre-computed, non-configurable pruning/reduction tables. These are
// shaped by depth and move count rather than by a single tunable weight,
// so they live here instead of in the config-driven Settings struct.

// lmrReductions[depth][movesSearched] is the late-move-reduction table:
// how many plies to shave off the search depth for a quiet move that far
// down the move list at that remaining depth.
var lmrReductions [32][64]int

// LmrReduction returns the search depth reduction for LMR depending on
// depth and moves searched, clamping both dimensions to the table size.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= len(lmrReductions) {
		depth = len(lmrReductions) - 1
	}
	if movesSearched >= len(lmrReductions[0]) {
		movesSearched = len(lmrReductions[0]) - 1
	}
	return lmrReductions[depth][movesSearched]
}

func init() {
	for depth := range lmrReductions {
		for moves := range lmrReductions[depth] {
			switch {
			case depth <= 3, moves <= 3:
				lmrReductions[depth][moves] = 1
			default:
				lmrReductions[depth][moves] = int(math.Round((float64(depth)*0.7)*(float64(moves)*0.005) + 1.0))
			}
		}
	}
}

// dumpLmrTable logs the full LMR table; useful when retuning the formula
// above, otherwise unused.
func dumpLmrTable() {
	for depth := 3; depth < len(lmrReductions); depth++ {
		for moves := 3; moves < len(lmrReductions[depth]); moves++ {
			out.Printf("LMR: depth: %2d moves searched: %2d r:%2d\n", depth, moves, lmrReductions[depth][moves])
		}
		out.Println()
	}
}

// lmpMovesSearched[depth] is the late-move-pruning table: beyond this many
// searched moves at the given remaining depth, further quiet moves are
// skipped outright instead of reduced.
var lmpMovesSearched [16]int

func init() {
	for depth := 1; depth < len(lmpMovesSearched); depth++ {
		// formula taken from Crafty
		lmpMovesSearched[depth] = 6 + int(math.Pow(float64(depth)+0.5, 1.3))
	}
}

// LmpMovesSearched returns a depth dependent value for moves searched for
// late move prunings.
func LmpMovesSearched(depth int) int {
	if depth >= len(lmpMovesSearched) {
		return lmpMovesSearched[len(lmpMovesSearched)-1]
	}
	return lmpMovesSearched[depth]
}

// futilityMargins[depthLeft] - beyond this centipawn margin below alpha, a
// quiet move at a shallow remaining depth is assumed too far behind to
// catch up and is pruned without searching.
// Crafty's table for comparison: {0, 100, 150, 200, 250, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200, 1300}
var futilityMargins = [7]types.Value{0, 100, 200, 300, 500, 900, 1200}

// reverseFutilityMargins[depthLeft] - the static-null-move-style margin
// used when the side to move is already comfortably above beta.
var reverseFutilityMargins = [4]types.Value{0, 200, 400, 800}

// aspirationWindowSteps are the successive window widenings tried after an
// aspiration search fails high or low, the last one being the full window.
var aspirationWindowSteps = []types.Value{50, 200, types.ValueMax}
