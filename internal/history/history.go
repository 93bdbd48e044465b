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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/fkopp/frankygo-lite/internal/types"
)

var out = message.NewPrinter(language.German)

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting.
type History struct {
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := White; c <= 1; c++ {
				count := h.HistoryCount[c][sf][st]
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), count))
			}
			m := h.CounterMoves[sf][st]
			sb.WriteString(out.Sprintf("cm=%s\n", m.StringUci()))
		}
	}
	return sb.String()
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Reward increases the history score for the quiet move c plays from->to
// after it caused a beta cutoff, weighted by 1<<depth so cutoffs found
// deeper in the tree (rarer, and harder won) count for more than shallow
// ones.
func (h *History) Reward(c Color, from, to Square, depth int) {
	h.HistoryCount[c][from][to] += 1 << depth
}

// Penalize decreases the history score for a quiet move that was searched
// but did not cause a cutoff, by the same 1<<depth that Reward adds at
// that depth, floored at zero so the score never goes negative.
func (h *History) Penalize(c Color, from, to Square, depth int) {
	h.HistoryCount[c][from][to] -= 1 << depth
	if h.HistoryCount[c][from][to] < 0 {
		h.HistoryCount[c][from][to] = 0
	}
}

// SetCounterMove records move as the reply that refuted lastMove.
func (h *History) SetCounterMove(lastMove, move Move) {
	h.CounterMoves[lastMove.From()][lastMove.To()] = move
}

// CounterMove returns the recorded reply to lastMove, or MoveNone if none
// has been recorded.
func (h *History) CounterMove(lastMove Move) Move {
	return h.CounterMoves[lastMove.From()][lastMove.To()]
}
