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

package evaluator

import (
	. "github.com/fkopp/frankygo-lite/internal/config"
	"github.com/fkopp/frankygo-lite/internal/position"
	. "github.com/fkopp/frankygo-lite/internal/types"
)

// evaluatePawns scores the pawn structure balance between White and
// Black, going through the pawn cache keyed on the position's pawn
// zobrist key when enabled.
func (e *Evaluator) evaluatePawns() *Score {
	e.scratch.MidGameValue = 0
	e.scratch.EndGameValue = 0

	if Settings.Eval.UsePawnCache {
		if entry := e.pawnCache.getEntry(e.position.PawnKey()); entry != nil {
			e.scratch.MidGameValue += entry.score.MidGameValue
			e.scratch.EndGameValue += entry.score.EndGameValue
			return &e.scratch
		}
	}

	e.scratch.Add(pawnStructureScore(e.position, White))
	e.scratch.Sub(pawnStructureScore(e.position, Black))

	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &e.scratch)
	}

	return &e.scratch
}

// pawnStructureScore scores every pawn of c individually against its
// doubled/isolated/passed/phalanx/supported status. The returned score
// is always from c's own point of view, not White's.
func pawnStructureScore(p *position.Position, c Color) Score {
	var s Score
	us := c
	them := us.Flip()
	ownPawns := p.PiecesBb(us, Pawn)
	enemyPawns := p.PiecesBb(them, Pawn)

	remaining := ownPawns
	for remaining != BbZero {
		sq := remaining.PopLsb()

		if (ownPawns & sq.FileBb() &^ sq.Bb()) != BbZero {
			s.MidGameValue += Settings.Eval.PawnDoubledMidMalus
			s.EndGameValue += Settings.Eval.PawnDoubledEndMalus
		}

		if (ownPawns & sq.NeighbourFilesMask()) == BbZero {
			s.MidGameValue += Settings.Eval.PawnIsolatedMidMalus
			s.EndGameValue += Settings.Eval.PawnIsolatedEndMalus
		} else if ownPawns&sq.NeighbourFilesMask()&sq.RankBb() != BbZero {
			s.MidGameValue += Settings.Eval.PawnPhalanxMidBonus
			s.EndGameValue += Settings.Eval.PawnPhalanxEndBonus
		}

		// GetPawnAttacks(them, sq) mirrors the squares a pawn of color them
		// standing on sq would attack onto us's side of the board, which are
		// exactly the squares one of our own pawns would need to occupy to
		// defend sq.
		if GetPawnAttacks(them, sq)&ownPawns != BbZero {
			s.MidGameValue += Settings.Eval.PawnSupportedMidBonus
			s.EndGameValue += Settings.Eval.PawnSupportedEndBonus
		}

		if sq.PassedPawnMask(us)&enemyPawns == BbZero {
			s.MidGameValue += Settings.Eval.PawnPassedMidBonus
			s.EndGameValue += Settings.Eval.PawnPassedEndBonus
		}

		if blockSquare := sq.To(us.MoveDirection()); blockSquare != SqNone &&
			(enemyPawns|ownPawns)&blockSquare.Bb() != BbZero {
			s.MidGameValue += Settings.Eval.PawnBlockedMidMalus
			s.EndGameValue += Settings.Eval.PawnBlockedEndMalus
		}
	}

	return s
}
