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

package search

import (
	"github.com/fkopp/frankygo-lite/internal/position"
	. "github.com/fkopp/frankygo-lite/internal/types"
)

// maxExchangeDepth bounds the swap-off chain: there are at most 32 pieces
// on the board, so no capture sequence on one square can ever run longer.
const maxExchangeDepth = 32

// see runs the minimax "swap algorithm" static exchange evaluation for move
// on p: assume the move is played, then replay the cheapest attacker or
// defender on the target square from alternating sides until one side has
// nothing left worth trading, and return the net material result for the
// side making move. A negative result means the capture loses material even
// after every recapture is accounted for - the signal alpha-beta pruning
// uses to skip a losing capture without searching it further.
//
// https://www.chessprogramming.org/Static_Exchange_Evaluation
func see(p *position.Position, move Move) Value {
	// an en passant capture can never be met by a losing recapture (the
	// captured pawn is already off the board once any recapture happens),
	// so it's scored as a safe winning capture without running the
	// exchange at all.
	if move.MoveType() == EnPassant {
		return 100
	}

	var gain [maxExchangeDepth]Value

	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.GetPiece(fromSquare)
	sideToMove := p.NextPlayer()

	// occupied is mutated as pieces are removed from the exchange to
	// reveal x-ray attackers behind them - a rook behind a bishop only
	// attacks the square once the bishop has stepped aside.
	occupied := p.OccupiedAll()
	attackers := AttacksTo(p, toSquare, White) | AttacksTo(p, toSquare, Black)

	ply := 0
	gain[ply] = p.GetPiece(toSquare).ValueOf()

	for {
		ply++
		sideToMove = sideToMove.Flip()

		if move.MoveType() == Promotion {
			gain[ply] = move.PromotionType().ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.ValueOf() - gain[ply-1]
		}

		// this ply's capture cannot improve the final minimax result for
		// whoever stopped the exchange one ply earlier, so there is
		// nothing left to search for.
		if maxValue(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		attackers.PopSquare(fromSquare)
		occupied.PopSquare(fromSquare)
		attackers |= revealedAttacks(p, toSquare, occupied, White) | revealedAttacks(p, toSquare, occupied, Black)

		fromSquare = getLeastValuablePiece(p, attackers, sideToMove)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.GetPiece(fromSquare)
	}

	// fold the gain chain back up: at each ply, the side to move either
	// takes the capture or stops, whichever is better for them.
	for ply--; ply > 0; ply-- {
		gain[ply-1] = -maxValue(-gain[ply-1], gain[ply])
	}

	return gain[0]
}

// AttacksTo returns every piece of color attacking square, given p's actual
// occupancy. EnPassant is excluded: the move leading to an en passant
// capture is itself never a capture, so it never needs to appear in an
// attacker set built for SEE.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupiedAll := p.OccupiedAll()
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))
}

// revealedAttacks returns the sliding attacks of color against square given
// occupied, a snapshot of the board with some exchange participants already
// removed. Only sliders can ever be revealed this way - removing a knight
// or king attacker uncovers nothing behind it.
func revealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}

// getLeastValuablePiece returns color's cheapest attacker in attackers, the
// standard SEE rule of always trading up with the least valuable piece
// first. Ties within one piece type break on bitboard LSB - an arbitrary
// but deterministic choice among identically valued attackers.
func getLeastValuablePiece(p *position.Position, attackers Bitboard, color Color) Square {
	for _, pt := range [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if bb := attackers & p.PiecesBb(color, pt); bb != BbZero {
			return bb.Lsb()
		}
	}
	return SqNone
}

func maxValue(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
