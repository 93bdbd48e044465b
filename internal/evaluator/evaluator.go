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

// Package evaluator scores a position with a tapered, phase-blended
// combination of material, piece-square, pawn-structure, mobility and
// king-safety heuristics.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/frankygo-lite/internal/attacks"
	"github.com/fkopp/frankygo-lite/internal/config"
	myLogging "github.com/fkopp/frankygo-lite/internal/logging"
	"github.com/fkopp/frankygo-lite/internal/position"
	. "github.com/fkopp/frankygo-lite/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator holds the scratch state needed to score a position and is
// reused across calls to Evaluate to avoid per-call allocation. It is
// not safe for concurrent use - a search thread should own its own
// instance.
type Evaluator struct {
	log *logging.Logger

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color
	ourKing         Square
	theirKing       Square
	kingRing        [ColorLength]Bitboard
	allPieces       Bitboard
	ourPieces       Bitboard

	score   Score
	scratch Score

	attack *attacks.Attacks

	pawnCache *pawnCache
}

// advancedEvalPieceTypes lists the piece types that get the per-piece
// positional treatment in evalPiece; pawns run through evaluatePawns
// and kings through evalKing instead.
var advancedEvalPieceTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// lazyEvalThresholdByPhase is precomputed per game phase so the lazy-eval
// early exit doesn't recompute the blend on every call.
var lazyEvalThresholdByPhase [GamePhaseMax + 1]Value

func init() {
	for phase := 0; phase <= GamePhaseMax; phase++ {
		phaseFactor := float64(phase) / GamePhaseMax
		lazyEvalThresholdByPhase[phase] = config.Settings.Eval.LazyEvalThreshold +
			Value(float64(config.Settings.Eval.LazyEvalThreshold)*phaseFactor)
	}
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log:    myLogging.GetLog(),
		attack: attacks.NewAttacks(),
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("Pawn Cache is disabled in configuration")
	}
	return e
}

// InitEval resets the evaluator's scratch state for p. Evaluate calls it
// automatically; exported separately so unit tests can drive individual
// evaluation terms without a full Evaluate call.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.NextPlayer()
	e.them = e.us.Flip()
	e.ourKing = p.KingSquare(e.us)
	e.theirKing = p.KingSquare(e.them)
	e.kingRing[e.us] = GetAttacksBb(King, e.ourKing, BbZero)
	e.kingRing[e.them] = GetAttacksBb(King, e.theirKing, BbZero)
	e.allPieces = p.OccupiedAll()
	e.ourPieces = p.OccupiedBb(e.us)

	e.score.MidGameValue = 0
	e.score.EndGameValue = 0

	if config.Settings.Eval.UseAttacksInEval {
		e.attack.Clear()
	}
}

// Evaluate scores p from the view of the next player to move, blending
// the mid-game and end-game terms by the position's game phase.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// blendedValue folds the mid/end-game score pair down to a single value
// using the current game phase factor.
func (e *Evaluator) blendedValue() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

// evaluate runs every configured evaluation term in turn, bailing out
// early via the lazy-eval threshold when the cheap terms already give a
// decisive-enough score. Assumes InitEval has already been called.
func (e *Evaluator) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	e.materialAndPosition()
	e.tempo()

	if config.Settings.Eval.UseLazyEval {
		if v := e.blendedValue(); v > lazyEvalThresholdByPhase[e.position.GamePhase()] {
			return e.finalEval(v)
		}
	}

	e.pawnStructure()
	e.attacksAndMobility()
	e.pieces()
	e.kingSafety()

	return e.finalEval(e.blendedValue())
}

// materialAndPosition adds the raw material balance and the piece-square
// table balance for both colors.
func (e *Evaluator) materialAndPosition() {
	if config.Settings.Eval.UseMaterialEval {
		e.score.MidGameValue = e.position.Material(White) - e.position.Material(Black)
		e.score.EndGameValue = e.score.MidGameValue
	}
	if config.Settings.Eval.UsePositionalEval {
		e.score.MidGameValue += e.position.PsqMidValue(White) - e.position.PsqMidValue(Black)
		e.score.EndGameValue += e.position.PsqEndValue(White) - e.position.PsqEndValue(Black)
	}
}

// tempo rewards the side to move a small bonus, which smooths the
// evaluation swing between plies and speeds up aspiration search.
func (e *Evaluator) tempo() {
	e.score.MidGameValue += config.Settings.Eval.Tempo * Value(e.us.Direction())
}

// pawnStructure folds in the (cached) pawn-structure score for both colors.
func (e *Evaluator) pawnStructure() {
	if config.Settings.Eval.UsePawnEval {
		e.score.Add(*e.evaluatePawns())
	}
}

// attacksAndMobility computes the attack bitboards for the position (if
// not already cached for this exact zobrist key) and scores the mobility
// difference between the two colors.
func (e *Evaluator) attacksAndMobility() {
	if !config.Settings.Eval.UseAttacksInEval {
		return
	}
	e.attack.Compute(e.position)
	if config.Settings.Eval.UseMobility {
		mobility := Value(e.attack.Mobility[White]-e.attack.Mobility[Black]) * config.Settings.Eval.MobilityBonus
		e.score.MidGameValue += mobility
		e.score.EndGameValue += mobility
	}
}

// pieces scores every knight, bishop, rook and queen for both colors
// using the piece-type-specific heuristics in evalPiece.
func (e *Evaluator) pieces() {
	if !config.Settings.Eval.UseAdvancedPieceEval {
		return
	}
	for _, pt := range advancedEvalPieceTypes {
		e.score.Add(*e.evalPiece(White, pt))
		e.score.Sub(*e.evalPiece(Black, pt))
	}
}

// kingSafety scores the pawn shield and king-ring attack balance for both
// colors.
func (e *Evaluator) kingSafety() {
	if !config.Settings.Eval.UseKingEval {
		return
	}
	e.score.Add(*e.evalKing(White))
	e.score.Sub(*e.evalKing(Black))
}

// finalEval flips the always-White-relative value to the view of the
// next player. Direction is +1 for White, -1 for Black.
func (e *Evaluator) finalEval(value Value) Value {
	return value * Value(e.position.NextPlayer().Direction())
}

// pieceEvalFunc scores every piece of pieceBb (all belonging to color c)
// into e.scratch, using sq as each piece's square in turn.
type pieceEvalFunc func(e *Evaluator, c, them Color, pieceBb Bitboard)

// pieceEvaluators dispatches evalPiece's per-piece-type work. Queen has
// no dedicated heuristic yet, so it is absent and falls through to the
// zero-value default in evalPiece.
var pieceEvaluators = map[PieceType]pieceEvalFunc{
	Knight: (*Evaluator).knightEval,
	Bishop: (*Evaluator).bishopEval,
	Rook:   (*Evaluator).rookEval,
}

// evalPiece scores every piece of the given type and color, returning a
// pointer to the evaluator's reused scratch score.
func (e *Evaluator) evalPiece(c Color, pieceType PieceType) *Score {
	e.scratch.MidGameValue = 0
	e.scratch.EndGameValue = 0

	pieceBb := e.position.PiecesBb(c, pieceType)
	if pieceBb == BbZero {
		return &e.scratch
	}

	if fn, ok := pieceEvaluators[pieceType]; ok {
		fn(e, c, c.Flip(), pieceBb)
	}

	return &e.scratch
}

// knightEval scores every knight in pieceBb.
func (e *Evaluator) knightEval(us, them Color, pieceBb Bitboard) {
	for pieceBb != BbZero {
		sq := pieceBb.PopLsb()
		if e.isShieldedByOwnPawn(us, them, sq) {
			e.scratch.MidGameValue += config.Settings.Eval.MinorBehindPawnBonus
		}
	}
}

// bishopEval scores every bishop in pieceBb, including the bishop-pair
// bonus applied once up front.
func (e *Evaluator) bishopEval(us, them Color, pieceBb Bitboard) {
	if pieceBb.PopCount() > 1 {
		e.scratch.MidGameValue += config.Settings.Eval.BishopPairBonus
		e.scratch.EndGameValue += config.Settings.Eval.BishopPairBonus
	}
	for pieceBb != BbZero {
		sq := pieceBb.PopLsb()

		if e.isShieldedByOwnPawn(us, them, sq) {
			e.scratch.MidGameValue += config.Settings.Eval.MinorBehindPawnBonus
		}

		ownPawns := e.position.PiecesBb(us, Pawn)
		var sameColorPawns Value
		if SquaresBb(White).Has(sq) {
			sameColorPawns = Value((ownPawns & SquaresBb(White)).PopCount())
		} else {
			sameColorPawns = Value((ownPawns & SquaresBb(Black)).PopCount())
		}
		e.scratch.EndGameValue -= config.Settings.Eval.BishopPawnMalus * sameColorPawns

		centerAim := Value((GetAttacksBb(Bishop, sq, BbZero) & CenterSquares).PopCount())
		e.scratch.MidGameValue += config.Settings.Eval.BishopCenterAimBonus * centerAim

		onBackRank := (us == White && sq.RankOf() == Rank1) || (us == Black && sq.RankOf() == Rank8)
		if onBackRank && GetAttacksBb(Bishop, sq, e.allPieces)&^e.position.OccupiedBb(us) == BbZero {
			e.scratch.MidGameValue -= config.Settings.Eval.BishopBlockedMalus
			e.scratch.EndGameValue -= config.Settings.Eval.BishopBlockedMalus
		}
	}
}

// rookEval scores every rook in pieceBb.
func (e *Evaluator) rookEval(us, _ Color, pieceBb Bitboard) {
	kingSquare := e.position.KingSquare(us)
	for pieceBb != BbZero {
		sq := pieceBb.PopLsb()

		if sq.FileOf().Bb()&e.position.PiecesBb(us, Queen) > 0 {
			e.scratch.MidGameValue += config.Settings.Eval.RookOnQueenFileBonus
			e.scratch.EndGameValue += config.Settings.Eval.RookOnQueenFileBonus
		}

		if sq.FileOf().Bb()&e.position.PiecesBb(us, Pawn) == 0 {
			e.scratch.MidGameValue += config.Settings.Eval.RookOnOpenFileBonus
		}

		switch {
		case KingSideCastleMask(us).Has(kingSquare) && sq.RankOf() == kingSquare.RankOf() && sq > kingSquare:
			e.scratch.MidGameValue -= config.Settings.Eval.RookTrappedMalus
		case QueenSideCastMask(us).Has(kingSquare) && sq.RankOf() == kingSquare.RankOf() && sq < kingSquare:
			e.scratch.MidGameValue -= config.Settings.Eval.RookTrappedMalus
		}
	}
}

// isShieldedByOwnPawn reports whether sq (occupied by a piece of color us)
// has one of us's own pawns directly in front of it, i.e. the piece stands
// behind its own pawn.
func (e *Evaluator) isShieldedByOwnPawn(us, them Color, sq Square) bool {
	behind := them.MoveDirection()
	return ShiftBitboard(e.position.PiecesBb(us, Pawn), behind)&sq.Bb() > 0
}

// evalKing scores king safety for color c: pawn shield bonus plus the
// balance of attacks/defenders around the king ring.
func (e *Evaluator) evalKing(c Color) *Score {
	e.scratch.MidGameValue = 0
	e.scratch.EndGameValue = 0
	us := c
	them := us.Flip()
	kingSquare := e.position.KingSquare(us)

	switch {
	case KingSideCastleMask(us).Has(kingSquare):
		shield := Value((ShiftBitboard(KingSideCastleMask(us), us.MoveDirection()) & e.position.PiecesBb(us, Pawn)).PopCount())
		e.scratch.MidGameValue += shield * config.Settings.Eval.KingCastlePawnShieldBonus
	case QueenSideCastMask(us).Has(kingSquare):
		shield := Value((ShiftBitboard(QueenSideCastMask(us), us.MoveDirection()) & e.position.PiecesBb(us, Pawn)).PopCount())
		e.scratch.MidGameValue += shield * config.Settings.Eval.KingCastlePawnShieldBonus
	}

	if config.Settings.Eval.UseAttacksInEval {
		attackers := (e.kingRing[us] & e.attack.All[them]).PopCount()
		defenders := (e.kingRing[us] & e.attack.All[us]).PopCount()
		if attackers > defenders {
			danger := Value(attackers-defenders) * config.Settings.Eval.KingDangerMalus
			e.scratch.MidGameValue -= danger
			e.scratch.EndGameValue -= danger
		} else {
			defense := Value(defenders-attackers) * config.Settings.Eval.KingDefenderBonus
			e.scratch.MidGameValue += defense
			e.scratch.EndGameValue += defense
		}

		if e.attack.All[us]&e.kingRing[them] > 0 {
			e.scratch.MidGameValue += config.Settings.Eval.KingRingAttacksBonus
			e.scratch.EndGameValue += config.Settings.Eval.KingRingAttacksBonus
		}
	}
	return &e.scratch
}

// Report prints a human-readable summary of an evaluation run. Used in
// debugging and the UCI "eval" style commands.
func (e *Evaluator) Report() string {
	var report strings.Builder

	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.StringFen()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("GamePhase Factor: %f\n", e.position.GamePhaseFactor()))
	report.WriteString(out.Sprintf("(evals from the view of white player)\n", e.Evaluate(e.position)))
	report.WriteString(out.Sprintf("-------------------------\n", e.Evaluate(e.position)))
	report.WriteString(out.Sprintf("Eval value  : %d \n(from the view of next player = %s)\n", e.Evaluate(e.position), e.position.NextPlayer().String()))

	return report.String()
}
