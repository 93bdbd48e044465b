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

import (
	"github.com/fkopp/frankygo-lite/internal/types"
)

// evalConfiguration toggles and weighs every term the evaluator can fold
// into a position's score. Every weight shares types.Value's resolution so
// it can be added straight into a Score without a conversion at each call
// site - only the on/off switches stay plain bool.
type evalConfiguration struct {
	UseLazyEval       bool
	LazyEvalThreshold types.Value

	Tempo types.Value

	UseAttacksInEval bool

	UseMobility   bool
	MobilityBonus types.Value

	UseAdvancedPieceEval bool
	BishopPairBonus      types.Value
	MinorBehindPawnBonus types.Value
	BishopPawnMalus      types.Value
	BishopCenterAimBonus types.Value
	BishopBlockedMalus   types.Value
	RookOnQueenFileBonus types.Value
	RookOnOpenFileBonus  types.Value
	RookTrappedMalus     types.Value
	KingRingAttacksBonus types.Value

	UseKingEval               bool
	KingCastlePawnShieldBonus types.Value
	KingDangerMalus           types.Value
	KingDefenderBonus         types.Value

	// pawn structure
	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSize int

	PawnIsolatedMidMalus  types.Value
	PawnIsolatedEndMalus  types.Value
	PawnDoubledMidMalus   types.Value
	PawnDoubledEndMalus   types.Value
	PawnPassedMidBonus    types.Value
	PawnPassedEndBonus    types.Value
	PawnBlockedMidMalus   types.Value
	PawnBlockedEndMalus   types.Value
	PawnPhalanxMidBonus   types.Value
	PawnPhalanxEndBonus   types.Value
	PawnSupportedMidBonus types.Value
	PawnSupportedEndBonus types.Value

	// UseMaterialEval and UsePositionalEval gate the two cheapest, always
	// -on-in-practice terms; kept configurable so tests can isolate a
	// single evaluation term.
	UseMaterialEval   bool
	UsePositionalEval bool
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseLazyEval = false
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.Tempo = 34

	Settings.Eval.UseAttacksInEval = false

	Settings.Eval.UseMobility = false
	Settings.Eval.MobilityBonus = 5 // per piece and attacked square

	Settings.Eval.UseAdvancedPieceEval = false
	Settings.Eval.KingCastlePawnShieldBonus = 15
	Settings.Eval.KingRingAttacksBonus = 10 // once if any square of the enemy king ring is attacked
	Settings.Eval.MinorBehindPawnBonus = 15 // per piece and times game phase
	Settings.Eval.BishopPairBonus = 20      // once
	Settings.Eval.BishopPawnMalus = 5       // per pawn and times ~game phase
	Settings.Eval.BishopCenterAimBonus = 20 // per bishop and times game phase
	Settings.Eval.BishopBlockedMalus = 40   // per bishop
	Settings.Eval.RookOnQueenFileBonus = 6  // per rook
	Settings.Eval.RookOnOpenFileBonus = 25  // per rook and time game phase
	Settings.Eval.RookTrappedMalus = 40     // per rook and time game phase

	Settings.Eval.UseKingEval = false
	Settings.Eval.KingDangerMalus = 50   // number of attacker - defender times malus if attacker > defender
	Settings.Eval.KingDefenderBonus = 10 // number of defender - attacker times bonus if attacker <= defender

	Settings.Eval.UsePawnEval = false
	Settings.Eval.UsePawnCache = false
	Settings.Eval.PawnCacheSize = 64

	Settings.Eval.PawnIsolatedMidMalus = -10
	Settings.Eval.PawnIsolatedEndMalus = -20
	Settings.Eval.PawnDoubledMidMalus = -10
	Settings.Eval.PawnDoubledEndMalus = -30
	Settings.Eval.PawnPassedMidBonus = 20
	Settings.Eval.PawnPassedEndBonus = 40
	Settings.Eval.PawnBlockedMidMalus = -2
	Settings.Eval.PawnBlockedEndMalus = -20
	Settings.Eval.PawnPhalanxMidBonus = 4
	Settings.Eval.PawnPhalanxEndBonus = 4
	Settings.Eval.PawnSupportedMidBonus = 10
	Settings.Eval.PawnSupportedEndBonus = 15

	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePositionalEval = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
