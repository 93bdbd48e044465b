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

package openingbook

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/frankygo-lite/internal/movegen"
	"github.com/fkopp/frankygo-lite/internal/position"
	. "github.com/fkopp/frankygo-lite/internal/types"
)

// writePolyglotBook writes a Polyglot .bin file out of raw entries (not
// necessarily sorted - Initialize is responsible for sorting).
func writePolyglotBook(t *testing.T, entries []entry) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "book.bin")

	buf := make([]byte, entrySize)
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	for _, e := range entries {
		binary.BigEndian.PutUint64(buf[0:8], e.key)
		binary.BigEndian.PutUint16(buf[8:10], e.move)
		binary.BigEndian.PutUint16(buf[10:12], e.weight)
		binary.BigEndian.PutUint32(buf[12:16], e.learn)
		_, err := f.Write(buf)
		require.NoError(t, err)
	}
	return file
}

// findLegalMove returns the legal move from the start position matching the
// given UCI string (e.g. "e2e4"), failing the test if it isn't legal.
func findLegalMove(t *testing.T, pos *position.Position, uci string) Move {
	t.Helper()
	for _, m := range bookLegalMoves(pos) {
		if m.StringUci() == uci {
			return m
		}
	}
	t.Fatalf("move %s is not legal in the given position", uci)
	return MoveNone
}

// polyglotMoveWord encodes from/to squares (no promotion) the way a
// Polyglot book would.
func polyglotMoveWord(from, to Square) uint16 {
	toFile := uint16(to.FileOf())
	toRank := uint16(to.RankOf())
	fromFile := uint16(from.FileOf())
	fromRank := uint16(from.RankOf())
	return toFile | toRank<<3 | fromFile<<6 | fromRank<<9
}

func bookLegalMoves(p *position.Position) []Move {
	ml := movegen.NewMoveGen().GenerateLegalMoves(p, movegen.GenAll)
	return []Move(*ml)
}

func TestNewBookIsEmpty(t *testing.T) {
	b := NewBook()
	assert.Equal(t, 0, b.NumberOfEntries())
}

func TestInitializeNonExistingFile(t *testing.T) {
	b := NewBook()
	err := b.Initialize(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestInitializeRejectsTruncatedFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "book.bin")
	require.NoError(t, os.WriteFile(file, make([]byte, entrySize-1), 0644))

	b := NewBook()
	assert.Error(t, b.Initialize(file))
}

func TestInitializeIsIdempotent(t *testing.T) {
	start := position.NewPosition()
	move := findLegalMove(t, start, "e2e4")
	key := uint64(start.ZobristKey())

	file := writePolyglotBook(t, []entry{{key: key, move: polyglotMoveWord(move.From(), move.To()), weight: 10}})

	b := NewBook()
	require.NoError(t, b.Initialize(file))
	n := b.NumberOfEntries()

	require.NoError(t, b.Initialize(file))
	assert.Equal(t, n, b.NumberOfEntries())
}

func TestResetClearsBook(t *testing.T) {
	start := position.NewPosition()
	move := findLegalMove(t, start, "e2e4")
	key := uint64(start.ZobristKey())

	file := writePolyglotBook(t, []entry{{key: key, move: polyglotMoveWord(move.From(), move.To()), weight: 10}})

	b := NewBook()
	require.NoError(t, b.Initialize(file))
	assert.NotEqual(t, 0, b.NumberOfEntries())

	b.Reset()
	assert.Equal(t, 0, b.NumberOfEntries())
	_, found := b.ProbePosition(start, bookLegalMoves)
	assert.False(t, found)
}

func TestProbePositionFindsKnownMove(t *testing.T) {
	start := position.NewPosition()
	move := findLegalMove(t, start, "e2e4")
	key := uint64(start.ZobristKey())

	file := writePolyglotBook(t, []entry{{key: key, move: polyglotMoveWord(move.From(), move.To()), weight: 10}})

	b := NewBook()
	require.NoError(t, b.Initialize(file))

	got, found := b.ProbePosition(start, bookLegalMoves)
	require.True(t, found)
	assert.Equal(t, move, got)
}

func TestProbePositionUnknownPosition(t *testing.T) {
	start := position.NewPosition()
	move := findLegalMove(t, start, "e2e4")

	// book only knows a key that isn't the start position's
	file := writePolyglotBook(t, []entry{{key: uint64(start.ZobristKey()) + 1, move: polyglotMoveWord(move.From(), move.To()), weight: 10}})

	b := NewBook()
	require.NoError(t, b.Initialize(file))

	_, found := b.ProbePosition(start, bookLegalMoves)
	assert.False(t, found)
}

func TestProbePositionPicksAmongWeightedCandidates(t *testing.T) {
	start := position.NewPosition()
	e4 := findLegalMove(t, start, "e2e4")
	d4 := findLegalMove(t, start, "d2d4")
	key := uint64(start.ZobristKey())

	// heavily weight e2e4 so across many probes it is chosen at least once,
	// and only these two moves are ever returned
	file := writePolyglotBook(t, []entry{
		{key: key, move: polyglotMoveWord(e4.From(), e4.To()), weight: 100},
		{key: key, move: polyglotMoveWord(d4.From(), d4.To()), weight: 1},
	})

	b := NewBook()
	require.NoError(t, b.Initialize(file))

	seenE4 := false
	for i := 0; i < 50; i++ {
		got, found := b.ProbePosition(start, bookLegalMoves)
		require.True(t, found)
		assert.True(t, got == e4 || got == d4)
		if got == e4 {
			seenE4 = true
		}
	}
	assert.True(t, seenE4)
}

func TestProbePositionUnsortedEntriesAreSortedOnLoad(t *testing.T) {
	start := position.NewPosition()
	move := findLegalMove(t, start, "e2e4")
	key := uint64(start.ZobristKey())

	// a higher key written before a lower one - Initialize must sort these
	file := writePolyglotBook(t, []entry{
		{key: key + 1000, move: 0, weight: 1},
		{key: key, move: polyglotMoveWord(move.From(), move.To()), weight: 1},
	})

	b := NewBook()
	require.NoError(t, b.Initialize(file))

	got, found := b.ProbePosition(start, bookLegalMoves)
	require.True(t, found)
	assert.Equal(t, move, got)
}
