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

// Package openingbook reads a Polyglot-format opening book (sorted array of
// 16-byte entries: key, move, weight, learn, all big-endian) and probes it
// by a position's zobrist key, returning a weighted-random book move.
//
// The book is read fully into memory, always sorted by key once on load
// (whether or not the file already is), and probed with a binary search over runs of equal
// keys (a position can have several candidate moves, one entry each).
package openingbook

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
	"os"
	"sort"

	"github.com/fkopp/frankygo-lite/internal/logging"
	"github.com/fkopp/frankygo-lite/internal/position"
	. "github.com/fkopp/frankygo-lite/internal/types"
)

var log = logging.GetLog("openingbook")

// entrySize is the on-disk size of one Polyglot book entry.
const entrySize = 16

// entry is one Polyglot book entry, decoded from its 16-byte wire form.
type entry struct {
	key    uint64
	move   uint16
	weight uint16
	learn  uint32
}

// Book is a Polyglot opening book, probed by zobrist key.
type Book struct {
	entries     []entry
	rnd         *rand.Rand
	initialized bool
}

// NewBook creates an empty, uninitialized Book.
func NewBook() *Book {
	return &Book{rnd: rand.New(rand.NewSource(1))}
}

// Initialize reads a Polyglot .bin file into memory. A second call on an
// already-initialized Book is a no-op.
func (b *Book) Initialize(bookFile string) error {
	if b.initialized {
		return nil
	}

	log.Infof("Reading opening book: %s", bookFile)

	f, err := os.Open(bookFile)
	if err != nil {
		log.Errorf("opening book %q could not be opened: %s", bookFile, err)
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var entries []entry
	buf := make([]byte, entrySize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Errorf("opening book %q is truncated: %s", bookFile, err)
			return err
		}
		entries = append(entries, entry{
			key:    binary.BigEndian.Uint64(buf[0:8]),
			move:   binary.BigEndian.Uint16(buf[8:10]),
			weight: binary.BigEndian.Uint16(buf[10:12]),
			learn:  binary.BigEndian.Uint32(buf[12:16]),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b.entries = entries
	b.initialized = true
	log.Infof("Opening book contains %d entries", len(b.entries))
	return nil
}

// NumberOfEntries returns the number of raw book entries loaded (not the
// number of distinct positions - a position with several known replies has
// one entry per reply).
func (b *Book) NumberOfEntries() int {
	return len(b.entries)
}

// Reset clears the book so it can be initialized again.
func (b *Book) Reset() {
	b.entries = nil
	b.initialized = false
}

// ProbePosition looks up pos by its zobrist key and returns a weighted
// random move among the candidates found, decoded into the engine's Move
// encoding and validated against pos's legal moves. Returns MoveNone, false
// when the book holds no entry for pos, or when the one candidate picked by
// weight decodes to a move pos does not consider legal (a corrupt or foreign
// book); the other candidates are not tried in that case.
func (b *Book) ProbePosition(pos *position.Position, legalMoves func(*position.Position) []Move) (Move, bool) {
	if !b.initialized || len(b.entries) == 0 {
		return MoveNone, false
	}

	key := uint64(pos.ZobristKey())
	lo := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].key >= key })
	hi := lo
	for hi < len(b.entries) && b.entries[hi].key == key {
		hi++
	}
	if lo == hi {
		return MoveNone, false
	}
	candidates := b.entries[lo:hi]

	legal := legalMoves(pos)

	total := 0
	for _, e := range candidates {
		w := int(e.weight)
		if w == 0 {
			w = 1
		}
		total += w
	}
	if total == 0 {
		return MoveNone, false
	}

	pick := b.rnd.Intn(total)
	for _, e := range candidates {
		w := int(e.weight)
		if w == 0 {
			w = 1
		}
		if pick < w {
			if m, ok := decodeAndMatch(e.move, legal); ok {
				return m, true
			}
			return MoveNone, false
		}
		pick -= w
	}
	return MoveNone, false
}

// decodeAndMatch translates a raw Polyglot move into the engine's Move
// encoding by matching its from/to/promotion fields against the legal move
// list, since Polyglot's move word does not carry the move type bits
// (castling, en passant, promotion) required by CreateMove.
func decodeAndMatch(raw uint16, legal []Move) (Move, bool) {
	from, to, promo := decodePolyglotMove(raw)
	for _, m := range legal {
		if m.From() == from && m.To() == to {
			if m.MoveType() != Promotion {
				return m, true
			}
			if m.PromotionType() == promo {
				return m, true
			}
		}
	}
	return MoveNone, false
}

// decodePolyglotMove unpacks a Polyglot move word:
//  bits 0-2:   to file      bits 6-8:   from file
//  bits 3-5:   to rank      bits 9-11:  from rank
//  bits 12-14: promotion piece (0=none, 1=knight, 2=bishop, 3=rook, 4=queen)
// Standard chess castling decodes to the king's normal two-square move
// (e.g. e1g1), matching this engine's own move list; Polyglot's
// king-takes-rook castling convention (Chess960-style) is not handled.
func decodePolyglotMove(raw uint16) (from Square, to Square, promo PieceType) {
	toFile := File(raw & 0x7)
	toRank := Rank((raw >> 3) & 0x7)
	fromFile := File((raw >> 6) & 0x7)
	fromRank := Rank((raw >> 9) & 0x7)
	promoBits := (raw >> 12) & 0x7

	from = SquareOf(fromFile, fromRank)
	to = SquareOf(toFile, toRank)

	switch promoBits {
	case 1:
		promo = Knight
	case 2:
		promo = Bishop
	case 3:
		promo = Rook
	case 4:
		promo = Queen
	default:
		promo = PtNone
	}
	return
}
