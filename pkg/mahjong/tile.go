package mahjong

import (
	"bytes"
	"fmt"
)

type Suit int

const (
	SuitNone Suit = iota
	SuitMan
	SuitPin
	SuitSou
	SuitHonor
	SuitBack
)

// Suits is the fixed iteration order of every calculator. Cross-suit
// combination depends on it being stable.
var Suits = [...]Suit{SuitMan, SuitPin, SuitSou, SuitHonor}

// NumeralSuits are the suits holding runs.
var NumeralSuits = [...]Suit{SuitMan, SuitPin, SuitSou}

var suitLetters = [...]byte{
	SuitNone:  '?',
	SuitMan:   'm',
	SuitPin:   'p',
	SuitSou:   's',
	SuitHonor: 'z',
	SuitBack:  '_',
}

func (s Suit) String() string {
	if s < SuitNone || s > SuitBack {
		return "?"
	}
	return string(suitLetters[s])
}

func (s Suit) IsNumeral() bool {
	return s == SuitMan || s == SuitPin || s == SuitSou
}

// Size is the highest rank of the suit.
func (s Suit) Size() int {
	switch {
	case s.IsNumeral():
		return 9
	case s == SuitHonor:
		return 7
	}
	return 0
}

func suitOf(c byte) (Suit, bool) {
	switch c {
	case 'm':
		return SuitMan, true
	case 'p':
		return SuitPin, true
	case 's':
		return SuitSou, true
	case 'z':
		return SuitHonor, true
	case '_':
		return SuitBack, true
	}
	return SuitNone, false
}

// Op is a set of tile flags.
type Op uint8

const (
	OpHorizontal Op = 1 << iota // called/rotated
	OpTsumo
	OpRon
	OpDora
	OpGrayscale
	OpRed
)

// serialized in this order
var opGlyphs = [...]struct {
	op    Op
	glyph byte
}{
	{OpHorizontal, '-'},
	{OpTsumo, 't'},
	{OpRon, 'v'},
	{OpDora, 'd'},
	{OpGrayscale, '^'},
	{OpRed, 'r'},
}

func opOf(c byte) (Op, bool) {
	for _, g := range opGlyphs {
		if g.glyph == c {
			return g.op, true
		}
	}
	return 0, false
}

func (o Op) String() string {
	buf := make([]byte, 0, len(opGlyphs))
	for _, g := range opGlyphs {
		if o&g.op != 0 {
			buf = append(buf, g.glyph)
		}
	}
	return string(buf)
}

const (
	dragonOffset = 4
	maxCount     = 4
)

// Tile is an immutable tile value. Equality ignores the flags.
type Tile struct {
	Suit Suit
	Rank int
	Ops  Op
}

func NewTile(s Suit, n int, ops ...Op) Tile {
	t := Tile{Suit: s, Rank: n}
	for _, op := range ops {
		t.Ops |= op
	}
	return t
}

// BackTile is the face-down sentinel.
var BackTile = Tile{Suit: SuitBack}

// ParseTile parses exactly one tile.
func ParseTile(s string) (Tile, error) {
	tiles, err := NewParser(s).Tiles()
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, notationErrorf("input is not a single tile %q", s)
	}
	return tiles[0], nil
}

// MustParseTile is like ParseTile but panics on failure.
func MustParseTile(s string) Tile {
	t, err := ParseTile(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tile) Has(op Op) bool { return t.Ops&op != 0 }

func (t Tile) With(op Op) Tile {
	t.Ops |= op
	return t
}

func (t Tile) Without(op Op) Tile {
	t.Ops &^= op
	return t
}

// Plain drops every flag.
func (t Tile) Plain() Tile {
	t.Ops = 0
	return t
}

func (t Tile) Equals(o Tile) bool {
	return t.Suit == o.Suit && t.Rank == o.Rank
}

func (t Tile) IsBack() bool { return t.Suit == SuitBack }
func (t Tile) IsNumeral() bool { return t.Suit.IsNumeral() }
func (t Tile) IsHonor() bool { return t.Suit == SuitHonor }
func (t Tile) IsWind() bool { return t.IsHonor() && t.Rank <= 4 }
func (t Tile) IsDragon() bool { return t.IsHonor() && t.Rank > 4 }
func (t Tile) IsTerminal() bool { return t.IsNumeral() && (t.Rank == 1 || t.Rank == 9) }
func (t Tile) IsOrphan() bool { return t.IsTerminal() || t.IsHonor() }
func (t Tile) IsSimple() bool { return t.IsNumeral() && t.Rank > 1 && t.Rank < 9 }
func (t Tile) IsRedFive() bool { return t.IsNumeral() && t.Rank == 5 && t.Has(OpRed) }

// Next returns the tile indicated as dora by t.
func (t Tile) Next() Tile {
	n := t.Rank + 1
	switch {
	case t.IsNumeral():
		if n > 9 {
			n = 1
		}
	case t.IsWind():
		if n > 4 {
			n = 1
		}
	case t.IsDragon():
		if n > 7 {
			n = 5
		}
	default:
		return t.Plain()
	}
	return Tile{Suit: t.Suit, Rank: n}
}

// Less is the total tile order: suit, then rank, then a red five before a
// plain five.
func (t Tile) Less(o Tile) bool {
	if t.Suit != o.Suit {
		return t.Suit < o.Suit
	}
	if t.Rank != o.Rank {
		return t.Rank < o.Rank
	}
	return t.IsRedFive() && !o.IsRedFive()
}

// face is the tile without its suit letter.
func (t Tile) face() string {
	if t.IsBack() {
		return "_"
	}
	return fmt.Sprintf("%s%d", t.Ops, t.Rank)
}

func (t Tile) String() string {
	if t.IsBack() {
		return "_"
	}
	return t.face() + t.Suit.String()
}

func (t Tile) valid() bool {
	if t.IsBack() {
		return true
	}
	return t.Rank >= 1 && t.Rank <= t.Suit.Size()
}

// Tiles is an ordered tile list.
type Tiles []Tile

func (ts Tiles) String() string {
	buf := &bytes.Buffer{}
	for _, t := range ts {
		buf.WriteString(t.String())
	}
	return buf.String()
}

// Contains reports whether a tile equal to t is present.
func (ts Tiles) Contains(t Tile) bool {
	return ts.Index(t) >= 0
}

func (ts Tiles) Index(t Tile) int {
	for i, v := range ts {
		if v.Equals(t) {
			return i
		}
	}
	return -1
}

// Count returns the number of tiles equal to t.
func (ts Tiles) Count(t Tile) int {
	n := 0
	for _, v := range ts {
		if v.Equals(t) {
			n++
		}
	}
	return n
}
