package mahjong

import (
	"bytes"
	"sort"
)

// Kind tags a Block.
type Kind int

const (
	KindUnknown Kind = iota
	KindHand         // concealed hand or remainder
	KindIsolated
	KindPair
	KindTriplet
	KindRun
	KindPon
	KindChi
	KindAnKan  // concealed quad
	KindDaiKan // open quad
	KindShoKan // added quad
	KindTsumo  // self-draw marker
	KindDora   // dora marker
	KindDiscard
)

var stringify = [...]string{
	KindUnknown:  "unknown",
	KindHand:     "hand",
	KindIsolated: "isolated",
	KindPair:     "pair",
	KindTriplet:  "three",
	KindRun:      "run",
	KindPon:      "pon",
	KindChi:      "chi",
	KindAnKan:    "ankan",
	KindDaiKan:   "daikan",
	KindShoKan:   "shokan",
	KindTsumo:    "tsumo",
	KindDora:     "dora",
	KindDiscard:  "discard",
}

func (k Kind) String() string {
	if k < KindUnknown || k > KindDiscard {
		return stringify[KindUnknown]
	}
	return stringify[k]
}

func kindOf(s string) (Kind, bool) {
	for k, v := range stringify {
		if v == s {
			return Kind(k), true
		}
	}
	return KindUnknown, false
}

// IsCalled reports kinds that are exposed melds.
func (k Kind) IsCalled() bool {
	switch k {
	case KindPon, KindChi, KindDaiKan, KindShoKan, KindAnKan:
		return true
	}
	return false
}

func (k Kind) IsQuad() bool {
	return k == KindAnKan || k == KindDaiKan || k == KindShoKan
}

// Block is an immutable ordered tile list tagged with a kind.
type Block struct {
	kind  Kind
	tiles []Tile
}

// NewBlock normalizes the tile order: called blocks keep rotated tiles at
// their position, raw discards keep input order and the rest are sorted.
func NewBlock(kind Kind, tiles ...Tile) Block {
	ts := append([]Tile(nil), tiles...)
	if kind == KindAnKan {
		ts = normalizeAnKan(ts)
	}
	switch {
	case kind.IsCalled():
		ts = sortCalled(ts)
	case kind != KindDiscard:
		sortTiles(ts)
	}
	return Block{kind: kind, tiles: ts}
}

// normalizeAnKan replaces the back tiles of "_55_m" with real tiles.
func normalizeAnKan(ts []Tile) []Tile {
	var sample Tile
	faces := 0
	for _, t := range ts {
		if !t.IsBack() {
			if faces == 0 {
				sample = t
			}
			faces++
		}
	}
	if faces == len(ts) || faces == 0 {
		return ts
	}
	base := Tile{Suit: sample.Suit, Rank: sample.Rank}
	if base.IsNumeral() && base.Rank == 5 {
		return []Tile{base.With(OpRed), base, base, base}
	}
	return []Tile{sample, sample, sample, sample}
}

func sortTiles(ts []Tile) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Less(ts[j]) })
}

func sortCalled(ts []Tile) []Tile {
	rest := make([]Tile, 0, len(ts))
	for _, t := range ts {
		if !t.Has(OpHorizontal) {
			rest = append(rest, t)
		}
	}
	sortTiles(rest)

	out := make([]Tile, 0, len(ts))
	for _, t := range ts {
		if t.Has(OpHorizontal) {
			out = append(out, t)
			continue
		}
		out = append(out, rest[0])
		rest = rest[1:]
	}
	return out
}

func (b Block) Kind() Kind { return b.kind }
func (b Block) Is(k Kind) bool { return b.kind == k }
func (b Block) IsCalled() bool { return b.kind.IsCalled() }
func (b Block) Len() int { return len(b.tiles) }
func (b Block) Tile(i int) Tile { return b.tiles[i] }
func (b Block) Tiles() Tiles { return append(Tiles(nil), b.tiles...) }
func (b Block) IsZero() bool { return b.kind == KindUnknown && len(b.tiles) == 0 }
func (b Block) Contains(t Tile) bool { return Tiles(b.tiles).Contains(t) }

// Replace returns a copy of b with the i-th tile replaced.
func (b Block) Replace(i int, t Tile) Block {
	ts := b.Tiles()
	ts[i] = t
	return NewBlock(b.kind, ts...)
}

// TilesWithBack renders a concealed quad with its two face-down tiles.
func (b Block) TilesWithBack() Tiles {
	if b.kind != KindAnKan || len(b.tiles) == 0 {
		return b.Tiles()
	}
	pick := b.tiles[0].Without(OpRed)
	sample := pick
	if pick.IsNumeral() && pick.Rank == 5 {
		sample = pick.With(OpRed)
	}
	return Tiles{BackTile, sample, pick, BackTile}
}

func (b Block) String() string {
	if len(b.tiles) == 0 {
		return ""
	}
	switch b.kind {
	case KindPon, KindChi, KindDaiKan, KindShoKan, KindPair, KindTriplet, KindRun:
		return stringForSame(b.tiles)
	case KindAnKan:
		return stringForHand(b.TilesWithBack())
	case KindIsolated:
		return b.tiles[0].String()
	case KindDiscard:
		return Tiles(b.tiles).String()
	case KindHand, KindTsumo, KindDora, KindUnknown:
		return stringForHand(b.tiles)
	}
	return stringForHand(b.tiles)
}

// stringForSame prints "-213s": every face, then one suit letter.
func stringForSame(ts []Tile) string {
	buf := &bytes.Buffer{}
	for _, t := range ts {
		if t.IsBack() {
			return Tiles(ts).String()
		}
		buf.WriteString(t.face())
	}
	buf.WriteString(ts[0].Suit.String())
	return buf.String()
}

// stringForHand collapses consecutive tiles of one suit: "123m45p".
func stringForHand(ts []Tile) string {
	buf := &bytes.Buffer{}
	prev := ts[0].Suit
	for _, t := range ts {
		if t.Suit != prev && prev != SuitBack {
			buf.WriteString(prev.String())
		}
		prev = t.Suit
		buf.WriteString(t.face())
	}
	if last := ts[len(ts)-1]; !last.IsBack() {
		buf.WriteString(last.Suit.String())
	}
	return buf.String()
}

// detectKind infers the kind of a parsed cluster.
func detectKind(ts []Tile) Kind {
	if len(ts) == 0 {
		return KindUnknown
	}
	if len(ts) == 1 {
		switch {
		case ts[0].Has(OpDora):
			return KindDora
		case ts[0].Has(OpTsumo):
			return KindTsumo
		}
		return KindHand
	}

	same := true
	horizontals, marks, backs := 0, 0, 0
	for _, t := range ts {
		if !t.Equals(ts[0]) {
			same = false
		}
		if t.Has(OpHorizontal) {
			horizontals++
		}
		if t.Has(OpTsumo) || t.Has(OpDora) {
			marks++
		}
		if t.IsBack() {
			backs++
		}
	}

	if marks > 0 {
		return KindUnknown
	}
	if horizontals == 0 && backs == 0 {
		return KindHand
	}
	if len(ts) == 3 && backs == 0 {
		if same {
			return KindPon
		}
		if horizontals == 1 && consecutive(ts) {
			return KindChi
		}
		return KindDiscard
	}
	if len(ts) == 4 && backs == 2 {
		return KindAnKan
	}
	if len(ts) == 4 && same {
		switch horizontals {
		case 1:
			return KindDaiKan
		case 2:
			return KindShoKan
		}
	}
	return KindDiscard
}

func consecutive(in []Tile) bool {
	ts := append([]Tile(nil), in...)
	sortTiles(ts)
	if !ts[0].IsNumeral() {
		return false
	}
	for i := 1; i < len(ts); i++ {
		if ts[i].Suit != ts[0].Suit || ts[i].Rank != ts[i-1].Rank+1 {
			return false
		}
	}
	return true
}
