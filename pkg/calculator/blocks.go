package calculator

import (
	"sort"
	"strings"

	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/lonng/riichi/pkg/set"
	log "github.com/sirupsen/logrus"
)

// Decomposition is one way to split a hand into blocks. Tiles that belong
// to no set or pair trail as a single hand block.
type Decomposition struct {
	Blocks  []mahjong.Block `json:"blocks"`
	Shanten int             `json:"shanten"`
}

func (d Decomposition) String() string {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		parts = append(parts, b.String())
	}
	return strings.Join(parts, string(mahjong.Separator))
}

// key is independent of block order.
func (d Decomposition) key() string {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		parts = append(parts, b.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, string(mahjong.Separator))
}

// BlockCalculator returns every decomposition attaining the minimum shanten.
type BlockCalculator struct {
	hand *mahjong.Hand
}

func NewBlockCalculator(h *mahjong.Hand) *BlockCalculator {
	return &BlockCalculator{hand: h}
}

// Calc decomposes the hand completed by last. A hand one tile short gets
// last merged in first. Every block holding last yields a variant where
// that tile is flagged as the winning tile, self-draw when last carries the
// flag and claim otherwise.
func (c *BlockCalculator) Calc(last mahjong.Tile) ([]Decomposition, error) {
	h := c.hand
	if h.Len()%3 == 1 {
		h = h.Clone()
		if _, err := h.Inc(last); err != nil {
			return nil, err
		}
	}

	flag := mahjong.OpRon
	if last.Has(mahjong.OpTsumo) {
		flag = mahjong.OpTsumo
	}

	seen := set.New()
	var out []Decomposition
	for _, d := range NewBlockCalculator(h).Decompose() {
		for i, b := range d.Blocks {
			if b.IsCalled() {
				continue
			}
			j := winningIndex(b, last)
			if j < 0 {
				continue
			}
			v := Decomposition{Blocks: append([]mahjong.Block(nil), d.Blocks...), Shanten: d.Shanten}
			v.Blocks[i] = b.Replace(j, b.Tile(j).With(flag))
			if seen.Add(v.key()) {
				out = append(out, v)
			}
		}
	}

	logger.WithFields(log.Fields{"hand": h, "last": last, "count": len(out)}).Debug("decomposed with winning tile")
	return out, nil
}

// winningIndex finds the tile to flag, preferring one with the same red flag.
func winningIndex(b mahjong.Block, last mahjong.Tile) int {
	idx := -1
	for i, t := range b.Tiles() {
		if !t.Equals(last) {
			continue
		}
		if t.IsRedFive() == last.IsRedFive() {
			return i
		}
		if idx < 0 {
			idx = i
		}
	}
	return idx
}

// Decompose returns the decompositions of every family attaining the
// overall minimum, in the order seven pairs, thirteen orphans, nine gates
// and standard. A nine gates shape replaces the standard family.
func (c *BlockCalculator) Decompose() []Decomposition {
	families := [][]Decomposition{c.SevenPairs(), c.ThirteenOrphans(), c.NineGates()}
	if len(families[2]) == 0 {
		families = append(families, c.Standard())
	}

	best := Infinity
	for _, ds := range families {
		if len(ds) > 0 && ds[0].Shanten < best {
			best = ds[0].Shanten
		}
	}

	var out []Decomposition
	for _, ds := range families {
		if len(ds) > 0 && ds[0].Shanten == best {
			out = append(out, ds...)
		}
	}
	return out
}

func (c *BlockCalculator) SevenPairs() []Decomposition {
	if len(c.hand.Called()) > 0 {
		return nil
	}
	counts := c.hand.Counter()
	pairs, isolated := sevenPairs(&counts)

	blocks := make([]mahjong.Block, 0, 7)
	for _, t := range pairs {
		blocks = append(blocks, mahjong.NewBlock(mahjong.KindPair, t, t))
	}
	for _, t := range isolated {
		blocks = append(blocks, mahjong.NewBlock(mahjong.KindIsolated, t))
	}
	return []Decomposition{c.complete(blocks, 13-2*len(pairs)-len(isolated))}
}

func (c *BlockCalculator) ThirteenOrphans() []Decomposition {
	if len(c.hand.Called()) > 0 {
		return nil
	}
	counts := c.hand.Counter()
	distinct, pair := thirteenOrphans(&counts)

	blocks := make([]mahjong.Block, 0, len(distinct))
	for i, t := range distinct {
		if i == pair {
			blocks = append(blocks, mahjong.NewBlock(mahjong.KindPair, t, t))
			continue
		}
		blocks = append(blocks, mahjong.NewBlock(mahjong.KindIsolated, t))
	}
	shanten := 13 - len(distinct)
	if pair >= 0 {
		shanten--
	}
	return []Decomposition{c.complete(blocks, shanten)}
}

// NineGates reports the whole hand as one block.
func (c *BlockCalculator) NineGates() []Decomposition {
	if !nineGates(c.hand) {
		return nil
	}
	return []Decomposition{{Blocks: []mahjong.Block{mahjong.NewBlock(mahjong.KindHand, c.hand.Tiles()...)}, Shanten: -1}}
}

func (c *BlockCalculator) Standard() []Decomposition {
	v, found := newEngine(collecting{}, len(c.hand.Called())).standard(c.hand.Counter().Merged())

	seen := set.New()
	out := make([]Decomposition, 0, len(found))
	for _, blocks := range found {
		d := c.complete(blocks, v)
		if seen.Add(d.key()) {
			out = append(out, d)
		}
	}

	logger.WithFields(log.Fields{"hand": c.hand, "shanten": v, "count": len(out)}).Debug("standard decompositions")
	return out
}

// complete appends the called blocks and the leftover tiles to blocks, then
// gives the red fives of the hand back to the first fives emitted.
func (c *BlockCalculator) complete(blocks []mahjong.Block, shanten int) Decomposition {
	counts := c.hand.Counter()
	rest := counts.Merged()
	for _, b := range blocks {
		for _, t := range b.Tiles() {
			rest[t.Suit][t.Rank]--
		}
	}

	out := make([]mahjong.Block, 0, len(blocks)+len(c.hand.Called())+1)
	out = append(out, blocks...)
	out = append(out, c.hand.Called()...)
	if tiles := rest.Tiles(); len(tiles) > 0 {
		out = append(out, mahjong.NewBlock(mahjong.KindHand, tiles...))
	}

	var reds [mahjong.SuitHonor + 1]int
	for _, s := range mahjong.NumeralSuits {
		reds[s] = counts.Red(s)
	}
	for i, b := range out {
		if b.IsCalled() {
			continue
		}
		for j, t := range b.Tiles() {
			if t.IsNumeral() && t.Rank == 5 && !t.IsRedFive() && reds[t.Suit] > 0 {
				reds[t.Suit]--
				b = b.Replace(j, t.With(mahjong.OpRed))
			}
		}
		out[i] = b
	}
	return Decomposition{Blocks: out, Shanten: shanten}
}
