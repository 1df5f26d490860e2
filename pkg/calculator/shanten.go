package calculator

import (
	"github.com/lonng/riichi/pkg/mahjong"
)

// orphans are the terminals and honors, in tile order.
var orphans = func() []mahjong.Tile {
	var ts []mahjong.Tile
	for _, s := range mahjong.NumeralSuits {
		ts = append(ts, mahjong.NewTile(s, 1), mahjong.NewTile(s, 9))
	}
	for n := 1; n <= mahjong.SuitHonor.Size(); n++ {
		ts = append(ts, mahjong.NewTile(mahjong.SuitHonor, n))
	}
	return ts
}()

// ShantenCalculator computes how far a hand is from ready. 0 is ready and
// -1 is complete.
type ShantenCalculator struct {
	hand *mahjong.Hand
}

func NewShantenCalculator(h *mahjong.Hand) *ShantenCalculator {
	return &ShantenCalculator{hand: h}
}

// Calc returns the minimum over every hand shape.
func (c *ShantenCalculator) Calc() int {
	return min(c.SevenPairs(), c.ThirteenOrphans(), c.Standard())
}

func (c *ShantenCalculator) SevenPairs() int {
	if len(c.hand.Called()) > 0 {
		return Infinity
	}
	counts := c.hand.Counter()
	pairs, isolated := sevenPairs(&counts)
	return 13 - 2*len(pairs) - len(isolated)
}

func (c *ShantenCalculator) ThirteenOrphans() int {
	if len(c.hand.Called()) > 0 {
		return Infinity
	}
	counts := c.hand.Counter()
	distinct, pair := thirteenOrphans(&counts)
	if pair >= 0 {
		return 12 - len(distinct)
	}
	return 13 - len(distinct)
}

func (c *ShantenCalculator) Standard() int {
	v, _ := newEngine(counting{}, len(c.hand.Called())).standard(c.hand.Counter().Merged())
	return v
}

// sevenPairs picks ranks held exactly twice, at most seven, and ranks held
// once up to seven groups in total.
func sevenPairs(counts *mahjong.Counter) (pairs, isolated []mahjong.Tile) {
	var singles []mahjong.Tile
	for _, s := range mahjong.Suits {
		for n := 1; n <= s.Size(); n++ {
			switch counts.Get(s, n) {
			case 2:
				if len(pairs) < 7 {
					pairs = append(pairs, mahjong.NewTile(s, n))
				}
			case 1:
				singles = append(singles, mahjong.NewTile(s, n))
			}
		}
	}
	if room := 7 - len(pairs); len(singles) > room {
		singles = singles[:room]
	}
	return pairs, singles
}

// thirteenOrphans returns the distinct orphans held and the index of the
// first one held at least twice, or -1.
func thirteenOrphans(counts *mahjong.Counter) (distinct []mahjong.Tile, pair int) {
	pair = -1
	for _, t := range orphans {
		n := counts.Get(t.Suit, t.Rank)
		if n == 0 {
			continue
		}
		if n >= 2 && pair < 0 {
			pair = len(distinct)
		}
		distinct = append(distinct, t)
	}
	return distinct, pair
}

// nineGates reports whether the closed 14 tiles of h are 1112345678999 plus
// one more tile of the same numeral suit.
func nineGates(h *mahjong.Hand) bool {
	if len(h.Called()) > 0 || h.Len() != 14 {
		return false
	}
	counts := h.Counter().Merged()
	for _, s := range mahjong.NumeralSuits {
		total := 0
		for _, v := range counts[s] {
			total += v
		}
		if total != 14 {
			continue
		}
		if counts[s][1] < 3 || counts[s][9] < 3 {
			return false
		}
		for n := 2; n <= 8; n++ {
			if counts[s][n] < 1 {
				return false
			}
		}
		return true
	}
	return false
}
