package calculator

import (
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
)

// Candidate is a discard and the tiles that lower the shanten after it.
type Candidate struct {
	Tile       mahjong.Tile   `json:"tile"`
	Candidates []mahjong.Tile `json:"candidates"`
	Shanten    int            `json:"shanten"` // after drawing a candidate
}

// Remain is a useful tile and the number of its copies still unseen.
type Remain struct {
	Tile mahjong.Tile `json:"tile"`
	N    int          `json:"n"`
}

type PlayerCandidate struct {
	Tile       mahjong.Tile `json:"tile"`
	Candidates []Remain     `json:"candidates"`
	Sum        int          `json:"sum"`
	Shanten    int          `json:"shanten"`
}

// CandidateTiles tries every tile kind on a 13-tile hand and returns the
// lowest shanten with the tiles reaching it.
func CandidateTiles(h *mahjong.Hand) (int, []mahjong.Tile) {
	probe := h.Clone()
	best := Infinity
	var tiles []mahjong.Tile
	for _, s := range mahjong.Suits {
		for n := 1; n <= s.Size(); n++ {
			t := mahjong.NewTile(s, n)
			added, err := probe.Inc(t)
			if err != nil {
				continue
			}
			v := NewShantenCalculator(probe).Calc()
			if _, err := probe.Dec(added...); err != nil {
				probe = h.Clone()
			}

			switch {
			case v < best:
				best, tiles = v, []mahjong.Tile{t}
			case v == best:
				tiles = append(tiles, t)
			}
		}
	}
	return best, tiles
}

// CalcCandidates returns the discards of a 14-tile hand leaving the lowest
// shanten. choices limits the discards, e.g. to the drawn tile after reach.
func CalcCandidates(h *mahjong.Hand, choices []mahjong.Tile) ([]Candidate, error) {
	if len(choices) == 0 {
		return nil, errors.Wrap(errutil.ErrIllegalParameter, "no tile to discard")
	}

	best := Infinity
	var out []Candidate
	index := map[string]int{}
	for _, t := range choices {
		probe := h.Clone()
		if _, err := probe.Dec(t); err != nil {
			return nil, err
		}
		v, tiles := CandidateTiles(probe)

		discard := t.Plain()
		if t.IsRedFive() {
			discard = discard.With(mahjong.OpRed)
		}
		c := Candidate{Tile: discard, Candidates: tiles, Shanten: v}

		switch {
		case v < best:
			best = v
			out = []Candidate{c}
			index = map[string]int{discard.String(): 0}
		case v == best:
			if i, ok := index[discard.String()]; ok {
				out[i] = c
				continue
			}
			index[discard.String()] = len(out)
			out = append(out, c)
		}
	}
	return out, nil
}

// Remaining counts the unseen copies of every useful tile. visible lists
// tiles seen outside the hand, such as discards and called blocks.
func Remaining(h *mahjong.Hand, visible mahjong.Tiles, cands []Candidate) []PlayerCandidate {
	out := make([]PlayerCandidate, 0, len(cands))
	for _, c := range cands {
		pc := PlayerCandidate{Tile: c.Tile, Shanten: c.Shanten}
		for _, t := range c.Candidates {
			n := 4 - h.Get(t.Suit, t.Rank) - visible.Count(t)
			if n < 0 {
				n = 0
			}
			pc.Candidates = append(pc.Candidates, Remain{Tile: t, N: n})
			pc.Sum += n
		}
		out = append(out, pc)
	}
	return out
}
