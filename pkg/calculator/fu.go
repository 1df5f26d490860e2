package calculator

import (
	"github.com/lonng/riichi/pkg/mahjong"
)

type wait int

const (
	waitRyanmen wait = iota // two-sided
	waitKanchan             // middle
	waitPenchan             // edge
	waitTanki               // pair
	waitShanpon             // either of two pairs
	waitOther
)

// wait reads the wait shape from the block holding the winning tile.
func (w *win) wait() wait {
	b := w.blocks[w.winning]
	switch b.Kind() {
	case mahjong.KindPair:
		return waitTanki
	case mahjong.KindTriplet:
		return waitShanpon
	case mahjong.KindRun:
		r, n := low(b), w.last.Rank
		switch {
		case n == r+1:
			return waitKanchan
		case n == r+2 && r == 1, n == r && r == 7:
			return waitPenchan
		}
		return waitRyanmen
	}
	return waitOther
}

// fu returns the raw fu, before rounding.
func (w *win) fu() int {
	if w.family == familySevenPairs {
		return 25
	}

	fu := 20
	switch w.wait() {
	case waitKanchan, waitPenchan, waitTanki:
		fu += 2
	}
	if w.selfDraw && !w.pinfu() {
		fu += 2
	}
	if w.closed && !w.selfDraw {
		fu += 10
	}

	if !w.pair.IsZero() {
		t := w.pair.Tile(0)
		if t.IsDragon() {
			fu += 2
		}
		if t.IsWind() && t.Rank == int(w.board.SeatWind) {
			fu += 2
		}
		if t.IsWind() && t.Rank == int(w.board.Round.Wind) {
			fu += 2
		}
	}

	for i, b := range w.blocks {
		fu += w.setFu(i, b)
	}
	return fu
}

// setFu values triplets and quads. Terminals and honors count double, a
// concealed set counts double again and a quad four times a triplet.
func (w *win) setFu(i int, b mahjong.Block) int {
	if !isTriplet(b) {
		return 0
	}
	v := 2
	if b.Tile(0).IsOrphan() {
		v = 4
	}
	switch b.Kind() {
	case mahjong.KindTriplet:
		if i == w.winning && !w.selfDraw {
			return v
		}
		return v * 2
	case mahjong.KindPon:
		return v
	case mahjong.KindDaiKan, mahjong.KindShoKan:
		return v * 4
	case mahjong.KindAnKan:
		return v * 8
	}
	return 0
}
