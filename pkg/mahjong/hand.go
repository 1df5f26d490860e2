package mahjong

import (
	"strings"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

// Counter holds tile counts per suit, indexed by rank. Slot 0 of a numeral
// suit counts red fives, which are fives as well.
type Counter [SuitHonor + 1][10]int

// Get returns the number of tiles of suit s and rank n, red fives included.
func (c *Counter) Get(s Suit, n int) int {
	if s < SuitMan || s > SuitHonor || n < 1 || n > s.Size() {
		return 0
	}
	if s.IsNumeral() && n == 5 {
		return c[s][5] + c[s][0]
	}
	return c[s][n]
}

// Red returns the number of red fives of suit s.
func (c *Counter) Red(s Suit) int {
	if !s.IsNumeral() {
		return 0
	}
	return c[s][0]
}

func (c *Counter) Total() int {
	n := 0
	for _, s := range Suits {
		for _, v := range c[s] {
			n += v
		}
	}
	return n
}

// Merged returns a copy where red fives are counted in slot 5.
func (c Counter) Merged() Counter {
	m := c
	for _, s := range NumeralSuits {
		m[s][5] += m[s][0]
		m[s][0] = 0
	}
	return m
}

// Tiles lists the counted tiles in tile order.
func (c *Counter) Tiles() Tiles {
	var tiles Tiles
	for _, s := range Suits {
		for n := 1; n <= s.Size(); n++ {
			if s.IsNumeral() && n == 5 {
				for i := 0; i < c[s][0]; i++ {
					tiles = append(tiles, NewTile(s, 5, OpRed))
				}
			}
			for i := 0; i < c[s][n]; i++ {
				tiles = append(tiles, NewTile(s, n))
			}
		}
	}
	return tiles
}

func (c *Counter) inc(t Tile) (Tile, error) {
	if !t.IsNumeral() && !t.IsHonor() || !t.valid() {
		return t, errors.Wrapf(errutil.ErrIllegalHandMutation, "unable to increase %s", t)
	}
	if c.Get(t.Suit, t.Rank) >= maxCount {
		return t, errors.Wrapf(errutil.ErrIllegalHandMutation, "unable to increase %s", t)
	}
	if t.IsRedFive() {
		c[t.Suit][0]++
	} else {
		c[t.Suit][t.Rank]++
	}
	return t, nil
}

// dec prefers the exact tile and falls back to the other kind of five.
func (c *Counter) dec(t Tile) (Tile, error) {
	if c.Get(t.Suit, t.Rank) < 1 {
		return t, errors.Wrapf(errutil.ErrIllegalHandMutation, "unable to decrease %s", t)
	}
	if !t.IsNumeral() || t.Rank != 5 {
		c[t.Suit][t.Rank]--
		return t, nil
	}
	red := t.Has(OpRed)
	if (red && c[t.Suit][0] > 0) || (!red && c[t.Suit][5] == 0) {
		c[t.Suit][0]--
		return t.With(OpRed), nil
	}
	c[t.Suit][5]--
	return t.Without(OpRed), nil
}

// Inc adds every tile or none of them. It returns the tiles added.
func (c *Counter) Inc(tiles ...Tile) ([]Tile, error) {
	next := *c
	done := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		v, err := next.inc(t)
		if err != nil {
			return nil, err
		}
		done = append(done, v)
	}
	*c = next
	return done, nil
}

// Dec removes every tile or none of them. It returns the tiles actually
// removed, which differ from the input in their red flag only.
func (c *Counter) Dec(tiles ...Tile) ([]Tile, error) {
	next := *c
	done := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		v, err := next.dec(t)
		if err != nil {
			return nil, err
		}
		done = append(done, v)
	}
	*c = next
	return done, nil
}

// Hand is the state of one player's tiles.
type Hand struct {
	counter  Counter
	called   []Block
	drawn    Tile
	hasDrawn bool
	reached  bool
}

// NewHand parses notation such as "123m456p789s1z,-213s,t1z".
func NewHand(input string) (*Hand, error) {
	blocks, err := Parse(input)
	if err != nil {
		return nil, err
	}

	h := &Hand{}
	for _, b := range blocks {
		switch {
		case b.IsCalled():
			h.called = append(h.called, b)
		case b.Is(KindTsumo):
			t := b.Tile(0)
			if _, err := h.counter.Inc(t); err != nil {
				return nil, err
			}
			h.drawn, h.hasDrawn = t, true
		case b.Is(KindHand):
			if _, err := h.counter.Inc(b.tiles...); err != nil {
				return nil, err
			}
		}
	}
	return h, nil
}

// MustNewHand is like NewHand but panics on failure.
func MustNewHand(input string) *Hand {
	h, err := NewHand(input)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hand) Get(s Suit, n int) int { return h.counter.Get(s, n) }

func (h *Hand) Counter() Counter { return h.counter }

func (h *Hand) Called() []Block { return append([]Block(nil), h.called...) }

func (h *Hand) Drawn() (Tile, bool) { return h.drawn, h.hasDrawn }

func (h *Hand) Reached() bool { return h.reached }

// Tiles lists the concealed tiles, drawn tile included.
func (h *Hand) Tiles() Tiles { return h.counter.Tiles() }

// Len counts concealed tiles plus three per called block.
func (h *Hand) Len() int {
	return h.counter.Total() + 3*len(h.called)
}

// IsClosed reports whether every called block is a concealed quad.
func (h *Hand) IsClosed() bool {
	for _, b := range h.called {
		if !b.Is(KindAnKan) {
			return false
		}
	}
	return true
}

func (h *Hand) Inc(tiles ...Tile) ([]Tile, error) { return h.counter.Inc(tiles...) }

func (h *Hand) Dec(tiles ...Tile) ([]Tile, error) { return h.counter.Dec(tiles...) }

// Draw adds t as the self-drawn tile.
func (h *Hand) Draw(t Tile) error {
	t = t.With(OpTsumo)
	if _, err := h.counter.Inc(t); err != nil {
		return err
	}
	h.drawn, h.hasDrawn = t, true
	return nil
}

func (h *Hand) Discard(t Tile) error {
	if _, err := h.counter.Dec(t); err != nil {
		return err
	}
	h.clearDrawn()
	return nil
}

// Call exposes a claimed pon, chi or open quad. The rotated tile comes from
// another player, the others from the hand.
func (h *Hand) Call(b Block) error {
	switch b.Kind() {
	case KindPon, KindChi, KindDaiKan:
	default:
		return errors.Wrapf(errutil.ErrUnsupportedOperation, "unable to call %s(%s)", b, b.Kind())
	}

	var remove []Tile
	for _, t := range b.tiles {
		if !t.Has(OpHorizontal) {
			remove = append(remove, t)
		}
	}
	if _, err := h.counter.Dec(remove...); err != nil {
		return err
	}
	h.called = append(h.called, b)
	h.clearDrawn()
	return nil
}

// Kan declares a concealed quad or upgrades a pon to an added quad.
func (h *Hand) Kan(b Block) error {
	switch b.Kind() {
	case KindAnKan:
		t := b.Tile(0).Plain()
		if _, err := h.counter.Dec(t, t, t, t); err != nil {
			return err
		}
		h.called = append(h.called, b)
	case KindShoKan:
		idx := -1
		for i, v := range h.called {
			if v.Is(KindPon) && v.Tile(0).Equals(b.Tile(0)) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errors.Wrapf(errutil.ErrIllegalHandMutation, "unable to find pon of %s", b.Tile(0))
		}
		if _, err := h.counter.Dec(b.Tile(0).Plain()); err != nil {
			return err
		}
		h.called = append(h.called[:idx:idx], h.called[idx+1:]...)
		h.called = append(h.called, b)
	default:
		return errors.Wrapf(errutil.ErrUnsupportedOperation, "unable to kan %s(%s)", b, b.Kind())
	}
	h.clearDrawn()
	return nil
}

// Reach declares a ready hand. Only closed hands may declare.
func (h *Hand) Reach() error {
	if !h.IsClosed() {
		return errors.Wrap(errutil.ErrUnsupportedOperation, "unable to reach with an open hand")
	}
	h.reached = true
	return nil
}

func (h *Hand) clearDrawn() {
	h.drawn, h.hasDrawn = Tile{}, false
}

func (h *Hand) Clone() *Hand {
	c := *h
	c.called = h.Called()
	return &c
}

// String prints the concealed part without the drawn tile, the called
// blocks and then the drawn tile, e.g. "123m123p123s1z,t1z".
func (h *Hand) String() string {
	c := h.counter
	drawn := h.hasDrawn
	if drawn {
		// Draw counts the drawn tile, a stale drawn tile is not printed.
		if _, err := c.Dec(h.drawn); err != nil {
			drawn = false
		}
	}

	var parts []string
	if tiles := c.Tiles(); len(tiles) > 0 {
		parts = append(parts, NewBlock(KindHand, tiles...).String())
	}
	for _, b := range h.called {
		parts = append(parts, b.String())
	}
	if drawn {
		parts = append(parts, h.drawn.Plain().With(OpTsumo|h.drawn.Ops&OpRed).String())
	}
	return strings.Join(parts, string(Separator))
}
