package calculator

import (
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
)

type family int

const (
	familyStandard family = iota
	familySevenPairs
	familyOrphans
	familyNineGates
)

// win is a complete decomposition prepared for pattern matching.
type win struct {
	board    *BoardContext
	blocks   []mahjong.Block
	pair     mahjong.Block
	sets     []mahjong.Block
	tiles    mahjong.Tiles
	last     mahjong.Tile
	winning  int // index of the block holding last
	family   family
	closed   bool
	selfDraw bool
	reached  bool
}

func newWin(d Decomposition, board *BoardContext, h *mahjong.Hand) (*win, error) {
	if d.Shanten != -1 {
		return nil, errors.Wrapf(errutil.ErrInconsistentScoringInput, "decomposition is not complete: %s(%d)", d, d.Shanten)
	}

	w := &win{board: board, blocks: d.Blocks, winning: -1, closed: true}
	pairs, isolated, hands := 0, 0, 0
	for i, b := range d.Blocks {
		if b.IsCalled() && !b.Is(mahjong.KindAnKan) {
			w.closed = false
		}
		for _, t := range b.Tiles() {
			if w.winning < 0 && !b.IsCalled() && (t.Has(mahjong.OpTsumo) || t.Has(mahjong.OpRon)) {
				w.winning, w.last = i, t
			}
			w.tiles = append(w.tiles, t)
		}
		switch {
		case b.Is(mahjong.KindPair):
			pairs++
			w.pair = b
		case b.Is(mahjong.KindIsolated):
			isolated++
		case b.Is(mahjong.KindHand):
			hands++
		case isTriplet(b) || isRun(b):
			w.sets = append(w.sets, b)
		}
	}
	if w.winning < 0 {
		return nil, errors.Wrapf(errutil.ErrInconsistentScoringInput, "no winning tile in %s", d)
	}

	switch {
	case pairs == 7 && len(d.Blocks) == 7:
		w.family = familySevenPairs
	case pairs == 1 && isolated == 12:
		w.family = familyOrphans
	case hands == 1 && len(d.Blocks) == 1 && len(w.tiles) == 14:
		w.family = familyNineGates
	case pairs == 1 && len(w.sets) == 4 && isolated == 0 && hands == 0:
		w.family = familyStandard
	default:
		return nil, errors.Wrapf(errutil.ErrInconsistentScoringInput, "unrecognized shape %s", d)
	}

	if h != nil {
		_, drawn := h.Drawn()
		w.selfDraw = drawn
		w.reached = h.Reached()
	}
	w.selfDraw = w.selfDraw || w.last.Has(mahjong.OpTsumo)
	w.reached = w.reached || board.DoubleReach
	return w, nil
}

func isTriplet(b mahjong.Block) bool {
	switch b.Kind() {
	case mahjong.KindTriplet, mahjong.KindPon, mahjong.KindAnKan, mahjong.KindDaiKan, mahjong.KindShoKan:
		return true
	}
	return false
}

func isRun(b mahjong.Block) bool {
	return b.Is(mahjong.KindRun) || b.Is(mahjong.KindChi)
}

// low is the lowest rank of a block. Chi keeps its claimed tile in place so
// the first tile is not always the lowest.
func low(b mahjong.Block) int {
	n := b.Tile(0).Rank
	for _, t := range b.Tiles() {
		if t.Rank < n {
			n = t.Rank
		}
	}
	return n
}

func (w *win) standard() bool { return w.family == familyStandard }

func (w *win) every(pred func(mahjong.Tile) bool) bool {
	for _, t := range w.tiles {
		if !pred(t) {
			return false
		}
	}
	return true
}

func (w *win) some(pred func(mahjong.Tile) bool) bool {
	for _, t := range w.tiles {
		if pred(t) {
			return true
		}
	}
	return false
}

func (w *win) hasRun(s mahjong.Suit, n int) bool {
	for _, b := range w.sets {
		if isRun(b) && b.Tile(0).Suit == s && low(b) == n {
			return true
		}
	}
	return false
}

func (w *win) hasTriplet(s mahjong.Suit, n int) bool {
	for _, b := range w.sets {
		if isTriplet(b) && b.Tile(0).Suit == s && b.Tile(0).Rank == n {
			return true
		}
	}
	return false
}

func (w *win) countSets(pred func(mahjong.Block) bool) int {
	n := 0
	for _, b := range w.sets {
		if pred(b) {
			n++
		}
	}
	return n
}

// peikou counts pairs of identical concealed runs.
func (w *win) peikou() int {
	if !w.closed || !w.standard() {
		return 0
	}
	runs := map[mahjong.Tile]int{}
	for _, b := range w.sets {
		if b.Is(mahjong.KindRun) {
			runs[mahjong.NewTile(b.Tile(0).Suit, low(b))]++
		}
	}
	n := 0
	for _, v := range runs {
		n += v / 2
	}
	return n
}

// concealedTriplets skips a triplet completed by a claimed tile.
func (w *win) concealedTriplets() int {
	n := 0
	for i, b := range w.blocks {
		switch b.Kind() {
		case mahjong.KindTriplet:
			if i == w.winning && !w.selfDraw {
				continue
			}
			n++
		case mahjong.KindAnKan:
			n++
		}
	}
	return n
}

func (w *win) honorTriplets(pred func(mahjong.Tile) bool) int {
	return w.countSets(func(b mahjong.Block) bool {
		return isTriplet(b) && pred(b.Tile(0))
	})
}

func (w *win) honorTriplet(rank int) bool {
	return w.honorTriplets(func(t mahjong.Tile) bool { return t.IsHonor() && t.Rank == rank }) > 0
}

func (w *win) quads() int {
	return w.countSets(func(b mahjong.Block) bool { return b.Kind().IsQuad() })
}

func (w *win) valuedPair() bool {
	if w.pair.IsZero() {
		return false
	}
	t := w.pair.Tile(0)
	return t.IsDragon() || t.IsWind() && (t.Rank == int(w.board.SeatWind) || t.Rank == int(w.board.Round.Wind))
}

func (w *win) pinfu() bool {
	if !w.closed || !w.standard() || w.valuedPair() {
		return false
	}
	if w.countSets(func(b mahjong.Block) bool { return b.Is(mahjong.KindRun) }) != 4 {
		return false
	}
	return w.wait() == waitRyanmen
}

// outside reports that every set and the pair hold a terminal or honor.
// honors selects the variant with honors present or absent.
func (w *win) outside(honors bool) bool {
	if !w.standard() || w.countSets(isRun) == 0 {
		return false
	}
	for _, b := range append([]mahjong.Block{w.pair}, w.sets...) {
		if !hasOrphan(b) {
			return false
		}
	}
	return w.some(mahjong.Tile.IsHonor) == honors
}

func hasOrphan(b mahjong.Block) bool {
	for _, t := range b.Tiles() {
		if t.IsOrphan() {
			return true
		}
	}
	return false
}

// numerals counts the numeral suits present.
func (w *win) numerals() int {
	var seen [mahjong.SuitHonor + 1]bool
	n := 0
	for _, t := range w.tiles {
		if t.IsNumeral() && !seen[t.Suit] {
			seen[t.Suit] = true
			n++
		}
	}
	return n
}

func isGreen(t mahjong.Tile) bool {
	switch {
	case t.IsHonor():
		return t.Rank == 6
	case t.Suit == mahjong.SuitSou:
		switch t.Rank {
		case 2, 3, 4, 6, 8:
			return true
		}
	}
	return false
}

// yaku is a scoring pattern. open is the value of an open hand, 0 for a
// pattern that needs a closed hand.
type yaku struct {
	name   string
	closed int
	open   int
	match  func(w *win) bool
}

func (y yaku) value(w *win) int {
	if !y.match(w) {
		return 0
	}
	if w.closed {
		return y.closed
	}
	return y.open
}

var yakuTable = []yaku{
	{name: "立直", closed: 1, match: func(w *win) bool { return w.reached && !w.board.DoubleReach }},
	{name: "ダブル立直", closed: 2, match: func(w *win) bool { return w.reached && w.board.DoubleReach }},
	{name: "一発", closed: 1, match: func(w *win) bool { return w.reached && w.board.Oneshot }},
	{name: "門前清自摸和", closed: 1, match: func(w *win) bool { return w.selfDraw }},
	{name: "平和", closed: 1, match: (*win).pinfu},
	{name: "一盃口", closed: 1, match: func(w *win) bool { return w.peikou() == 1 }},
	{name: "断么九", closed: 1, open: 1, match: func(w *win) bool { return w.every(mahjong.Tile.IsSimple) }},
	{name: "自風牌", closed: 1, open: 1, match: func(w *win) bool { return w.honorTriplet(int(w.board.SeatWind)) }},
	{name: "場風牌", closed: 1, open: 1, match: func(w *win) bool { return w.honorTriplet(int(w.board.Round.Wind)) }},
	{name: "役牌 白", closed: 1, open: 1, match: func(w *win) bool { return w.honorTriplet(5) }},
	{name: "役牌 發", closed: 1, open: 1, match: func(w *win) bool { return w.honorTriplet(6) }},
	{name: "役牌 中", closed: 1, open: 1, match: func(w *win) bool { return w.honorTriplet(7) }},
	{name: "嶺上開花", closed: 1, open: 1, match: func(w *win) bool { return w.board.Replacement && w.selfDraw }},
	{name: "槍槓", closed: 1, open: 1, match: func(w *win) bool { return w.board.QuadRob && !w.selfDraw }},
	{name: "海底摸月", closed: 1, open: 1, match: func(w *win) bool { return w.board.LastTile && w.selfDraw }},
	{name: "河底撈魚", closed: 1, open: 1, match: func(w *win) bool { return w.board.LastTile && !w.selfDraw }},
	{name: "三色同順", closed: 2, open: 1, match: func(w *win) bool {
		for n := 1; n <= 7; n++ {
			if w.hasRun(mahjong.SuitMan, n) && w.hasRun(mahjong.SuitPin, n) && w.hasRun(mahjong.SuitSou, n) {
				return true
			}
		}
		return false
	}},
	{name: "一気通貫", closed: 2, open: 1, match: func(w *win) bool {
		for _, s := range mahjong.NumeralSuits {
			if w.hasRun(s, 1) && w.hasRun(s, 4) && w.hasRun(s, 7) {
				return true
			}
		}
		return false
	}},
	{name: "混全帯么九", closed: 2, open: 1, match: func(w *win) bool { return w.outside(true) }},
	{name: "七対子", closed: 2, match: func(w *win) bool { return w.family == familySevenPairs }},
	{name: "対々和", closed: 2, open: 2, match: func(w *win) bool {
		return w.standard() && w.countSets(isTriplet) == 4
	}},
	{name: "三暗刻", closed: 2, open: 2, match: func(w *win) bool { return w.concealedTriplets() == 3 }},
	{name: "三色同刻", closed: 2, open: 2, match: func(w *win) bool {
		for n := 1; n <= 9; n++ {
			if w.hasTriplet(mahjong.SuitMan, n) && w.hasTriplet(mahjong.SuitPin, n) && w.hasTriplet(mahjong.SuitSou, n) {
				return true
			}
		}
		return false
	}},
	{name: "三槓子", closed: 2, open: 2, match: func(w *win) bool { return w.quads() == 3 }},
	{name: "小三元", closed: 2, open: 2, match: func(w *win) bool {
		return w.standard() && w.honorTriplets(mahjong.Tile.IsDragon) == 2 && w.pair.Tile(0).IsDragon()
	}},
	{name: "混老頭", closed: 2, open: 2, match: func(w *win) bool {
		return w.every(mahjong.Tile.IsOrphan) && w.some(mahjong.Tile.IsHonor) && w.some(mahjong.Tile.IsTerminal)
	}},
	{name: "二盃口", closed: 3, match: func(w *win) bool { return w.peikou() == 2 }},
	{name: "純全帯么九色", closed: 3, open: 2, match: func(w *win) bool { return w.outside(false) }},
	{name: "混一色", closed: 3, open: 2, match: func(w *win) bool {
		return w.numerals() == 1 && w.some(mahjong.Tile.IsHonor)
	}},
	{name: "清一色", closed: 6, open: 5, match: func(w *win) bool {
		return w.numerals() == 1 && !w.some(mahjong.Tile.IsHonor)
	}},
}

var yakumanTable = []yaku{
	{name: "国士無双", closed: 13, match: func(w *win) bool { return w.family == familyOrphans }},
	{name: "四暗刻", closed: 13, match: func(w *win) bool { return w.standard() && w.concealedTriplets() == 4 }},
	{name: "大三元", closed: 13, open: 13, match: func(w *win) bool { return w.honorTriplets(mahjong.Tile.IsDragon) == 3 }},
	{name: "字一色", closed: 13, open: 13, match: func(w *win) bool { return w.every(mahjong.Tile.IsHonor) }},
	{name: "小四喜", closed: 13, open: 13, match: func(w *win) bool {
		return w.standard() && w.honorTriplets(mahjong.Tile.IsWind) == 3 && w.pair.Tile(0).IsWind()
	}},
	{name: "大四喜", closed: 13, open: 13, match: func(w *win) bool { return w.honorTriplets(mahjong.Tile.IsWind) == 4 }},
	{name: "緑一色", closed: 13, open: 13, match: func(w *win) bool { return w.every(isGreen) }},
	{name: "清老頭", closed: 13, open: 13, match: func(w *win) bool { return w.every(mahjong.Tile.IsTerminal) }},
	{name: "九蓮宝燈", closed: 13, match: func(w *win) bool { return w.family == familyNineGates }},
	{name: "四槓子", closed: 13, open: 13, match: func(w *win) bool { return w.quads() == 4 }},
}

// patterns lists the matched yakuman, or else the matched yaku followed by
// dora. Dora alone is not a yaku and is only listed next to one.
func (w *win) patterns() (out []Pattern, yakuman int) {
	for _, y := range yakumanTable {
		if v := y.value(w); v > 0 {
			out = append(out, Pattern{Name: y.name, Han: v})
			yakuman++
		}
	}
	if yakuman > 0 {
		return out, yakuman
	}

	for _, y := range yakuTable {
		if v := y.value(w); v > 0 {
			out = append(out, Pattern{Name: y.name, Han: v})
		}
	}
	if len(out) == 0 {
		return nil, 0
	}

	if n := w.dora(w.board.DoraMarkers); n > 0 {
		out = append(out, Pattern{Name: "ドラ", Han: n})
	}
	if n := w.countTiles(mahjong.Tile.IsRedFive); n > 0 {
		out = append(out, Pattern{Name: "赤ドラ", Han: n})
	}
	if w.reached {
		if n := w.dora(w.board.UraMarkers); n > 0 {
			out = append(out, Pattern{Name: "裏ドラ", Han: n})
		}
	}
	return out, 0
}

// dora counts tiles indicated by markers. A marker indicates its successor.
func (w *win) dora(markers []mahjong.Tile) int {
	n := 0
	for _, m := range markers {
		next := m.Next()
		n += w.countTiles(next.Equals)
	}
	return n
}

func (w *win) countTiles(pred func(mahjong.Tile) bool) int {
	n := 0
	for _, t := range w.tiles {
		if pred(t) {
			n++
		}
	}
	return n
}
