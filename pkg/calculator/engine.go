package calculator

import (
	"math"

	"github.com/lonng/riichi/pkg/mahjong"
	log "github.com/sirupsen/logrus"
)

// Infinity is the shanten of a family that does not apply to a hand.
const Infinity = math.MaxInt32

var logger = log.WithField("component", "calculator")

// tally counts complete sets, partial sets (pairs and two-tile waits) and
// isolated tiles of one arrangement.
type tally struct {
	sets     int
	partials int
	isolated int
}

func (t tally) add(o tally) tally {
	return tally{
		sets:     t.sets + o.sets,
		partials: t.partials + o.partials,
		isolated: t.isolated + o.isolated,
	}
}

// shanten folds a tally into a shanten number. Called blocks count as sets.
func (t tally) shanten(called int, hasPair bool) int {
	sets, partials, isolated := t.sets+called, t.partials, t.isolated
	n := 5
	if hasPair {
		n = 4
	}
	if sets > 4 {
		partials += sets - 4
		sets = 4
	}
	if sets+partials > 4 {
		isolated += sets + partials - 4
		partials = 4 - sets
	}
	if sets+partials+isolated > n {
		isolated = n - sets - partials
	}
	if hasPair {
		partials++
	}
	return 13 - 3*sets - 2*partials - isolated
}

// payload lists alternative set lists found for one tally.
type payload [][]mahjong.Block

// reducer decides what the enumeration keeps besides the tallies.
type reducer interface {
	leaf() payload
	extend(p payload, set mahjong.Block) payload
	join(p, q payload) payload
	product(p, q payload) payload
}

// counting keeps nothing, the search only yields numbers.
type counting struct{}

func (counting) leaf() payload                         { return nil }
func (counting) extend(payload, mahjong.Block) payload { return nil }
func (counting) join(payload, payload) payload         { return nil }
func (counting) product(payload, payload) payload      { return nil }

// collecting keeps every set list.
type collecting struct{}

func (collecting) leaf() payload { return payload{nil} }

// extend puts set in front of every alternative.
func (collecting) extend(p payload, set mahjong.Block) payload {
	out := make(payload, 0, len(p))
	for _, blocks := range p {
		v := make([]mahjong.Block, 0, len(blocks)+1)
		v = append(v, set)
		v = append(v, blocks...)
		out = append(out, v)
	}
	return out
}

func (collecting) join(p, q payload) payload {
	return append(p[:len(p):len(p)], q...)
}

func (collecting) product(p, q payload) payload {
	out := make(payload, 0, len(p)*len(q))
	for _, a := range p {
		for _, b := range q {
			v := make([]mahjong.Block, 0, len(a)+len(b))
			v = append(v, a...)
			v = append(v, b...)
			out = append(out, v)
		}
	}
	return out
}

type entry struct {
	tally
	payload payload
}

// strategies are the best entries of one suit under two orders. a prefers
// fewer isolated tiles then fewer partials, b prefers more sets then more
// partials. Ties are all kept.
type strategies struct {
	a, b []entry
}

func byIsolated(x, y tally) int {
	switch {
	case x.isolated != y.isolated:
		return y.isolated - x.isolated
	default:
		return y.partials - x.partials
	}
}

func bySets(x, y tally) int {
	switch {
	case x.sets != y.sets:
		return x.sets - y.sets
	default:
		return x.partials - y.partials
	}
}

func offer(r reducer, list []entry, e entry, cmp func(x, y tally) int) []entry {
	if len(list) == 0 {
		return []entry{e}
	}
	if c := cmp(e.tally, list[0].tally); c > 0 {
		return []entry{e}
	} else if c < 0 {
		return list
	}
	for i := range list {
		if list[i].tally == e.tally {
			list[i].payload = r.join(list[i].payload, e.payload)
			return list
		}
	}
	return append(list, e)
}

// merge offers every child entry with set added on top.
func (st *strategies) merge(r reducer, child strategies, set mahjong.Block) {
	for _, v := range child.a {
		v.sets++
		v.payload = r.extend(v.payload, set)
		st.a = offer(r, st.a, v, byIsolated)
	}
	for _, v := range child.b {
		v.sets++
		v.payload = r.extend(v.payload, set)
		st.b = offer(r, st.b, v, bySets)
	}
}

// entries lists both strategies, a first.
func (st strategies) entries() []entry {
	return append(st.a[:len(st.a):len(st.a)], st.b...)
}

// engine enumerates set arrangements of merged counts (red fives in slot 5).
type engine struct {
	r      reducer
	called int
}

func newEngine(r reducer, called int) *engine {
	return &engine{r: r, called: called}
}

// walk extracts runs and triplets of suit s from rank n upwards. Each rank
// is skipped first, then a run and a triplet are tried when counts allow.
func (e *engine) walk(s mahjong.Suit, counts [10]int, n int) strategies {
	if n > 9 {
		leaf := entry{tally: group(counts), payload: e.r.leaf()}
		return strategies{a: []entry{leaf}, b: []entry{leaf}}
	}

	res := e.walk(s, counts, n+1)
	if n <= 7 && counts[n] > 0 && counts[n+1] > 0 && counts[n+2] > 0 {
		next := counts
		next[n]--
		next[n+1]--
		next[n+2]--
		res.merge(e.r, e.walk(s, next, n), runBlock(s, n))
	}
	if counts[n] >= 3 {
		next := counts
		next[n] -= 3
		res.merge(e.r, e.walk(s, next, n), tripletBlock(s, n))
	}
	return res
}

// group counts partials and isolated tiles of what is left in a suit. Tiles
// closer than three ranks form one group.
func group(counts [10]int) tally {
	var t tally
	tiles := 0
	for n := 1; n <= 9; n++ {
		tiles += counts[n]
		if n <= 7 && counts[n+1] == 0 && counts[n+2] == 0 {
			t.partials += tiles >> 1
			t.isolated += tiles % 2
			tiles = 0
		}
	}
	t.partials += tiles >> 1
	t.isolated += tiles % 2
	return t
}

// honors tallies honor ranks directly, honors never form runs.
func (e *engine) honors(counts [10]int) entry {
	v := entry{payload: e.r.leaf()}
	for n := mahjong.SuitHonor.Size(); n >= 1; n-- {
		switch c := counts[n]; {
		case c >= 3:
			v.sets++
			v.payload = e.r.extend(v.payload, tripletBlock(mahjong.SuitHonor, n))
		case c == 2:
			v.partials++
		case c == 1:
			v.isolated++
		}
	}
	return v
}

// arrange combines the strategies of all suits and returns the best shanten
// with the set lists attaining it.
func (e *engine) arrange(counts mahjong.Counter, hasPair bool) (int, payload) {
	var suits [len(mahjong.NumeralSuits)]strategies
	for i, s := range mahjong.NumeralSuits {
		suits[i] = e.walk(s, counts[s], 1)
	}
	z := e.honors(counts[mahjong.SuitHonor])

	best := Infinity
	var found payload
	for _, m := range suits[0].entries() {
		for _, p := range suits[1].entries() {
			for _, s := range suits[2].entries() {
				v := m.add(p.tally).add(s.tally).add(z.tally).shanten(e.called, hasPair)
				if v > best {
					continue
				}
				sets := e.r.product(e.r.product(e.r.product(m.payload, p.payload), s.payload), z.payload)
				if v < best {
					best, found = v, sets
				} else {
					found = e.r.join(found, sets)
				}
			}
		}
	}
	return best, found
}

// standard tries every designated pair after the pairless case and keeps
// the global minimum. Pairs lead their set lists.
func (e *engine) standard(counts mahjong.Counter) (int, payload) {
	best, found := e.arrange(counts, false)
	for _, s := range mahjong.Suits {
		for n := 1; n <= s.Size(); n++ {
			if counts[s][n] < 2 {
				continue
			}
			next := counts
			next[s][n] -= 2
			v, sets := e.arrange(next, true)
			switch {
			case v < best:
				best, found = v, e.r.extend(sets, pairBlock(s, n))
			case v == best:
				found = e.r.join(found, e.r.extend(sets, pairBlock(s, n)))
			}
		}
	}
	return best, found
}

func runBlock(s mahjong.Suit, n int) mahjong.Block {
	return mahjong.NewBlock(mahjong.KindRun, mahjong.NewTile(s, n), mahjong.NewTile(s, n+1), mahjong.NewTile(s, n+2))
}

func tripletBlock(s mahjong.Suit, n int) mahjong.Block {
	t := mahjong.NewTile(s, n)
	return mahjong.NewBlock(mahjong.KindTriplet, t, t, t)
}

func pairBlock(s mahjong.Suit, n int) mahjong.Block {
	t := mahjong.NewTile(s, n)
	return mahjong.NewBlock(mahjong.KindPair, t, t)
}
