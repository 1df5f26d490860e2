package mahjong

import (
	"github.com/lonng/riichi/pkg/algoutil"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

const (
	MaxInputLength = 600
	Separator      = ','

	// operator glyphs allowed in front of one digit
	maxOperators = 4
)

func notationErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(errutil.ErrMalformedNotation, format, args...)
}

// token is a tile or a block separator.
type token struct {
	tile Tile
	sep  bool
}

// Parser turns notation such as "123m456p,-213s,t1z" into blocks.
type Parser struct {
	input string
}

func NewParser(input string) *Parser {
	return &Parser{input: algoutil.NormalizeNotation(input)}
}

// Parse returns one block per separated segment.
func (p *Parser) Parse() ([]Block, error) {
	tokens, err := p.scan()
	if err != nil {
		return nil, err
	}

	var blocks []Block
	var cluster []Tile
	for _, tk := range tokens {
		if tk.sep {
			blocks = append(blocks, NewBlock(detectKind(cluster), cluster...))
			cluster = nil
			continue
		}
		cluster = append(cluster, tk.tile)
	}
	blocks = append(blocks, NewBlock(detectKind(cluster), cluster...))
	return blocks, nil
}

// Tiles returns every tile with the separators dropped.
func (p *Parser) Tiles() (Tiles, error) {
	tokens, err := p.scan()
	if err != nil {
		return nil, err
	}
	tiles := make(Tiles, 0, len(tokens))
	for _, tk := range tokens {
		if !tk.sep {
			tiles = append(tiles, tk.tile)
		}
	}
	return tiles, nil
}

func (p *Parser) validate() error {
	in := p.input
	if len(in) == 0 {
		return notationErrorf("empty input")
	}
	if len(in) > MaxInputLength {
		return notationErrorf("exceeded maximum input length(%d)", len(in))
	}
	last := in[len(in)-1]
	if _, ok := suitOf(last); !ok && !isAlias(last) {
		return notationErrorf("last character(%c) is not a suit", last)
	}
	return nil
}

func (p *Parser) scan() ([]token, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	in := p.input
	var tokens []token
	var cluster []Tile

	for i := 0; i < len(in); {
		c := in[i]

		if c == Separator {
			if len(cluster) > 0 {
				return nil, notationErrorf("numbers without suit before position %d: %s", i, in)
			}
			tokens = append(tokens, token{sep: true})
			i++
			continue
		}

		if s, ok := suitOf(c); ok {
			if s == SuitBack {
				// a back tile does not close the pending cluster
				tokens = append(tokens, token{tile: BackTile})
				i++
				continue
			}
			tiles, err := makeTiles(cluster, s, 0, s.Size())
			if err != nil {
				return nil, err
			}
			for _, t := range tiles {
				tokens = append(tokens, token{tile: t})
			}
			cluster = nil
			i++
			continue
		}

		if isAlias(c) && len(cluster) > 0 {
			offset, limit := 0, 4
			if c == 'd' {
				offset, limit = dragonOffset, 3
			}
			tiles, err := makeTiles(cluster, SuitHonor, offset, limit)
			if err != nil {
				return nil, err
			}
			for _, t := range tiles {
				tokens = append(tokens, token{tile: t})
			}
			cluster = nil
			i++
			continue
		}

		if _, ok := opOf(c); ok {
			t, n, err := readOperators(in[i:])
			if err != nil {
				return nil, err
			}
			cluster = append(cluster, t)
			i += n
			continue
		}

		if isDigit(c) {
			cluster = append(cluster, Tile{Rank: int(c - '0')})
			i++
			continue
		}

		return nil, notationErrorf("encounter unexpected character %q at %d: %s", c, i, in)
	}

	if len(cluster) > 0 {
		return nil, notationErrorf("remaining values %v", Tiles(cluster))
	}
	return tokens, nil
}

// readOperators consumes operator glyphs followed by one digit.
func readOperators(in string) (Tile, int, error) {
	var ops Op
	for i := 0; i < len(in) && i <= maxOperators; i++ {
		if op, ok := opOf(in[i]); ok && i < maxOperators {
			ops |= op
			continue
		}
		if !isDigit(in[i]) {
			break
		}
		t := Tile{Rank: int(in[i] - '0'), Ops: ops}
		if t.Has(OpRed) && t.Rank != 5 {
			return Tile{}, 0, notationErrorf("found red but number is not 5: %d", t.Rank)
		}
		if t.Has(OpDora) && t.Has(OpTsumo) {
			return Tile{}, 0, notationErrorf("unable to specify both dora and tsumo")
		}
		return t, i + 1, nil
	}
	return Tile{}, 0, notationErrorf("operators are not followed by a number: %s", in)
}

// makeTiles assigns suit s to the pending cluster. Honors accept ranks
// 1..limit shifted by offset.
func makeTiles(cluster []Tile, s Suit, offset, limit int) ([]Tile, error) {
	tiles := make([]Tile, 0, len(cluster))
	for _, v := range cluster {
		t := Tile{Suit: s, Rank: v.Rank, Ops: v.Ops}
		if !s.IsNumeral() && t.Has(OpRed) {
			return nil, notationErrorf("found red on %s: %s", s, t)
		}
		if s.IsNumeral() && t.Rank == 0 {
			t = t.With(OpRed)
			t.Rank = 5
		}
		if s == SuitHonor {
			if t.Rank < 1 || t.Rank > limit {
				return nil, notationErrorf("rank %d is out of range for %s", v.Rank, s)
			}
			t.Rank += offset
		}
		if !t.valid() {
			return nil, notationErrorf("invalid tile %s", t)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func isAlias(c byte) bool { return c == 'w' || c == 'd' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse is a shortcut for NewParser(s).Parse().
func Parse(s string) ([]Block, error) {
	return NewParser(s).Parse()
}

// MustParse is like Parse but panics on failure.
func MustParse(s string) []Block {
	blocks, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return blocks
}
