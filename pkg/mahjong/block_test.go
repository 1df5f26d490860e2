package mahjong

import (
	"testing"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		input string
		kind  Kind
	}{
		{input: "1m", kind: KindHand},
		{input: "d5p", kind: KindDora},
		{input: "t7z", kind: KindTsumo},
		{input: "11t1m", kind: KindUnknown},
		{input: "123456m", kind: KindHand},
		{input: "-111z", kind: KindPon},
		{input: "2-34p", kind: KindChi},
		{input: "-123z", kind: KindDiscard},
		{input: "-135m", kind: KindDiscard},
		{input: "_11_z", kind: KindAnKan},
		{input: "-1111p", kind: KindDaiKan},
		{input: "1-1-11p", kind: KindShoKan},
		{input: "-1-1-11p", kind: KindDiscard},
		{input: "-11m", kind: KindDiscard},
	}

	for _, c := range cases {
		b := MustParse(c.input)[0]
		if b.Kind() != c.kind {
			t.Fatalf("expect: %v, got: %v, input: %s", c.kind, b.Kind(), c.input)
		}
	}
}

func TestBlockOrder(t *testing.T) {
	cases := []struct {
		kind  Kind
		tiles string
		want  string
	}{
		{kind: KindHand, tiles: "9s1z3m1p", want: "3m1p9s1z"},
		{kind: KindRun, tiles: "312m", want: "123m"},
		{kind: KindChi, tiles: "3-12m", want: "2-13m"},
		{kind: KindChi, tiles: "-312m", want: "-312m"},
		{kind: KindDiscard, tiles: "9s1z3m", want: "9s1z3m"},
		{kind: KindPair, tiles: "50p", want: "r55p"},
	}

	for _, c := range cases {
		tiles, err := NewParser(c.tiles).Tiles()
		if err != nil {
			t.Fatal(err)
		}
		if got := NewBlock(c.kind, tiles...).String(); got != c.want {
			t.Fatalf("expect: %s, got: %s", c.want, got)
		}
	}
}

func TestBlockReplace(t *testing.T) {
	b := NewBlock(KindRun, MustParse("123m")[0].Tiles()...)
	r := b.Replace(1, b.Tile(1).With(OpRon))
	if got := r.String(); got != "1v23m" {
		t.Fatalf("expect: 1v23m, got: %s", got)
	}
	if b.String() != "123m" {
		t.Fatalf("replace must not modify the source: %s", b)
	}
	if !r.Is(KindRun) || !r.Contains(NewTile(SuitMan, 2)) || r.Contains(NewTile(SuitPin, 2)) {
		t.Fatalf("unexpected block %s(%s)", r, r.Kind())
	}
}

func TestBlockAnKan(t *testing.T) {
	b := MustParse("_55_p")[0]
	tiles := b.Tiles()
	if len(tiles) != 4 || !tiles[0].IsRedFive() {
		t.Fatalf("unexpected tiles: %v", tiles)
	}
	if got := b.String(); got != "_r55p_" {
		t.Fatalf("expect: _r55p_, got: %s", got)
	}
	if !b.Is(KindAnKan) || !b.Kind().IsQuad() || !b.IsCalled() {
		t.Fatalf("unexpected kind %v", b.Kind())
	}
}

func TestKindString(t *testing.T) {
	for k := KindUnknown; k <= KindDiscard; k++ {
		v, ok := kindOf(k.String())
		if !ok || v != k {
			t.Fatalf("expect: %v, got: %v", k, v)
		}
	}
	if Kind(100).String() != "unknown" {
		t.Fatalf("expect: unknown, got: %s", Kind(100))
	}
}
