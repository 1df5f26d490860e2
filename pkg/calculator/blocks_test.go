package calculator

import (
	"sort"
	"strings"
	"testing"

	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/stretchr/testify/require"
)

func keys(ds []Decomposition) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.key())
	}
	return out
}

func keyOf(blocks ...string) string {
	sort.Strings(blocks)
	return strings.Join(blocks, string(mahjong.Separator))
}

func TestBlockFamilies(t *testing.T) {
	sevenPairs := NewBlockCalculator(mahjong.MustNewHand("11223344556677m")).SevenPairs()
	require.Len(t, sevenPairs, 1)
	require.Equal(t, -1, sevenPairs[0].Shanten)
	require.Equal(t, keyOf("11m", "22m", "33m", "44m", "55m", "66m", "77m"), sevenPairs[0].key())

	orphans := NewBlockCalculator(mahjong.MustNewHand("19m19s19p1234567z1m")).ThirteenOrphans()
	require.Len(t, orphans, 1)
	require.Equal(t, -1, orphans[0].Shanten)
	require.Equal(t, keyOf("11m", "9m", "1p", "9p", "1s", "9s", "1z", "2z", "3z", "4z", "5z", "6z", "7z"), orphans[0].key())

	gates := NewBlockCalculator(mahjong.MustNewHand("11123456789990m"))
	for _, ds := range [][]Decomposition{gates.NineGates(), gates.Decompose()} {
		require.Len(t, ds, 1)
		require.Equal(t, -1, ds[0].Shanten)
		require.Equal(t, "111234r55678999m", ds[0].String())
	}

	require.Empty(t, NewBlockCalculator(mahjong.MustNewHand("111m456m789m11p,-213s")).SevenPairs())
	require.Empty(t, NewBlockCalculator(mahjong.MustNewHand("111m456m789m11p,-213s")).NineGates())
}

func TestBlockStandard(t *testing.T) {
	cases := []struct {
		hand string
		want [][]string
	}{
		{
			hand: "111m456m789m123s11p",
			want: [][]string{{"11p", "111m", "456m", "789m", "123s"}},
		},
		{
			hand: "111m456m789m11p,-213s",
			want: [][]string{{"11p", "111m", "456m", "789m", "-213s"}},
		},
		{
			hand: "111222333m123s11p",
			want: [][]string{
				{"11p", "123m", "123m", "123m", "123s"},
				{"11p", "111m", "222m", "333m", "123s"},
			},
		},
		{
			hand: "11223344556677m",
			want: [][]string{
				{"11m", "234m", "234m", "567m", "567m"},
				{"44m", "123m", "123m", "567m", "567m"},
				{"77m", "123m", "123m", "456m", "456m"},
			},
		},
		{
			hand: "111123m123s123p11z",
			want: [][]string{{"11z", "123m", "111m", "123p", "123s"}},
		},
		{
			hand: "123m123pr555s111z22m",
			want: [][]string{{"22m", "123m", "123p", "r555s", "111z"}},
		},
	}

	for _, c := range cases {
		ds := NewBlockCalculator(mahjong.MustNewHand(c.hand)).Standard()
		want := make([]string, 0, len(c.want))
		for _, blocks := range c.want {
			want = append(want, keyOf(blocks...))
		}
		require.ElementsMatch(t, want, keys(ds), c.hand)
		for _, d := range ds {
			require.Equal(t, -1, d.Shanten, c.hand)
		}
	}
}

func TestBlockRedFive(t *testing.T) {
	ds := NewBlockCalculator(mahjong.MustNewHand("11s33sr55s66s88s11z22z")).SevenPairs()
	require.Len(t, ds, 1)
	require.Equal(t, keyOf("11s", "33s", "r55s", "66s", "88s", "11z", "22z"), ds[0].key())
}

func TestBlockIncomplete(t *testing.T) {
	ds := NewBlockCalculator(mahjong.MustNewHand("111m456m789m12s1p1z")).Decompose()
	require.NotEmpty(t, ds)
	for _, d := range ds {
		require.Equal(t, 1, d.Shanten)
		last := d.Blocks[len(d.Blocks)-1]
		require.True(t, last.Is(mahjong.KindHand), d.String())
	}
}

func TestBlockCalcWinningTile(t *testing.T) {
	h := mahjong.MustNewHand("1223m123s111z, -123m")
	ds, err := NewBlockCalculator(h).Calc(mahjong.MustParseTile("t2m"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		keyOf("t22m", "123m", "123s", "111z", "-123m"),
		keyOf("22m", "1t23m", "123s", "111z", "-123m"),
	}, keys(ds))

	// the hand itself is left untouched
	require.Equal(t, 13, h.Len())
}

func TestBlockShantenConsistency(t *testing.T) {
	hands := []string{
		"1122334455667m",
		"19m19s19p1234567z",
		"111m456m789m12s1p1z",
		"123m456p789s1122z",
		"123m456p789s11122z",
		"111m456m789m11p,-213s",
		"147m258p369s1234z",
		"2468m2468p2468s1z",
		"11123456789990m",
	}

	for _, input := range hands {
		h := mahjong.MustNewHand(input)
		ds := NewBlockCalculator(h).Decompose()
		require.NotEmpty(t, ds, input)
		want := NewShantenCalculator(h).Calc()
		for _, d := range ds {
			require.Equal(t, want, d.Shanten, input)
		}
	}
}

func BenchmarkDecompose(b *testing.B) {
	h := mahjong.MustNewHand("11223344556677m")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewBlockCalculator(h).Decompose()
	}
}
