package calculator

import (
	"testing"

	"github.com/lonng/riichi/pkg/constant"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eastBoard() BoardContext {
	return BoardContext{
		SeatWind:    constant.WindEast,
		Round:       constant.Round{Wind: constant.WindEast, Number: 1},
		DoraMarkers: []mahjong.Tile{mahjong.MustParseTile("8m")},
	}
}

type scored struct {
	Patterns []Pattern
	Fu       int
}

func patternsOf(t *testing.T, board BoardContext, hand, last string) []scored {
	h := mahjong.MustNewHand(hand)
	decs, err := NewBlockCalculator(h).Calc(mahjong.MustParseTile(last))
	require.NoError(t, err)
	results, err := NewScoreCalculator(board, h).CalcPatterns(decs)
	require.NoError(t, err)

	out := make([]scored, 0, len(results))
	for _, r := range results {
		out = append(out, scored{Patterns: r.Patterns, Fu: r.Fu})
	}
	return out
}

func TestCalcPatterns(t *testing.T) {
	cases := []struct {
		hand string
		last string
		want []scored
	}{
		{
			hand: "123123s111222m22z",
			last: "t1s",
			want: []scored{{Patterns: []Pattern{{"門前清自摸和", 1}, {"一盃口", 1}}, Fu: 34}},
		},
		{
			hand: "123123s123m123p22z",
			last: "1s",
			want: []scored{{Patterns: []Pattern{{"平和", 1}, {"一盃口", 1}, {"三色同順", 2}, {"混全帯么九", 2}}, Fu: 30}},
		},
		{
			hand: "111222333s123m99s",
			last: "t1s",
			want: []scored{
				{Patterns: []Pattern{{"門前清自摸和", 1}, {"平和", 1}, {"一盃口", 1}, {"純全帯么九色", 3}}, Fu: 20},
				{Patterns: []Pattern{{"門前清自摸和", 1}, {"三暗刻", 2}}, Fu: 38},
			},
		},
		{
			hand: "111333555s123m99s",
			last: "1s",
			want: []scored{{Patterns: nil, Fu: 42}},
		},
		{
			hand: "222333s234m88567s",
			last: "2s",
			want: []scored{{Patterns: []Pattern{{"断么九", 1}}, Fu: 36}},
		},
		{
			hand: "12344456789m123s",
			last: "3s",
			want: []scored{{Patterns: []Pattern{{"一気通貫", 2}, {"ドラ", 1}}, Fu: 32}},
		},
		{
			hand: "112233m223344s22z",
			last: "1m",
			want: []scored{
				{Patterns: []Pattern{{"七対子", 2}}, Fu: 25},
				{Patterns: []Pattern{{"平和", 1}, {"二盃口", 3}}, Fu: 30},
			},
		},
		{
			hand: "23456788m, -234s, 2-34p",
			last: "t3m",
			want: []scored{{Patterns: []Pattern{{"断么九", 1}, {"三色同順", 1}}, Fu: 24}},
		},
		{
			hand: "111333m11p,5-5-55s, -3333s",
			last: "t3m",
			want: []scored{{Patterns: []Pattern{{"対々和", 2}}, Fu: 50}},
		},
	}

	for _, c := range cases {
		got := patternsOf(t, eastBoard(), c.hand, c.last)
		assert.ElementsMatch(t, c.want, got, "%s + %s", c.hand, c.last)
	}
}

func TestScore(t *testing.T) {
	board := eastBoard()
	board.RonWind = constant.WindSouth
	board.DoraMarkers = []mahjong.Tile{mahjong.MustParseTile("9m")}

	// drawn tile makes it a self-draw, haneman paid by everyone
	v, err := Score(mahjong.MustNewHand("123m123s123p789p9m,t9m"), mahjong.MustParseTile("3m"), board)
	require.NoError(t, err)
	assert.Equal(t, 7, v.Sum)
	assert.Equal(t, 18000, v.Point)
}

func TestScoreYakuman(t *testing.T) {
	board := eastBoard()
	board.RonWind = constant.WindSouth

	v, err := Score(mahjong.MustNewHand("19m19s19p1234567z"), mahjong.MustParseTile("1m"), board)
	require.NoError(t, err)
	assert.Equal(t, []Pattern{{"国士無双", 13}}, v.Patterns)
	assert.Equal(t, 1, v.Yakuman)
	assert.Equal(t, 48000, v.Point)
	assert.Equal(t, map[constant.Wind]int{
		constant.WindEast:  48000,
		constant.WindSouth: -48000,
		constant.WindWest:  0,
		constant.WindNorth: 0,
	}, v.Deltas)
}

func TestScoreNoYaku(t *testing.T) {
	v, err := Score(mahjong.MustNewHand("-123s,-234s,-456m,-567m,1m"), mahjong.MustParseTile("t1m"), eastBoard())
	require.NoError(t, err)
	assert.Empty(t, v.Patterns)
	assert.Equal(t, 0, v.Point)
	assert.Nil(t, v.Deltas)
}

func TestScoreDeltas(t *testing.T) {
	board := eastBoard()
	board.SeatWind = constant.WindSouth
	board.Sticks = Sticks{Reach: 1, Dead: 1}

	v, err := Score(mahjong.MustNewHand("123123s111222m22z"), mahjong.MustParseTile("t1s"), board)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Sum)
	assert.Equal(t, 40, v.Fu)
	assert.Equal(t, 2700, v.Point)
	assert.Equal(t, map[constant.Wind]int{
		constant.WindEast:  -1400,
		constant.WindSouth: 4000,
		constant.WindWest:  -800,
		constant.WindNorth: -800,
	}, v.Deltas)
}

func TestScoreErrors(t *testing.T) {
	complete := NewBlockCalculator(mahjong.MustNewHand("123123s123m123p22z")).Decompose()
	flagged, err := NewBlockCalculator(mahjong.MustNewHand("123123s123m123p22z")).Calc(mahjong.MustParseTile("1s"))
	require.NoError(t, err)

	noSeat := eastBoard()
	noSeat.SeatWind = constant.WindNone
	selfRon := eastBoard()
	selfRon.RonWind = constant.WindEast

	cases := []struct {
		board BoardContext
		decs  []Decomposition
		err   error
	}{
		{board: noSeat, decs: flagged, err: errutil.ErrInconsistentScoringInput},
		{board: selfRon, decs: flagged, err: errutil.ErrInconsistentScoringInput},
		{board: eastBoard(), decs: NewBlockCalculator(mahjong.MustNewHand("123m456p789s1122z")).Decompose(), err: errutil.ErrInconsistentScoringInput},
		{board: eastBoard(), decs: complete, err: errutil.ErrInconsistentScoringInput},
		{board: eastBoard(), decs: nil, err: errutil.ErrNoDecomposition},
	}

	for _, c := range cases {
		_, err := NewScoreCalculator(c.board, nil).Calc(c.decs)
		require.Error(t, err)
		assert.Equal(t, c.err, errors.Cause(err))
	}
}

func TestRoundFu(t *testing.T) {
	cases := []struct {
		fu     int
		closed bool
		want   int
	}{
		{fu: 25, closed: true, want: 25},
		{fu: 20, closed: true, want: 20},
		{fu: 20, closed: false, want: 30},
		{fu: 22, closed: false, want: 30},
		{fu: 32, closed: true, want: 40},
		{fu: 110, closed: true, want: 110},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, roundFu(c.fu, c.closed), "fu %d", c.fu)
	}
}

func TestBasePoints(t *testing.T) {
	cases := []struct {
		han, fu, yakuman int
		want             int
	}{
		{han: 1, fu: 30, want: 240},
		{han: 3, fu: 60, want: 1920},
		{han: 4, fu: 40, want: 2000},
		{han: 5, fu: 30, want: 2000},
		{han: 7, fu: 30, want: 3000},
		{han: 10, fu: 30, want: 4000},
		{han: 12, fu: 30, want: 6000},
		{han: 13, fu: 30, want: 8000},
		{yakuman: 2, want: 16000},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, basePoints(c.han, c.fu, c.yakuman))
	}
}
