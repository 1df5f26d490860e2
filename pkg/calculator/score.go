package calculator

import (
	"github.com/lonng/riichi/pkg/constant"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Sticks are the deposits on the table.
type Sticks struct {
	Reach int `json:"reach"`
	Dead  int `json:"dead"`
}

// BoardContext is the table state a win is scored against.
type BoardContext struct {
	SeatWind    constant.Wind  `json:"seat"`
	Round       constant.Round `json:"round"`
	RonWind     constant.Wind  `json:"ron,omitempty"` // seat of the discarder
	DoraMarkers []mahjong.Tile `json:"dora,omitempty"`
	UraMarkers  []mahjong.Tile `json:"ura,omitempty"`
	DoubleReach bool           `json:"double_reach,omitempty"`
	Oneshot     bool           `json:"oneshot,omitempty"`
	Replacement bool           `json:"replacement,omitempty"` // win on a quad replacement tile
	QuadRob     bool           `json:"quad_rob,omitempty"`
	LastTile    bool           `json:"last_tile,omitempty"`
	Sticks      Sticks         `json:"sticks"`
}

func (b *BoardContext) Validate() error {
	if !b.SeatWind.Valid() {
		return errors.Wrapf(errutil.ErrInconsistentScoringInput, "invalid seat wind %d", b.SeatWind)
	}
	if !b.Round.Wind.Valid() {
		return errors.Wrapf(errutil.ErrInconsistentScoringInput, "invalid round wind %d", b.Round.Wind)
	}
	if b.RonWind != constant.WindNone && (!b.RonWind.Valid() || b.RonWind == b.SeatWind) {
		return errors.Wrapf(errutil.ErrInconsistentScoringInput, "invalid ron wind %d", b.RonWind)
	}
	return nil
}

type Pattern struct {
	Name string `json:"name"`
	Han  int    `json:"han"`
}

// PatternResult is one decomposition read as a win. Fu is not rounded.
type PatternResult struct {
	Blocks   []mahjong.Block `json:"blocks"`
	Patterns []Pattern       `json:"patterns"`
	Fu       int             `json:"fu"`
	Yakuman  int             `json:"yakuman,omitempty"`
	SelfDraw bool            `json:"self_draw"`
	Closed   bool            `json:"closed"`
}

// Sum adds up the han of every pattern.
func (r PatternResult) Sum() int {
	n := 0
	for _, p := range r.Patterns {
		n += p.Han
	}
	return n
}

// WinResult is the best interpretation of a win with its payment. Point
// is zero when no yaku matched.
type WinResult struct {
	Blocks   []mahjong.Block       `json:"blocks"`
	Patterns []Pattern             `json:"patterns"`
	Fu       int                   `json:"fu"`
	Sum      int                   `json:"sum"`
	Yakuman  int                   `json:"yakuman,omitempty"`
	Point    int                   `json:"point"`
	Deltas   map[constant.Wind]int `json:"deltas,omitempty"`
}

type ScoreCalculator struct {
	board BoardContext
	hand  *mahjong.Hand
}

// NewScoreCalculator binds a board. h may be nil, otherwise its reach flag
// and drawn tile are taken into account.
func NewScoreCalculator(board BoardContext, h *mahjong.Hand) *ScoreCalculator {
	return &ScoreCalculator{board: board, hand: h}
}

// CalcPatterns reads every decomposition as a win. Each one must be
// complete and hold a flagged winning tile.
func (c *ScoreCalculator) CalcPatterns(decs []Decomposition) ([]PatternResult, error) {
	if err := c.board.Validate(); err != nil {
		return nil, err
	}

	results := make([]PatternResult, 0, len(decs))
	for _, d := range decs {
		w, err := newWin(d, &c.board, c.hand)
		if err != nil {
			return nil, err
		}
		patterns, yakuman := w.patterns()
		results = append(results, PatternResult{
			Blocks:   d.Blocks,
			Patterns: patterns,
			Fu:       w.fu(),
			Yakuman:  yakuman,
			SelfDraw: w.selfDraw,
			Closed:   w.closed,
		})
	}
	return results, nil
}

// Calc returns the result with the highest point, then the highest han,
// then the first one.
func (c *ScoreCalculator) Calc(decs []Decomposition) (*WinResult, error) {
	if len(decs) == 0 {
		return nil, errors.Wrap(errutil.ErrNoDecomposition, "nothing to score")
	}
	results, err := c.CalcPatterns(decs)
	if err != nil {
		return nil, err
	}

	var best *WinResult
	for _, r := range results {
		v := c.resolve(r)
		if best == nil || v.Point > best.Point || v.Point == best.Point && v.Sum > best.Sum {
			best = v
		}
	}

	logger.WithFields(log.Fields{"sum": best.Sum, "fu": best.Fu, "point": best.Point}).Debug("scored")
	return best, nil
}

func (c *ScoreCalculator) resolve(r PatternResult) *WinResult {
	v := &WinResult{
		Blocks:   r.Blocks,
		Patterns: r.Patterns,
		Fu:       roundFu(r.Fu, r.Closed),
		Sum:      r.Sum(),
		Yakuman:  r.Yakuman,
	}
	if len(r.Patterns) == 0 {
		return v
	}
	base := basePoints(v.Sum, v.Fu, v.Yakuman)
	v.Point = point(&c.board, base, r.SelfDraw)
	v.Deltas = deltas(&c.board, base, r.SelfDraw)
	return v
}

// Score decomposes h completed by last and returns the best result.
func Score(h *mahjong.Hand, last mahjong.Tile, board BoardContext) (*WinResult, error) {
	decs, err := NewBlockCalculator(h).Calc(last)
	if err != nil {
		return nil, err
	}
	if len(decs) == 0 {
		return nil, errors.Wrapf(errutil.ErrNoDecomposition, "no block holds %s", last)
	}
	return NewScoreCalculator(board, h).Calc(decs)
}
