package command

import (
	"context"
	"fmt"

	"github.com/lonng/riichi/internal/batch"
	"github.com/lonng/riichi/internal/config"
	"github.com/lonng/riichi/pkg/calculator"
	"github.com/lonng/riichi/pkg/constant"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type shantenResult struct {
	Hand       string `json:"hand"`
	Shanten    int    `json:"shanten"`
	SevenPairs int    `json:"seven_pairs"`
	Orphans    int    `json:"thirteen_orphans"`
	Standard   int    `json:"standard"`
}

func shanten(c *cli.Context) error {
	h, err := handArg(c)
	if err != nil {
		return err
	}
	sc := calculator.NewShantenCalculator(h)
	v := shantenResult{
		Hand:       h.String(),
		Shanten:    sc.Calc(),
		SevenPairs: sc.SevenPairs(),
		Orphans:    sc.ThirteenOrphans(),
		Standard:   sc.Standard(),
	}
	return render(c, v, func() {
		bold.Fprintf(out, "%s ", v.Hand)
		shantenColor(v.Shanten).Fprintln(out, shantenLabel(v.Shanten))
		for _, f := range []struct {
			name string
			v    int
		}{{"七対子", v.SevenPairs}, {"国士無双", v.Orphans}, {"一般形", v.Standard}} {
			faint.Fprintf(out, "  %-6s ", f.name)
			shantenColor(f.v).Fprintln(out, shantenLabel(f.v))
		}
	})
}

func blocks(c *cli.Context) error {
	h, err := handArg(c)
	if err != nil {
		return err
	}
	bc := calculator.NewBlockCalculator(h)

	var decs []calculator.Decomposition
	if last := c.String("last"); last != "" {
		t, err := mahjong.ParseTile(last)
		if err != nil {
			return err
		}
		if decs, err = bc.Calc(t); err != nil {
			return err
		}
	} else {
		decs = bc.Decompose()
	}

	return render(c, decs, func() {
		for _, d := range decs {
			shantenColor(d.Shanten).Fprintf(out, "%-8s", shantenLabel(d.Shanten))
			fmt.Fprintln(out, d)
		}
	})
}

var scoreFlags = []cli.Flag{
	cli.StringFlag{Name: "last, l", Usage: "winning `TILE`, prefix with t for a self-draw"},
	cli.BoolFlag{Name: "drawn", Usage: "the winning tile was self-drawn"},
	cli.StringSliceFlag{Name: "dora", Usage: "dora indicator `TILE`"},
	cli.StringSliceFlag{Name: "ura", Usage: "ura dora indicator `TILE`"},
	cli.StringFlag{Name: "seat", Usage: "seat wind, e.g. 1w"},
	cli.StringFlag{Name: "round", Usage: "round, e.g. 1w1"},
	cli.StringFlag{Name: "ron", Usage: "seat wind of the discarder"},
	cli.BoolFlag{Name: "reach"},
	cli.BoolFlag{Name: "double-reach"},
	cli.BoolFlag{Name: "oneshot"},
	cli.BoolFlag{Name: "replacement", Usage: "won on a quad replacement tile"},
	cli.BoolFlag{Name: "quad-rob", Usage: "won on a tile added to a quad"},
	cli.BoolFlag{Name: "last-tile", Usage: "won on the last tile of the wall"},
	cli.IntFlag{Name: "reach-sticks", Value: -1},
	cli.IntFlag{Name: "dead-sticks", Value: -1},
}

// boardOf starts from the configured board and applies the flags.
func boardOf(c *cli.Context) (calculator.BoardContext, error) {
	b, err := config.Board()
	if err != nil {
		return b, err
	}
	if s := c.String("seat"); s != "" {
		if b.SeatWind, err = constant.ParseWind(s); err != nil {
			return b, err
		}
	}
	if s := c.String("round"); s != "" {
		if b.Round, err = constant.ParseRound(s); err != nil {
			return b, err
		}
	}
	if s := c.String("ron"); s != "" {
		if b.RonWind, err = constant.ParseWind(s); err != nil {
			return b, err
		}
	}
	if v := c.StringSlice("dora"); len(v) > 0 {
		if b.DoraMarkers, err = config.ParseTiles(v); err != nil {
			return b, err
		}
	}
	if v := c.StringSlice("ura"); len(v) > 0 {
		if b.UraMarkers, err = config.ParseTiles(v); err != nil {
			return b, err
		}
	}
	if n := c.Int("reach-sticks"); n >= 0 {
		b.Sticks.Reach = n
	}
	if n := c.Int("dead-sticks"); n >= 0 {
		b.Sticks.Dead = n
	}
	b.DoubleReach = c.Bool("double-reach")
	b.Oneshot = c.Bool("oneshot")
	b.Replacement = c.Bool("replacement")
	b.QuadRob = c.Bool("quad-rob")
	b.LastTile = c.Bool("last-tile")
	return b, b.Validate()
}

func score(c *cli.Context) error {
	h, err := handArg(c)
	if err != nil {
		return err
	}
	if c.String("last") == "" {
		return errors.Wrap(errutil.ErrIllegalParameter, "missing winning tile, use --last")
	}
	last, err := mahjong.ParseTile(c.String("last"))
	if err != nil {
		return err
	}
	if c.Bool("drawn") {
		last = last.With(mahjong.OpTsumo)
	}
	if c.Bool("reach") {
		if err := h.Reach(); err != nil {
			return err
		}
	}

	board, err := boardOf(c)
	if err != nil {
		return err
	}
	v, err := calculator.Score(h, last, board)
	if err != nil {
		return err
	}
	return render(c, v, func() { printWin(v) })
}

func printWin(v *calculator.WinResult) {
	bold.Fprintln(out, calculator.Decomposition{Blocks: v.Blocks})
	if len(v.Patterns) == 0 {
		red.Fprintln(out, "役なし")
		return
	}
	for _, p := range v.Patterns {
		amber.Fprintf(out, "  %-12s", p.Name)
		if v.Yakuman > 0 {
			fmt.Fprintln(out, "役満")
			continue
		}
		fmt.Fprintf(out, "%d飜\n", p.Han)
	}
	if v.Yakuman == 0 {
		white.Fprintf(out, "%d符 %d飜 ", v.Fu, v.Sum)
	}
	green.Fprintf(out, "%d点\n", v.Point)
	for _, w := range []constant.Wind{constant.WindEast, constant.WindSouth, constant.WindWest, constant.WindNorth} {
		if d, ok := v.Deltas[w]; ok {
			faint.Fprintf(out, "  %s %+d\n", w, d)
		}
	}
}

func efficiency(c *cli.Context) error {
	h, err := handArg(c)
	if err != nil {
		return err
	}

	if h.Len()%3 == 1 {
		v, tiles := calculator.CandidateTiles(h)
		res := struct {
			Shanten    int            `json:"shanten"`
			Candidates []mahjong.Tile `json:"candidates"`
		}{v, tiles}
		return render(c, res, func() {
			shantenColor(v).Fprintf(out, "%-8s", shantenLabel(v))
			fmt.Fprintln(out, mahjong.Tiles(tiles))
		})
	}

	var visible mahjong.Tiles
	if s := c.String("visible"); s != "" {
		if visible, err = mahjong.NewParser(s).Tiles(); err != nil {
			return err
		}
	}
	cands, err := calculator.CalcCandidates(h, h.Tiles())
	if err != nil {
		return err
	}
	res := calculator.Remaining(h, visible, cands)
	return render(c, res, func() {
		for _, pc := range res {
			bold.Fprintf(out, "打%s ", pc.Tile)
			shantenColor(pc.Shanten).Fprintf(out, "%-8s", shantenLabel(pc.Shanten))
			for _, r := range pc.Candidates {
				fmt.Fprintf(out, "%s(%d) ", r.Tile, r.N)
			}
			green.Fprintf(out, "%d枚\n", pc.Sum)
		}
	})
}

func runBatch(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		return errors.Wrap(errutil.ErrIllegalParameter, "missing case file, use --file")
	}
	cases, err := batch.ReadFile(path)
	if err != nil {
		return err
	}
	board, err := config.Board()
	if err != nil {
		return err
	}

	workers := config.Workers()
	if n := c.Int("workers"); n > 0 {
		workers = n
	}
	logger.WithFields(log.Fields{"file": path, "cases": len(cases), "workers": workers}).Debug("Batch started")

	results, err := batch.NewRunner(board, workers).Run(context.Background(), cases)
	if err != nil {
		return err
	}
	return render(c, results, func() {
		for _, r := range results {
			bold.Fprintf(out, "%-36s ", r.ID)
			if r.Win == nil {
				red.Fprintf(out, "error(%d) %s\n", r.Code, r.Error)
				continue
			}
			green.Fprintf(out, "%d点", r.Win.Point)
			faint.Fprintf(out, " %s\n", r.Hand)
		}
	})
}
