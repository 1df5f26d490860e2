// Package batch evaluates many scoring cases read from a YAML file.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lonng/riichi/pkg/calculator"
	"github.com/lonng/riichi/pkg/constant"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var logger = log.WithField("component", "batch")

// Case is one hand to score. Empty board fields fall back to the defaults
// the runner was created with.
type Case struct {
	ID     string   `yaml:"id"`
	Hand   string   `yaml:"hand"`
	Last   string   `yaml:"last"`
	Seat   string   `yaml:"seat"`
	Round  string   `yaml:"round"`
	Dora   []string `yaml:"dora"`
	Ura    []string `yaml:"ura"`
	Ron    string   `yaml:"ron"`
	Reach  bool     `yaml:"reach"`
	Drawn  bool     `yaml:"drawn"`
	Sticks *struct {
		Reach int `yaml:"reach"`
		Dead  int `yaml:"dead"`
	} `yaml:"sticks"`
}

type file struct {
	Cases []Case `yaml:"cases"`
}

// Result is the outcome of one case. Either Win or Error is set.
type Result struct {
	ID    string                `json:"id"`
	Hand  string                `json:"hand"`
	Win   *calculator.WinResult `json:"win,omitempty"`
	Error string                `json:"error,omitempty"`
	Code  int                   `json:"code,omitempty"`
}

// Decode reads cases and assigns an id to every case without one.
func Decode(r io.Reader) ([]Case, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode batch cases")
	}
	for i := range f.Cases {
		if f.Cases[i].ID == "" {
			f.Cases[i].ID = uuid.New()
		}
	}
	return f.Cases, nil
}

func ReadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

type Runner struct {
	board   calculator.BoardContext
	workers int
}

func NewRunner(board calculator.BoardContext, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{board: board, workers: workers}
}

// Run scores every case with at most workers goroutines. Results keep the
// order of cases. A failing case does not stop the others, only ctx does.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range cases {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.eval(cases[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// eval never panics, a panicking case is recorded as an unknown error.
func (r *Runner) eval(c Case) (res Result) {
	res = Result{ID: c.ID, Hand: c.Hand}
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("batch/eval: Case=%s, Error=%v", c.ID, err)
			res.Win, res.Error, res.Code = nil, fmt.Sprint(err), errutil.Unknown
		}
	}()

	win, err := r.score(c)
	if err != nil {
		logger.WithFields(log.Fields{"id": c.ID, "hand": c.Hand}).Debugf("Case failed: %v", err)
		res.Error = err.Error()
		res.Code = errutil.Code(err)
		return res
	}
	res.Win = win
	return res
}

func (r *Runner) score(c Case) (*calculator.WinResult, error) {
	h, err := mahjong.NewHand(c.Hand)
	if err != nil {
		return nil, err
	}
	last, err := mahjong.ParseTile(c.Last)
	if err != nil {
		return nil, err
	}
	if c.Drawn {
		last = last.With(mahjong.OpTsumo)
	}
	if c.Reach {
		if err := h.Reach(); err != nil {
			return nil, err
		}
	}

	board, err := r.boardOf(c)
	if err != nil {
		return nil, err
	}
	return calculator.Score(h, last, board)
}

func (r *Runner) boardOf(c Case) (calculator.BoardContext, error) {
	b := r.board
	var err error
	if c.Seat != "" {
		if b.SeatWind, err = constant.ParseWind(c.Seat); err != nil {
			return b, err
		}
	}
	if c.Round != "" {
		if b.Round, err = constant.ParseRound(c.Round); err != nil {
			return b, err
		}
	}
	b.RonWind = constant.WindNone
	if c.Ron != "" {
		if b.RonWind, err = constant.ParseWind(c.Ron); err != nil {
			return b, err
		}
	}
	if c.Dora != nil {
		if b.DoraMarkers, err = parseTiles(c.Dora); err != nil {
			return b, err
		}
	}
	if c.Ura != nil {
		if b.UraMarkers, err = parseTiles(c.Ura); err != nil {
			return b, err
		}
	}
	if c.Sticks != nil {
		b.Sticks = calculator.Sticks{Reach: c.Sticks.Reach, Dead: c.Sticks.Dead}
	}
	return b, nil
}

func parseTiles(codes []string) ([]mahjong.Tile, error) {
	out := make([]mahjong.Tile, 0, len(codes))
	for _, code := range codes {
		t, err := mahjong.ParseTile(code)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
