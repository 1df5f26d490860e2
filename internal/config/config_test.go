package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lonng/riichi/pkg/constant"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const sample = `
[core]
debug = false

[board]
seat = "2w"
round = "2w3"
dora = ["3m", "4z"]
ura = []
reach_sticks = 1
dead_sticks = 2

[batch]
workers = 8
`

func TestLoadBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	b, err := Board()
	if err != nil {
		t.Fatal(err)
	}
	if b.SeatWind != constant.WindSouth {
		t.Fatalf("expect: %v, got: %v", constant.WindSouth, b.SeatWind)
	}
	if b.Round != (constant.Round{Wind: constant.WindSouth, Number: 3}) {
		t.Fatalf("expect: 2w3, got: %s", b.Round.Code())
	}
	if len(b.DoraMarkers) != 2 || b.DoraMarkers[1].String() != "4z" {
		t.Fatalf("expect: [3m 4z], got: %v", b.DoraMarkers)
	}
	if b.Sticks.Reach != 1 || b.Sticks.Dead != 2 {
		t.Fatalf("unexpected sticks: %+v", b.Sticks)
	}
	if n := Workers(); n != 8 {
		t.Fatalf("expect: %d, got: %d", 8, n)
	}
}

func TestBoardErrors(t *testing.T) {
	cases := []struct {
		key   string
		value interface{}
		reset interface{}
		err   error
	}{
		{key: "board.seat", value: "5w", reset: "1w", err: errutil.ErrIllegalParameter},
		{key: "board.round", value: "1w9", reset: "1w1", err: errutil.ErrIllegalParameter},
		{key: "board.dora", value: []string{"1x"}, reset: []string{}, err: errutil.ErrMalformedNotation},
	}

	for _, c := range cases {
		viper.Set(c.key, c.value)
		_, err := Board()
		viper.Set(c.key, c.reset)
		if errors.Cause(err) != c.err {
			t.Fatalf("expect: %v, got: %v", c.err, err)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expect error for a missing explicit config")
	}
}

func TestSourceHook(t *testing.T) {
	h := newSourceHook(log.InfoLevel)
	if len(h.Levels()) != 5 {
		t.Fatalf("expect: %d levels, got: %d", 5, len(h.Levels()))
	}
	if s := shorten("/root/go/src/riichi/pkg/calculator/score.go"); s != "calculator/score.go" {
		t.Fatalf("expect: calculator/score.go, got: %s", s)
	}
}
