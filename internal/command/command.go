// Package command holds the actions of the riichi command line.
package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lonng/riichi/pkg/calculator"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	out    io.Writer = color.Output
	logger           = log.WithField("component", "command")
)

// Commands lists every sub command of the application.
func Commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "shanten",
			Usage:     "print the shanten of a hand",
			ArgsUsage: "<hand>",
			Action:    shanten,
		},
		{
			Name:      "blocks",
			Usage:     "print every decomposition of a hand",
			ArgsUsage: "<hand>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "last, l", Usage: "winning `TILE`, flagged in every block holding it"},
			},
			Action: blocks,
		},
		{
			Name:      "score",
			Usage:     "score a winning hand",
			ArgsUsage: "<hand>",
			Flags:     scoreFlags,
			Action:    score,
		},
		{
			Name:      "efficiency",
			Usage:     "print the discards keeping the hand closest to ready",
			ArgsUsage: "<hand>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "visible", Usage: "`TILES` seen outside the hand, e.g. 1z5m"},
			},
			Action: efficiency,
		},
		{
			Name:  "batch",
			Usage: "score every case of a yaml file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file, f", Usage: "load cases from `FILE`"},
				cli.IntFlag{Name: "workers", Usage: "override batch.workers"},
			},
			Action: runBatch,
		},
	}
}

// handArg joins the arguments so "123m 456p" and "123m,-456p" both parse.
func handArg(c *cli.Context) (*mahjong.Hand, error) {
	if c.NArg() < 1 {
		return nil, errors.Wrap(errutil.ErrIllegalParameter, "missing hand")
	}
	return mahjong.NewHand(strings.Join(c.Args(), string(mahjong.Separator)))
}

// render prints v as json when --json is set, otherwise calls human.
func render(c *cli.Context, v interface{}, human func()) error {
	if c.GlobalBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human()
	return nil
}

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.FgHiBlack)
	green = color.New(color.FgHiGreen)
	red   = color.New(color.FgHiRed)
	white = color.New(color.FgHiWhite)
	amber = color.New(color.FgHiYellow)
)

func shantenLabel(v int) string {
	switch v {
	case -1:
		return "和了"
	case 0:
		return "聴牌"
	case calculator.Infinity:
		return "-"
	}
	return fmt.Sprintf("%d向聴", v)
}

func shantenColor(v int) *color.Color {
	switch {
	case v < 0:
		return red
	case v == 0:
		return green
	case v <= 2:
		return amber
	}
	return white
}
