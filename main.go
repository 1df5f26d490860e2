package main

import (
	"os"

	"github.com/lonng/riichi/internal/command"
	"github.com/lonng/riichi/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "riichi"
	app.Author = "lonng"
	app.Version = "0.1.0"
	app.Usage = "riichi mahjong hand evaluator"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: config.DefaultPath,
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "print json documents",
		},
	}

	app.Before = setup
	app.Commands = command.Commands()
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	if err := config.Load(c.String("config")); err != nil {
		return err
	}
	return config.SetupLogger()
}
