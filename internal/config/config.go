package config

import (
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/lonng/riichi/pkg/calculator"
	"github.com/lonng/riichi/pkg/constant"
	"github.com/lonng/riichi/pkg/mahjong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const DefaultPath = "./configs/config.toml"

func init() {
	viper.SetDefault("core.debug", false)
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.max_age", 7*24*time.Hour)
	viper.SetDefault("board.seat", "1w")
	viper.SetDefault("board.round", "1w1")
	viper.SetDefault("board.dora", []string{})
	viper.SetDefault("board.ura", []string{})
	viper.SetDefault("board.reach_sticks", 0)
	viper.SetDefault("board.dead_sticks", 0)
	viper.SetDefault("batch.workers", 4)
}

// Load reads the toml file at path. A missing default file is not an error,
// the defaults apply.
func Load(path string) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		if path == DefaultPath {
			log.Debugf("Config %s not loaded, using defaults: %v", path, err)
			return nil
		}
		return errors.Wrapf(err, "read config %s", path)
	}
	return nil
}

// SetupLogger applies core.debug and log.dir to the standard logger.
func SetupLogger() error {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(newSourceHook(log.DebugLevel))
	}

	dir := viper.GetString("log.dir")
	if dir == "" {
		return nil
	}
	writer, err := rotatelogs.New(
		filepath.Join(dir, "riichi-%Y%m%d.log"),
		rotatelogs.WithMaxAge(viper.GetDuration("log.max_age")),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return errors.Wrapf(err, "open log dir %s", dir)
	}
	log.SetOutput(writer)
	return nil
}

func Workers() int {
	if n := viper.GetInt("batch.workers"); n > 0 {
		return n
	}
	return 1
}

// Board builds the default table state from the board section.
func Board() (calculator.BoardContext, error) {
	var b calculator.BoardContext
	var err error

	if b.SeatWind, err = constant.ParseWind(viper.GetString("board.seat")); err != nil {
		return b, err
	}
	if b.Round, err = constant.ParseRound(viper.GetString("board.round")); err != nil {
		return b, err
	}
	if b.DoraMarkers, err = ParseTiles(viper.GetStringSlice("board.dora")); err != nil {
		return b, err
	}
	if b.UraMarkers, err = ParseTiles(viper.GetStringSlice("board.ura")); err != nil {
		return b, err
	}
	b.Sticks = calculator.Sticks{
		Reach: viper.GetInt("board.reach_sticks"),
		Dead:  viper.GetInt("board.dead_sticks"),
	}
	return b, b.Validate()
}

// ParseTiles parses a list of notations, each of them may hold several tiles.
func ParseTiles(codes []string) ([]mahjong.Tile, error) {
	var out []mahjong.Tile
	for _, code := range codes {
		tiles, err := mahjong.NewParser(code).Tiles()
		if err != nil {
			return nil, err
		}
		out = append(out, tiles...)
	}
	return out, nil
}
