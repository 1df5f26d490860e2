package constant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

// Wind is a seat or round wind. Its value equals the honor rank of the
// matching wind tile.
type Wind int

const (
	WindNone Wind = iota
	WindEast
	WindSouth
	WindWest
	WindNorth
)

var stringify = [...]string{
	WindNone:  "",
	WindEast:  "東",
	WindSouth: "南",
	WindWest:  "西",
	WindNorth: "北",
}

func (w Wind) String() string {
	if !w.Valid() {
		return stringify[WindNone]
	}
	return stringify[w]
}

func (w Wind) Valid() bool {
	return w >= WindEast && w <= WindNorth
}

// Code returns the notation code, e.g. "1w".
func (w Wind) Code() string {
	if !w.Valid() {
		return ""
	}
	return fmt.Sprintf("%dw", int(w))
}

// Next returns the wind of the seat to the right.
func (w Wind) Next() Wind {
	if !w.Valid() {
		return WindNone
	}
	return w%WindNorth + 1
}

// ParseWind accepts "1w".."4w", "1z".."4z" and the single letters E/S/W/N.
func ParseWind(code string) (Wind, error) {
	code = strings.TrimSpace(code)
	switch strings.ToUpper(code) {
	case "E":
		return WindEast, nil
	case "S":
		return WindSouth, nil
	case "W":
		return WindWest, nil
	case "N":
		return WindNorth, nil
	}
	if len(code) == 2 && (code[1] == 'w' || code[1] == 'z') {
		if w := Wind(code[0] - '0'); w.Valid() {
			return w, nil
		}
	}
	return WindNone, errors.Wrapf(errutil.ErrIllegalParameter, "unrecognized wind code %q", code)
}

// Round identifies a hand of the game, e.g. east 1 is "1w1".
type Round struct {
	Wind   Wind
	Number int
}

func (r Round) String() string {
	return fmt.Sprintf("%s%d局", r.Wind, r.Number)
}

func (r Round) Code() string {
	return fmt.Sprintf("%s%d", r.Wind.Code(), r.Number)
}

func ParseRound(code string) (Round, error) {
	code = strings.TrimSpace(code)
	if len(code) < 3 {
		return Round{}, errors.Wrapf(errutil.ErrIllegalParameter, "unrecognized round code %q", code)
	}
	w, err := ParseWind(code[:2])
	if err != nil {
		return Round{}, err
	}
	n, err := strconv.Atoi(code[2:])
	if err != nil || n < 1 || n > 4 {
		return Round{}, errors.Wrapf(errutil.ErrIllegalParameter, "unrecognized round number %q", code)
	}
	return Round{Wind: w, Number: n}, nil
}
