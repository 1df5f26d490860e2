package calculator

import (
	"github.com/lonng/riichi/pkg/algoutil"
	"github.com/lonng/riichi/pkg/constant"
)

const (
	reachStick = 1000
	deadStick  = 300
)

// roundFu rounds raw fu up to ten. Seven pairs keep 25 and an open hand
// never scores less than 30.
func roundFu(fu int, closed bool) int {
	if fu == 25 {
		return fu
	}
	fu = algoutil.CeilTo(fu, 10)
	if !closed && fu == 20 {
		return 30
	}
	return fu
}

// basePoints is fu * 2^(han+2) capped by the limit hands.
func basePoints(han, fu, yakuman int) int {
	switch {
	case yakuman > 0:
		return 8000 * yakuman
	case han >= 13:
		return 8000
	case han >= 11:
		return 6000
	case han >= 8:
		return 4000
	case han >= 6:
		return 3000
	case han >= 5:
		return 2000
	}
	if base := fu << uint(han+2); base < 2000 {
		return base
	}
	return 2000
}

// payments returns what each other seat pays the winner. On a claim only
// the discarder pays, and nobody when the discarder is unknown.
func payments(board *BoardContext, base int, selfDraw bool) map[constant.Wind]int {
	dealer := board.SeatWind == constant.WindEast
	out := map[constant.Wind]int{}
	if !selfDraw {
		mul := 4
		if dealer {
			mul = 6
		}
		if board.RonWind.Valid() {
			out[board.RonWind] = algoutil.CeilTo(base*mul, 100)
		}
		return out
	}

	for w := board.SeatWind.Next(); w != board.SeatWind; w = w.Next() {
		if dealer || w == constant.WindEast {
			out[w] = algoutil.CeilTo(base*2, 100)
		} else {
			out[w] = algoutil.CeilTo(base, 100)
		}
	}
	return out
}

// point sums payments without sticks. A claim to an unknown discarder is
// valued as if somebody paid.
func point(board *BoardContext, base int, selfDraw bool) int {
	if !selfDraw {
		mul := 4
		if board.SeatWind == constant.WindEast {
			mul = 6
		}
		return algoutil.CeilTo(base*mul, 100)
	}
	sum := 0
	for _, v := range payments(board, base, true) {
		sum += v
	}
	return sum
}

// deltas settles the hand per seat, sticks included. Reach sticks come
// from the table.
func deltas(board *BoardContext, base int, selfDraw bool) map[constant.Wind]int {
	pay := payments(board, base, selfDraw)
	if len(pay) == 0 {
		return nil
	}

	out := map[constant.Wind]int{
		constant.WindEast:  0,
		constant.WindSouth: 0,
		constant.WindWest:  0,
		constant.WindNorth: 0,
	}
	dead := board.Sticks.Dead * deadStick
	for w, v := range pay {
		if selfDraw {
			v += dead / 3
		} else {
			v += dead
		}
		out[w] -= v
		out[board.SeatWind] += v
	}
	out[board.SeatWind] += board.Sticks.Reach * reachStick
	return out
}
