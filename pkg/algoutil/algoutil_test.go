package algoutil

import (
	"testing"
)

func TestNormalizeNotation(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: "123m 456p", out: "123m456p"},
		{in: "１２３ｍ，－１２３ｓ", out: "123m,-123s"},
		{in: "\t1z\n", out: "1z"},
		{in: "", out: ""},
	}

	for _, c := range cases {
		if got := NormalizeNotation(c.in); got != c.out {
			t.Fatalf("expect: %q, got: %q", c.out, got)
		}
	}
}

func TestCeilTo(t *testing.T) {
	cases := []struct {
		v, unit, want int
	}{
		{v: 32, unit: 10, want: 40},
		{v: 30, unit: 10, want: 30},
		{v: 7680, unit: 100, want: 7700},
		{v: 0, unit: 100, want: 0},
		{v: 25, unit: 0, want: 25},
	}

	for _, c := range cases {
		if got := CeilTo(c.v, c.unit); got != c.want {
			t.Fatalf("expect: %d, got: %d", c.want, got)
		}
	}
}
