package constant

import "testing"

func TestParseWind(t *testing.T) {
	cases := []struct {
		code string
		wind Wind
		ok   bool
	}{
		{code: "1w", wind: WindEast, ok: true},
		{code: "4z", wind: WindNorth, ok: true},
		{code: "s", wind: WindSouth, ok: true},
		{code: "5w", ok: false},
		{code: "0w", ok: false},
		{code: "", ok: false},
	}

	for _, c := range cases {
		w, err := ParseWind(c.code)
		if (err == nil) != c.ok {
			t.Fatalf("expect ok: %v, got err: %v, code: %s", c.ok, err, c.code)
		}
		if w != c.wind {
			t.Fatalf("expect: %v, got: %v", c.wind, w)
		}
	}
}

func TestParseRound(t *testing.T) {
	r, err := ParseRound("2w3")
	if err != nil {
		t.Fatal(err)
	}
	if r.Wind != WindSouth || r.Number != 3 {
		t.Fatalf("expect: 南3, got: %v", r)
	}
	if r.Code() != "2w3" {
		t.Fatalf("expect: 2w3, got: %s", r.Code())
	}

	for _, code := range []string{"1w", "1w0", "9w1", "1wx"} {
		if _, err := ParseRound(code); err == nil {
			t.Fatalf("expect error for %s", code)
		}
	}
}

func TestWindNext(t *testing.T) {
	if WindNorth.Next() != WindEast || WindEast.Next() != WindSouth {
		t.Fail()
	}
}
