package set

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	s := New("11m", "123p")
	if !s.Add("r555s") {
		t.Fatal("expect r555s to be added")
	}
	if s.Add("11m") {
		t.Fatal("expect 11m to be present")
	}
	s.Remove("123p")
	s.Remove("missing")

	want := []string{"11m", "r555s"}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expect: %v, got: %v", want, got)
	}
	if s.Len() != 2 || s.Contains("123p") || !s.Contains("11m") {
		t.Fatalf("unexpected set state: %v", s.Values())
	}
}
