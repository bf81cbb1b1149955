package util

import (
	"errors"
	"testing"
	"time"
)

func TestValidBandScore(t *testing.T) {
	valid := []float64{0, 0.5, 4, 6.5, 9}
	for _, s := range valid {
		if !ValidBandScore(s) {
			t.Fatalf("score %.1f should be valid", s)
		}
	}
	invalid := []float64{-0.5, 9.5, 6.25, 7.1}
	for _, s := range invalid {
		if ValidBandScore(s) {
			t.Fatalf("score %.2f should be invalid", s)
		}
	}
}

func TestRoundToHalfBand(t *testing.T) {
	cases := map[float64]float64{
		6.125: 6.0,
		6.25:  6.5,
		6.6:   6.5,
		6.75:  7.0,
		8.9:   9.0,
	}
	for in, want := range cases {
		if got := RoundToHalfBand(in); got != want {
			t.Fatalf("round %.3f: want=%.1f got=%.1f", in, want, got)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Passw0rd":    true,
		"password1":   false,
		"PASSWORD1":   false,
		"Password":    false,
		"Pa1":         false,
		"LongerPass9": true,
	}
	for pw, want := range cases {
		if got := StrongPassword(pw); got != want {
			t.Fatalf("password %q: want=%v got=%v", pw, want, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2026-11-23 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := time.Date(2026, 11, 23, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("date: want=%s got=%s", want, got)
	}

	for _, bad := range []string{"", "23/11/2026", "2026-13-01", "2026-11-23T10:00:00Z"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("parse %q: want ErrInvalidDate got %v", bad, err)
		}
	}
}
