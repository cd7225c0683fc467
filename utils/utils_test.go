package utils

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Summer Smash":       "Summer_Smash",
		"  Summer   Smash  ": "Summer_Smash",
		"Monsoon":            "Monsoon",
	}
	for in, want := range cases {
		if got := SanitizeName(in); got != want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewTournamentID(t *testing.T) {
	id := NewTournamentID("Summer Smash")

	prefix, suffix, ok := strings.Cut(id, "-")
	if !ok {
		t.Fatalf("id %q has no suffix separator", id)
	}
	if prefix != "Summer_Smash" {
		t.Fatalf("unexpected prefix %q", prefix)
	}
	if len(suffix) != 8 {
		t.Fatalf("suffix %q is not 8 characters", suffix)
	}
	for _, r := range suffix {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Fatalf("suffix %q contains non-alphanumeric %q", suffix, r)
		}
	}

	if NewTournamentID("Summer Smash") == id {
		t.Fatal("two generated ids collided")
	}
}
