package hive

import "testing"

func TestColorOppositeIsInvolution(t *testing.T) {
	if White.Opposite().Opposite() != White {
		t.Error("Opposite should be its own inverse")
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite colors mismatched")
	}
}

func TestColorFromStringRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		got, err := ColorFromString(c.String())
		if err != nil {
			t.Fatalf("unexpected error parsing %v: %v", c, err)
		}
		if got != c {
			t.Errorf("got %v, want %v", got, c)
		}
	}
}

func TestColorFromStringRejectsGarbage(t *testing.T) {
	if _, err := ColorFromString("x"); err == nil {
		t.Error("expected error for invalid color string")
	}
}
