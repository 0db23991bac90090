package core

import "testing"

func TestIntervalContainsSurrounds(t *testing.T) {
	i := NewInterval(1, 3)

	if !i.Contains(1) || !i.Contains(3) || !i.Contains(2) {
		t.Error("Contains should include endpoints and interior")
	}
	if i.Contains(0.999) || i.Contains(3.001) {
		t.Error("Contains should exclude points outside")
	}
	if i.Surrounds(1) || i.Surrounds(3) {
		t.Error("Surrounds should exclude endpoints")
	}
	if !i.Surrounds(2) {
		t.Error("Surrounds should include interior")
	}
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(0, 0.999)

	tests := []struct {
		x, want float64
	}{
		{-0.5, 0},
		{0.5, 0.5},
		{1.5, 0.999},
	}
	for _, tt := range tests {
		if got := i.Clamp(tt.x); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestIntervalSentinels(t *testing.T) {
	if EmptyInterval().Contains(0) {
		t.Error("empty interval should contain nothing")
	}
	if !UniverseInterval().Contains(1e300) || !UniverseInterval().Contains(-1e300) {
		t.Error("universe interval should contain everything")
	}
	if EmptyInterval().Size() >= 0 {
		t.Error("empty interval should have negative size")
	}
}
