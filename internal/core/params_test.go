package core

import "testing"

func TestScaledParamBounds(t *testing.T) {
	p := ScaledParam{Key: "rate", Value: 8, Min: 1, Max: 32, Factor: 2}
	if !p.Increase() || p.Value != 16 {
		t.Fatalf("Increase -> %d", p.Value)
	}
	if !p.Increase() || p.Value != 32 {
		t.Fatalf("Increase -> %d", p.Value)
	}
	if p.CanIncrease() || p.Increase() {
		t.Fatal("increased past max")
	}
	for p.Decrease() {
	}
	if p.Value != 1 {
		t.Fatalf("bottomed out at %d, want 1", p.Value)
	}
	if p.CanDecrease() {
		t.Fatal("CanDecrease at min")
	}
}

func TestScaledParamSaturates(t *testing.T) {
	p := ScaledParam{Value: 20, Min: 3, Max: 30, Factor: 2}
	p.Increase()
	if p.Value != 30 {
		t.Fatalf("Increase saturates at max, got %d", p.Value)
	}
	p.Set(4)
	p.Decrease()
	if p.Value != 3 {
		t.Fatalf("Decrease saturates at min, got %d", p.Value)
	}
	if p.Set(3) {
		t.Fatal("Set reported a change for the same value")
	}
}
