package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Key: "speed", Type: ParamTypeInt, Min: 1, Max: 60, HasMin: true, HasMax: true}
	if got := c.Clamp(0); got != 1 {
		t.Fatalf("Clamp(0) = %d", got)
	}
	if got := c.Clamp(99); got != 60 {
		t.Fatalf("Clamp(99) = %d", got)
	}
	if got := c.Clamp(30); got != 30 {
		t.Fatalf("Clamp(30) = %d", got)
	}
	open := ParameterControl{Key: "free"}
	if got := open.Clamp(-5); got != -5 {
		t.Fatalf("unbounded control clamped to %d", got)
	}
}
