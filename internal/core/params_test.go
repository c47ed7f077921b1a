package core

import "testing"

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "32"}}},
		{Name: "B", Params: []Parameter{{Key: "seed", Value: "512"}}},
	}}
	p, ok := snap.Lookup("seed")
	if !ok || p.Value != "512" {
		t.Fatalf("Lookup(seed) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup reported a missing key as present")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 10, HasMin: true, HasMax: true}
	if got := c.Clamp(-4); got != 0 {
		t.Fatalf("Clamp(-4) = %d", got)
	}
	if got := c.Clamp(40); got != 10 {
		t.Fatalf("Clamp(40) = %d", got)
	}
	if got := (ParameterControl{}).Clamp(-4); got != -4 {
		t.Fatalf("unbounded Clamp(-4) = %d", got)
	}
}
