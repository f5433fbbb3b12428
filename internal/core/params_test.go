package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 1, Max: 8, HasMin: true, HasMax: true}
	if got := ctrl.ClampInt(0); got != 1 {
		t.Fatalf("ClampInt(0)=%d, expected 1", got)
	}
	if got := ctrl.ClampInt(12); got != 8 {
		t.Fatalf("ClampInt(12)=%d, expected 8", got)
	}
	if got := ctrl.ClampFloat(3.5); got != 3.5 {
		t.Fatalf("ClampFloat(3.5)=%f, expected passthrough", got)
	}
	open := ParameterControl{}
	if got := open.ClampInt(-40); got != -40 {
		t.Fatalf("unbounded control should not clamp, got %d", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	if !ok || p.Value != "2" {
		t.Fatalf("expected to find y=2, got %+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("unexpected hit for missing key")
	}
}
