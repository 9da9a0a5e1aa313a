package f32

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Fatalf("got %v, want 5", d)
	}
	if d := Distance(Pt(1, 1), Pt(1, 1)); d != 0 {
		t.Fatalf("got %v, want 0", d)
	}
}

func TestExtend(t *testing.T) {
	tests := []struct {
		p, q Point
		dist float64
		want Point
	}{
		{Pt(0, 0), Pt(10, 0), 4, Pt(4, 0)},
		{Pt(0, 0), Pt(3, 4), 5, Pt(3, 4)},
		{Pt(0, 0), Pt(3, 4), 10, Pt(6, 8)},
		{Pt(5, 5), Pt(5, 0), 2, Pt(5, 3)},
		{Pt(2, 2), Pt(2, 2), 7, Pt(2, 2)},
		{Pt(0, 0), Pt(10, 0), -1, Pt(-1, 0)},
	}
	for _, tt := range tests {
		got := Extend(tt.p, tt.q, tt.dist)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
			t.Errorf("Extend(%v, %v, %v) mismatch (-want +got):\n%s", tt.p, tt.q, tt.dist, diff)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(Pt(1.4, 2.6)); got != image.Pt(1, 3) {
		t.Fatalf("got %v", got)
	}
	if got := FPt(image.Pt(3, -2)); got != Pt(3, -2) {
		t.Fatalf("got %v", got)
	}
}
