package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add = %v, expected {2 6}", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub = %v, expected {4 2}", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v, expected {6 8}", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v, expected 5", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if !V(0, 0).IsZero() || a.IsZero() {
		t.Error("IsZero misclassified a vector")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", V(25, 40), true},
		{"on left edge", V(10, 30), true},
		{"on bottom-right corner", V(40, 60), true},
		{"left of rect", V(9, 30), false},
		{"below rect", V(25, 61), false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, expected %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectNearestPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"inside stays put", V(5, 5), V(5, 5)},
		{"left of rect", V(-3, 5), V(0, 5)},
		{"above rect", V(4, -2), V(4, 0)},
		{"past corner", V(15, 15), V(10, 10)},
	}

	for _, tt := range tests {
		if got := r.NearestPoint(tt.p); got != tt.want {
			t.Errorf("%s: NearestPoint(%v) = %v, expected %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5, 0, 10) = %v, expected 5", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1, 0, 10) = %v, expected 0", got)
	}
	if got := ClampF(11, 0, 10); got != 10 {
		t.Errorf("ClampF(11, 0, 10) = %v, expected 10", got)
	}
}
