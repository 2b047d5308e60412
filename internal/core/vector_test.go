package core

import "testing"

func TestVecPlus(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected Vec
	}{
		{"zero", V(0, 0), V(0, 0), V(0, 0)},
		{"positive", V(1, 2), V(3, 4), V(4, 6)},
		{"negative", V(1, 2), V(-3, -0.5), V(-2, 1.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Plus(tc.b); got != tc.expected {
				t.Errorf("%v.Plus(%v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestVecPlusAssociative(t *testing.T) {
	// Integers and halves are exact in float64, so equality is safe here.
	a, b, c := V(1, -2), V(0.5, 3), V(-4, 0.25)

	left := a.Plus(b).Plus(c)
	right := a.Plus(b.Plus(c))
	if left != right {
		t.Errorf("(a+b)+c = %v, a+(b+c) = %v", left, right)
	}
}

func TestVecTimes(t *testing.T) {
	v := V(3, -1.5)

	if got := v.Times(1); got != v {
		t.Errorf("Times(1) = %v, expected %v", got, v)
	}
	if got := v.Times(0); got != (Vec{}) {
		t.Errorf("Times(0) = %v, expected zero vector", got)
	}
	if got := v.Times(-2); got != V(-6, 3) {
		t.Errorf("Times(-2) = %v, expected (-6, 3)", got)
	}
}

func TestVecImmutable(t *testing.T) {
	v := V(1, 1)
	_ = v.Plus(V(5, 5))
	_ = v.Times(10)

	if v != V(1, 1) {
		t.Errorf("operations modified receiver: %v", v)
	}
}
