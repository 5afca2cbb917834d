package mathutil

import "testing"

func TestRandReferenceValue(t *testing.T) {
	got := Rand(1.0, 1.0)
	want := -0.6944206429319593
	if got != want {
		t.Errorf("Rand(1.0, 1.0) = %v, want %v", got, want)
	}
}

func TestRandDeterministic(t *testing.T) {
	a := Rand(238, 170)
	b := Rand(238, 170)
	if a != b {
		t.Errorf("Rand(238,170) not deterministic: %v != %v", a, b)
	}
}

func TestRandRange(t *testing.T) {
	for p := -5.0; p <= 5.0; p += 0.37 {
		for q := -5.0; q <= 5.0; q += 0.41 {
			v := Rand(p, q)
			if v <= -1 || v >= 1 {
				t.Errorf("Rand(%v,%v) = %v, out of (-1,1)", p, q, v)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Errorf("Clamp(5,0,10) should be 5")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Errorf("Clamp(-1,0,10) should be 0")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Errorf("Clamp(11,0,10) should be 10")
	}
}
