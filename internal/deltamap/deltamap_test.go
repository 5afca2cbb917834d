package deltamap

import "testing"

func TestSampleIndexClamping(t *testing.T) {
	m := &Map{}
	m.values[0][0] = 40
	m.values[Width-1][Height-1] = 80

	// The pole point lands on the top latitude index; the lookup must stay
	// inside the grid rather than panic.
	got := m.Sample(0, 1, 0)
	if got < 0 || got > 1 {
		t.Errorf("expected sample in [0,1], got %v", got)
	}
}

func TestSampleDividesBy80(t *testing.T) {
	m := &Map{}
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			m.values[x][y] = 80
		}
	}
	got := m.Sample(0.1, 0.2, 0.3)
	if got != 1.0 {
		t.Errorf("expected normalized value 1.0, got %v", got)
	}
}

func TestClampIndexBounds(t *testing.T) {
	if clampIndex(-5, 10) != 0 {
		t.Errorf("expected clamp to 0")
	}
	if clampIndex(15, 10) != 9 {
		t.Errorf("expected clamp to size-1")
	}
}
