package palette

import (
	"strings"
	"testing"
)

func minimalPalette() string {
	var b strings.Builder
	for i := 0; i <= 6; i++ {
		b.WriteString(strings20(i))
	}
	b.WriteString("20 255 255 255\n")
	return b.String()
}

func strings20(i int) string {
	return "" +
		itoa(i) + " " + itoa(i*10) + " " + itoa(i*10) + " " + itoa(i*10) + "\n"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func TestParseMissingRequiredIndex(t *testing.T) {
	_, err := parse(strings.NewReader("0 0 0 0\n1 1 1 1\n"))
	if err == nil {
		t.Fatal("expected error for missing indices 2..6")
	}
}

func TestParseInterpolatesGaps(t *testing.T) {
	src := minimalPalette()
	tbl, err := parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.MaxIndex() != 20 {
		t.Fatalf("expected max index 20, got %d", tbl.MaxIndex())
	}
	mid := tbl.At(10)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("expected interpolated mid value, got %v", mid)
	}
}

func TestNamedSlotsDerivation(t *testing.T) {
	src := minimalPalette()
	tbl, err := parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.SeaBottom != 6 {
		t.Errorf("expected sea bottom 6, got %d", tbl.SeaBottom)
	}
	wantSeaLevel := (6 + 20) / 2
	if tbl.SeaLevel != wantSeaLevel {
		t.Errorf("expected sea level %d, got %d", wantSeaLevel, tbl.SeaLevel)
	}
	if tbl.LowestLand != wantSeaLevel+1 {
		t.Errorf("expected lowest land %d, got %d", wantSeaLevel+1, tbl.LowestLand)
	}
	if tbl.HighestLand != 20 {
		t.Errorf("expected highest land 20, got %d", tbl.HighestLand)
	}
}

func TestApplyBiomeBandOverwritesOffsets(t *testing.T) {
	src := minimalPalette()
	tbl, err := parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbl.ApplyBiomeBand()
	idx := tbl.LowestLand + ('B' - '@')
	if idx <= tbl.MaxIndex() {
		c := tbl.At(idx)
		if c != (Color{105, 155, 120}) {
			t.Errorf("expected biome band color written at index %d", idx)
		}
	}
}

func TestParseRejectsNonIncreasingIndex(t *testing.T) {
	_, err := parse(strings.NewReader("0 0 0 0\n1 1 1 1\n2 2 2 2\n3 3 3 3\n4 4 4 4\n5 5 5 5\n6 6 6 6\n5 1 1 1\n"))
	if err == nil {
		t.Fatal("expected error for non-increasing index")
	}
}

func TestParseRejectsTooFewTokens(t *testing.T) {
	_, err := parse(strings.NewReader("0 0 0\n"))
	if err == nil {
		t.Fatal("expected error for too few tokens")
	}
}
