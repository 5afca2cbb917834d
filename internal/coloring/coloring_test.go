package coloring

import (
	"testing"

	"landgen/internal/config"
	"landgen/internal/palette"
)

func testTable() *palette.ColorTable {
	colors := make([]palette.Color, 50)
	for i := range colors {
		colors[i] = palette.Color{R: uint8(i), G: uint8(i), B: uint8(i)}
	}
	return &palette.ColorTable{
		Colors:      colors,
		SeaBottom:   6,
		SeaLevel:    28,
		LowestLand:  29,
		HighestLand: 49,
		SeaDepth:    22,
		LandHeight:  20,
	}
}

func TestDeepSeaPicksSeaBottomNeighborhood(t *testing.T) {
	table := testTable()
	opts := config.Default()
	res := Pick(Input{Altitude: -1, PointY: 0, RainShadow: 0, Options: opts, Table: table})
	if res.Index != table.SeaLevel-table.SeaDepth {
		t.Errorf("expected deepest sea index %d, got %d", table.SeaLevel-table.SeaDepth, res.Index)
	}
}

func TestHighLandPicksHighestLand(t *testing.T) {
	table := testTable()
	opts := config.Default()
	res := Pick(Input{Altitude: 1, PointY: 0, RainShadow: 0, Options: opts, Table: table})
	if res.Index != table.HighestLand {
		t.Errorf("expected highest land %d, got %d", table.HighestLand, res.Index)
	}
}

func TestLowLandInterpolatesAboveLowestLand(t *testing.T) {
	table := testTable()
	opts := config.Default()
	res := Pick(Input{Altitude: 0.01, PointY: 0, RainShadow: 0, Options: opts, Table: table})
	if res.Index < table.LowestLand || res.Index > table.HighestLand {
		t.Errorf("expected land index in range, got %d", res.Index)
	}
}

func TestLatitudeColoringProducesIcecapNearPole(t *testing.T) {
	table := testTable()
	opts := config.Default()
	opts.LatitudeColoring = 3
	res := Pick(Input{Altitude: -0.01, PointY: 0.999, RainShadow: 0, Options: opts, Table: table})
	if res.Index != table.HighestLand {
		t.Errorf("expected icecap override to highest_land, got %d", res.Index)
	}
}

func TestHeightfieldValueOnlyWhenRequested(t *testing.T) {
	table := testTable()
	opts := config.Default()
	res := Pick(Input{Altitude: 0.5, PointY: 0, RainShadow: 0, Options: opts, Table: table})
	if res.HeightfieldValue != 0 {
		t.Errorf("expected zero heightfield value when not requested, got %d", res.HeightfieldValue)
	}

	opts.WriteHeightfield = true
	res = Pick(Input{Altitude: 0.5, PointY: 0, RainShadow: 0, Options: opts, Table: table})
	if res.HeightfieldValue == 0 {
		t.Errorf("expected non-zero heightfield value when requested")
	}
}

func TestBiomeModeSelectsFromOffsetBand(t *testing.T) {
	table := testTable()
	opts := config.Default()
	opts.Biomes = true
	res := Pick(Input{Altitude: 0.2, PointY: 0.1, RainShadow: 0, Options: opts, Table: table})
	if res.Index < 0 || res.Index > table.MaxIndex() {
		t.Errorf("expected biome index within palette range, got %d", res.Index)
	}
}

func TestTemperatureOverrideChangesAltitudeBeforeSelection(t *testing.T) {
	table := testTable()
	opts := config.Default()
	opts.Temperature = true
	res := Pick(Input{Altitude: 0.05, PointY: 0, RainShadow: 0, Options: opts, Table: table})
	if res.Index < 0 || res.Index > table.MaxIndex() {
		t.Errorf("expected in-range index, got %d", res.Index)
	}
}
