// Package coloring turns an altitude sample into a palette index (spec
// §4.5): temperature and rainfall derivation, the optional temperature/
// rainfall/non-linear-altitude overrides, heightfield capture, and the
// final biome/sea/land/icecap color selection.
package coloring

import (
	"math"

	"landgen/internal/biome"
	"landgen/internal/config"
	"landgen/internal/palette"
)

// Input bundles everything Pick needs for one pixel: the raw altitude
// sample from the terrain engine, the sphere point it was sampled at, the
// rain shadow proxy carried alongside it, and the shared options/table.
type Input struct {
	Altitude   float64
	PointY     float64 // p.y, the sphere point's latitude component
	RainShadow float64
	Options    *config.Options
	Table      *palette.ColorTable
}

// Result is what one pixel commits to the slice buffers.
type Result struct {
	Index           int
	HeightfieldValue int32
}

// Pick runs the full altitude-to-palette-index pipeline (spec §4.5).
func Pick(in Input) Result {
	a := in.Altitude
	opts := in.Options
	table := in.Table

	sun := math.Sqrt(1 - in.PointY*in.PointY)
	var temp float64
	if a < 0 {
		temp = sun/8 + 0.3*a
	} else {
		temp = sun/8 - 1.2*a
	}

	if opts.Temperature {
		a = temp - 0.05
	}

	y2 := math.Abs(in.PointY) - 0.5
	rain := temp*0.65 + 0.1 - 0.011/(y2*y2+0.1)
	rain += 0.03 * in.RainShadow
	if rain < 0 {
		rain = 0
	}

	if opts.Rainfall {
		a = rain - 0.02
	}

	if opts.NonLinearAltitude {
		a = a * a * a * 300.0
	}

	var hv int32
	if opts.WriteHeightfield {
		hv = int32(math.Floor(10_000_000.0 * a))
	}

	latY8 := math.Pow(in.PointY, 8)

	var idx int
	switch {
	case opts.Biomes:
		idx = biomeIndex(a, temp, rain, table)
	case a <= 0:
		idx = seaIndex(a, latY8, opts, table)
	default:
		idx = landIndex(a, latY8, opts, table)
	}

	return Result{Index: idx, HeightfieldValue: hv}
}

func biomeIndex(a, temp, rain float64, table *palette.ColorTable) int {
	if a <= 0 {
		return seaDepthIndex(a, table)
	}
	t := clampInt(int(math.Floor(rain*300-9)), 0, biome.Size-1)
	r := clampInt(int(math.Floor(temp*300+10)), 0, biome.Size-1)
	letter := biome.Table[t][r]
	return table.LowestLand + biome.Offset(letter)
}

func seaIndex(a, latY8 float64, opts *config.Options, table *palette.ColorTable) int {
	k := float64(opts.LatitudeColoring)
	if opts.LatitudeColoring != 0 && latY8+a >= 1-0.02*k*k {
		return table.HighestLand
	}
	return seaDepthIndex(a, table)
}

func seaDepthIndex(a float64, table *palette.ColorTable) int {
	depthLevel := math.Min(-10*a, 1)
	c := int(float64(table.SeaDepth) * depthLevel)
	return table.SeaLevel - c
}

func landIndex(a, latY8 float64, opts *config.Options, table *palette.ColorTable) int {
	if opts.LatitudeColoring != 0 {
		a += 0.1 * float64(opts.LatitudeColoring) * latY8
	}
	if a >= 0.1 {
		return table.HighestLand
	}
	altitude := math.Min(10*a, 1)
	return table.LowestLand + int(float64(table.LandHeight)*altitude)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
