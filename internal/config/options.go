// Package config holds the RenderOptions aggregate parsed once from the CLI
// and shared read-only for the lifetime of a single render (spec §5). Unlike
// the teacher's config package, this is a plain struct, not a mutex-guarded
// global: a render never mutates its own options once workers are spawned.
package config

import "fmt"

// ShadingLevel selects the base-case shading formula (spec §4.4, §9
// glossary: "Shading level").
type ShadingLevel int

const (
	ShadingNone ShadingLevel = iota
	ShadingBump
	ShadingBumpLandOnly
	ShadingDaylight
)

// Options is the fully-parsed, validated set of render parameters. It is
// built once by cmd/landgen and never mutated afterward.
type Options struct {
	Seed          float64
	Width, Height int
	Magnification float64
	OutputBase    string

	CenterLongitude float64 // degrees
	CenterLatitude  float64 // degrees
	Projection      rune    // one of m,p,q,s,o,g,a,c,M,S,i

	LatGrid  float64 // -g: 0 disables
	LongGrid float64 // -G: 0 disables

	InitialAltitude float64

	LatitudeColoring int // -c repeat count; 0 disables (spec's "k")

	NonLinearAltitude bool // -n
	Temperature       bool // -t
	Rainfall          bool // -r
	Wrinkly           bool // -S
	Biomes            bool // -z

	PaletteFile string // -C

	OutlineMap    *int // -O [n]
	LandEdge      *int // -E [n]
	Shading       ShadingLevel
	LightLatitude float64 // -A
	LightLongitude float64 // -a

	WritePPM        bool // -P
	WriteXPM        bool // -x
	WritePNG        bool // --png
	WriteBitmap     bool // --bmp
	WriteHeightfield bool // -H

	DeltaMapFile      string  // -deltamap, read when -M is given
	DeltaMapThreshold float64 // -M [delta], squared-distance threshold

	DistanceWeight float64 // -V, w_dist
	AltitudeWeight float64 // -v, w_alt

	PreRotateLongitude float64 // -T long
	PreRotateLatitude  float64 // -T lat

	Threads int // --threads
}

// Default returns an Options populated with the spec's documented defaults;
// CLI flags override fields from here.
func Default() *Options {
	return &Options{
		Seed:            0.123,
		Width:           800,
		Height:          600,
		Magnification:   1.0,
		Projection:      'm',
		InitialAltitude: -0.02,
		LightLongitude:  150,
		LightLatitude:   20,
		DistanceWeight:  0.035,
		AltitudeWeight:  0.45,
		Threads:         1,
	}
}

// Validate checks invariants the spec requires before a render starts
// (thread-count clamp, positive dimensions, a known projection letter).
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Threads < 1 {
		o.Threads = 1
	}
	if o.Threads > o.Height {
		o.Threads = o.Height
	}
	if !knownProjection(o.Projection) {
		return fmt.Errorf("unknown projection letter %q", o.Projection)
	}
	if o.Magnification <= 0 {
		return fmt.Errorf("magnification must be positive, got %v", o.Magnification)
	}
	return nil
}

func knownProjection(p rune) bool {
	switch p {
	case 'm', 'p', 'q', 's', 'o', 'g', 'a', 'c', 'M', 'S', 'i':
		return true
	}
	return false
}

// WrinklyWeights returns (w_alt, p_alt) for the midpoint-displacement
// altitude term, switching to the "wrinkly" exponent set when requested
// (spec §4.4.2 step 3).
func (o *Options) WrinklyWeights() (wAlt, pAlt float64) {
	if o.Wrinkly {
		return 0.225, 0.75
	}
	return 0.45, 1.0
}

// AnyEncoderRequested reports whether at least one output encoder flag is
// set; cmd/landgen rejects a render with no output as a usage error.
func (o *Options) AnyEncoderRequested() bool {
	return o.WritePPM || o.WriteXPM || o.WritePNG || o.WriteBitmap || o.WriteHeightfield
}
