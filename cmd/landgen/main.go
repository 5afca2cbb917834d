// Command landgen renders seed-driven synthetic planetary terrain to a 2D
// raster image under a chosen map projection (spec §1). It wires CLI flag
// parsing, palette loading, and the render pipeline together; all of it is
// thin boundary code, per spec §1's stated non-goals.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"landgen/internal/config"
	"landgen/internal/deltamap"
	"landgen/internal/encode"
	"landgen/internal/palette"
	"landgen/internal/pipeline"
	"landgen/internal/profiling"
	"landgen/internal/render"
)

func main() {
	if unsafe.Sizeof(uintptr(0)) < 8 {
		fmt.Fprintln(os.Stderr, "landgen: this program requires a 64-bit processor architecture")
		os.Exit(1)
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "landgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	profiling.ResetRender()
	opts := config.Default()

	fs := flag.NewFlagSet("landgen", flag.ContinueOnError)

	fs.Float64Var(&opts.Seed, "s", opts.Seed, "terrain generation seed")
	fs.IntVar(&opts.Width, "w", opts.Width, "width in pixels")
	fs.IntVar(&opts.Height, "h", opts.Height, "height in pixels")
	fs.Float64Var(&opts.Magnification, "m", opts.Magnification, "magnification level")
	fs.StringVar(&opts.OutputBase, "o", "", "output file base path (stdout if omitted)")
	fs.Float64Var(&opts.CenterLongitude, "l", opts.CenterLongitude, "longitude of center, in degrees")
	fs.Float64Var(&opts.CenterLatitude, "L", opts.CenterLatitude, "latitude of center, in degrees")
	fs.Float64Var(&opts.LatGrid, "g", opts.LatGrid, "degrees between vertical gridlines")
	fs.Float64Var(&opts.LongGrid, "G", opts.LongGrid, "degrees between horizontal gridlines")
	fs.Float64Var(&opts.InitialAltitude, "i", opts.InitialAltitude, "initial land level altitude")

	fs.Var(repeatCount{&opts.LatitudeColoring}, "c", "latitude coloring intensity (repeat to increase)")
	fs.BoolVar(&opts.NonLinearAltitude, "n", false, "apply non-linear scaling to altitude")
	fs.BoolVar(&opts.Temperature, "t", false, "generate temperature map")
	fs.BoolVar(&opts.Rainfall, "r", false, "calculate rainfall")
	fs.BoolVar(&opts.Wrinkly, "S", false, "make more wrinkly maps")
	fs.StringVar(&opts.PaletteFile, "C", "", "read color definitions from this file")

	var outlineSet, landEdgeSet bool
	var outlineLines, landEdgeLines int
	fs.Var(optionalInt{&outlineSet, &outlineLines}, "O", "draw outline map, optional contour line count")
	fs.Var(optionalInt{&landEdgeSet, &landEdgeLines}, "E", "outline land edge, optional contour line count")

	var useBump, useLandOnlyBump, useDaylight bool
	fs.BoolVar(&useBump, "B", false, "bumpmap shading (land and water)")
	fs.BoolVar(&useLandOnlyBump, "b", false, "bumpmap shading (land only)")
	fs.BoolVar(&useDaylight, "d", false, "daylight shading")
	fs.Float64Var(&opts.LightLongitude, "a", opts.LightLongitude, "light longitude (bumpmap) or sun longitude (daylight)")
	fs.Float64Var(&opts.LightLatitude, "A", opts.LightLatitude, "sun latitude in daylight shading")

	fs.BoolVar(&opts.WritePPM, "P", false, "output as PPM")
	fs.BoolVar(&opts.WriteXPM, "x", false, "output as XPM")
	fs.BoolVar(&opts.WritePNG, "png", false, "output as PNG")
	fs.BoolVar(&opts.WriteBitmap, "bmp", false, "output as bitmap")
	fs.BoolVar(&opts.WriteHeightfield, "H", false, "output as raw heightfield")

	var deltaSet bool
	var deltaThreshold float64
	fs.Var(optionalFloat{&deltaSet, &deltaThreshold}, "M", "read delta map, optional edge-length threshold")
	fs.StringVar(&opts.DeltaMapFile, "deltamap", "", "delta map BMP file (used with -M)")

	fs.Float64Var(&opts.DistanceWeight, "V", opts.DistanceWeight, "distance contribution to variation")
	fs.Float64Var(&opts.AltitudeWeight, "v", opts.AltitudeWeight, "altitude contribution to variation")

	preRotateLong, preRotateLat := 0.0, 0.0
	fs.Var(rotation{&preRotateLong, &preRotateLat}, "T", "pre-rotation \"long,lat\" (parsed and stored; not applied to the render)")

	fs.BoolVar(&opts.Biomes, "z", false, "show biomes")

	var projLetter string
	fs.StringVar(&projLetter, "p", "m", "projection letter (m,p,q,s,o,g,a,c,M,S,i)")
	fs.IntVar(&opts.Threads, "threads", 1, "number of render threads")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts.Projection = []rune(projLetter)[0]
	opts.PreRotateLongitude = preRotateLong
	opts.PreRotateLatitude = preRotateLat

	switch {
	case useDaylight:
		opts.Shading = config.ShadingDaylight
	case useLandOnlyBump:
		opts.Shading = config.ShadingBumpLandOnly
	case useBump:
		opts.Shading = config.ShadingBump
	default:
		opts.Shading = config.ShadingNone
	}

	if outlineSet {
		opts.OutlineMap = &outlineLines
	}
	if landEdgeSet {
		opts.LandEdge = &landEdgeLines
	}
	if deltaSet {
		opts.DeltaMapThreshold = deltaThreshold
	}

	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.PaletteFile == "" {
		return fmt.Errorf("palette file required: pass -C")
	}
	if !opts.AnyEncoderRequested() {
		return fmt.Errorf("no output format requested: pass one of -P, -x, --png, --bmp, -H")
	}

	var table *palette.ColorTable
	var err error
	func() {
		defer profiling.Track("palette.Load")()
		table, err = palette.Load(opts.PaletteFile)
	}()
	if err != nil {
		return err
	}
	if opts.Biomes {
		table.ApplyBiomeBand()
	}

	var dm *deltamap.Map
	if deltaSet {
		if opts.DeltaMapFile == "" {
			return fmt.Errorf("-M requires -deltamap <file>")
		}
		func() {
			defer profiling.Track("deltamap.Load")()
			dm, err = deltamap.Load(opts.DeltaMapFile)
		}()
		if err != nil {
			return err
		}
	}

	var canvas *render.JoinedCanvas
	func() {
		defer profiling.Track("pipeline.Render")()
		canvas = pipeline.Render(opts, table, dm)
	}()

	commandLine := "landgen " + strings.Join(args, " ")
	params := encode.Params{Canvas: canvas, Table: table, Shading: opts.Shading, CommandLine: commandLine}

	var writeErr error
	func() {
		defer profiling.Track("writeOutputs")()
		writeErr = writeOutputs(opts, params)
	}()
	if writeErr != nil {
		return writeErr
	}

	fmt.Fprintln(os.Stderr, "landgen:", profiling.TopN(8))
	return nil
}

type namedEncoder struct {
	ext     string
	encode  func(*os.File, encode.Params) error
	enabled bool
}

func writeOutputs(opts *config.Options, params encode.Params) error {
	encoders := []namedEncoder{
		{"bmp", func(f *os.File, p encode.Params) error { return encode.WriteBitmap(f, p) }, opts.WriteBitmap},
		{"ppm", func(f *os.File, p encode.Params) error { return encode.WritePPM(f, p) }, opts.WritePPM},
		{"xpm", func(f *os.File, p encode.Params) error { return encode.WriteXPM(f, p) }, opts.WriteXPM},
		{"png", func(f *os.File, p encode.Params) error { return encode.WritePNG(f, p) }, opts.WritePNG},
		{"hf", func(f *os.File, p encode.Params) error { return encode.WriteHeightfield(f, p) }, opts.WriteHeightfield},
	}

	var requested []namedEncoder
	for _, e := range encoders {
		if e.enabled {
			requested = append(requested, e)
		}
	}

	if opts.OutputBase == "" {
		if len(requested) != 1 {
			return fmt.Errorf("writing to standard output requires exactly one output format; pass -o to write multiple files")
		}
		return requested[0].encode(os.Stdout, params)
	}

	for _, e := range requested {
		path := opts.OutputBase + "." + e.ext
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("%w: %v", encode.ErrWriterIO, err)
		}
		err = e.encode(f, params)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return fmt.Errorf("%w: %v", encode.ErrWriterIO, closeErr)
		}
	}
	return nil
}
