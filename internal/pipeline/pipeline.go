// Package pipeline wires the projection, terrain, and coloring packages
// together into the render.Worker the orchestrator drives: one instance
// per slice, each owning its own terrain.State (path cache, rain shadow,
// shade) exclusively, touching only its own render.Slice.
package pipeline

import (
	"math"

	"landgen/internal/coloring"
	"landgen/internal/config"
	"landgen/internal/deltamap"
	"landgen/internal/geometry"
	"landgen/internal/palette"
	"landgen/internal/profiling"
	"landgen/internal/projection"
	"landgen/internal/render"
	"landgen/internal/terrain"
)

// Render runs a full render to a joined canvas: it derives the shared
// Engine and base tetrahedron once, then fans one slicePainter out per
// slice via render.Run.
func Render(opts *config.Options, table *palette.ColorTable, dm *deltamap.Map) *render.JoinedCanvas {
	base := terrain.NewBaseTetra(opts.Seed, opts.InitialAltitude)
	engine := terrain.NewEngine(opts, base, dm)

	sl := render.NewSlicing(opts.Height, opts.Width, opts.Threads)
	center := geometry.NewLatLong(
		opts.CenterLatitude*math.Pi/180,
		opts.CenterLongitude*math.Pi/180,
	)

	newWorker := func(sliceID int) render.Worker {
		params := projection.Params{
			Slicing: sl,
			SliceID: sliceID,
			Scale:   opts.Magnification,
			Center:  center,
		}
		proj := projection.New(projection.Letter(opts.Projection), params)
		return &slicePainter{
			proj:  proj,
			state: terrain.NewState(engine),
			opts:  opts,
			table: table,
		}
	}

	jc := render.Run(sl, wantsShading(opts), opts.WriteHeightfield, newWorker)
	func() { defer profiling.Track("render.Smooth")(); render.Smooth(jc) }()
	return jc
}

func wantsShading(opts *config.Options) bool {
	return opts.Shading != config.ShadingNone
}

// slicePainter is one worker's exclusive state: its own projection instance
// (itself holding only this slice's immutable params) and its own
// terrain.State (path cache, rain shadow, shade — spec §5's "per-worker
// exclusive" list).
type slicePainter struct {
	proj  projection.Projection
	state *terrain.State
	opts  *config.Options
	table *palette.ColorTable
}

func (w *slicePainter) RenderSlice(slice *render.Slice) {
	defer profiling.Track("pipeline.RenderSlice")()
	for row := 0; row < slice.Height; row++ {
		depth := w.proj.SubdivisionDepth(row)
		for col := 0; col < slice.Width; col++ {
			p, ok := w.proj.PixelToCoordinate(row, col)
			if !ok {
				slice.Set(row, col, int32(palette.IndexBackground), 0, 0)
				continue
			}

			alt := w.state.Altitude(p, depth)

			res := coloring.Pick(coloring.Input{
				Altitude:   alt,
				PointY:     p.Pos.Y(),
				RainShadow: w.state.RainShadow,
				Options:    w.opts,
				Table:      w.table,
			})

			shade := uint8(0)
			if wantsShading(w.opts) {
				shade = w.state.Shade
			}
			slice.Set(row, col, int32(res.Index), shade, res.HeightfieldValue)
		}
	}

	drawGridOverlay(slice, w.opts)
	drawOutlineMap(slice, w.opts)
}

// drawGridOverlay is an acknowledged extension point: the source material
// this is ported from leaves lat/long gridline overlay as a TODO, and
// spec.md's open questions say to leave a stub rather than invent the
// behavior. w.opts.LatGrid/LongGrid are accepted on the CLI and validated,
// but never drawn.
func drawGridOverlay(slice *render.Slice, opts *config.Options) {
	_ = slice
	_ = opts
}

// drawOutlineMap is the other acknowledged stub: -O/-E are accepted flags
// with no effect, per spec.md's open question (c).
func drawOutlineMap(slice *render.Slice, opts *config.Options) {
	_ = slice
	_ = opts
}
