// Package encode implements the five output encoders spec §6 specifies by
// contract only: bitmap (BMP), PPM, XPM, PNG, and raw heightfield. Each is a
// thin boundary writer over a joined, post-smoothing render.JoinedCanvas.
package encode

import (
	"errors"

	"landgen/internal/config"
	"landgen/internal/palette"
	"landgen/internal/render"
)

// Error kinds, per spec §7.
var (
	ErrBitmapTooLarge = errors.New("encode: projected bitmap size exceeds 2^32 bytes")
	ErrWriterIO       = errors.New("encode: write failed")
)

// Params bundles everything every encoder needs: the joined canvas, the
// palette it indexes into, the shading level (zero disables shade
// modulation), and the command-line footer/comment every format embeds.
type Params struct {
	Canvas      *render.JoinedCanvas
	Table       *palette.ColorTable
	Shading     config.ShadingLevel
	CommandLine string
}

func (p Params) width() int  { return p.Canvas.Slicing.Width }
func (p Params) height() int { return p.Canvas.Slicing.Height }

func (p Params) colorAt(row, col int) palette.Color {
	return p.Table.At(int(p.Canvas.ColorAt(row, col)))
}

func (p Params) shadeAt(row, col int) uint8 {
	if p.Shading == config.ShadingNone {
		return 0
	}
	return p.Canvas.ShadeAt(row, col)
}

// shadeChannel applies the PPM/bitmap shading modulation: shade*channel/150,
// clamped to 255 (spec §6's PPM contract, reused identically for bitmap's
// color mode since both are unshaded-or-modulated 24-bit RGB/BGR streams).
func shadeChannel(shade uint8, channel uint8) uint8 {
	v := (uint32(shade) * uint32(channel)) / 150
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
