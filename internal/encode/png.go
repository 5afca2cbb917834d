package encode

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG writes a truecolor 8-bit PNG via the standard library's encoder
// (spec §6: "written by an external encoder library").
func WritePNG(w io.Writer, p Params) error {
	width, height := p.width(), p.height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := p.colorAt(row, col)
			r, g, b := c.R, c.G, c.B
			if shade := p.shadeAt(row, col); shade > 0 {
				r = shadeChannel(shade, r)
				g = shadeChannel(shade, g)
				b = shadeChannel(shade, b)
			}
			img.Set(col, row, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	return nil
}
