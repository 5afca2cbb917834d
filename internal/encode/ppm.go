package encode

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM writes a binary P6 PPM: header, then RGB pixel bytes in
// row-reversed (bottom-to-top) order, then a trailing comment carrying the
// command line (spec §6).
func WritePPM(w io.Writer, p Params) error {
	bw := bufio.NewWriter(w)
	width, height := p.width(), p.height()

	if _, err := fmt.Fprintf(bw, "P6\n%d\n%d\n255\n", width, height); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}

	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			c := p.colorAt(row, col)
			if shade := p.shadeAt(row, col); shade > 0 {
				if _, err := bw.Write([]byte{
					shadeChannel(shade, c.R),
					shadeChannel(shade, c.G),
					shadeChannel(shade, c.B),
				}); err != nil {
					return fmt.Errorf("%w: %v", ErrWriterIO, err)
				}
			} else if _, err := bw.Write([]byte{c.R, c.G, c.B}); err != nil {
				return fmt.Errorf("%w: %v", ErrWriterIO, err)
			}
		}
	}

	if _, err := fmt.Fprintf(bw, "#fractal planet image\n#%s\n", p.CommandLine); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	return nil
}
