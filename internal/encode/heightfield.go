package encode

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteHeightfield writes the raw heightfield samples as 32-bit big-endian
// signed integers, one per pixel, row-major, with no header (spec §6).
func WriteHeightfield(w io.Writer, p Params) error {
	width, height := p.width(), p.height()
	buf := make([]byte, 4*width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			binary.BigEndian.PutUint32(buf[col*4:], uint32(p.Canvas.HeightAt(row, col)))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: %v", ErrWriterIO, err)
		}
	}
	return nil
}
