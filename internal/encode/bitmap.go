package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// bitmapInfo is (bits-per-pixel, palette-entry-count, pixel-data-offset),
// grounded on the original encoder's two fixed color-mode profiles.
func bitmapInfo(mono bool) (bpp, colors, pixelDataStart uint8) {
	if mono {
		return 1, 2, 62
	}
	return 24, 0, 54
}

// paddedWidth returns the row width (spec §8's "Bitmap stride" invariant):
// pixels rounded up to a multiple of 4 in color mode, bits rounded up to a
// multiple of 32 in monochrome mode.
func paddedWidth(width int, mono bool) int {
	if mono {
		return (width + 31) &^ 31
	}
	return (width + 3) &^ 3
}

// WriteBitmap writes an uncompressed BMP: BITMAPFILEHEADER + BITMAPINFOHEADER,
// an optional 2-entry monochrome palette, bottom-to-top BGR or packed-bit
// pixel rows padded per paddedWidth, then the command-line footer string
// appended raw after the pixel data (spec §6).
func WriteBitmap(w io.Writer, p Params) error {
	mono := p.Table.Monochrome()
	bpp, colors, pixelDataStart := bitmapInfo(mono)
	width, height := p.width(), p.height()
	padded := paddedWidth(width, mono)

	pixels, err := encodeBitmapPixels(p, width, height, padded, mono)
	if err != nil {
		return err
	}

	footer := p.CommandLine
	filesize := uint64(len(footer)) + uint64(pixelDataStart) + uint64(pixels.Len())
	if filesize >= 1<<32 {
		return ErrBitmapTooLarge
	}

	var header bytes.Buffer
	header.WriteString("BM")
	binary.Write(&header, binary.LittleEndian, uint32(filesize))
	header.Write([]byte{0, 0, 0, 0})
	header.Write([]byte{pixelDataStart, 0, 0, 0})
	header.Write([]byte{40, 0, 0, 0})
	binary.Write(&header, binary.LittleEndian, uint32(width))
	binary.Write(&header, binary.LittleEndian, uint32(height))
	header.Write([]byte{1, 0})
	header.Write([]byte{bpp, 0})
	header.Write([]byte{0, 0, 0, 0})
	header.Write([]byte{0, 0, 0, 0})
	header.Write([]byte{0, 32, 0, 0})
	header.Write([]byte{0, 32, 0, 0})
	binary.Write(&header, binary.LittleEndian, uint32(colors))
	binary.Write(&header, binary.LittleEndian, uint32(colors))

	if mono {
		header.Write([]byte{0, 0, 0, 0, 255, 255, 255, 255})
	}

	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	if _, err := w.Write(pixels.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	if _, err := io.WriteString(w, footer); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	return nil
}

func encodeBitmapPixels(p Params, width, height, padded int, mono bool) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if mono {
		for row := height - 1; row >= 0; row-- {
			for base := 0; base < padded; base += 32 {
				var quad uint32
				stop := width - base
				if stop > 32 {
					stop = 32
				}
				for s := 0; s < stop; s++ {
					col := base + s
					c := p.colorAt(row, col)
					if c.R != 0 {
						quad |= 1 << uint(31-s)
					}
				}
				var le [4]byte
				binary.LittleEndian.PutUint32(le[:], quad)
				buf.Write(le[:])
			}
		}
		return &buf, nil
	}

	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			c := p.colorAt(row, col)
			if shade := p.shadeAt(row, col); shade > 0 {
				buf.WriteByte(shadeChannel(shade, c.B))
				buf.WriteByte(shadeChannel(shade, c.G))
				buf.WriteByte(shadeChannel(shade, c.R))
			} else {
				buf.WriteByte(c.B)
				buf.WriteByte(c.G)
				buf.WriteByte(c.R)
			}
		}
		for col := width; col < padded; col++ {
			buf.Write([]byte{0, 0, 0})
		}
	}
	return &buf, nil
}
