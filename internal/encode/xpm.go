package encode

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// xpmAlphabet is the 64-character XPM pixel alphabet (spec §6).
const xpmAlphabet = "@$.,:;-+=#*&ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// charsPerPixel is ceil(log64(n)) (spec §8's "XPM chars-per-pixel" invariant).
func charsPerPixel(paletteSize int) int {
	if paletteSize <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log(float64(paletteSize)) / math.Log(64)))
}

// xpmChars renders a palette index as chars-per-pixel alphabet characters,
// least-significant digit first (base-64 positional encoding).
func xpmChars(index, charsPerPixel int) string {
	buf := make([]byte, charsPerPixel)
	for i := 0; i < charsPerPixel; i++ {
		buf[i] = xpmAlphabet[index&63]
		index /= len(xpmAlphabet)
	}
	return string(buf)
}

// WriteXPM writes a textual C-style XPM initializer: a header comment block,
// the color table (one alphabet code per palette entry with its hex color),
// then one quoted row string per image row (spec §6).
func WriteXPM(w io.Writer, p Params) error {
	bw := bufio.NewWriter(w)
	width, height := p.width(), p.height()
	paletteSize := p.Table.MaxIndex() + 1
	cpp := charsPerPixel(paletteSize)

	fmt.Fprintln(bw, "/* XPM */")
	fmt.Fprintln(bw, "/* Command line: */")
	fmt.Fprintf(bw, "/* %s */\n", p.CommandLine)
	fmt.Fprintln(bw, "static char *xpmdata[] = {")
	fmt.Fprintln(bw, "/* width height ncolors chars_per_pixel */")
	fmt.Fprintf(bw, "\"%d %d %d %d\",\n", width, height, paletteSize, cpp)

	fmt.Fprintln(bw, "/* colors */")
	for i := 0; i < paletteSize; i++ {
		c := p.Table.At(i)
		fmt.Fprintf(bw, "\"%s c #%02x%02x%02x\",\n", xpmChars(i, cpp), c.R, c.G, c.B)
	}

	fmt.Fprintln(bw, "/* pixels */")
	for row := 0; row < height; row++ {
		bw.WriteByte('"')
		for col := 0; col < width; col++ {
			bw.WriteString(xpmChars(int(p.Canvas.ColorAt(row, col)), cpp))
		}
		if row == height-1 {
			fmt.Fprintln(bw, "\"")
		} else {
			fmt.Fprintln(bw, "\",")
		}
	}
	fmt.Fprintln(bw, "};")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterIO, err)
	}
	return nil
}
