package encode

import (
	"bytes"
	"encoding/binary"
	"testing"

	"landgen/internal/config"
	"landgen/internal/palette"
	"landgen/internal/render"
)

func smallTable(mono bool) *palette.ColorTable {
	colors := make([]palette.Color, 16)
	for i := range colors {
		if mono {
			if i%2 == 0 {
				colors[i] = palette.Color{0, 0, 0}
			} else {
				colors[i] = palette.Color{255, 255, 255}
			}
		} else {
			colors[i] = palette.Color{R: uint8(i * 10), G: uint8(i * 5), B: uint8(i)}
		}
	}
	return &palette.ColorTable{
		Colors: colors, SeaBottom: 6, SeaLevel: 8, LowestLand: 9,
		HighestLand: 15, SeaDepth: 2, LandHeight: 6,
	}
}

func smallCanvas(w, h int) *render.JoinedCanvas {
	sl := render.NewSlicing(h, w, 1)
	return render.Run(sl, false, true, func(sliceID int) render.Worker {
		return fillWorker{}
	})
}

type fillWorker struct{}

func (fillWorker) RenderSlice(slice *render.Slice) {
	for r := 0; r < slice.Height; r++ {
		for c := 0; c < slice.Width; c++ {
			slice.Set(r, c, int32((r+c)%16), 0, int32(r*100+c))
		}
	}
}

func TestPaddedWidthStrideInvariant(t *testing.T) {
	if got := paddedWidth(5, false); got != 8 {
		t.Errorf("color mode padded width: got %d want 8", got)
	}
	if got := paddedWidth(4, false); got != 4 {
		t.Errorf("color mode padded width already aligned: got %d want 4", got)
	}
	if got := paddedWidth(5, true); got != 32 {
		t.Errorf("mono mode padded width: got %d want 32", got)
	}
	if got := paddedWidth(32, true); got != 32 {
		t.Errorf("mono mode padded width already aligned: got %d want 32", got)
	}
}

func TestCharsPerPixelInvariant(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{63, 1},
		{64, 1},
		{65, 2},
		{4096, 2},
		{4097, 3},
		{262144, 3},
	}
	for _, c := range cases {
		if got := charsPerPixel(c.n); got != c.want {
			t.Errorf("charsPerPixel(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestWriteBitmapProducesValidHeader(t *testing.T) {
	table := smallTable(false)
	canvas := smallCanvas(5, 3)
	var buf bytes.Buffer
	err := WriteBitmap(&buf, Params{Canvas: canvas, Table: table, Shading: config.ShadingNone, CommandLine: "landgen test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := buf.Bytes()
	if string(data[0:2]) != "BM" {
		t.Fatalf("expected BM magic, got %q", data[0:2])
	}
	width := binary.LittleEndian.Uint32(data[18:22])
	height := binary.LittleEndian.Uint32(data[22:26])
	if width != 5 || height != 3 {
		t.Errorf("expected 5x3 dims in header, got %dx%d", width, height)
	}
	if !bytes.HasSuffix(data, []byte("landgen test")) {
		t.Errorf("expected command-line footer appended at end of file")
	}
}

func TestWritePPMHeaderAndRowReversal(t *testing.T) {
	table := smallTable(false)
	canvas := smallCanvas(4, 4)
	var buf bytes.Buffer
	if err := WritePPM(&buf, Params{Canvas: canvas, Table: table, Shading: config.ShadingNone, CommandLine: "cmd"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if out[:2] != "P6" {
		t.Fatalf("expected P6 header, got %q", out[:2])
	}
	first := buf.Bytes()[len("P6\n4\n4\n255\n"):][:3]
	if !bytes.Equal(first, []byte{30, 15, 3}) {
		t.Errorf("expected first pixel from the bottom row (index 3), got %v", first)
	}
	if !bytes.Contains(buf.Bytes(), []byte("#fractal planet image")) {
		t.Errorf("expected trailing comment")
	}
}

func TestWriteHeightfieldSizeAndBigEndian(t *testing.T) {
	canvas := smallCanvas(3, 2)
	var buf bytes.Buffer
	if err := WriteHeightfield(&buf, Params{Canvas: canvas}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 3*2*4 {
		t.Fatalf("expected %d bytes, got %d", 3*2*4, buf.Len())
	}
	first := binary.BigEndian.Uint32(buf.Bytes()[0:4])
	if int32(first) != 0 {
		t.Errorf("expected first heightfield sample 0, got %d", int32(first))
	}
}

func TestWriteXPMEmitsHeaderAndColorTable(t *testing.T) {
	table := smallTable(false)
	canvas := smallCanvas(4, 4)
	var buf bytes.Buffer
	if err := WriteXPM(&buf, Params{Canvas: canvas, Table: table, CommandLine: "cmd"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/* XPM */")) {
		t.Errorf("expected XPM magic comment")
	}
	if !bytes.Contains(buf.Bytes(), []byte("c #")) {
		t.Errorf("expected hex color entries")
	}
}
