package render

// Smooth runs the post-join box filter over the shade array (spec §4.6). It
// reads across slice boundaries via the slicing translator, so unlike
// per-pixel rendering this stage is orchestrator-exclusive: it must not run
// until every worker has joined. A no-op when shading was not requested.
func Smooth(jc *JoinedCanvas) {
	if !jc.WantShading {
		return
	}
	height, width := jc.Slicing.Height, jc.Slicing.Width

	smoothed := make([]uint8, height*width)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			i := r*width + c
			if r == height-1 || c == width-1 {
				smoothed[i] = jc.ShadeAt(r, c)
				continue
			}
			s00 := int(jc.ShadeAt(r, c))
			s01 := int(jc.ShadeAt(r, c+1))
			s10 := int(jc.ShadeAt(r+1, c))
			s11 := int(jc.ShadeAt(r+1, c+1))
			v := (4*s00 + 2*s01 + 2*s10 + s11 + 4) / 9
			if v > 255 {
				v = 255
			}
			smoothed[i] = uint8(v)
		}
	}

	for r := 0; r < height; r++ {
		sliceID, local := jc.Slicing.TranslateIndex(r)
		slice := jc.Slices[sliceID]
		copy(slice.Shading[local*width:(local+1)*width], smoothed[r*width:(r+1)*width])
	}
}
