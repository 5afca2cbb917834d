// Package render partitions an image into row slices, drives a worker per
// slice (grounded on the teacher's chunk_streamer.go worker-pool pattern),
// commits results into a shared canvas guarded the way chunk_store.go guards
// its chunk map, and runs post-join smoothing.
package render

import "math"

// Slicing computes the row partitioning shared by every projection and by
// the orchestrator: ceil(height/N) rows per slice, with the final slice
// absorbing the remainder (spec §9's slicing invariant). When N slices of
// that height would run past the last row, SliceCount is lowered so that
// every slice holds at least one row.
type Slicing struct {
	Height, Width int
	SliceCount    int

	sliceHeight      int
	finalSliceHeight int
	finalSliceID     int
}

// NewSlicing builds a Slicing for the given canvas size and worker count.
func NewSlicing(height, width, sliceCount int) Slicing {
	if sliceCount < 1 {
		sliceCount = 1
	}
	sliceHeight := int(math.Ceil(float64(height) / float64(sliceCount)))
	if sliceHeight > 0 {
		sliceCount = (height + sliceHeight - 1) / sliceHeight
	}
	return Slicing{
		Height:           height,
		Width:            width,
		SliceCount:       sliceCount,
		sliceHeight:      sliceHeight,
		finalSliceHeight: height - sliceHeight*(sliceCount-1),
		finalSliceID:     sliceCount - 1,
	}
}

// TranslateIndex splits an absolute row into (sliceID, localRow).
func (s Slicing) TranslateIndex(absoluteRow int) (sliceID, localRow int) {
	return absoluteRow / s.sliceHeight, absoluteRow % s.sliceHeight
}

// SliceHeight returns how many rows belong to the given slice.
func (s Slicing) SliceHeight(sliceID int) int {
	if sliceID == s.finalSliceID {
		return s.finalSliceHeight
	}
	return s.sliceHeight
}

// AbsoluteRow maps a (sliceID, localRow) pair back to an absolute row.
func (s Slicing) AbsoluteRow(sliceID, localRow int) int {
	return sliceID*s.sliceHeight + localRow
}
