package render

import "testing"

type constWorker struct{ value int32 }

func (w constWorker) RenderSlice(slice *Slice) {
	for r := 0; r < slice.Height; r++ {
		for c := 0; c < slice.Width; c++ {
			slice.Set(r, c, w.value+int32(slice.SliceID), 7, 0)
		}
	}
}

func TestRunJoinsAllSlicesDeterministically(t *testing.T) {
	sl := NewSlicing(20, 5, 4)
	jc := Run(sl, true, false, func(sliceID int) Worker {
		return constWorker{value: 100}
	})

	for r := 0; r < 20; r++ {
		sliceID, _ := sl.TranslateIndex(r)
		want := int32(100 + sliceID)
		for c := 0; c < 5; c++ {
			if got := jc.ColorAt(r, c); got != want {
				t.Fatalf("row %d col %d: got %d want %d", r, c, got, want)
			}
			if got := jc.ShadeAt(r, c); got != 7 {
				t.Fatalf("row %d col %d: shade got %d want 7", r, c, got)
			}
		}
	}
}

func TestRunProducesSameResultRegardlessOfSliceCount(t *testing.T) {
	// constWorker adds its slice id; offset it so every slice paints 1.
	worker := func(sliceID int) Worker { return constWorker{value: 1 - int32(sliceID)} }

	one := Run(NewSlicing(9, 9, 1), true, false, worker)
	eight := Run(NewSlicing(9, 9, 8), true, false, worker)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if one.ColorAt(r, c) != 1 || eight.ColorAt(r, c) != 1 {
				t.Fatalf("expected constant color regardless of slicing at (%d,%d)", r, c)
			}
		}
	}
}

func TestSmoothIsNoOpWithoutShading(t *testing.T) {
	sl := NewSlicing(4, 4, 1)
	jc := Run(sl, false, false, func(sliceID int) Worker { return constWorker{} })
	Smooth(jc) // must not panic on nil Shading
}

func TestSmoothLeavesLastRowAndColumnUntouched(t *testing.T) {
	sl := NewSlicing(3, 3, 1)
	jc := Run(sl, true, false, func(sliceID int) Worker {
		return constWorker{value: 200}
	})
	before := jc.ShadeAt(2, 2)
	Smooth(jc)
	after := jc.ShadeAt(2, 2)
	if before != after {
		t.Errorf("expected last row/col pixel untouched by smoothing, got %d -> %d", before, after)
	}
}
