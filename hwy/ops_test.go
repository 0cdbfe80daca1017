package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}
	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShortSlice(t *testing.T) {
	v := Load([]float64{1})
	if v.NumLanes() != 1 {
		t.Errorf("Load of one element: got %d lanes, want 1", v.NumLanes())
	}
}

func TestLoadN(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i) + 0.5
	}
	for _, w := range SupportedWidths {
		v := LoadN(data, w)
		if v.NumLanes() != int(w) {
			t.Errorf("LoadN(%v): got %d lanes", w, v.NumLanes())
		}
		if v.Width() != w {
			t.Errorf("LoadN(%v): Width() = %v", w, v.Width())
		}
		for i := range int(w) {
			if v.Lane(i) != data[i] {
				t.Errorf("LoadN(%v): lane %d: got %v, want %v", w, i, v.Lane(i), data[i])
			}
		}
	}
}

func TestLoadNPanics(t *testing.T) {
	tests := []struct {
		name string
		src  []float32
		w    Width
	}{
		{"unsupported width", make([]float32, 8), 3},
		{"short slice", make([]float32, 3), W4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			LoadN(tt.src, tt.w)
		})
	}
}

func TestLoadNCopies(t *testing.T) {
	data := []float32{1, 2}
	v := LoadN(data, W2)
	data[0] = 99
	if v.Lane(0) != 1 {
		t.Error("LoadN aliases its source slice")
	}
	out := v.Data()
	out[1] = 42
	if v.Lane(1) != 2 {
		t.Error("Data aliases the vector")
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestSetN(t *testing.T) {
	for _, w := range SupportedWidths {
		v := SetN(w, -2.5)
		if v.NumLanes() != int(w) {
			t.Errorf("SetN(%v): got %d lanes", w, v.NumLanes())
		}
		for i := range v.NumLanes() {
			if v.Lane(i) != -2.5 {
				t.Errorf("SetN(%v): lane %d: got %v", w, i, v.Lane(i))
			}
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestStore(t *testing.T) {
	v := LoadN([]float64{1, 2, 3, 4}, W4)
	dst := make([]float64, 2)
	Store(v, dst)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Store into short slice: got %v", dst)
	}
	full := make([]float64, 6)
	v.Store(full)
	want := []float64{1, 2, 3, 4, 0, 0}
	for i := range want {
		if full[i] != want[i] {
			t.Errorf("Store: index %d: got %v, want %v", i, full[i], want[i])
		}
	}
}

func TestMap(t *testing.T) {
	v := LoadN([]float32{1, 4, 9, 16, 25, 36, 49, 64}, W8)
	r := Map(v, func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
	for i := range r.NumLanes() {
		if want := float32(i + 1); r.Lane(i) != want {
			t.Errorf("Map: lane %d: got %v, want %v", i, r.Lane(i), want)
		}
	}
}

func TestMap2(t *testing.T) {
	a := LoadN([]float64{1, 2}, W2)
	b := LoadN([]float64{10, 20}, W2)
	r := Map2(a, b, func(x, y float64) float64 { return x - y })
	if r.Lane(0) != -9 || r.Lane(1) != -18 {
		t.Errorf("Map2: got %v", r.Data())
	}

	defer func() {
		if recover() == nil {
			t.Error("Map2 with mismatched widths did not panic")
		}
	}()
	Map2(a, SetN(W4, 1.0), func(x, y float64) float64 { return x })
}

func TestMapPair(t *testing.T) {
	v := LoadN([]float64{3, 5}, W2)
	lo, hi := MapPair(v, func(x float64) (float64, float64) { return x - 1, x + 1 })
	if lo.Lane(0) != 2 || lo.Lane(1) != 4 || hi.Lane(0) != 4 || hi.Lane(1) != 6 {
		t.Errorf("MapPair: got %v and %v", lo.Data(), hi.Data())
	}
}

func TestMasks(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	v := LoadN([]float32{1, nan, inf, nan}, W4)

	m := IsNaN(v)
	if got := CountTrue(m); got != 2 {
		t.Errorf("IsNaN: CountTrue = %d, want 2", got)
	}
	if m.NumLanes() != 4 || m.GetBit(0) || !m.GetBit(1) || m.GetBit(2) || !m.GetBit(3) {
		t.Errorf("IsNaN: unexpected mask")
	}
	if AllFalse(m) {
		t.Error("IsNaN: AllFalse on a mask with set lanes")
	}
	if !AllFalse(IsNaN(SetN[float64](W8, 2))) {
		t.Error("IsNaN: lanes set for finite input")
	}
}
