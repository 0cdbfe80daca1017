package hwy

import (
	"strings"
	"testing"
)

func TestWidthValid(t *testing.T) {
	for n := -1; n <= 32; n++ {
		want := n == 1 || n == 2 || n == 4 || n == 8 || n == 16
		if got := ValidWidth(n); got != want {
			t.Errorf("ValidWidth(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestWidthString(t *testing.T) {
	if got := W8.String(); got != "x8" {
		t.Errorf("W8.String() = %q", got)
	}
}

func TestBytes(t *testing.T) {
	if got := Bytes[float32](W8); got != 32 {
		t.Errorf("Bytes[float32](W8) = %d, want 32", got)
	}
	if got := Bytes[float64](W8); got != 64 {
		t.Errorf("Bytes[float64](W8) = %d, want 64", got)
	}
}

func TestNaturalWidth(t *testing.T) {
	w := NaturalWidth[float32]()
	if !w.Valid() {
		t.Fatalf("NaturalWidth returned unsupported width %v", w)
	}
	if int(w) > MaxLanes[float32]() {
		t.Errorf("NaturalWidth %v exceeds MaxLanes %d", w, MaxLanes[float32]())
	}
}

func TestDescribe(t *testing.T) {
	d := Describe()
	if !strings.HasPrefix(d, CurrentName()) {
		t.Errorf("Describe() = %q, want prefix %q", d, CurrentName())
	}
	if CurrentLevel().String() != CurrentName() {
		t.Errorf("CurrentLevel().String() = %q, CurrentName() = %q", CurrentLevel(), CurrentName())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want at least 16", CurrentWidth())
	}
}

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		w         Width
		wantFull  []int
		wantTail  [2]int
		wantCalls bool
	}{
		{size: 16, w: W8, wantFull: []int{0, 8}},
		{size: 19, w: W8, wantFull: []int{0, 8}, wantTail: [2]int{16, 3}, wantCalls: true},
		{size: 3, w: W4, wantTail: [2]int{0, 3}, wantCalls: true},
		{size: 0, w: W16},
	}
	for _, tt := range tests {
		var full []int
		var tail [2]int
		called := false
		ProcessWithTail(tt.size, tt.w,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tail = [2]int{offset, count}; called = true },
		)
		if len(full) != len(tt.wantFull) {
			t.Errorf("size %d: full calls %v, want %v", tt.size, full, tt.wantFull)
			continue
		}
		for i := range full {
			if full[i] != tt.wantFull[i] {
				t.Errorf("size %d: full calls %v, want %v", tt.size, full, tt.wantFull)
			}
		}
		if called != tt.wantCalls || tail != tt.wantTail {
			t.Errorf("size %d: tail (%v, %v), want (%v, %v)", tt.size, called, tail, tt.wantCalls, tt.wantTail)
		}
	}
}
