package geometry

import (
	"errors"
	"testing"
)

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want map[int]int
	}{
		{name: "one", n: 1, want: map[int]int{}},
		{name: "zero", n: 0, want: map[int]int{}},
		{name: "negative", n: -5, want: map[int]int{}},
		{name: "prime", n: 13, want: map[int]int{13: 1}},
		{name: "power of two", n: 256, want: map[int]int{2: 8}},
		{name: "mixed", n: 45, want: map[int]int{3: 2, 5: 1}},
		{name: "two large primes", n: 254, want: map[int]int{2: 1, 127: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimeFactors(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("PrimeFactors(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for p, c := range tt.want {
				if got[p] != c {
					t.Errorf("PrimeFactors(%d)[%d] = %d, want %d", tt.n, p, got[p], c)
				}
			}
		})
	}
}

func TestClosestFactorPair(t *testing.T) {
	tests := []struct {
		n    int
		a, b int
	}{
		{256, 16, 16},
		{255, 17, 15},
		{254, 127, 2},
		{1, 1, 1},
		{13, 13, 1},
		{45, 9, 5},
	}

	for _, tt := range tests {
		a, b := ClosestFactorPair(tt.n)
		if a*b != tt.n {
			t.Errorf("ClosestFactorPair(%d) = (%d, %d), product %d != %d", tt.n, a, b, a*b, tt.n)
		}
		if max(a, b) != max(tt.a, tt.b) || min(a, b) != min(tt.a, tt.b) {
			t.Errorf("ClosestFactorPair(%d) = (%d, %d), want (%d, %d) in some order", tt.n, a, b, tt.a, tt.b)
		}
	}
}

func TestRecommendDimensions(t *testing.T) {
	w, h := RecommendDimensions(256, false)
	if w != 16 || h != 16 {
		t.Errorf("RecommendDimensions(256) = %dx%d, want 16x16", w, h)
	}

	w, h = RecommendDimensions(255, false)
	if w != 17 || h != 15 {
		t.Errorf("RecommendDimensions(255) landscape = %dx%d, want 17x15", w, h)
	}

	w, h = RecommendDimensions(255, true)
	if w != 15 || h != 17 {
		t.Errorf("RecommendDimensions(255) portrait = %dx%d, want 15x17", w, h)
	}
}

// The product invariant must hold for every pixel count, not just the
// doctest anchors.
func TestRecommendDimensionsProduct(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		w, h := RecommendDimensions(n, false)
		if w*h != n {
			t.Fatalf("RecommendDimensions(%d) = %dx%d, product %d", n, w, h, w*h)
		}
		if w < h {
			t.Fatalf("RecommendDimensions(%d) landscape returned %dx%d", n, w, h)
		}
	}
}

func TestFindCompliantDimensions(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		maxRatio float64
		wantW    int
		wantH    int
	}{
		{name: "grows to compliant count", w: 51, h: 25, maxRatio: 2.0, wantW: 44, wantH: 29},
		{name: "orientation does not matter", w: 25, h: 51, maxRatio: 2.0, wantW: 44, wantH: 29},
		{name: "already compliant", w: 10, h: 20, maxRatio: 3.0, wantW: 10, wantH: 20},
		{name: "square is always compliant", w: 16, h: 16, maxRatio: 1.0, wantW: 16, wantH: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := FindCompliantDimensions(tt.w, tt.h, tt.maxRatio, 0)
			if err != nil {
				t.Fatalf("FindCompliantDimensions(%d, %d, %v) error = %v", tt.w, tt.h, tt.maxRatio, err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FindCompliantDimensions(%d, %d, %v) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxRatio, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFindCompliantDimensionsMinimality(t *testing.T) {
	// The chosen pixel count must be the smallest >= the input whose
	// recommended dimensions fit the bound.
	const maxRatio = 2.0
	w, h, err := FindCompliantDimensions(51, 25, maxRatio, 0)
	if err != nil {
		t.Fatal(err)
	}
	for n := 51 * 25; n < w*h; n++ {
		cw, ch := RecommendDimensions(n, false)
		if float64(cw)/float64(ch) <= maxRatio && float64(ch)/float64(cw) <= maxRatio {
			t.Fatalf("pixel count %d (%dx%d) already compliant, but search chose %d", n, cw, ch, w*h)
		}
	}
}

func TestFindCompliantDimensionsBounded(t *testing.T) {
	// A ratio below 1 can never be satisfied; the search must give up
	// instead of looping.
	_, _, err := FindCompliantDimensions(3, 7, 0.5, 50)
	if !errors.Is(err, ErrNoCompliantDimensions) {
		t.Fatalf("error = %v, want ErrNoCompliantDimensions", err)
	}
}

func TestFindCompliantDimensionsInvalidInput(t *testing.T) {
	if _, _, err := FindCompliantDimensions(0, 5, 2.0, 0); err == nil {
		t.Error("expected error for zero width")
	}
	if _, _, err := FindCompliantDimensions(5, -1, 2.0, 0); err == nil {
		t.Error("expected error for negative height")
	}
}
