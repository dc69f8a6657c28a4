package geometry

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultMaxProbes bounds the ratio-compliance search when the caller passes
// maxProbes <= 0. Real inputs converge within a handful of probes; the bound
// exists so a pathological ratio cannot stall the encoder.
const DefaultMaxProbes = 4096

// ErrNoCompliantDimensions is returned when the ratio-compliance search
// exhausts its probe budget without finding a factorization within the bound.
var ErrNoCompliantDimensions = errors.New("no ratio-compliant dimensions within probe budget")

// PrimeFactors returns the prime factorization of n as a map from each prime
// factor to its multiplicity. For n <= 1 the map is empty; callers that need
// a factor list treat such n as the single factor [n].
func PrimeFactors(n int) map[int]int {
	pf := make(map[int]int)
	if n <= 1 {
		return pf
	}
	count := 0
	for n%2 == 0 {
		n /= 2
		count++
	}
	if count > 0 {
		pf[2] = count
	}
	for p := 3; p*p <= n; p += 2 {
		count = 0
		for n%p == 0 {
			n /= p
			count++
		}
		if count > 0 {
			pf[p] = count
		}
	}
	if n > 1 {
		pf[n] = 1
	}
	return pf
}

// ClosestFactorPair splits n into two factors a*b == n that are as close to
// sqrt(n) as the greedy balancing gets. Prime factors are assigned largest
// first to whichever accumulator is currently smaller.
//
// The result is a heuristic: for n with a lopsided factorization (e.g. 254 =
// 2*127) the pair is necessarily extreme.
func ClosestFactorPair(n int) (int, int) {
	if n <= 1 {
		return 1, n
	}
	pf := PrimeFactors(n)
	primes := make([]int, 0, len(pf))
	for p := range pf {
		primes = append(primes, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(primes)))

	a, b := 1, 1
	for _, p := range primes {
		for i := 0; i < pf[p]; i++ {
			if a <= b {
				a *= p
			} else {
				b *= p
			}
		}
	}
	return a, b
}

// RecommendDimensions returns (width, height) for an image of the given pixel
// count: the closest factor pair, ordered landscape (width >= height) unless
// portrait is set. width*height == pixels always holds.
func RecommendDimensions(pixels int, portrait bool) (int, int) {
	a, b := ClosestFactorPair(pixels)
	if portrait {
		if a < b {
			return a, b
		}
		return b, a
	}
	if a > b {
		return a, b
	}
	return b, a
}

// FindCompliantDimensions searches for the smallest pixel count >= w*h whose
// recommended dimensions satisfy max(w/h, h/w) <= maxRatio. The search
// advances one pixel at a time; prime counts only factor as (1, n) and are
// skipped over naturally. maxProbes <= 0 selects DefaultMaxProbes.
func FindCompliantDimensions(w, h int, maxRatio float64, maxProbes int) (int, int, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid dimensions %dx%d", w, h)
	}
	if maxProbes <= 0 {
		maxProbes = DefaultMaxProbes
	}
	for probe := 0; probe < maxProbes; probe++ {
		x, y := float64(w), float64(h)
		if x/y <= maxRatio && y/x <= maxRatio {
			return w, h, nil
		}
		w, h = RecommendDimensions(w*h+1, false)
	}
	return 0, 0, fmt.Errorf("ratio %.3f after %d probes: %w", maxRatio, maxProbes, ErrNoCompliantDimensions)
}
