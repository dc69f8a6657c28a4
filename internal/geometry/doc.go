// Package geometry computes image dimensions for encoded byte streams.
//
// The encoder produces a flat byte stream whose length must equal
// width*height*3 for some integer (width, height). This package picks those
// dimensions: it factorizes the pixel count, balances the prime factors into
// a near-square pair, and optionally searches upward for the smallest pixel
// count whose best factorization stays within an aspect-ratio bound.
//
// # Dimension Recommendation
//
// RecommendDimensions balances the prime factors of the pixel count into two
// accumulators, largest primes first:
//
//	w, h := geometry.RecommendDimensions(256, false) // 16, 16
//	w, h  = geometry.RecommendDimensions(255, false) // 17, 15
//
// The balancing is a greedy heuristic, not an optimal partition; a prime
// pixel count factors only as (1, n).
//
// # Ratio-Compliant Search
//
// FindCompliantDimensions grows the pixel count one pixel at a time until the
// recommended dimensions fit the ratio bound:
//
//	w, h, err := geometry.FindCompliantDimensions(51, 25, 2.0, 0) // 44, 29
//
// The search is bounded: after maxProbes candidate counts it returns
// ErrNoCompliantDimensions rather than looping, so callers get a finite-time
// contract even for adversarial bounds.
package geometry
