package vector

import "math"

// CosineSimilarity returns dot(a,b) / (|a|*|b|).
//
// Iteration is driven by the keys of a; a key present only in b is ignored. The
// result is therefore not symmetric when the key sets differ, so both vectors must
// belong to the same dimension space. Every caller maps into a typed profile struct
// before calling, which guarantees identical key sets.
//
// A zero magnitude on either side yields 0, so an all-zero vector never matches.
func CosineSimilarity(a, b Vector) float64 {
	var dot, magA, magB float64
	for _, e := range a {
		v1 := e.Value
		v2 := b.Get(e.Key)

		dot += v1 * v2
		magA += v1 * v1
		magB += v2 * v2
	}

	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)
	if magA == 0 || magB == 0 {
		return 0
	}

	sim := dot / (magA * magB)
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0
	}
	return sim
}

// Round rounds v to the given number of decimal places. Non-finite input yields 0.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
