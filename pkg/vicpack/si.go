// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import "math"

// Engineering-notation prefix tables, base 1000 per step
var (
	incPrefixes = []string{"k", "M", "G", "T", "P", "E", "Z", "Y"}
	decPrefixes = []string{"m", "µ", "n", "p", "f", "a", "z", "y"}
)

// Scale converts a magnitude into a scaled value and SI prefix using
// base-1000 engineering notation. Magnitudes beyond the prefix tables clamp
// to the last entry in the relevant direction. Zero scales to (0, "").
func Scale(v float64) (float64, string) {
	if v == 0 {
		return 0, ""
	}
	l := math.Log10(math.Abs(v))
	// Snap to exact decades so e.g. 1000 never lands a ULP below 10^3
	if r := math.Round(l); math.Abs(l-r) < 1e-12 {
		l = r
	}
	degree := int(math.Floor(l / 3))
	if degree == 0 {
		return v, ""
	}

	var prefix string
	if degree > 0 {
		if degree-1 < len(incPrefixes) {
			prefix = incPrefixes[degree-1]
		} else {
			prefix = incPrefixes[len(incPrefixes)-1]
			degree = len(incPrefixes)
		}
	} else {
		if -degree-1 < len(decPrefixes) {
			prefix = decPrefixes[-degree-1]
		} else {
			prefix = decPrefixes[len(decPrefixes)-1]
			degree = -len(decPrefixes)
		}
	}

	return v * math.Pow(1000, float64(-degree)), prefix
}
