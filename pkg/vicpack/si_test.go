// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import "testing"

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		scaled float64
		prefix string
	}{
		{"zero", 0, 0, ""},
		{"unit range", 1, 1, ""},
		{"below kilo", 999, 999, ""},
		{"exactly kilo", 1000, 1, "k"},
		{"mega", 2500000, 2.5, "M"},
		{"giga", 3e9, 3, "G"},
		{"milli", 0.001, 1, "m"},
		{"half becomes milli", 0.5, 500, "m"},
		{"micro", 0.0000025, 2.5, "µ"},
		{"negative kilo", -2500, -2.5, "k"},
		{"clamp high", 1e27, 1000, "Y"},
		{"clamp low", 1e-27, 0.001, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled, prefix := Scale(tt.value)
			if !almostEqual(scaled, tt.scaled, 1e-9) || prefix != tt.prefix {
				t.Errorf("Scale(%v) = (%v, %q), want (%v, %q)",
					tt.value, scaled, prefix, tt.scaled, tt.prefix)
			}
		})
	}
}
