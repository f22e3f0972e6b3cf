// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 0},
		{raw: "25", want: 25},
		{raw: "  25", want: 25},
		{raw: "25  ", want: 25},
		{raw: "25.9", want: 25},
		{raw: "25abc", want: 25},
		{raw: "abc", want: 0},
		{raw: "-3", want: -3},
		{raw: "+18", want: 18},
		{raw: "-", want: 0},
		{raw: "0", want: 0},
		{raw: "99999999999999999999999", want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAge(tt.raw))
		})
	}
}
