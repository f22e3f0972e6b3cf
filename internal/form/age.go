// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"strconv"
	"strings"
)

// ParseAge converts raw age input to an integer the way a browser number
// field does: leading whitespace and an optional sign are accepted, parsing
// stops at the first non-digit, and input without leading digits yields 0.
// Values beyond the int range are clamped.
func ParseAge(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	// ParseInt returns the clamped bound together with ErrRange on overflow.
	n, _ := strconv.ParseInt(sign+s[:end], 10, 0)
	return int(n)
}
