// Package coord provides map-key encoding and ordering for normalized board coordinates.
package coord

import (
	"strconv"
	"strings"
)

// Encode computes the map key for a normalized coordinate tuple.
// Components are joined with "#", so (1, 4) becomes "1#4".
// The empty tuple encodes to "".
func Encode(c []int) string {
	if len(c) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte('#')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Extend returns a fresh tuple holding prefix followed by i.
// The result never aliases prefix.
func Extend(prefix []int, i int) []int {
	c := make([]int, len(prefix)+1)
	copy(c, prefix)
	c[len(prefix)] = i
	return c
}

// Compare orders tuples lexicographically; a shorter tuple sorts before any tuple it prefixes.
func Compare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Format renders a tuple as "(1, 4)".
func Format(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
