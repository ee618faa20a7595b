package util

import (
	"math"
	"os"
	"strings"
)

// FileExists checks if file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// RoundDown rounds down value to next multiple of modulo
// only works for positive integers
func RoundDown(value, modulo int64) int64 {
	if value < 0 {
		return 0
	}
	return (value / modulo) * modulo
}

// RoundUp rounds up value to next multiple of modulo
// only works for positive integers
func RoundUp(value, modulo int64) int64 {
	if value <= 0 {
		return 0
	}
	return ((value + modulo - 1) / modulo) * modulo
}

// IsNumber reports whether v is neither NaN nor infinite
func IsNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Numeric returns the values of v that are numbers, in order
func Numeric(v []float64) []float64 {
	out := make([]float64, 0, len(v))
	for _, x := range v {
		if IsNumber(x) {
			out = append(out, x)
		}
	}
	return out
}

// NormalizeID trims and lower-cases a subject identifier
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// FileName makes s safe to use as a single path element. Everything but
// ASCII letters, digits, '-' and '_' becomes '_'.
func FileName(s string) string {
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
