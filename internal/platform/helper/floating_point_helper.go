package helper

import (
	"math"
)

// FloatEpsilon is the tolerance used when comparing floating point values for equality.
const FloatEpsilon = 1e-9

func IsFloatingPoint(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

func CompareFloatingPoint(a, b any) bool {
	switch va := a.(type) {
	case float32:
		vb, ok := b.(float32)
		if !ok {
			return false
		}
		return math.Abs(float64(va)-float64(vb)) <= FloatEpsilon
	case float64:
		vb, ok := b.(float64)
		if !ok {
			return false
		}
		return math.Abs(va-vb) <= FloatEpsilon
	default:
		return false
	}
}
