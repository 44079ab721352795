package datatype

import (
	"linked-containers/internal/platform/helper"
)

const (
	OperatorEqual          = "Equal"
	OperatorGreater        = "Greater"
	OperatorLess           = "Less"
	OperatorGreaterOrEqual = "GreaterOrEqual"
	OperatorLessOrEqual    = "LessOrEqual"
	OperatorNotEqual       = "NotEqual"
)

// Compare applies op to a and b. Floating point equality is checked within helper.FloatEpsilon.
// Unknown operators compare as false.
func Compare[T Scalar](a, b T, op string) bool {
	switch op {
	case OperatorEqual:
		if helper.IsFloatingPoint(a) {
			return helper.CompareFloatingPoint(a, b)
		}
		return a == b
	case OperatorNotEqual:
		return !Compare(a, b, OperatorEqual)
	case OperatorGreater:
		return a > b
	case OperatorGreaterOrEqual:
		return a >= b
	case OperatorLess:
		return a < b
	case OperatorLessOrEqual:
		return a <= b
	default:
		return false
	}
}

func Less[T Scalar](a, b T) bool {
	return Compare(a, b, OperatorLess)
}

func Equal[T Scalar](a, b T) bool {
	return Compare(a, b, OperatorEqual)
}
