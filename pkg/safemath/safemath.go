// Package safemath provides checked unsigned arithmetic. Results never wrap or saturate.
package safemath

import (
	"errors"
	"math"
	"math/bits"
)

// ErrOverflow ...
var ErrOverflow = errors.New("safemath: overflow")

// ErrUnderflow ...
var ErrUnderflow = errors.New("safemath: underflow")

// ErrDivisionByZero ...
var ErrDivisionByZero = errors.New("safemath: division by zero")

// Add ...
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub ...
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrUnderflow
	}
	return diff, nil
}

// Mul ...
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// Div truncates toward zero
func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// AddUint32 ...
func AddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}
