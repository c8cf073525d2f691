package domain

import "math/bits"

// CheckedAdd returns a+b or ErrMathError on overflow
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrMathError
	}
	return sum, nil
}

// CheckedSub returns a-b or ErrMathError on underflow
func CheckedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrMathError
	}
	return diff, nil
}

// CheckedMul returns a*b or ErrMathError on overflow
func CheckedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrMathError
	}
	return lo, nil
}
