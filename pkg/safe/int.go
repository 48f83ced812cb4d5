// Package safe provides overflow-checked numeric helpers. Sale amounts are
// integer base-currency units in the billions, so unchecked int64 arithmetic
// is not acceptable in total computation.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// MulInt64 multiplies two non-negative int64 values with overflow checking.
func MulInt64(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand %d * %d", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt64/b {
		return 0, fmt.Errorf("int64 overflow in %d * %d", a, b)
	}
	return a * b, nil
}

// AddInt64 adds two non-negative int64 values with overflow checking.
func AddInt64(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand %d + %d", a, b)
	}
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("int64 overflow in %d + %d", a, b)
	}
	return a + b, nil
}

// Int64FromBig converts a contract uint256 to int64, rejecting values outside
// the int64 range.
func Int64FromBig(v *big.Int) (int64, error) {
	if v == nil {
		return 0, nil
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("value %s out of int64 range", v.String())
	}
	return v.Int64(), nil
}
