package extended

import "github.com/pkg/errors"

var (
	// ErrAllZero は、すべての引数が 0 のときに返されるエラーです。
	ErrAllZero = errors.New("all numbers are 0 at the same time")
	// ErrOutOfRange は、引数に math.MinInt32 が含まれるときに返されるエラーです。
	ErrOutOfRange = errors.New("number is out of range [-2147483647, 2147483647]")
)
