package extended

import (
	"math"
	"time"

	"github.com/but80/gcd825/gcd/algorithm"
	"github.com/pkg/errors"
)

// Algorithm は、2 引数のアルゴリズムを任意個の引数に拡張します。
type Algorithm struct {
	algorithm algorithm.Algorithm
	now       func() time.Time
}

// New は、新しい Algorithm を作成します。
func New(alg algorithm.Algorithm) *Algorithm {
	return &Algorithm{
		algorithm: alg,
		now:       time.Now,
	}
}

// Validate は、引数が計算可能かを検査します。
func Validate(numbers []int32) error {
	allZero := true
	for i, n := range numbers {
		if n == math.MinInt32 {
			return errors.Wrapf(ErrOutOfRange, "numbers[%d] = %d", i, n)
		}
		if n != 0 {
			allZero = false
		}
	}
	if allZero {
		return errors.WithStack(ErrAllZero)
	}
	return nil
}

// Calculate は、最大公約数を計算します。
func (e *Algorithm) Calculate(first, second int32, rest ...int32) (int32, error) {
	numbers := join(first, second, rest)
	if err := Validate(numbers); err != nil {
		return 0, err
	}
	return e.reduce(numbers), nil
}

// CalculateTimed は、最大公約数を計算し、計算に要した時間をミリ秒単位で返します。
// 計測されるのは計算部分のみで、引数の検査は含みません。
func (e *Algorithm) CalculateTimed(first, second int32, rest ...int32) (int32, int64, error) {
	numbers := join(first, second, rest)
	if err := Validate(numbers); err != nil {
		return 0, 0, err
	}
	start := e.now()
	result := e.reduce(numbers)
	elapsed := e.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return result, int64(elapsed / time.Millisecond), nil
}

func (e *Algorithm) reduce(numbers []int32) int32 {
	result := numbers[0]
	for _, n := range numbers[1:] {
		result = e.algorithm.Gcd(result, n)
	}
	return result
}

func join(first, second int32, rest []int32) []int32 {
	numbers := make([]int32, 0, 2+len(rest))
	numbers = append(numbers, first, second)
	return append(numbers, rest...)
}
