// Package gcd は、ユークリッドの互除法およびバイナリ GCD（Stein のアルゴリズム）で
// [-2147483647, 2147483647] の範囲の整数の最大公約数を計算します。
//
// すべての関数は、引数がすべて 0 のとき ErrAllZero を、
// 引数に math.MinInt32 が含まれるとき ErrOutOfRange を返します。
// 計時版の関数は、計算に要した時間をミリ秒単位（切り捨て）で併せて返します。
package gcd

import (
	"github.com/but80/gcd825/gcd/algorithm"
	"github.com/but80/gcd825/gcd/extended"
)

var (
	ErrAllZero    = extended.ErrAllZero
	ErrOutOfRange = extended.ErrOutOfRange
)

func euclidean() *extended.Algorithm { return extended.New(algorithm.Euclidean{}) }
func binary() *extended.Algorithm    { return extended.New(algorithm.Stein{}) }

// Euclidean は、2 つの整数の最大公約数をユークリッドの互除法で計算します。
func Euclidean(first, second int32) (int32, error) {
	return euclidean().Calculate(first, second)
}

// Euclidean3 は、3 つの整数の最大公約数をユークリッドの互除法で計算します。
func Euclidean3(first, second, third int32) (int32, error) {
	return euclidean().Calculate(first, second, third)
}

// EuclideanN は、2 つ以上の整数の最大公約数をユークリッドの互除法で計算します。
func EuclideanN(first, second int32, numbers ...int32) (int32, error) {
	return euclidean().Calculate(first, second, numbers...)
}

// EuclideanTimed は、Euclidean の計時版です。
func EuclideanTimed(first, second int32) (int32, int64, error) {
	return euclidean().CalculateTimed(first, second)
}

// Euclidean3Timed は、Euclidean3 の計時版です。
func Euclidean3Timed(first, second, third int32) (int32, int64, error) {
	return euclidean().CalculateTimed(first, second, third)
}

// EuclideanNTimed は、EuclideanN の計時版です。
func EuclideanNTimed(first, second int32, numbers ...int32) (int32, int64, error) {
	return euclidean().CalculateTimed(first, second, numbers...)
}

// Binary は、2 つの整数の最大公約数をバイナリ GCD で計算します。
func Binary(first, second int32) (int32, error) {
	return binary().Calculate(first, second)
}

// Binary3 は、3 つの整数の最大公約数をバイナリ GCD で計算します。
func Binary3(first, second, third int32) (int32, error) {
	return binary().Calculate(first, second, third)
}

// BinaryN は、2 つ以上の整数の最大公約数をバイナリ GCD で計算します。
func BinaryN(first, second int32, numbers ...int32) (int32, error) {
	return binary().Calculate(first, second, numbers...)
}

// BinaryTimed は、Binary の計時版です。
func BinaryTimed(first, second int32) (int32, int64, error) {
	return binary().CalculateTimed(first, second)
}

// Binary3Timed は、Binary3 の計時版です。
func Binary3Timed(first, second, third int32) (int32, int64, error) {
	return binary().CalculateTimed(first, second, third)
}

// BinaryNTimed は、BinaryN の計時版です。
func BinaryNTimed(first, second int32, numbers ...int32) (int32, int64, error) {
	return binary().CalculateTimed(first, second, numbers...)
}
