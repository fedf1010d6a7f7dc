package algorithm

import (
	"github.com/but80/gcd825/gcd/enums"
	"github.com/pkg/errors"
)

// Algorithm は、2 つの整数の最大公約数を求めるアルゴリズムです。
//
// 符号は無視され、結果は常に非負になります。
// Gcd(x, 0) と Gcd(0, x) は |x| を返します。
// Gcd(0, 0) は未定義で、呼び出し側で事前に除外する必要があります（0 を返します）。
// math.MinInt32 を渡した場合の結果も未定義です。
type Algorithm interface {
	Gcd(a, b int32) int32
}

// New は、指定した種類のアルゴリズムを作成します。
func New(t enums.Algorithm) (Algorithm, error) {
	switch t {
	case enums.Algorithm_Euclidean:
		return Euclidean{}, nil
	case enums.Algorithm_Binary:
		return Stein{}, nil
	}
	return nil, errors.Wrapf(enums.ErrUnknownAlgorithm, "%s", t)
}

func abs(x int32) uint32 {
	if x < 0 {
		return uint32(-int64(x))
	}
	return uint32(x)
}
