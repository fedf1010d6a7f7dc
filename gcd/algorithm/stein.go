package algorithm

// Stein は、バイナリ GCD（Stein のアルゴリズム）による実装です。
// 除算を使わず、比較・減算・シフトのみで計算します。
type Stein struct{}

func (Stein) Gcd(a, b int32) int32 {
	u, v := abs(a), abs(b)
	if u == 0 {
		return int32(v)
	}
	if v == 0 {
		return int32(u)
	}
	k := uint(0)
	for (u|v)&1 == 0 {
		u >>= 1
		v >>= 1
		k++
	}
	for u&1 == 0 {
		u >>= 1
	}
	// u is odd from here on
	for v != 0 {
		for v&1 == 0 {
			v >>= 1
		}
		if v < u {
			u, v = v, u
		}
		v -= u
	}
	return int32(u << k)
}
