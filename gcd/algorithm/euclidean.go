package algorithm

// Euclidean は、ユークリッドの互除法による実装です。
type Euclidean struct{}

func (Euclidean) Gcd(a, b int32) int32 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
