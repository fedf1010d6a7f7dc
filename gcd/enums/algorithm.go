package enums

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownAlgorithm は、未知のアルゴリズムが指定されたときに返されるエラーです。
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm は、GCD の計算アルゴリズムの種類です。
type Algorithm int

const (
	Algorithm_Euclidean Algorithm = iota
	Algorithm_Binary
)

// Algorithms は、選択可能なすべてのアルゴリズムです。
var Algorithms = []Algorithm{
	Algorithm_Euclidean,
	Algorithm_Binary,
}

func (t Algorithm) String() string {
	s := "undefined"
	switch t {
	case Algorithm_Euclidean:
		s = "Euclidean"
	case Algorithm_Binary:
		s = "Binary"
	}
	return fmt.Sprintf("%s(0x%02X)", s, int(t))
}

// Name は、コマンドラインで使用する名前を返します。
func (t Algorithm) Name() string {
	switch t {
	case Algorithm_Euclidean:
		return "euclidean"
	case Algorithm_Binary:
		return "binary"
	}
	return "undefined"
}

func (t Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// ParseAlgorithm は、名前からアルゴリズムを判定します。
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean", "euclid", "e":
		return Algorithm_Euclidean, nil
	case "binary", "stein", "b":
		return Algorithm_Binary, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", s)
}

// AlgorithmList は、アルゴリズムの選択肢を一覧表示します。
func AlgorithmList() string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = a.Name()
	}
	return "(" + strings.Join(names, "|") + ")"
}
