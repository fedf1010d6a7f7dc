package gcd

import (
	"os"

	"github.com/golang/protobuf/proto"
)

// Normalize は、nil の要素を空に置き換えます。
func (m *Result) Normalize() {
	if m.Operands == nil {
		m.Operands = []int32{}
	}
}

// WriteFile は、Result をバイナリ形式でファイルに書き出します。
func (m *Result) WriteFile(file string) error {
	b, err := proto.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0644)
}

// LoadFile は、ファイルから Result を読み込みます。
func LoadFile(file string) (*Result, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var r Result
	if err := proto.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.Normalize()
	return &r, nil
}
