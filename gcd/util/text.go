package util

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

func JoinInts(ns []int32, sep string) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = strconv.FormatInt(int64(n), 10)
	}
	return strings.Join(s, sep)
}

// ParseOperands は、10 進数の文字列を 32 ビット整数の列に変換します。
func ParseOperands(args []string) ([]int32, error) {
	result := make([]int32, len(args))
	for i, arg := range args {
		n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number #%d", i+1)
		}
		result[i] = int32(n)
	}
	return result, nil
}
