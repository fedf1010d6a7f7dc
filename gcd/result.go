package gcd

import (
	"fmt"
	"strings"

	"github.com/but80/gcd825/gcd/algorithm"
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/extended"
	"github.com/but80/gcd825/gcd/util"
	pb "github.com/but80/gcd825/pb/gcd"
	"github.com/pkg/errors"
)

// ErrTooFewOperands は、引数が 2 つ未満のときに返されるエラーです。
var ErrTooFewOperands = errors.New("at least two numbers are required")

// Result は、Calculate の計算結果です。
type Result struct {
	Algorithm    enums.Algorithm `json:"algorithm"`
	Operands     []int32         `json:"operands"`
	GCD          int32           `json:"gcd"`
	Timed        bool            `json:"timed"`
	Milliseconds int64           `json:"elapsed_ms"`
}

// Calculate は、指定したアルゴリズムで operands の最大公約数を計算します。
func Calculate(alg enums.Algorithm, timed bool, operands []int32) (*Result, error) {
	if len(operands) < 2 {
		return nil, errors.Wrapf(ErrTooFewOperands, "got %d", len(operands))
	}
	a, err := algorithm.New(alg)
	if err != nil {
		return nil, err
	}
	e := extended.New(a)
	result := &Result{
		Algorithm: alg,
		Operands:  append([]int32(nil), operands...),
		Timed:     timed,
	}
	if timed {
		result.GCD, result.Milliseconds, err = e.CalculateTimed(operands[0], operands[1], operands[2:]...)
	} else {
		result.GCD, err = e.Calculate(operands[0], operands[1], operands[2:]...)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Result) String() string {
	lines := []string{
		fmt.Sprintf("Algorithm: %s", r.Algorithm),
		fmt.Sprintf("Operands: %s", util.JoinInts(r.Operands, ", ")),
		fmt.Sprintf("GCD: %d", r.GCD),
	}
	if r.Timed {
		lines = append(lines, fmt.Sprintf("Elapsed: %d ms", r.Milliseconds))
	}
	return "GCD Result:\n" + util.Indent(strings.Join(lines, "\n"), "\t")
}

// ToPB は、Protocol Buffer 形式に変換します。
func (r *Result) ToPB() *pb.Result {
	result := &pb.Result{
		Algorithm: pb.Algorithm(r.Algorithm),
		Operands:  append([]int32(nil), r.Operands...),
		Gcd:       r.GCD,
		Timed:     r.Timed,
		ElapsedMs: r.Milliseconds,
	}
	result.Normalize()
	return result
}
