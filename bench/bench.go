package bench

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/but80/gcd825/gcd"
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/log"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

const redrawCount = 20

type Options struct {
	Count      int      `validate:"min=1,max=100000000"`
	Algorithms []string `validate:"min=1,dive,required"`
	Operands   []int32  `validate:"min=2"`
	Live       bool
}

var validate = validator.New()

// Runner は、GCD の計算を繰り返し実行して所要時間を集計します。
type Runner struct {
	Output  io.Writer
	stopped int32
}

// Stop は、実行中の計測を中断します。
func (q *Runner) Stop() {
	atomic.StoreInt32(&q.stopped, 1)
}

func (q *Runner) isStopped() bool {
	return atomic.LoadInt32(&q.stopped) != 0
}

func (q *Runner) Run(opts *Options) (*State, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, errors.WithStack(err)
	}
	state := &State{
		Operands: append([]int32(nil), opts.Operands...),
		Rows:     []*Row{},
	}
	for _, name := range opts.Algorithms {
		alg, err := enums.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		state.Rows = append(state.Rows, &Row{Algorithm: alg})
	}
	closer.Bind(func() {
		q.Stop()
		if opts.Live && q.Output != nil {
			fmt.Fprint(q.Output, cursor.Show())
		}
	})
	if opts.Live {
		fmt.Fprint(q.Output, cursor.Hide())
		defer fmt.Fprint(q.Output, cursor.Show())
	}
	step := opts.Count / redrawCount
	if step < 1 {
		step = 1
	}
	for _, row := range state.Rows {
		log.Debugf("benchmarking %s", row.Algorithm)
		for i := 0; i < opts.Count && !q.isStopped(); i++ {
			start := time.Now()
			result, err := gcd.Calculate(row.Algorithm, true, opts.Operands)
			if err != nil {
				return nil, err
			}
			row.add(result.GCD, result.Milliseconds, time.Since(start))
			if opts.Live && (i+1)%step == 0 {
				state.Redraw(q.Output)
			}
		}
	}
	return state, nil
}
