package subcmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/but80/gcd825/bench"
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/log"
	"github.com/but80/gcd825/gcd/util"
	"github.com/urfave/cli"
)

var Bench = cli.Command{
	Name:      "bench",
	Aliases:   []string{"b"},
	Usage:     "Repeats timed calculations and reports the elapsed time per algorithm",
	ArgsUsage: "[--] <n1> <n2> [n...]",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:   "algorithms, a",
			Usage:  `Comma separated algorithms ` + enums.AlgorithmList(),
			Value:  "euclidean,binary",
			EnvVar: "GCD825_BENCH_ALGORITHMS",
		},
		cli.IntFlag{
			Name:  "count, n",
			Usage: `Repeat count per algorithm`,
			Value: 100000,
		},
		cli.BoolFlag{
			Name:  "live, l",
			Usage: `Redraw the table while running`,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Output in JSON format`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			return usageError(ctx, "bench")
		}
		setLogLevel(ctx)
		operands, err := util.ParseOperands(ctx.Args())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		opts := &bench.Options{
			Count:      ctx.Int("count"),
			Algorithms: strings.Split(ctx.String("algorithms"), ","),
			Operands:   operands,
			Live:       ctx.Bool("live"),
		}
		w := ctx.App.Writer
		q := &bench.Runner{Output: w}
		state, err := q.Run(opts)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Fprintln(w, string(j))
		} else if opts.Live {
			state.Redraw(w)
		} else {
			state.Print(w)
		}
		if !state.Agree() {
			log.Warnf("algorithms disagree")
		}
		return nil
	},
}
