package subcmd

import (
	"encoding/json"
	"fmt"

	"github.com/but80/gcd825/gcd"
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/log"
	"github.com/but80/gcd825/gcd/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var errDisagree = errors.New("algorithms disagree")

var Compare = cli.Command{
	Name:      "compare",
	Aliases:   []string{"cmp"},
	Usage:     "Calculates the GCD with every algorithm and checks that they agree",
	ArgsUsage: "[--] <n1> <n2> [n...]",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Output in JSON format`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			return usageError(ctx, "compare")
		}
		setLogLevel(ctx)
		operands, err := util.ParseOperands(ctx.Args())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		results, err := compareAll(operands)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		w := ctx.App.Writer
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Fprintln(w, string(j))
		} else {
			for _, r := range results {
				fmt.Fprintln(w, r.String())
			}
		}
		for _, r := range results[1:] {
			if r.GCD != results[0].GCD {
				return cli.NewExitError(errors.Wrapf(errDisagree, "%s = %d, %s = %d", results[0].Algorithm, results[0].GCD, r.Algorithm, r.GCD), 1)
			}
		}
		log.Infof("all %d algorithms agree", len(results))
		return nil
	},
}

func compareAll(operands []int32) ([]*gcd.Result, error) {
	results := make([]*gcd.Result, len(enums.Algorithms))
	var g errgroup.Group
	for i, alg := range enums.Algorithms {
		i, alg := i, alg
		g.Go(func() error {
			r, err := gcd.Calculate(alg, true, operands)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
