package subcmd

import (
	"encoding/json"
	"fmt"

	"github.com/but80/gcd825/gcd"
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/log"
	"github.com/but80/gcd825/gcd/util"
	"github.com/golang/protobuf/proto"
	"github.com/urfave/cli"
)

var Calc = cli.Command{
	Name:      "calc",
	Aliases:   []string{"c"},
	Usage:     "Calculates the GCD of two or more integers",
	ArgsUsage: "[--] <n1> <n2> [n...]",
	Flags: withLogFlags(
		algorithmFlag,
		cli.BoolFlag{
			Name:  "time, t",
			Usage: `Measure elapsed time in milliseconds`,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Output in JSON format`,
		},
		cli.BoolFlag{
			Name:  "protobuf, p",
			Usage: `Output in protobuf`,
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: `Write protobuf output to the file instead of stdout`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			return usageError(ctx, "calc")
		}
		setLogLevel(ctx)
		alg, err := enums.ParseAlgorithm(ctx.String("algorithm"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		operands, err := util.ParseOperands(ctx.Args())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debugf("algorithm: %s", alg)
		log.Debugf("operands: %s", util.JoinInts(operands, ", "))
		result, err := gcd.Calculate(alg, ctx.Bool("time"), operands)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		w := ctx.App.Writer
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Fprintln(w, string(j))
		} else if ctx.Bool("protobuf") {
			if file := ctx.String("output"); file != "" {
				if err := result.ToPB().WriteFile(file); err != nil {
					return cli.NewExitError(err, 1)
				}
				log.Infof("written to %s", file)
				return nil
			}
			b, err := proto.Marshal(result.ToPB())
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Fprint(w, string(b))
		} else {
			fmt.Fprintln(w, result.String())
		}
		return nil
	},
}
