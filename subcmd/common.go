package subcmd

import (
	"github.com/but80/gcd825/gcd/enums"
	"github.com/but80/gcd825/gcd/log"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

var algorithmFlag = cli.StringFlag{
	Name:   "algorithm, a",
	Usage:  `Algorithm ` + enums.AlgorithmList(),
	Value:  "euclidean",
	EnvVar: "GCD825_ALGORITHM",
}

func withLogFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, logFlags...)
}

func setLogLevel(ctx *cli.Context) {
	log.SetLevelByFlags(ctx.Bool("debug"), ctx.Bool("quiet"), ctx.Bool("silent"))
}

func usageError(ctx *cli.Context, name string) error {
	cli.ShowCommandHelp(ctx, name)
	return cli.NewExitError("", 1)
}
