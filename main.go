package main

import (
	"os"

	"github.com/but80/gcd825/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gcd825"
	app.Version = version
	app.Usage = "Calculates the greatest common divisor by the Euclidean or binary algorithm"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "gcd825"

	app.Commands = []cli.Command{
		subcmd.Calc,
		subcmd.Compare,
		subcmd.Bench,
		subcmd.Dump,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
