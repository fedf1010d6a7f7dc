package subcmd

import (
	"encoding/json"
	"fmt"

	pb "github.com/but80/gcd825/pb/gcd"
	"github.com/golang/protobuf/proto"
	"github.com/urfave/cli"
)

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps results saved by calc --protobuf --output",
	ArgsUsage: "<filename>",
	Flags: withLogFlags(
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return usageError(ctx, "dump")
		}
		setLogLevel(ctx)
		result, err := pb.LoadFile(ctx.Args()[0])
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
		} else {
			fmt.Fprint(w, proto.MarshalTextString(result))
		}
		return nil
	},
}
