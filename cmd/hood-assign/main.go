package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "hood-assign",
		Usage: "Assign homebuyers to neighborhoods",
		Commands: []*cli.Command{
			assignCmd,
			balanceCmd,
			genCmd,
			watchCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var assignCmd = &cli.Command{
	Name:    "assign",
	Usage:   "Give each buyer their most preferred eligible neighborhood",
	Aliases: []string{"a"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Required: true,
			Usage:    "specify the input record file",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output assignment file",
		},
		&cli.BoolFlag{
			Name:  "roster",
			Usage: "write per-neighborhood rosters instead of per-buyer lines",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "trace matching decisions",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doRun(ctx.String("in"), ctx.String("out"),
			false, ctx.Bool("roster"), ctx.Bool("verbose"))
	},
}

var balanceCmd = &cli.Command{
	Name:    "balance",
	Usage:   "Spread buyers across neighborhoods by fit score under equal capacity",
	Aliases: []string{"b"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Required: true,
			Usage:    "specify the input record file",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output assignment file",
		},
		&cli.BoolFlag{
			Name:  "roster",
			Usage: "write per-neighborhood rosters instead of per-buyer lines",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "trace matching decisions",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doRun(ctx.String("in"), ctx.String("out"),
			true, ctx.Bool("roster"), ctx.Bool("verbose"))
	},
}

var genCmd = &cli.Command{
	Name:    "gen",
	Usage:   "Generate a random record file for testing",
	Aliases: []string{"g"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output record file",
		},
		&cli.IntFlag{
			Name:  "hoods",
			Value: 4,
			Usage: "specify the neighborhood count",
		},
		&cli.IntFlag{
			Name:  "buyers",
			Value: 16,
			Usage: "specify the homebuyer count",
		},
		&cli.StringFlag{
			Name:  "keys",
			Value: "E,W,R",
			Usage: "specify the attribute keys, comma separated",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "specify the random seed",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			out    = ctx.String("out")
			hoods  = ctx.Int("hoods")
			buyers = ctx.Int("buyers")
			keys   = ctx.String("keys")
			seed   = ctx.Int64("seed")
		)
		if hoods <= 0 {
			return errors.New("invalid hoods")
		}
		if buyers <= 0 {
			return errors.New("invalid buyers")
		}
		return doGen(out, hoods, buyers, keys, seed)
	},
}

var watchCmd = &cli.Command{
	Name:    "watch",
	Usage:   "Re-run the assignment whenever the input file changes",
	Aliases: []string{"w"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Required: true,
			Usage:    "specify the input record file",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output assignment file",
		},
		&cli.BoolFlag{
			Name:  "balance",
			Usage: "use the balanced matcher",
		},
		&cli.BoolFlag{
			Name:  "roster",
			Usage: "write per-neighborhood rosters instead of per-buyer lines",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doWatch(ctx.Context, ctx.String("in"), ctx.String("out"),
			ctx.Bool("balance"), ctx.Bool("roster"))
	},
}
