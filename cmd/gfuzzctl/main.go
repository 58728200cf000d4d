package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gfuzzctl",
		Usage: "state-diversity fuzzing co-processor control plane",
		Commands: []*cli.Command{
			&identifyCmd,
			&planCmd,
			&replayCmd,
			&statsCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
