package main

import (
	"fmt"
	"os"

	"github.com/alok944/event-horizon-college-hub/config"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "horizonctl"
	app.Usage = "Inspect and seed the college tech event catalog"
	app.Commands = []cli.Command{
		List,
		Seed,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func withConfigFlags(flags ...cli.Flag) []cli.Flag {
	return append(config.Flags(), flags...)
}
