package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"klassenbote/internal/cmd"
)

func main() {
	var err error

	ctl := cli.App{
		Name:    cmd.AppName,
		Version: cmd.AppVersion,
		Usage:   "Fetches the school schedule and posts it to the class chat",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "The path for storage",
				Value: cmd.DataPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Output debug messages",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Do not send messages and do not persist anything",
			},
		},
		Commands: []cli.Command{
			cmd.FetchCmd,
			cmd.PostCmd,
			cmd.ChatsCmd,
			cmd.AuthorizeCmd,
			cmd.ServerCmd,
		},
	}

	err = ctl.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
