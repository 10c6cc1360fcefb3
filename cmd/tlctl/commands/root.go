package commands

import (
	"tasklink/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "tlctl",
		Usage:   "Tasklink CLI - manage task records",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Usage: "Tasklink server URL",
			},
		},
		Commands: []*cli.Command{
			TaskCommand(),
		},
	}
}
