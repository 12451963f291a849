// Package cli defines the img-rotator command surface.
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/rmarek/img-rotator/internal/version"
)

// Commands:
// run
//   perform one backup run (check, lock, sweep, rotate, copy, summarize)
//
// daemon
//   run on the configured cron schedule with config hot reload
//
// check
//   run the precondition gates only; touches nothing on disk
//
// version
//   show version

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "img-rotator",
		Usage:   "scheduled full-device image backups with two-slot rotation",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
				Value:   "config.yaml",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			daemonCommand(),
			checkCommand(),
			versionCommand(),
		},
	}

	return app.Run(ctx, args)
}

func configPath(cmd *cli.Command) string {
	if v := cmd.String("config"); v != "" {
		return v
	}
	root := cmd.Root()
	if root != nil {
		return root.String("config")
	}
	return "config.yaml"
}
