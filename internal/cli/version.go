package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rmarek/img-rotator/internal/version"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "show version",
		Action:  versionAction,
	}
}

func versionAction(_ context.Context, cmd *cli.Command) error {
	fmt.Printf("img-rotator version %s\n", version.Version)
	return nil
}
