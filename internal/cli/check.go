package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rmarek/img-rotator/internal/config"
	"github.com/rmarek/img-rotator/internal/logging"
	"github.com/rmarek/img-rotator/internal/orchestrator"
	"github.com/rmarek/img-rotator/internal/types"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "run the precondition checks without touching anything",
		Action: checkAction,
	}
}

func checkAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return &exitError{code: types.ExitConfigError, err: err}
	}

	if err := orchestrator.New(cfg, logging.StdLogger{}, nil, nil).Check(); err != nil {
		return err
	}

	fmt.Printf("ok: %s is ready for backup runs\n", cfg.System.Identity)
	return nil
}
