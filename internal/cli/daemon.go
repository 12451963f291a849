package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/rmarek/img-rotator/internal/config"
	"github.com/rmarek/img-rotator/internal/logging"
	"github.com/rmarek/img-rotator/internal/orchestrator"
	"github.com/rmarek/img-rotator/internal/scheduler"
	"github.com/rmarek/img-rotator/internal/types"
)

func daemonCommand() *cli.Command {
	return &cli.Command{
		Name:   "daemon",
		Usage:  "run backups on the configured cron schedule",
		Action: daemonAction,
	}
}

func daemonAction(ctx context.Context, cmd *cli.Command) error {
	path := configPath(cmd)

	cfg, err := config.Load(path)
	if err != nil {
		return &exitError{code: types.ExitConfigError, err: err}
	}

	// Each run gets its own per-day log file; the scheduler itself logs to
	// the terminal.
	runOnce := func(ctx context.Context, cfg *config.Config) error {
		log, closeLog := openRunLogger(cfg)
		defer closeLog()
		_, err := orchestrator.New(cfg, log, nil, nil).Run(ctx)
		return err
	}

	sched := scheduler.New(path, cfg, logging.StdLogger{}, runOnce)
	return sched.Start(ctx)
}
