package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rmarek/img-rotator/internal/config"
	"github.com/rmarek/img-rotator/internal/logging"
	"github.com/rmarek/img-rotator/internal/orchestrator"
	"github.com/rmarek/img-rotator/internal/types"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "perform one backup run",
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return &exitError{code: types.ExitConfigError, err: err}
	}

	log, closeLog := openRunLogger(cfg)
	defer closeLog()

	_, err = orchestrator.New(cfg, log, nil, nil).Run(ctx)
	return err
}

// openRunLogger opens the per-day run log, falling back to the standard
// logger when the log directory is not usable yet (the precondition check
// will report that properly).
func openRunLogger(cfg *config.Config) (logging.Logger, func()) {
	level := logging.ParseLevel(cfg.Logging.Level)
	runLog, err := logging.OpenRunLog(cfg.LogDir(), time.Now(), level, nil)
	if err != nil {
		std := logging.StdLogger{}
		std.Warn("run log unavailable, logging to terminal only: %v", err)
		return std, func() {}
	}
	return runLog, func() { _ = runLog.Close() }
}
