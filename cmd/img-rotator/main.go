package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rmarek/img-rotator/internal/cli"
)

func main() {
	// Graceful shutdown: a signal cancels the context; an interrupted run
	// exits non-zero with no partial-state cleanup.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(int(cli.ExitCodeFor(err)))
	}
}
