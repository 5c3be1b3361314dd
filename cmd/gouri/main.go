// Command gouri inspects and edits URIs from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghettovoice/gouri/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log.Def.ErrorContext(ctx, "gouri failed", "error", err)
		stop()
		os.Exit(1)
	}
}
