package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// version will be set at build time
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(newApp)
	root.Version = version
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
