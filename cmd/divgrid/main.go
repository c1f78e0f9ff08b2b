package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"divgrid/internal/cli"
)

// Same entrypoint as the module root, installable with
// go install divgrid/cmd/divgrid.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
