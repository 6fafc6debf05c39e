// Command nanoid generates short random identifiers.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hustcer/nanoid/cmd"
)

func main() {
	// Cancel long batches and lock waits on Ctrl+C.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
