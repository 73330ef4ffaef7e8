// Command calrender renders calgrid month grids to PNG files and resolves
// taps against a month layout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
