// Command gardenplots prices the fences of a garden map.
//
// Usage:
//
//	gardenplots [flags] [file]
//
// The map is read from file, or from standard input when file is absent or
// "-". The command prints the fence price ("part 1") and the bulk-discount
// price ("part 2"); --regions adds a per-region table.
//
// Environment:
//
//	GARDENPLOTS_LOG_LEVEL   debug|info|warn|error (default info)
//	GARDENPLOTS_LOG_FORMAT  auto|text|json (default auto: text on a terminal)
//
// Flags override the environment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cfg, err := LoadConfig()
	if err == nil {
		err = newRootCmd(cfg).ExecuteContext(ctx)
	}
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
