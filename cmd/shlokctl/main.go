// Command shlokctl is the operator CLI: schema migrations, manual
// publication and back-fill, inspection, orphan cleanup and admin tokens.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/daily-shlok/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cli.DefaultRuntime()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "shlokctl:", err)
		stop()
		os.Exit(1)
	}
}
