package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// main is the CLI entry point. Like the desktop binary it returns through runMain so
// deferred cleanup runs before os.Exit.
func main() {
	os.Exit(runMain())
}

func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := &cliOptions{}
	defer opts.close()

	if err := newRootCmd(opts).ExecuteContext(ctx); err != nil {
		var notice noticeError
		if !errors.As(err, &notice) {
			fmt.Fprintln(os.Stderr, err)
		}
		return exitCode(err)
	}
	return exitCode(nil)
}
