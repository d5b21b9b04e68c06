package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"tasnim.dev/elbv2-dump/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, cmd.Describe(err))
	}
	stop()
	os.Exit(cmd.ExitCode(err))
}
