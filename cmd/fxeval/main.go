package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/govalues/fixed/cmd/fxeval/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
