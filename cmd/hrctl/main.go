package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/adamanr/hrdesk/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cli.Execute(ctx, cli.NewRootCommand(cli.Options{}), os.Stderr)
	stop()
	os.Exit(code)
}
