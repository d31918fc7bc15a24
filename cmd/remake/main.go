// Package main is the entry point for the remake build tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/cmd/remake/commands"
	"go.trai.ch/remake/internal/app"
	_ "go.trai.ch/remake/internal/wiring"
)

// ComponentProvider is a function that returns the application components
// and a cleanup to run once the command finished.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.App.Close(); err != nil {
			c.Logger.Error(err)
		}
	}, nil
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetInput(stdin)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
