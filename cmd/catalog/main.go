// Package main provides the command-line entry point for the book catalog.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"

	"github.com/listenupapp/bookcatalog/internal/catalog"
	"github.com/listenupapp/bookcatalog/internal/config"
	"github.com/listenupapp/bookcatalog/internal/di"
	"github.com/listenupapp/bookcatalog/internal/errors"
	"github.com/listenupapp/bookcatalog/internal/logger"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// newApp builds the CLI. Command output goes to out; logs and usage errors to errOut.
func newApp(out, errOut io.Writer) *cli.App {
	var injector *do.RootScope

	app := cli.NewApp()
	app.Name = "catalog"
	app.Usage = "Query and reshape an in-memory book catalog."
	app.Writer = out
	app.ErrWriter = errOut
	// Domain errors satisfy cli.ExitCoder; hand them back to main instead of
	// letting cli exit the process.
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: config.FlagEnv, Usage: "environment (development, staging, production)"},
		&cli.StringFlag{Name: config.FlagLogLevel, Usage: "log level (debug, info, warn, error)"},
		&cli.StringFlag{Name: config.FlagLogFormat, Usage: "log format (json, pretty)"},
		&cli.StringFlag{Name: config.FlagEnvFile, Value: ".env", Usage: "path to .env file"},
		&cli.StringFlag{Name: config.FlagSeedFile, Usage: "JSON array of records to load at startup"},
		&cli.BoolFlag{Name: config.FlagDefaultSeed, Usage: "load the built-in starter records"},
	}
	app.Before = func(ctx *cli.Context) error {
		injector = di.NewContainer(ctx)
		return di.Bootstrap(injector)
	}
	app.After = func(_ *cli.Context) error {
		if injector == nil {
			return nil
		}
		if err := injector.Shutdown(); err != nil {
			if log, invokeErr := do.Invoke[*logger.Logger](injector); invokeErr == nil {
				log.WithError(err).Error("Shutdown error")
			}
		}
		return nil
	}

	cat := func() *catalog.Catalog {
		return do.MustInvoke[*catalog.Catalog](injector)
	}
	app.Commands = commands(cat)

	return app
}

// exitCode maps domain error codes onto process exit statuses.
func exitCode(err error) int {
	var domainErr *errors.Error
	if errors.As(err, &domainErr) {
		return domainErr.ExitCode()
	}
	return 1
}
