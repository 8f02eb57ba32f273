// Package main implements a binary to SystemVerilog memory initialization converter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/svmemgen/internal/cli"
	"github.com/retroenv/svmemgen/internal/config"
	"github.com/retroenv/svmemgen/internal/pipeline"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts.Quiet)
			if msg := usageErr.Error(); msg != "" {
				logger.Error(msg)
			}
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts.Quiet)

	if err := pipeline.New(logger).Execute(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			os.Exit(1)
		}
		logger.Error("Conversion failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, quiet bool) {
	if quiet {
		return
	}
	logger.Info("svmemgen", log.String("version", buildinfo.Version(version, commit, date)))
}
