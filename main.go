// Package main implements a converter of NES Code/Data Log files into
// annotation files for disassembler and labeling tools
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nescdl2info/internal/cli"
	"github.com/retroenv/nescdl2info/internal/config"
	"github.com/retroenv/nescdl2info/internal/options"
	"github.com/retroenv/nescdl2info/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	if err := convert(logger, opts); err != nil {
		logger.Fatal("Conversion failed", log.Err(err))
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("nescdl2info",
		log.String("version", buildinfo.Version(version, commit, date)))
}

func convert(logger *log.Logger, opts options.Program) error {
	var writer io.WriteCloser = os.Stdout
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating file %s: %w", opts.Output, err)
		}
		writer = file
	}

	if err := pipeline.New(logger).Execute(opts, writer); err != nil {
		return err
	}

	if opts.Output != "" {
		if err := writer.Close(); err != nil {
			return fmt.Errorf("closing file %s: %w", opts.Output, err)
		}
	}
	return nil
}
