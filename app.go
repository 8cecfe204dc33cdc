// Package main is the entry point for the pid application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/pid/model"
	"github.com/thirukguru/pid/service/cpuinfo"
	"github.com/thirukguru/pid/service/flag"
	"github.com/thirukguru/pid/service/output"
	"github.com/thirukguru/pid/service/processor"
	"github.com/thirukguru/pid/service/revision"
	"github.com/thirukguru/pid/shared/logger"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Stdout); err != nil {
		var exitErr *flag.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		flagService.PrintUsage(w)
		return err
	}

	log, err := logger.New(flags.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	return execute(w, flagService, flags, log)
}

func execute(w io.Writer, flagService flag.Service, flags model.Flags, log *zap.Logger) error {
	if flags.Version {
		versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
		fmt.Fprintf(w, "pid %s (commit %s, built %s)\n", versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		return nil
	}

	if flags.Help || len(flags.Args) != 1 {
		flagService.PrintUsage(w)
		return nil
	}

	mode := model.Mode(flags.Mode)
	if !output.Supports(mode) {
		log.Debug("Unrecognized mode", zap.String("mode", flags.Mode))
		flagService.PrintUsage(w)
		return &flag.ExitError{Code: 2}
	}
	log.Debug("Selected mode", zap.String("mode", flags.Mode))

	outputService := output.NewService(w)
	if mode == model.ModeCatalog {
		return outputService.Render(mode, model.RenderInput{Info: model.NewInfoMap(), Platform: model.UnknownPlatform})
	}

	path := cpuinfo.ResolvePath(flags.CPUInfoPath)
	info, err := cpuinfo.NewService(log).Load(path)
	if err != nil {
		return fmt.Errorf("failed to load cpu info: %w", err)
	}

	input := model.RenderInput{
		Info:     info,
		Platform: revision.NewService(log).DecodeInfo(info),
	}

	if output.NeedsProcessor(mode) {
		summary, err := processor.NewService(log).Summarize(path)
		if err != nil {
			return fmt.Errorf("failed to summarize processors: %w", err)
		}
		input.Processor = &summary
	}

	return outputService.Render(mode, input)
}
