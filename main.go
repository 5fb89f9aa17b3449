// Copyright © 2022 The Gomon Project.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/zosmac/gocore"
	"github.com/zosmac/proctree/config"
	"github.com/zosmac/proctree/process"
	"github.com/zosmac/proctree/tree"
)

// exit codes
const (
	exitOK          = 0
	exitUnavailable = 1 // process information source could not be read
	exitNoData      = 2 // no process could be read, or the root is not running
	exitConfig      = 3 // invalid configuration
)

// errNoRoot reports a root pid that is not a running process.
var errNoRoot = errors.New("root process not found")

// main
func main() {
	gocore.Main(Main)
}

// Main builds and displays the process tree.
func Main(ctx context.Context) error {
	if code := execute(ctx, os.Stdout); code != exitOK {
		os.Exit(code)
	}
	return nil
}

// execute configures the command, lists the process tree to w, and returns the exit status.
func execute(ctx context.Context, w io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Error("invalid configuration", helpers.Error(err))
		return exitConfig
	}
	initLogger(cfg.LogLevel)

	src, err := process.Default(cfg.Procfs)
	if err != nil {
		err = fmt.Errorf("%w: %w", process.ErrUnavailable, err)
	} else {
		err = run(ctx, src, process.Pid(cfg.Root), cfg.Workers, w)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoRoot):
		logger.L().Warning("root process not found", helpers.Int("root", cfg.Root))
	case errors.Is(err, process.ErrEmpty):
		logger.L().Error("no process information retrieved", helpers.String("procfs", cfg.Procfs))
	default:
		logger.L().Error("could not list processes",
			helpers.String("procfs", cfg.Procfs),
			helpers.Error(err))
	}
	return exitCode(err)
}

// initLogger directs diagnostics to stderr, leaving stdout for the listing.
func initLogger(level string) {
	logger.InitLogger("pretty")
	logger.L().SetWriter(os.Stderr)
	if err := logger.L().SetLevel(level); err != nil {
		logger.L().Warning("invalid log level", helpers.String("level", level), helpers.Error(err))
	}
}

// run collects the processes of src and writes the tree below root to w.
func run(ctx context.Context, src process.Source, root process.Pid, workers int, w io.Writer) error {
	logger.L().Info("gathering process information")
	snapshot, err := process.Collect(ctx, src, workers)
	if err != nil {
		return err
	}
	if len(snapshot.Skipped()) > 0 {
		logger.L().Debug("processes skipped",
			helpers.Int("unreadable", snapshot.Count(process.Unreadable)),
			helpers.Int("inconsistent", snapshot.Count(process.Inconsistent)),
			helpers.Error(snapshot.Err()))
	}
	if snapshot.Empty() {
		return process.ErrEmpty
	}

	logger.L().Info("building and printing process tree",
		helpers.Int("processes", len(snapshot.Records)))
	tr := tree.New(snapshot.Records)
	header, ok := tr.Header(root)
	if !ok {
		return fmt.Errorf("%w: pid %d", errNoRoot, root)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	for line := range tr.Lines(root) {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

// exitCode maps a failed run to the command's exit status.
func exitCode(err error) int {
	if errors.Is(err, process.ErrEmpty) || errors.Is(err, errNoRoot) {
		return exitNoData
	}
	return exitUnavailable
}
