// Package cmd implements the CLI command structure for task-cli.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/task-cli/internal/config"
	"github.com/nibzard/task-cli/internal/logging"
	"github.com/nibzard/task-cli/internal/storage"
	"github.com/nibzard/task-cli/internal/task"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the task-cli command line.
//
// User mistakes (bad arguments, unknown ids, empty descriptions) are
// reported on stdout and Run returns nil. A returned error is fatal: a
// corrupt task file, a config error, or a failed write.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	command, err := Parse(args)
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stdout, "Error: %s\n", usageErr.Message)
			return nil
		}
		return err
	}

	switch c := command.(type) {
	case HelpCommand:
		if c.Unknown != "" {
			fmt.Fprintf(stdout, "Unknown command: %s\n", c.Unknown)
		}
		printUsage(stdout)
		return nil
	case VersionCommand:
		fmt.Fprintf(stdout, "task-cli %s\n", Version)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	logger.Debug("Loaded config", "store_file", cfg.StoreFile, "files", cfg.Files)

	repo, err := storage.NewOSFileRepository(cfg.StoreFile, storage.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("opening task file: %w", err)
	}
	store := task.NewStore(repo, task.WithLogger(logger))

	return execute(store, command, stdout, logger)
}

// printUsage prints the usage text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  task-cli add <description>")
	fmt.Fprintln(w, "  task-cli update <id> <new-description>")
	fmt.Fprintln(w, "  task-cli delete <id>")
	fmt.Fprintln(w, "  task-cli mark-in-progress <id>")
	fmt.Fprintln(w, "  task-cli mark-done <id>")
	fmt.Fprintln(w, "  task-cli list [status]   # status: todo | in-progress | done")
	fmt.Fprintln(w, "  task-cli version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TASK_CLI_FILE        Path to the task file (default: ./tasks.json)")
	fmt.Fprintln(w, "  TASK_CLI_LOG_LEVEL   Diagnostic log level (debug|info|warn|error)")
	fmt.Fprintln(w, "  TASK_CLI_LOG_FORMAT  Diagnostic log format (text|json|logfmt)")
}

// discardLogger is used when callers do not supply one.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
