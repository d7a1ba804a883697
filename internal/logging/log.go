// Package logging attaches a verbosity-controlled logr.Logger to cobra
// command contexts.
package logging

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type loggerKey struct{}

// SetLogger returns a copy of ctx carrying logger.
func SetLogger(ctx context.Context, logger *logr.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the command's logger, or a discarding logger when
// SetupLogger has not run.
func GetLogger(cmd *cobra.Command) logr.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if v, ok := ctx.Value(loggerKey{}).(*logr.Logger); ok {
			return *v
		}
	}
	return logr.Discard()
}

// AddLoggerFlags registers --log-verbosity and --log-file on flags.
func AddLoggerFlags(flags *pflag.FlagSet) {
	flags.Int("log-verbosity", 0, "log verbosity. Higher value means more log")
	flags.String("log-file", "", "output logs to specified file")
}

// SetupLogger builds the logger from the log flags. Logs go to stderr so
// they never mix with command output. cleanup is non-nil when a log file
// was opened.
func SetupLogger(cmd *cobra.Command) (cleanup func(), err error) {
	if ctx := cmd.Context(); ctx != nil {
		if _, ok := ctx.Value(loggerKey{}).(*logr.Logger); ok {
			return nil, nil
		}
	}
	verbosity, err := cmd.Flags().GetInt("log-verbosity")
	if err != nil {
		return nil, err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return nil, err
	}
	var _logger stdr.StdLogger
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return nil, err
		}
		_logger = log.New(f, "", log.LstdFlags)
		cleanup = func() {
			f.Close()
		}
	} else {
		_logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	}
	logger := stdr.New(_logger)
	stdr.SetVerbosity(verbosity)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(SetLogger(ctx, &logger))
	return cleanup, nil
}
