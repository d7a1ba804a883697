package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/auth"
	"github.com/slperm/cli/internal/config"
	"github.com/slperm/cli/internal/logging"
	"github.com/slperm/cli/internal/output"
	"github.com/slperm/cli/internal/permission"
	"github.com/slperm/cli/internal/softlayer"
)

// session bundles what a single operation needs: an authenticated manager
// and somewhere to print.
type session struct {
	mgr     *permission.Manager
	client  *softlayer.Client
	printer *output.Printer
	logger  logr.Logger
}

// loadConfig loads the config named by --config (or the default locations)
// and applies the --endpoint override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.EndpointURL = endpoint
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := auth.Resolve(cfg); err != nil {
		return nil, err
	}

	timeout, err := cfg.GetTimeout()
	if err != nil {
		return nil, err
	}

	format := cfg.Output
	if cmd.Flags().Changed("output") || format == "" {
		format, _ = cmd.Flags().GetString("output")
	}
	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger(cmd)
	client := softlayer.New(cfg.EndpointURL, cfg.Username, cfg.ApiKey,
		softlayer.WithTimeout(timeout),
		softlayer.WithLogger(logger),
	)

	return &session{
		mgr:     permission.NewManager(client, logger),
		client:  client,
		printer: output.NewPrinter(cmd.OutOrStdout(), outFormat),
		logger:  logger,
	}, nil
}

// fault prints a remote fault as "<msg>: <code>, <string>" and swallows it.
// Any other error is returned so the process exits non-zero.
func (s *session) fault(msg string, err error) error {
	apiErr, ok := softlayer.AsAPIError(err)
	if !ok {
		return err
	}
	if apiErr.IsTransport() {
		s.logger.Error(err, "request did not reach the API", "endpoint", s.client.Endpoint())
	}
	s.printer.Printf("%s: %s, %s\n", msg, apiErr.FaultCode, apiErr.FaultString)
	return nil
}
