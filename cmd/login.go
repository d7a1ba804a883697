package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/auth"
	"github.com/slperm/cli/internal/config"
	"github.com/slperm/cli/internal/logging"
	"github.com/slperm/cli/internal/prompt"
	"github.com/slperm/cli/internal/softlayer"
)

var (
	loginUsername   string
	loginAPIKey     string
	loginSkipVerify bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store SoftLayer API credentials",
	Long: `Store a SoftLayer API username and key in ~/.slperm/credentials.

Values not given as flags are prompted for. Unless --skip-verify is set the
credentials are checked by listing the account's roles before they are
stored.

Credentials from SL_USERNAME / SL_API_KEY or a .slpermrc file take
precedence over stored ones.

Examples:
  slperm login
  slperm login --username SL123456 --api-key abcdef
  slperm login --endpoint https://api.service.softlayer.com/rest/v3.1`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "SoftLayer API username")
	loginCmd.Flags().StringVarP(&loginAPIKey, "api-key", "k", "", "SoftLayer API key")
	loginCmd.Flags().BoolVar(&loginSkipVerify, "skip-verify", false, "Store the credentials without checking them")
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	username := loginUsername
	if username == "" {
		username, err = prompt.Input("SoftLayer username", cfg.Username)
		if err != nil {
			return err
		}
	}
	apiKey := loginAPIKey
	if apiKey == "" {
		apiKey, err = prompt.Password("SoftLayer API key")
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if !loginSkipVerify {
		timeout, err := cfg.GetTimeout()
		if err != nil {
			return err
		}
		client := softlayer.New(cfg.EndpointURL, username, apiKey,
			softlayer.WithTimeout(timeout),
			softlayer.WithLogger(logging.GetLogger(cmd)),
		)
		if _, err := client.AccountRoles(cmd.Context()); err != nil {
			if apiErr, ok := softlayer.AsAPIError(err); ok && apiErr.IsAuthError() {
				return fmt.Errorf("credentials rejected by %s: %s", client.Endpoint(), apiErr.FaultString)
			}
			return fmt.Errorf("failed to verify credentials: %w", err)
		}
	}

	creds := auth.StoredCredentials{
		Username: username,
		APIKey:   apiKey,
	}
	if cfg.EndpointURL != config.DefaultEndpoint {
		creds.EndpointURL = cfg.EndpointURL
	}
	if err := auth.StoreCredentials(creds); err != nil {
		return err
	}

	path, _ := auth.CredentialsPath()
	fmt.Fprintf(out, "Logged in as %s.\n", username)
	fmt.Fprintf(out, "Credentials stored in %s\n", path)
	return nil
}
