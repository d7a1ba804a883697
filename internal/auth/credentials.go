package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/slperm/cli/internal/config"
)

// ErrNotAuthenticated is returned when no username/API key pair is available.
var ErrNotAuthenticated = errors.New("not authenticated: run 'slperm login' or set SL_USERNAME and SL_API_KEY")

// StoredCredentials represents the locally stored API credentials.
type StoredCredentials struct {
	// Username is the SoftLayer API username (e.g. SL123456).
	Username string `json:"username"`

	// APIKey is the API key generated for Username.
	APIKey string `json:"api_key"`

	// EndpointURL is the endpoint the credentials were stored for, if any.
	EndpointURL string `json:"endpoint_url,omitempty"`

	// StoredAt is when the credentials were written.
	StoredAt time.Time `json:"stored_at"`
}

// Valid returns true if both username and API key are present.
func (c *StoredCredentials) Valid() bool {
	return c.Username != "" && c.APIKey != ""
}

// CredentialsDir returns the path to the credentials directory (~/.slperm).
func CredentialsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".slperm"), nil
}

// CredentialsPath returns the path to the credentials file (~/.slperm/credentials).
func CredentialsPath() (string, error) {
	dir, err := CredentialsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials"), nil
}

// StoreCredentials saves the credentials to the local file system.
// Creates the directory if it doesn't exist and sets restrictive permissions.
func StoreCredentials(creds StoredCredentials) error {
	if !creds.Valid() {
		return fmt.Errorf("username and API key are required")
	}

	path, err := CredentialsPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	if creds.StoredAt.IsZero() {
		creds.StoredAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	return nil
}

// LoadCredentials loads the stored credentials from the local file system.
// Returns ErrNotAuthenticated if no credentials have been stored.
func LoadCredentials() (*StoredCredentials, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds StoredCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	if !creds.Valid() {
		return nil, ErrNotAuthenticated
	}

	return &creds, nil
}

// ClearCredentials removes the stored credentials file.
func ClearCredentials() error {
	path, err := CredentialsPath()
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}

	return nil
}

// HasCredentials returns true if credentials file exists.
func HasCredentials() bool {
	path, err := CredentialsPath()
	if err != nil {
		return false
	}

	_, err = os.Stat(path)
	return err == nil
}

// Resolve fills in cfg's username and API key. Values already present in
// cfg (from config files or SL_* variables) win; otherwise the stored
// credentials are used. A stored endpoint only applies when cfg still has
// the default one.
func Resolve(cfg *config.Config) error {
	if cfg.IsAuthenticated() {
		return nil
	}

	creds, err := LoadCredentials()
	if err != nil {
		return err
	}

	if cfg.Username == "" {
		cfg.Username = creds.Username
	}
	if cfg.ApiKey == "" {
		cfg.ApiKey = creds.APIKey
	}
	if creds.EndpointURL != "" && cfg.EndpointURL == config.DefaultEndpoint {
		cfg.EndpointURL = creds.EndpointURL
	}
	return nil
}
