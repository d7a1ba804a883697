package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slperm/cli/internal/auth"
	"github.com/slperm/cli/internal/config"
)

func TestLoginCmd_Initialized(t *testing.T) {
	for _, name := range []string{"username", "api-key", "skip-verify"} {
		if loginCmd.Flags().Lookup(name) == nil {
			t.Errorf("loginCmd should have %q flag", name)
		}
	}
}

func TestLogin_VerifiesAndStores(t *testing.T) {
	api := newFakeAPI(t)
	api.bodies["/SoftLayer_Account/getPermissionRoles.json"] = `[]`

	out, err := execute(t, "login", "--username", "SL999", "--api-key", "newkey")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as SL999.")
	assert.Equal(t, []string{"/SoftLayer_Account/getPermissionRoles.json"}, api.paths())

	creds, err := auth.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "SL999", creds.Username)
	assert.Equal(t, "newkey", creds.APIKey)
	// The test endpoint is not the default one, so it is stored too.
	assert.NotEmpty(t, creds.EndpointURL)
}

func TestLogin_RejectedCredentialsAreNotStored(t *testing.T) {
	api := newFakeAPI(t)
	api.faults["/SoftLayer_Account/getPermissionRoles.json"] = `{"error":"Invalid API token.","code":"SoftLayer_Exception_InvalidCredentials"}`

	_, err := execute(t, "login", "--username", "SL999", "--api-key", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API token.")
	assert.False(t, auth.HasCredentials())
}

func TestLogin_SkipVerify(t *testing.T) {
	api := newFakeAPI(t)

	_, err := execute(t, "login", "--username", "SL999", "--api-key", "k", "--skip-verify")
	require.NoError(t, err)
	assert.Empty(t, api.paths())
	assert.True(t, auth.HasCredentials())
}

func TestLogout(t *testing.T) {
	newFakeAPI(t)
	require.NoError(t, auth.StoreCredentials(auth.StoredCredentials{Username: "SL1", APIKey: "k"}))

	cfg := config.DefaultConfig()
	cfg.Username = "SL1"
	cfg.ApiKey = "k"
	require.NoError(t, cfg.Save())

	out, err := execute(t, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out successfully.\n", out)
	assert.False(t, auth.HasCredentials())

	path, err := config.GlobalConfigPath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "api_key")
}

func TestLogout_NotAuthenticated(t *testing.T) {
	newFakeAPI(t)

	out, err := execute(t, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Not currently authenticated.\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "slperm dev")
}
