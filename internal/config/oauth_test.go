package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOAuthClient() *OAuthClientConfig {
	return &OAuthClientConfig{
		Installed: OAuthInstalled{
			ClientID:                "test-client-id.apps.googleusercontent.com",
			ProjectID:               "test-project",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "test-secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	}
}

func TestValidateOAuthClient_ValidConfig(t *testing.T) {
	assert.NoError(t, ValidateOAuthClient(validOAuthClient()))
}

func TestValidateOAuthClient_MissingClientID(t *testing.T) {
	cfg := validOAuthClient()
	cfg.Installed.ClientID = ""

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateOAuthClient_InvalidURL(t *testing.T) {
	cfg := validOAuthClient()
	cfg.Installed.AuthURI = "not-a-valid-url"

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateOAuthClient_EmptyRedirectURIs(t *testing.T) {
	cfg := validOAuthClient()
	cfg.Installed.RedirectURIs = []string{}

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadOAuthClientFromPath_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauthClient.json")
	contents := `{
  "installed": {
    "client_id": "test-client-id.apps.googleusercontent.com",
    "project_id": "test-project",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "test-secret",
    "redirect_uris": ["http://localhost"]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg, err := LoadOAuthClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "test-project", cfg.Installed.ProjectID)
	assert.Equal(t, []string{"http://localhost"}, cfg.Installed.RedirectURIs)
}

func TestLoadOAuthClientFromPath_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauthClient.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadOAuthClientFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse oauth client file")
}

func TestLoadOAuthClient_NotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := LoadOAuthClient("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oauthClient.missing.json not found")
}
