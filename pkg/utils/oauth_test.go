package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/jakechorley/scholarship-allocator/internal/config"
)

func TestTokenFileRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	loaded, err := LoadTokenFromFile("test")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, SaveTokenToFile("test", token))

	info, err := os.Stat(filepath.Join(home, tokenDirName, "token-test.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFilePerms), info.Mode().Perm())

	loaded, err = LoadTokenFromFile("test")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.True(t, token.Expiry.Equal(loaded.Expiry))

	require.NoError(t, DeleteTokenFile("test"))
	require.NoError(t, DeleteTokenFile("test"))

	loaded, err = LoadTokenFromFile("test")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadTokenFromFile_Corrupt(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, tokenDirName)
	require.NoError(t, os.MkdirAll(dir, tokenDirPerms))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token-default.json"), []byte("{"), tokenFilePerms))

	_, err := LoadTokenFromFile("")
	assert.ErrorContains(t, err, "failed to parse token file")
}

func TestMissingScopes(t *testing.T) {
	assert.Empty(t, missingScopes("openid "+ScopeSheets))
	assert.Equal(t, []string{ScopeSheets}, missingScopes("https://www.googleapis.com/auth/gmail.send"))
	assert.Equal(t, []string{ScopeSheets}, missingScopes(""))
}

func TestGetOAuthConfig(t *testing.T) {
	oauthCfg := &config.OAuthClientConfig{
		Installed: config.OAuthInstalled{
			ClientID:                "client.apps.googleusercontent.com",
			ProjectID:               "project",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	}

	cfg, err := GetOAuthConfig(oauthCfg)
	require.NoError(t, err)

	assert.Equal(t, "client.apps.googleusercontent.com", cfg.ClientID)
	assert.Equal(t, []string{ScopeSheets}, cfg.Scopes)
	assert.Equal(t, "http://localhost:3000/oauth/callback", cfg.RedirectURL)
}
