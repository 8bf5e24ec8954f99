package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/internal/config"
	"github.com/jakechorley/scholarship-allocator/pkg/clients/sheetsclient"
)

// AppContext holds the application dependencies shared across all commands.
// Config and the Sheets client are created on first use so that commands
// working on local files need neither a config file nor OAuth credentials
type AppContext struct {
	Env        string
	ConfigPath string
	Logger     *zap.Logger
	Ctx        context.Context

	cfg          *config.Config
	sheetsClient *sheetsclient.Client
}

// Config loads the configuration from --config, or from the environment's default location
func (app *AppContext) Config() (*config.Config, error) {
	if app.cfg != nil {
		return app.cfg, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if app.ConfigPath != "" {
		cfg, err = config.LoadFromPath(app.ConfigPath)
	} else {
		cfg, err = config.Load(app.Env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger.Debug("Configuration loaded successfully", zap.String("id_column", cfg.IDColumn))
	app.cfg = cfg
	return cfg, nil
}

// SetConfig replaces the loaded configuration
func (app *AppContext) SetConfig(cfg *config.Config) {
	app.cfg = cfg
}

// SheetsClient returns the Google Sheets client, running the OAuth flow on first use
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClient(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheetsClient = client
	return client, nil
}
