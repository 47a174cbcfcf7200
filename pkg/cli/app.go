package cli

import (
	"fmt"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/client"
	"resource-catalog/pkg/cli/logger"
	"resource-catalog/pkg/cli/tui"
	"resource-catalog/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg    *config.Config
	client *client.Client
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("gateway base URL not configured")
	}
	if a.cfg.CLI.APIKey == "" {
		return nil, fmt.Errorf("API key not configured (run 'register <email>' first)")
	}

	a.client = client.NewClient(a.cfg.CLI.BaseURL, a.cfg.CLI.APIKey)
	return a.client, nil
}

// getClientForRegistration returns an HTTP client without API key (for registration)
func (a *App) getClientForRegistration() (*client.Client, error) {
	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("gateway base URL not configured")
	}
	return client.NewClient(a.cfg.CLI.BaseURL, ""), nil
}

// newStore builds a catalog store over the gateway client.
// Extra options are applied after the defaults.
func (a *App) newStore(extra ...catalog.Option) (*catalog.Store, error) {
	apiClient, err := a.getClient()
	if err != nil {
		return nil, err
	}

	view, err := catalog.ParseViewMode(a.cfg.CLI.DefaultView)
	if err != nil {
		return nil, err
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	opts := []catalog.Option{
		catalog.WithSession(catalog.NewFileSession(dir)),
		catalog.WithBucket(a.cfg.Storage.Bucket),
		catalog.WithView(view),
		catalog.WithLogger(logger.L()),
	}
	return catalog.NewStore(apiClient, append(opts, extra...)...), nil
}

// Run starts the interactive TUI
func (a *App) Run() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if _, err := logger.Init(dir, a.cfg.Log.Level); err != nil {
		return err
	}
	defer logger.CloseLog()

	alerts := tui.NewProgramAlerter()
	store, err := a.newStore(catalog.WithAlerter(alerts))
	if err != nil {
		return err
	}

	model := tui.NewRootModel(store, a.passwordChecker())
	p := tea.NewProgram(model, tea.WithAltScreen())
	alerts.Attach(p)

	logger.Log("starting TUI against %s", a.cfg.CLI.BaseURL)
	if _, err := p.Run(); err != nil {
		logger.LogError(err, "TUI exited with error")
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
