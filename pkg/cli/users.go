package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resource-catalog/pkg/cli/client"
	"resource-catalog/pkg/config"
)

// RegisterUser creates a gateway user and saves the API key
func (a *App) RegisterUser(ctx context.Context, w io.Writer, email string) error {
	apiClient, err := a.getClientForRegistration()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	user, err := apiClient.CreateUser(ctx, email)
	if err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			return fmt.Errorf("gateway database is not migrated; restart the api server so it can apply the schema: %w", err)
		}
		return err
	}

	a.cfg.CLI.APIKey = user.APIKey
	if err := config.Save(a.cfg); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	a.client = client.NewClient(a.cfg.CLI.BaseURL, user.APIKey)

	fmt.Fprintln(w, "✓ User registered successfully!")
	fmt.Fprintf(w, "  Email: %s\n", user.Email)
	fmt.Fprintf(w, "  User ID: %s\n", user.ID.String())
	fmt.Fprintln(w, "  API key saved to config automatically")
	fmt.Fprintln(w, "\n⚠️  Save this API key securely (it won't be shown again):")
	fmt.Fprintf(w, "  %s\n", user.APIKey)

	return nil
}

// WhoAmI prints the user owning the configured API key
func (a *App) WhoAmI(ctx context.Context, w io.Writer) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}
	user, err := apiClient.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%s)\n", user.Email, user.ID.String())
	return nil
}
