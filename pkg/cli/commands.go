package cli

import (
	"fmt"

	"resource-catalog/pkg/config"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the resource-catalog command tree.
// Without a subcommand it starts the TUI.
func NewRootCommand() *cobra.Command {
	var app *App

	rootCmd := &cobra.Command{
		Use:   "resource-catalog",
		Short: "Browse and manage a catalog of links, documents and files",
		Long: `A terminal client for the resource catalog gateway.
Run without arguments to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			app = NewApp(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}

	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ListResources(cmd.Context(), cmd.OutOrStdout(), listOpts)
		},
	}
	listCmd.Flags().StringVarP(&listOpts.Search, "search", "s", "", "filter by title, description or tag")
	listCmd.Flags().StringVarP(&listOpts.Category, "category", "c", "", "filter by category name or id")
	listCmd.Flags().BoolVar(&listOpts.JSON, "json", false, "print JSON")

	var showJSON bool
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ShowResource(cmd.Context(), cmd.OutOrStdout(), args[0], showJSON)
		},
	}
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print JSON")

	var categoriesJSON bool
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories grouped by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ListCategories(cmd.Context(), cmd.OutOrStdout(), categoriesJSON)
		},
	}
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "print JSON")

	registerCmd := &cobra.Command{
		Use:   "register [email]",
		Short: "Register with the gateway and save the API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RegisterUser(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the user owning the configured API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.WhoAmI(cmd.Context(), cmd.OutOrStdout())
		},
	}

	passwdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "Set the password that unlocks editing in the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := app.SetEditorPassword(password); err != nil {
				return err
			}
			if password == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Editor password removed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Editor password updated")
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the configuration",
	}
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ShowConfig(cmd.OutOrStdout())
		},
	}
	configSetCmd := &cobra.Command{
		Use:   "set [section.key=value]",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.SetConfig(args[0]); err != nil {
				return fmt.Errorf("failed to set config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration updated successfully")
			return nil
		},
	}
	configCmd.AddCommand(configShowCmd, configSetCmd)

	rootCmd.AddCommand(listCmd, showCmd, categoriesCmd, registerCmd, whoamiCmd, passwdCmd, configCmd)
	return rootCmd
}
