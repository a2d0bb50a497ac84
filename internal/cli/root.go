package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/campaign-keeper/internal/app"
	"github.com/trebuchet-org/campaign-keeper/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// cleanupKey is the context key for the app's cleanup function
	cleanupKey contextKey = "cleanup"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "campaign-keeper",
		Short: "Off-chain keeper for TogetherForCharity crowdfunding campaigns",
		Long: `campaign-keeper watches a campaign factory for newly created campaigns,
verifies their sources on the block explorer and calls performUpkeep on every
campaign that needs it, once per block, until the campaign has delivered.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd.Name()) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, cleanup, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			ctx = context.WithValue(ctx, cleanupKey, cleanup)
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup, ok := cmd.Context().Value(cleanupKey).(func()); ok && cleanup != nil {
				cleanup()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., sepolia, mainnet, anvil)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint, overrides the network's configured endpoint (ws:// enables subscriptions)")
	rootCmd.PersistentFlags().String("factory-address", "", "Campaign factory contract address")
	rootCmd.PersistentFlags().Uint64("chain-id", 0, "Expected chain ID, detected from the RPC when unset")
	rootCmd.PersistentFlags().String("profile", "", "Foundry profile to read [profile.<name>.keeper] from")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "campaign",
		Title: "Campaign Commands",
	})

	runCmd := NewRunCmd()
	runCmd.GroupID = "main"
	rootCmd.AddCommand(runCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "campaign"
	rootCmd.AddCommand(verifyCmd)

	inspectCmd := NewInspectCmd()
	inspectCmd.GroupID = "campaign"
	rootCmd.AddCommand(inspectCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipsApp reports whether a command runs without configuration or an RPC connection
func skipsApp(name string) bool {
	switch name {
	case "version", "help", "completion", "campaign-keeper":
		return true
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
