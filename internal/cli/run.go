package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/campaign-keeper/internal/config"
	"golang.org/x/sync/errgroup"
)

// NewRunCmd creates the command running the keeper service
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the keeper service",
		Long: `Track every campaign created by the factory and perform upkeep on each new block.

Configuration is read from flags, KEEPER_* environment variables, .env files
and the [profile.<name>.keeper] table of foundry.toml, in that order.

Examples:
  campaign-keeper run --network sepolia
  campaign-keeper run --rpc-url wss://sepolia.example/ws --factory-address 0x...
  campaign-keeper run --network anvil --verify=false --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if err := config.Validate(app.Config, true); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.ErrOrStderr()
			color.New(color.FgCyan, color.Bold).Fprintf(out, "Keeping campaigns of factory %s\n", app.Config.FactoryAddress.Hex())
			color.New(color.Faint).Fprintf(out, "  network: %s (chain %d)\n", app.Config.Network.Name, app.Config.Network.ChainID)
			color.New(color.Faint).Fprintf(out, "  keeper:  %s\n", app.Signer.Address().Hex())

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return app.RunKeeper.Run(gctx)
			})
			g.Go(func() error {
				return app.MetricsServer.Run(gctx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().Bool("verify", true, "Verify new campaigns on the block explorer")
	cmd.Flags().Duration("verify-delay", 0, "Delay before verifying a new campaign (default from config, 30s)")
	cmd.Flags().Duration("poll-interval", 0, "Polling interval for http RPC endpoints (default from config, 4s)")
	cmd.Flags().Uint64("start-block", 0, "Replay factory events from this block (default: only new campaigns)")
	cmd.Flags().Duration("receipt-timeout", 0, "Give up waiting for an upkeep receipt after this long (default from config, 2m)")
	cmd.Flags().Float64("rpc-rate-limit", 0, "Maximum campaign RPC calls per second, 0 for unlimited")
	cmd.Flags().String("metrics-addr", "", "Serve prometheus metrics on this address (e.g. :9090)")

	return cmd
}
