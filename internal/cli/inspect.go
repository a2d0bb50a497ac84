package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/campaign-keeper/internal/cli/render"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>",
		Short: "Show the live state of a campaign",
		Long: `Read a campaign's metadata, terms, state and upkeep status, and whether the
keeper would keep tracking it.

Examples:
  campaign-keeper inspect 0x1234... --network sepolia`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			report, err := app.InspectCampaign.Run(cmd.Context(), address)
			if err != nil {
				return err
			}

			explorer := ""
			if app.Config.Network != nil {
				explorer = app.Config.Network.ExplorerURL
			}
			return render.NewInspectRenderer(cmd.OutOrStdout(), explorer).Render(report)
		},
	}
}
