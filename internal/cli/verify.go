package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/campaign-keeper/internal/adapters/progress"
	"github.com/trebuchet-org/campaign-keeper/internal/cli/render"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <address>",
		Short: "Verify a campaign on the block explorer",
		Long: `Read a deployed campaign's constructor arguments from the chain and publish its
source to the block explorer with forge verify-contract.

Examples:
  campaign-keeper verify 0x1234... --network sepolia`,
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

			sink := progress.NewSpinnerSink()
			result, err := app.VerifyCampaign.VerifyAddress(cmd.Context(), address, sink)
			if err != nil {
				return err
			}

			return render.NewVerifyRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}

func parseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, raw)
	}
	return common.HexToAddress(raw), nil
}
