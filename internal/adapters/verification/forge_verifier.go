package verification

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// commandRunner runs forge in dir and returns its combined output
type commandRunner func(ctx context.Context, dir string, args []string) ([]byte, error)

func runForge(ctx context.Context, dir string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// ForgeVerifier verifies campaigns on the network's explorer with forge verify-contract
type ForgeVerifier struct {
	projectRoot string
	network     *config.Network
	apiKey      string
	artifacts   config.ArtifactPaths
	run         commandRunner
	log         *slog.Logger
}

// NewForgeVerifier creates a new forge verifier
func NewForgeVerifier(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeVerifier {
	return &ForgeVerifier{
		projectRoot: cfg.ProjectRoot,
		network:     cfg.Network,
		apiKey:      cfg.EtherscanAPIKey,
		artifacts:   cfg.Artifacts,
		run:         runForge,
		log:         log,
	}
}

// Verify submits the campaign source to the explorer. A contract that is
// already verified counts as success.
func (v *ForgeVerifier) Verify(ctx context.Context, req *usecase.VerificationRequest) error {
	args, err := v.BuildVerifyArgs(req)
	if err != nil {
		return err
	}

	v.log.Debug("Running forge", "args", strings.Join(args, " "))
	output, err := v.run(ctx, v.projectRoot, args)
	if err := interpretOutput(output, err); err != nil {
		return err
	}

	if url := v.ExplorerURL(req.Address); url != "" {
		v.log.Info("Campaign source published", "url", url)
	}
	return nil
}

// BuildVerifyArgs builds the forge verify-contract arguments for req
func (v *ForgeVerifier) BuildVerifyArgs(req *usecase.VerificationRequest) ([]string, error) {
	if v.network == nil {
		return nil, fmt.Errorf("no network configured")
	}
	contractPath, err := v.ArtifactPath(req.Type)
	if err != nil {
		return nil, err
	}
	encoded, err := EncodeConstructorArgs(req.Type, req.Args)
	if err != nil {
		return nil, err
	}

	args := []string{
		"verify-contract",
		req.Address.Hex(),
		contractPath,
		"--chain-id", fmt.Sprintf("%d", v.network.ChainID),
		"--watch",
	}
	if v.network.VerifierURL != "" {
		args = append(args, "--verifier-url", v.network.VerifierURL)
	}
	if v.apiKey != "" {
		args = append(args, "--etherscan-api-key", v.apiKey)
	}
	args = append(args, "--constructor-args", hex.EncodeToString(encoded))

	return args, nil
}

// ArtifactPath returns the forge "path:Contract" identifier of the campaign variant
func (v *ForgeVerifier) ArtifactPath(campaignType domain.CampaignType) (string, error) {
	var path string
	switch campaignType {
	case domain.CampaignTypeTarget:
		path = v.artifacts.Target
	case domain.CampaignTypeTime:
		path = v.artifacts.Time
	case domain.CampaignTypeSteps:
		path = v.artifacts.Steps
	default:
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownCampaignType, campaignType)
	}
	if path == "" {
		return "", fmt.Errorf("no artifact configured for %s campaigns", campaignType)
	}
	return path, nil
}

// ExplorerURL builds the explorer URL for a contract
func (v *ForgeVerifier) ExplorerURL(address common.Address) string {
	if v.network == nil || v.network.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s#code", v.network.ExplorerURL, address.Hex())
}

func interpretOutput(output []byte, runErr error) error {
	if isAlreadyVerified(output) {
		return nil
	}
	trimmed := strings.TrimSpace(string(output))
	if runErr != nil {
		if trimmed == "" {
			return fmt.Errorf("forge verify-contract: %w", runErr)
		}
		return fmt.Errorf("forge verify-contract: %s", trimmed)
	}
	if bytes.Contains(output, []byte("Contract successfully verified")) {
		return nil
	}
	return fmt.Errorf("verification status unclear: %s", trimmed)
}

func isAlreadyVerified(output []byte) bool {
	lower := bytes.ToLower(output)
	return bytes.Contains(lower, []byte("already verified"))
}

var _ usecase.ContractVerifier = (*ForgeVerifier)(nil)
