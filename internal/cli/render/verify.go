package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// VerifyRenderer handles rendering of verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// Render writes the outcome of a one-shot verification
func (r *VerifyRenderer) Render(result *usecase.VerifyResult) error {
	name := fmt.Sprintf("%s campaign %s", typeStyle(result.Type).Sprint(result.Type), result.Address.Hex())

	if result.Skipped != "" {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Skipped %s: %s", name, result.Skipped)))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess("Verified "+name))
	labelStyle.Fprintf(r.out, "  constructor args: %v\n", result.Args)
	return nil
}

var _ Renderer[*usecase.VerifyResult] = (*VerifyRenderer)(nil)
