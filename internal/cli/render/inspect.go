package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// InspectRenderer renders the live state of one campaign
type InspectRenderer struct {
	out         io.Writer
	explorerURL string
}

// NewInspectRenderer creates a new inspect renderer
func NewInspectRenderer(out io.Writer, explorerURL string) *InspectRenderer {
	return &InspectRenderer{out: out, explorerURL: explorerURL}
}

// Render writes the report as a two column table
func (r *InspectRenderer) Render(report *usecase.CampaignReport) error {
	status := report.Status
	m := report.Metadata

	headerStyle.Fprintf(r.out, "%s campaign %s\n", status.Type, status.Address.Hex())

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false

	t.AppendRow(table.Row{labelStyle.Sprint("ID"), m.ID})
	t.AppendRow(table.Row{labelStyle.Sprint("Description"), m.Description})
	t.AppendRow(table.Row{labelStyle.Sprint("Creator"), m.Creator.Hex()})
	t.AppendRow(table.Row{labelStyle.Sprint("Beneficiary"), m.Beneficiary.Hex()})
	t.AppendRow(table.Row{labelStyle.Sprint("Minimum donation"), m.MinimumDonation})
	t.AppendRow(table.Row{labelStyle.Sprint("State"), stateStyle(status.State).Sprint(status.State)})

	switch terms := report.Terms.(type) {
	case domain.TargetTerms:
		t.AppendRow(table.Row{labelStyle.Sprint("Target amount"), terms.TargetAmount})
	case domain.TimeTerms:
		t.AppendRow(table.Row{labelStyle.Sprint("Duration (s)"), terms.DurationSeconds})
	case domain.StepsTerms:
		t.AppendRow(table.Row{labelStyle.Sprint("Target amount"), terms.TargetAmount})
		t.AppendRow(table.Row{labelStyle.Sprint("Step interval (s)"), terms.StepDurationSeconds})
	}
	if status.Steps != nil {
		t.AppendRow(table.Row{labelStyle.Sprint("Step"), status.Steps.String()})
	}

	upkeep := "no"
	if report.Upkeep.Needed {
		upkeep = upkeepStyle.Sprint("yes")
	}
	t.AppendRow(table.Row{labelStyle.Sprint("Upkeep needed"), upkeep})

	tracked := skippedStyle.Sprint("no, delivered")
	if report.Tracked {
		tracked = "yes"
	}
	t.AppendRow(table.Row{labelStyle.Sprint("Tracked by keeper"), tracked})

	if r.explorerURL != "" {
		t.AppendRow(table.Row{labelStyle.Sprint("Explorer"), fmt.Sprintf("%s/address/%s", r.explorerURL, status.Address.Hex())})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

var _ Renderer[*usecase.CampaignReport] = (*InspectRenderer)(nil)
