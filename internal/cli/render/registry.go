package render

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// RegistryRenderer prints the tracked campaigns every time the registry changes
type RegistryRenderer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRegistryRenderer creates a registry renderer writing to stdout
func NewRegistryRenderer() *RegistryRenderer {
	return &RegistryRenderer{out: os.Stdout}
}

// OnRegistryChanged renders the snapshot
func (r *RegistryRenderer) OnRegistryChanged(entries []usecase.RegistryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.Render(entries)
}

// Render writes the snapshot, or "Empty List" when nothing is tracked
func (r *RegistryRenderer) Render(entries []usecase.RegistryEntry) error {
	if len(entries) == 0 {
		_, err := emptyStyle.Fprintln(r.out, "Empty List")
		return err
	}

	headerStyle.Fprintf(r.out, "Tracked campaigns (%d):\n", len(entries))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{PaddingLeft: "  ", PaddingRight: " "}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	for i, entry := range entries {
		t.AppendRow(table.Row{
			labelStyle.Sprintf("%d", i),
			addressStyle.Sprint(entry.Address.Hex()),
			typeStyle(entry.Type).Sprint(entry.Type),
		})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

var _ usecase.RegistryObserver = (*RegistryRenderer)(nil)
