package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

var (
	addressStyle = color.New(color.FgWhite)
	labelStyle   = color.New(color.Faint)
	openStyle    = color.New(color.FgGreen)
	closedStyle  = color.New(color.FgRed)
	emptyStyle   = color.New(color.FgYellow)
	headerStyle  = color.New(color.FgCyan, color.Bold)
	upkeepStyle  = color.New(color.FgMagenta, color.Bold)
	skippedStyle = color.New(color.FgWhite, color.Faint)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", lastCause(message))
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	msg := lastCause(message)

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// lastCause extracts the message after the last colon of an error chain
func lastCause(message string) string {
	parts := strings.Split(message, ": ")
	return parts[len(parts)-1]
}

func typeStyle(t domain.CampaignType) *color.Color {
	switch t {
	case domain.CampaignTypeTarget:
		return color.New(color.FgBlue, color.Bold)
	case domain.CampaignTypeTime:
		return color.New(color.FgYellow, color.Bold)
	case domain.CampaignTypeSteps:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func stateStyle(s domain.CampaignState) *color.Color {
	if s == domain.CampaignStateClosed {
		return closedStyle
	}
	return openStyle
}
