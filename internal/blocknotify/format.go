package blocknotify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter groups thousands with commas.
var numberPrinter = message.NewPrinter(language.English)

// Notification carries the fields rendered into a new-block message.
type Notification struct {
	Height         int64
	Difficulty     decimal.Decimal
	MinedAt        int64
	BlocksInWindow *int64 // nil omits the line
}

// FormatDifficulty rounds d half away from zero and groups thousands,
// e.g. 1234567.89 -> "1,234,568".
func FormatDifficulty(d decimal.Decimal) string {
	return numberPrinter.Sprintf("%d", d.Round(0).IntPart())
}

// RelativeTimestamp returns a chat-client timestamp token that renders the
// unix time as relative text such as "5 minutes ago".
func RelativeTimestamp(unix int64) string {
	return fmt.Sprintf("<t:%d:R>", unix)
}

// FormatMessage renders n as multi-line text with bold field labels.
func FormatMessage(n Notification) string {
	lines := []string{
		fmt.Sprintf("**Block:** %d", n.Height),
		fmt.Sprintf("**New Difficulty:** %s", FormatDifficulty(n.Difficulty)),
		fmt.Sprintf("**Time:** %s", RelativeTimestamp(n.MinedAt)),
	}

	if n.BlocksInWindow != nil {
		lines = append(lines, fmt.Sprintf("**Blocks Mined (window):** %d", *n.BlocksInWindow))
	}

	return strings.Join(lines, "\n")
}
