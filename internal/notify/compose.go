package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/aro-monitor/internal/types"
)

// excerptPreviewLimit caps the per-unit excerpt quoted in the email body.
const excerptPreviewLimit = 100

func emailSubject(property string, now time.Time) string {
	return fmt.Sprintf("ARO Units Available at %s - %s", property, now.Format("2006-01-02 15:04"))
}

func emailBody(property, targetURL string, matches []types.Match, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Good news! ARO one-bedroom units are available at %s:\n\n", property)
	for _, m := range matches {
		fmt.Fprintf(&sb, "- %s: %s...\n", m.Category, preview(m.Excerpt))
	}
	fmt.Fprintf(&sb, "\nCheck the website: %s\n\n", targetURL)
	fmt.Fprintf(&sb, "Time checked: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "This is an automated message from the %s ARO Monitor.", property)

	return sb.String()
}

func smsBody(property, targetURL string, count int) string {
	return fmt.Sprintf("ARO units available at %s! %d unit(s) found. Check: %s", property, count, targetURL)
}

func preview(excerpt string) string {
	runes := []rune(excerpt)
	if len(runes) <= excerptPreviewLimit {
		return excerpt
	}
	return string(runes[:excerptPreviewLimit])
}
