package snapshot

import (
	"fmt"
	"strings"

	"github.com/zamanilabs/zamani-demo/internal/models"
)

// Markdown renders the transcript as a markdown document with a short
// state header.
func Markdown(r Report) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(models.ChatName)
	sb.WriteString(" demo\n\n")

	fmt.Fprintf(&sb, "**Model:** %s\n", r.SelectedModel)
	fmt.Fprintf(&sb, "**Consent:** %s\n", r.ConsentLabel)
	fmt.Fprintf(&sb, "**Route:** `%s`\n", r.Route)
	fmt.Fprintf(&sb, "**Elapsed:** %s\n", r.Elapsed)
	fmt.Fprintf(&sb, "**Messages:** %d\n", len(r.Transcript))
	if r.PendingReplies > 0 {
		fmt.Fprintf(&sb, "**Pending replies:** %d\n", r.PendingReplies)
	}
	sb.WriteString("\n---\n\n")

	if len(r.Transcript) == 0 {
		fmt.Fprintf(&sb, "_No messages yet. Placeholder: %q_\n", r.Placeholder)
		return sb.String()
	}

	for i, msg := range r.Transcript {
		role := "User"
		if msg.Role == models.RoleAssistant {
			role = "Assistant"
		}
		sb.WriteString("## ")
		sb.WriteString(role)
		sb.WriteString("\n\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")

		if i < len(r.Transcript)-1 {
			sb.WriteString("\n---\n\n")
		}
	}
	return sb.String()
}
