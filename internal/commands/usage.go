package commands

import (
	"fmt"
	"strings"

	"github.com/Joo200/piston/pkg/cmd"
)

// FullHelp renders a command's complete help text: synopsis, description,
// aliases, one line per part, and the footer.
func FullHelp(c *cmd.Command) string {
	var b strings.Builder
	b.WriteString(c.Usage())
	if c.Description() != "" {
		b.WriteString("\n")
		b.WriteString(c.Description())
	}
	if aliases := c.Aliases(); len(aliases) > 1 {
		fmt.Fprintf(&b, "\nAliases: %s", strings.Join(aliases[1:], ", "))
	}
	for _, part := range c.Parts() {
		if part.Description() == "" {
			continue
		}
		fmt.Fprintf(&b, "\n  %-16s %s", cmd.Synopsis(part), part.Description())
	}
	if c.Footer() != "" {
		b.WriteString("\n")
		b.WriteString(c.Footer())
	}
	return b.String()
}
