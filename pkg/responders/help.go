package responders

import (
	"strings"

	"github.com/hedwigbot/hedwig/pkg/respond"
)

// Help builds the usage-listing handler group. The usage callback is
// evaluated per request so it always reflects the installed groups; name
// replaces the "<name>" placeholder in usage lines.
func Help(name string, usage func() []string) *respond.Responder {
	r := respond.NewResponder("help")
	r.Usage("<name> help - lists what the bot responds to")

	r.Respond(`(?i)help$`, "list", func(msg *respond.Message, _ respond.Options) error {
		lines := usage()
		if len(lines) == 0 {
			return msg.Send("Nothing installed.")
		}
		for i, line := range lines {
			lines[i] = strings.ReplaceAll(line, "<name>", name)
		}
		return msg.Send(strings.Join(lines, "\n"))
	})

	return r
}
