// Package responders holds the built-in handler groups shipped with the
// bot. They double as examples of the registration API.
package responders

import (
	"time"

	"github.com/hedwigbot/hedwig/pkg/respond"
)

var pongs = []string{"pong", "PONG", "pong!"}

// Ping builds the liveness handler group.
func Ping() *respond.Responder {
	r := respond.NewResponder("ping")
	r.Usage(
		"<name> ping - answers with pong",
		"<name> time - answers with the server time",
		"<name> echo <text> - repeats <text> back",
	)

	r.Respond(`(?i)ping$`, "pong", func(msg *respond.Message, _ respond.Options) error {
		return msg.Reply(respond.Random(pongs))
	})

	r.Respond(`(?i)time\??$`, "time", func(msg *respond.Message, _ respond.Options) error {
		return msg.Send("Server time is: " + time.Now().Format(time.RFC1123))
	})

	r.Respond(`(?i)echo (.+)`, "echo", func(msg *respond.Message, _ respond.Options) error {
		return msg.Send(msg.Matches.Index(1))
	})

	return r
}
