package respond

import (
	"fmt"
	"sync"

	"github.com/hedwigbot/hedwig/pkg/logger"
	"github.com/hedwigbot/hedwig/pkg/match"
)

// Dispatch evaluates every entry against msg concurrently. Each entry runs
// in its own goroutine: on a match the handler is invoked exactly once
// with a derived message carrying the captures; a non-matching entry does
// nothing. Dispatch returns without waiting for handlers; use DispatchWait
// when the caller needs completion.
func Dispatch(msg *Message, entries []DispatchEntry) {
	for i := range entries {
		go runEntry(msg, entries[i])
	}
}

// DispatchWait is Dispatch plus a barrier: it returns once every entry has
// been evaluated and every matching handler has returned.
func DispatchWait(msg *Message, entries []DispatchEntry) {
	var wg sync.WaitGroup
	wg.Add(len(entries))
	for i := range entries {
		entry := entries[i]
		go func() {
			defer wg.Done()
			runEntry(msg, entry)
		}()
	}
	wg.Wait()
}

// runEntry is one dispatch unit. Handler errors and panics are contained
// here so one handler cannot keep its siblings from running.
func runEntry(msg *Message, entry DispatchEntry) {
	if !entry.Pattern.MatchString(msg.Text) {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCF("dispatch", "handler panicked", map[string]interface{}{
				"handler": entry.Ref.String(),
				"message": msg.ID,
				"panic":   fmt.Sprintf("%v", r),
			})
		}
	}()

	caps := match.Extract(entry.Pattern, msg.Text)
	if err := entry.fn(msg.withMatches(caps), entry.Options); err != nil {
		logger.ErrorCF("dispatch", "handler failed", map[string]interface{}{
			"handler": entry.Ref.String(),
			"message": msg.ID,
			"error":   err.Error(),
		})
	}
}
