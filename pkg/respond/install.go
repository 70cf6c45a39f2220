package respond

import (
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/hedwigbot/hedwig/pkg/match"
)

// DispatchEntry is the installed, ready-to-match form of a registration.
// Entries are immutable once Install returns and safe to share across any
// number of concurrent dispatches.
type DispatchEntry struct {
	Pattern *regexp.Regexp
	Ref     HandlerRef
	Options Options

	fn HandlerFunc
}

// Install compiles a handler group into dispatch entries. Ambient entries
// keep their declared pattern; addressed entries are rewritten against id
// by match.CompileAddressed. Every entry compiles in its own goroutine and
// Install returns only once all of them finish. The result is ordered
// ambient-first then addressed, each sub-list in declaration order,
// regardless of compile completion order.
//
// Any single compile failure aborts the whole call: no entry list is
// returned and the error names the failing registration. Each call
// produces a fresh list sharing nothing with earlier installs, so the
// identity may change between calls.
func Install(r *Responder, id match.Identity, opts Options) ([]DispatchEntry, error) {
	ambient := r.AmbientEntries()
	addressed := r.AddressedEntries()

	if len(addressed) > 0 && id.Name == "" {
		return nil, &match.ConfigurationError{Field: "name", Reason: "is required to install addressed patterns"}
	}

	entries := make([]DispatchEntry, len(ambient)+len(addressed))
	var g errgroup.Group

	for i, reg := range ambient {
		g.Go(func() error {
			re, err := regexp.Compile(reg.Pattern)
			if err != nil {
				return fmt.Errorf("install %s: %w", reg.Ref, &match.PatternError{Source: reg.Pattern, Err: err})
			}
			entries[i] = DispatchEntry{Pattern: re, Ref: reg.Ref, Options: opts.clone(), fn: reg.Handler}
			return nil
		})
	}

	for i, reg := range addressed {
		slot := len(ambient) + i
		g.Go(func() error {
			re, err := match.CompileAddressed(reg.Pattern, id)
			if err != nil {
				return fmt.Errorf("install %s: %w", reg.Ref, err)
			}
			entries[slot] = DispatchEntry{Pattern: re, Ref: reg.Ref, Options: opts.clone(), fn: reg.Handler}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
