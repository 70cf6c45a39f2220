package match

import (
	"fmt"
	"regexp"
)

// Identity is the bot's addressing identity: the primary name plus an
// optional alias. Both are matched literally in the addressing prefix.
type Identity struct {
	Name string
	AKA  string
}

// CompileAddressed rewrites a pattern source so it only matches messages
// directed at the bot: optional leading whitespace, an optional "@", the
// bot name or alias, an optional ":" or ",", optional whitespace, then the
// original pattern applied to the remainder. The source is embedded as a
// non-capturing group, so inline flags like (?i) keep their effect.
//
// When an alias is set, the longer of name/alias is tried first so that a
// shorter token never truncates a longer one (name "hal", alias "hal9000":
// "hal9000: status" must bind the full "hal9000"). Equal-length tokens are
// ordered lexicographically to keep the alternation stable.
func CompileAddressed(source string, id Identity) (*regexp.Regexp, error) {
	if id.Name == "" {
		return nil, &ConfigurationError{Field: "name", Reason: "is required for addressed patterns"}
	}

	prefix := regexp.QuoteMeta(id.Name)
	if id.AKA != "" && id.AKA != id.Name {
		first, second := id.Name, id.AKA
		if len(id.AKA) > len(id.Name) || (len(id.AKA) == len(id.Name) && id.AKA < id.Name) {
			first, second = id.AKA, id.Name
		}
		prefix = regexp.QuoteMeta(first) + "|" + regexp.QuoteMeta(second)
	}

	rewritten := fmt.Sprintf(`^\s*@?(?:%s)[:,]?\s*(?:%s)`, prefix, source)
	re, err := regexp.Compile(rewritten)
	if err != nil {
		return nil, &PatternError{Source: source, Err: err}
	}
	return re, nil
}
