package match

import (
	"regexp"
	"strconv"
)

// Captures is the keyed bag of substrings produced for a successful match.
// Keys are group names when the pattern declares any named group, otherwise
// decimal indices where "0" is the whole match. The two key schemes never
// mix in one bag.
type Captures map[string]string

// Index returns the capture at the given positional index. It only makes
// sense for index-keyed bags.
func (c Captures) Index(i int) string {
	return c[strconv.Itoa(i)]
}

type extractConfig struct {
	omitEmpty bool
}

// ExtractOption adjusts how Extract builds its result.
type ExtractOption func(*extractConfig)

// OmitEmpty drops positional groups that did not participate in the match
// instead of recording them as empty strings. Named extraction is not
// affected: every declared name is always present.
func OmitEmpty() ExtractOption {
	return func(cfg *extractConfig) { cfg.omitEmpty = true }
}

// Extract returns the captures of re against text. The caller must already
// have confirmed that re matches text; Extract returns nil otherwise.
func Extract(re *regexp.Regexp, text string, opts ...ExtractOption) Captures {
	var cfg extractConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}

	group := func(i int) (string, bool) {
		if loc[2*i] < 0 {
			return "", false
		}
		return text[loc[2*i]:loc[2*i+1]], true
	}

	names := re.SubexpNames()
	out := make(Captures)

	named := false
	for _, name := range names {
		if name != "" {
			named = true
			break
		}
	}

	if named {
		// Unparticipating named groups stay present with an empty value.
		for i, name := range names {
			if name == "" {
				continue
			}
			s, _ := group(i)
			out[name] = s
		}
		return out
	}

	for i := 0; i < re.NumSubexp()+1; i++ {
		s, ok := group(i)
		if !ok && cfg.omitEmpty {
			continue
		}
		out[strconv.Itoa(i)] = s
	}
	return out
}
