package match

import "fmt"

// PatternError reports a pattern source that failed to compile, either as
// declared or after addressed-prefix rewriting.
type PatternError struct {
	Source string
	Err    error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Source, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a bot identity that is missing or malformed
// where addressed-pattern compilation requires it.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}
