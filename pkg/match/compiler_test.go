package match

import (
	"errors"
	"testing"
)

// TestCompileAddressed_MatchesAddressedForms verifies the accepted
// addressing prefixes around a plain pattern.
func TestCompileAddressed_MatchesAddressedForms(t *testing.T) {
	re, err := CompileAddressed(`ping`, Identity{Name: "hedwig"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	for _, text := range []string{
		"hedwig ping",
		"hedwig: ping",
		"hedwig, ping",
		"@hedwig ping",
		"@hedwig, ping",
		"  hedwig ping",
	} {
		if !re.MatchString(text) {
			t.Errorf("expected %q to match addressed pattern", text)
		}
	}
}

// TestCompileAddressed_RejectsUnaddressed verifies the bare pattern no
// longer matches once rewritten to the addressed form.
func TestCompileAddressed_RejectsUnaddressed(t *testing.T) {
	re, err := CompileAddressed(`ping`, Identity{Name: "hedwig"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	for _, text := range []string{
		"ping",
		"somebody ping",
		"tell hedwig ping",
	} {
		if re.MatchString(text) {
			t.Errorf("expected %q not to match addressed pattern", text)
		}
	}
}

// TestCompileAddressed_AliasAccepted verifies the alias works in the same
// addressing position as the name.
func TestCompileAddressed_AliasAccepted(t *testing.T) {
	re, err := CompileAddressed(`ping`, Identity{Name: "hedwig", AKA: "/"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	if !re.MatchString("/ping") {
		t.Error("alias prefix should match")
	}
	if !re.MatchString("hedwig ping") {
		t.Error("name prefix should still match")
	}
}

// TestCompileAddressed_LongerTokenFirst verifies a longer alias is
// consumed whole instead of a shorter name prefix-matching and leaking
// the rest of the token into the captures.
func TestCompileAddressed_LongerTokenFirst(t *testing.T) {
	re, err := CompileAddressed(`(.+)`, Identity{Name: "hal", AKA: "hal9000"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	caps := Extract(re, "hal9000 open the pod bay doors")
	if caps == nil {
		t.Fatal("expected a match")
	}
	if got := caps.Index(1); got != "open the pod bay doors" {
		t.Errorf("capture = %q, want %q", got, "open the pod bay doors")
	}
}

// TestCompileAddressed_EqualLengthTieBreak verifies equal-length tokens
// both work; ordering is lexicographic and must not drop either.
func TestCompileAddressed_EqualLengthTieBreak(t *testing.T) {
	re, err := CompileAddressed(`go`, Identity{Name: "cat", AKA: "bat"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	if !re.MatchString("cat go") {
		t.Error("name should match")
	}
	if !re.MatchString("bat go") {
		t.Error("alias should match")
	}
}

// TestCompileAddressed_PreservesInlineFlags verifies flags declared in the
// source pattern survive the rewrite.
func TestCompileAddressed_PreservesInlineFlags(t *testing.T) {
	re, err := CompileAddressed(`(?i)PING`, Identity{Name: "hedwig"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	if !re.MatchString("hedwig ping") {
		t.Error("case-insensitive flag should survive the rewrite")
	}
}

// TestCompileAddressed_QuotesIdentity verifies regexp metacharacters in the
// bot name are matched literally.
func TestCompileAddressed_QuotesIdentity(t *testing.T) {
	re, err := CompileAddressed(`ping`, Identity{Name: "c3.po"})
	if err != nil {
		t.Fatalf("CompileAddressed failed: %v", err)
	}

	if !re.MatchString("c3.po ping") {
		t.Error("literal name should match")
	}
	if re.MatchString("c3xpo ping") {
		t.Error("dot in name must not act as a wildcard")
	}
}

// TestCompileAddressed_InvalidPattern verifies a malformed source surfaces
// as a PatternError.
func TestCompileAddressed_InvalidPattern(t *testing.T) {
	_, err := CompileAddressed(`(unbalanced`, Identity{Name: "hedwig"})
	if err == nil {
		t.Fatal("expected an error for an unbalanced group")
	}

	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("error should be a PatternError, got %T", err)
	}
	if perr.Source != `(unbalanced` {
		t.Errorf("PatternError.Source = %q", perr.Source)
	}
}

// TestCompileAddressed_MissingName verifies an empty identity surfaces as
// a ConfigurationError.
func TestCompileAddressed_MissingName(t *testing.T) {
	_, err := CompileAddressed(`ping`, Identity{})
	if err == nil {
		t.Fatal("expected an error for a missing name")
	}

	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error should be a ConfigurationError, got %T", err)
	}
}
