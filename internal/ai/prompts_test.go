package ai

import (
	"fmt"
	"strings"
	"testing"
)

func TestKeywordPromptFormatting(t *testing.T) {
	got := fmt.Sprintf(DefaultUserPrompts.KeywordInsight,
		"Backend Engineer",
		"Build Go services on Kubernetes",
		"Developed APIs in Go")

	if strings.Contains(got, "%!") {
		t.Fatalf("placeholder mismatch in keyword prompt:\n%s", got)
	}
	for _, want := range []string{
		"Backend Engineer",
		"Build Go services on Kubernetes",
		"Developed APIs in Go",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted prompt missing %q", want)
		}
	}
	// Job title must come before the description, which comes before the resume.
	title := strings.Index(got, "Backend Engineer")
	desc := strings.Index(got, "Build Go services")
	doc := strings.Index(got, "Developed APIs")
	if !(title < desc && desc < doc) {
		t.Errorf("placeholder order wrong: title=%d desc=%d doc=%d", title, desc, doc)
	}
}

func TestCompletenessPromptFormatting(t *testing.T) {
	got := fmt.Sprintf(DefaultUserPrompts.CompletenessInsight, "John Doe\njohn@example.com")

	if strings.Contains(got, "%!") {
		t.Fatalf("placeholder mismatch in completeness prompt:\n%s", got)
	}
	if !strings.Contains(got, "john@example.com") {
		t.Error("formatted prompt missing document text")
	}
	if !strings.Contains(got, "highUrgency") {
		t.Error("completeness prompt should describe the highUrgency flag")
	}
}

func TestGetDefaultPromptConfig(t *testing.T) {
	cfg := GetDefaultPromptConfig()
	if cfg.SystemPrompts.KeywordInsight == "" || cfg.SystemPrompts.CompletenessInsight == "" {
		t.Error("system prompts must not be empty")
	}
	if cfg.UserPrompts.KeywordInsight != DefaultUserPrompts.KeywordInsight {
		t.Error("user prompts should mirror the package defaults")
	}
}
