package commitlint_test

import (
	"testing"

	"gitops-manager/internal/commitlint"
)

func TestValidate(t *testing.T) {
	svc := commitlint.New()

	cases := []struct {
		name    string
		message string
		valid   bool
	}{
		{"type with scope", "feat(core): add x", true},
		{"type without scope", "fix: resolve crash on empty payload", true},
		{"case insensitive", "FIX: bug", true},
		{"leading whitespace trimmed", "  chore: tidy configs  ", true},
		{"all known types", "refactor(api): split handler", true},
		{"perf type", "perf: cache branch listing", true},
		{"free text", "added stuff", false},
		{"unknown type", "feature: add x", false},
		{"missing description", "feat: ", false},
		{"missing space after colon", "feat:add x", false},
		{"empty string", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Validate(tc.message)
			if got.Valid != tc.valid {
				t.Errorf("Validate(%q).Valid = %v, want %v", tc.message, got.Valid, tc.valid)
			}
			if !tc.valid && got.Reason == "" {
				t.Errorf("invalid message must carry a remediation hint")
			}
			if tc.valid && got.Reason != "" {
				t.Errorf("valid message must not carry a reason, got %q", got.Reason)
			}
		})
	}
}
