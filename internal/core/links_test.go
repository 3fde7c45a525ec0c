package core

import "testing"

func TestDecideBrokenLinks(t *testing.T) {
	tests := []struct {
		name   string
		policy LinkPolicy
		broken int
		want   LinkAction
	}{
		{"nothing broken", LinkPolicyThrow, 0, LinkActionNone},
		{"ignore", LinkPolicyIgnore, 2, LinkActionNone},
		{"log", LinkPolicyLog, 2, LinkActionLog},
		{"warn", LinkPolicyWarn, 2, LinkActionWarn},
		{"throw", LinkPolicyThrow, 1, LinkActionFail},
		{"unset warns", "", 1, LinkActionWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideBrokenLinks(tt.policy, tt.broken)
			if got != tt.want {
				t.Errorf("DecideBrokenLinks(%q, %d) = %v, want %v", tt.policy, tt.broken, got, tt.want)
			}
		})
	}
}
