package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"usersFile": "",
			"tokenTTL":  "10h",
		},
		"audit": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"jwt": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_USERSFILE", want: "auth.usersFile"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUDIT_TOPICID", want: "audit.topicId"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
