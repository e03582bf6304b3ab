package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateGitHubSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "topsecret", RateLimitPerMin: 60})
	payload := []byte(`{"ref": "refs/heads/main"}`)

	t.Run("valid signature", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(payload, sign("topsecret", payload)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(payload, sign("othersecret", payload)); err == nil {
			t.Errorf("expected verification failure")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := sign("topsecret", payload)
		if err := v.ValidateGitHubSignature([]byte(`{"ref": "refs/heads/evil"}`), sig); err == nil {
			t.Errorf("expected verification failure")
		}
	})

	t.Run("missing prefix", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(payload, "deadbeef"); err == nil {
			t.Errorf("expected format error")
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})
		if err := empty.ValidateGitHubSignature(payload, sign("", payload)); err == nil {
			t.Errorf("expected error when secret unset")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	t.Run("no whitelist allows everything", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s", RateLimitPerMin: 60})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("exact match", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s", AllowedIPs: []string{"203.0.113.7"}, RateLimitPerMin: 60})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("CIDR match", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s", AllowedIPs: []string{"192.30.252.0/22"}, RateLimitPerMin: 60})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "192.30.253.10:443"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejected IP", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s", AllowedIPs: []string{"192.30.252.0/22"}, RateLimitPerMin: 60})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		if err := v.ValidateIPAddress(r); err == nil {
			t.Errorf("expected rejection")
		}
	})

	t.Run("X-Forwarded-For takes precedence", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s", AllowedIPs: []string{"10.0.0.1"}, RateLimitPerMin: 60})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		r.Header.Set("X-Forwarded-For", "10.0.0.1, 203.0.113.7")
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	// 60/min with burst 6: the burst is consumable immediately.
	rl := newRateLimiter(60)

	for i := 0; i < 6; i++ {
		if err := rl.Allow("github"); err != nil {
			t.Fatalf("request %d should be allowed: %v", i, err)
		}
	}
	if err := rl.Allow("github"); err == nil {
		t.Errorf("expected rate limit after burst")
	}

	// Other sources are unaffected.
	if err := rl.Allow("manual"); err != nil {
		t.Errorf("independent source should be allowed: %v", err)
	}
}
