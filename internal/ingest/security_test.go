package ingest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	payload := []byte(`{"id":"msg-1"}`)

	tests := []struct {
		name      string
		secret    string
		signature string
		wantErr   bool
	}{
		{
			name:      "Valid signature",
			secret:    "topsecret",
			signature: sign("topsecret", payload),
			wantErr:   false,
		},
		{
			name:      "Wrong secret",
			secret:    "topsecret",
			signature: sign("other", payload),
			wantErr:   true,
		},
		{
			name:      "Missing prefix",
			secret:    "topsecret",
			signature: hex.EncodeToString([]byte("junk")),
			wantErr:   true,
		},
		{
			name:      "Bad hex",
			secret:    "topsecret",
			signature: "sha256=zzzz",
			wantErr:   true,
		},
		{
			name:      "No secret configured",
			secret:    "",
			signature: sign("topsecret", payload),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{Secret: tt.secret, RateLimitPerMin: 60})
			err := v.ValidateSignature(payload, tt.signature)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSignature() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name       string
		allowedIPs []string
		remoteAddr string
		headers    map[string]string
		wantErr    bool
	}{
		{
			name:       "No restriction",
			remoteAddr: "203.0.113.7:1234",
			wantErr:    false,
		},
		{
			name:       "Exact match",
			allowedIPs: []string{"203.0.113.7"},
			remoteAddr: "203.0.113.7:1234",
			wantErr:    false,
		},
		{
			name:       "CIDR match",
			allowedIPs: []string{"203.0.113.0/24"},
			remoteAddr: "203.0.113.99:1234",
			wantErr:    false,
		},
		{
			name:       "Not whitelisted",
			allowedIPs: []string{"203.0.113.0/24"},
			remoteAddr: "198.51.100.1:1234",
			wantErr:    true,
		},
		{
			name:       "X-Forwarded-For wins",
			allowedIPs: []string{"203.0.113.7"},
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{AllowedIPs: tt.allowedIPs, RateLimitPerMin: 60})

			req := &http.Request{RemoteAddr: tt.remoteAddr, Header: http.Header{}}
			for k, val := range tt.headers {
				req.Header.Set(k, val)
			}

			err := v.ValidateIPAddress(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIPAddress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 10})

	// Burst of one: the first request passes, an immediate second is rejected.
	if err := v.CheckRateLimit("a@example.com"); err != nil {
		t.Fatalf("first request rejected: %v", err)
	}
	if err := v.CheckRateLimit("a@example.com"); err == nil {
		t.Error("second immediate request passed, want rate limit error")
	}

	// Limits are per sender.
	if err := v.CheckRateLimit("b@example.com"); err != nil {
		t.Errorf("other sender rejected: %v", err)
	}
}
