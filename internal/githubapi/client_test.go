package githubapi

import "testing"

func TestSlug(t *testing.T) {
	if got := Slug(); got != "openvinotoolkit/openvino" {
		t.Errorf("Slug() = %q", got)
	}
}

func TestNewClient(t *testing.T) {
	// Unauthenticated and authenticated construction both produce a
	// usable client with the outbound timeout applied.
	for _, token := range []string{"", "ghp_test"} {
		c := NewClient(token)
		if c == nil || c.gh == nil {
			t.Fatalf("NewClient(%q) returned incomplete client", token)
		}
		if c.gh.UserAgent != userAgent {
			t.Errorf("UserAgent = %q, want %q", c.gh.UserAgent, userAgent)
		}
	}
}
