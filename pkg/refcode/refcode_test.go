package refcode

import (
	"strings"
	"testing"
)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := New()
		if !Valid(code) {
			t.Fatalf("code %q does not match GLN-[A-Z0-9]{8}", code)
		}
		if !strings.HasPrefix(code, Prefix) {
			t.Fatalf("code %q missing prefix", code)
		}
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		c := New()
		if seen[c] {
			t.Fatalf("duplicate code %q after %d draws", c, i)
		}
		seen[c] = true
	}
}

func TestValid_Rejects(t *testing.T) {
	for _, s := range []string{"", "GLN-", "GLN-abcdefgh", "GLN-12345678X", "XYZ-12345678", "GLN-1234567"} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
