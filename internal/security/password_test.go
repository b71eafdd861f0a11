package security_test

import (
	"testing"

	"github.com/userhub/userhub/internal/security"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	plain := "secret1"

	hash, err := security.HashPassword(plain)

	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if hash == plain {
		t.Fatalf("hash must not equal the plaintext")
	}

	if err := security.CheckPassword(hash, plain); err != nil {
		t.Fatalf("expected hash to verify against original plaintext: %v", err)
	}

	if err := security.CheckPassword(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch for a different password")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	h1, err := security.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	h2, err := security.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password should differ (random salt)")
	}
}
