package auth

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !h.Verify("correct horse battery staple", hash) {
		t.Error("expected password to verify against its own hash")
	}
	if h.Verify("wrong password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestPasswordHasher_SaltedNonDeterministic(t *testing.T) {
	h := NewPasswordHasher()

	h1, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password must differ (random salt)")
	}
	if !h.Verify("secret", h1) || !h.Verify("secret", h2) {
		t.Error("both hashes must verify the original password")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher()

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", malformed) {
			t.Errorf("Verify(%q) = true, want false", malformed)
		}
	}
}
