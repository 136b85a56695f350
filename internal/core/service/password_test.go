package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(0)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}

	ok, err := h.Verify("s3cret", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher(0)

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch to verify false")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(0)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	for _, hash := range []string{first, second} {
		ok, err := h.Verify("same-password", hash)
		if err != nil || !ok {
			t.Fatalf("both hashes must verify the password (ok=%v err=%v)", ok, err)
		}
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(0)

	if _, err := h.Verify("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for malformed stored hash")
	}
}
