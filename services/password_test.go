package services

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!pw")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret!pw" {
		t.Fatal("hash must not be the plaintext password")
	}

	ok, err := VerifyPassword(hash, "s3cret!pw")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Error("correct password must verify")
	}

	ok, err = VerifyPassword(hash, "wrong-pw1!")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Error("wrong password must not verify")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("s3cret!pw")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("s3cret!pw")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("not-a-hash", "s3cret!pw"); err == nil {
		t.Error("malformed hash must return an error")
	}
}
