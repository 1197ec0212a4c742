package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestNewSealerInvalidKey(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		if _, err := NewSealer(make([]byte, size)); err != ErrInvalidSealKey {
			t.Errorf("NewSealer(%d bytes) error = %v, want ErrInvalidSealKey", size, err)
		}
	}
}

func TestSealRoundTrip(t *testing.T) {
	sealer, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}

	plaintext := "correct-horse-battery-staple"
	sealed, err := sealer.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	if sealed == plaintext {
		t.Fatal("Seal() returned the plaintext unchanged")
	}

	opened, err := sealer.Open(sealed)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if opened != plaintext {
		t.Errorf("Open() = %q, want %q", opened, plaintext)
	}
}

func TestSealProducesDistinctCiphertexts(t *testing.T) {
	sealer, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}

	first, err := sealer.Seal("same-secret")
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	second, err := sealer.Seal("same-secret")
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	if first == second {
		t.Error("Seal() produced identical ciphertexts for the same plaintext (nonce should differ)")
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	sealer, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}

	sealed, err := sealer.Seal("secret")
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		t.Fatalf("decoding sealed value: %v", err)
	}
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := sealer.Open(tampered); err != ErrInvalidCiphertext {
		t.Errorf("Open(tampered) error = %v, want ErrInvalidCiphertext", err)
	}
}

func TestOpenRejectsMalformedInput(t *testing.T) {
	sealer, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}

	for _, input := range []string{"", "not-base64!!!", base64.StdEncoding.EncodeToString([]byte("short"))} {
		if _, err := sealer.Open(input); err != ErrInvalidCiphertext {
			t.Errorf("Open(%q) error = %v, want ErrInvalidCiphertext", input, err)
		}
	}
}

func TestOpenWithDifferentKey(t *testing.T) {
	sealer, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}

	other, err := NewSealer(bytes.Repeat([]byte{0x24}, 32))
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}

	sealed, err := sealer.Seal("secret")
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	if _, err := other.Open(sealed); err != ErrInvalidCiphertext {
		t.Errorf("Open() with wrong key error = %v, want ErrInvalidCiphertext", err)
	}
}
