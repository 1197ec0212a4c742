package repository

import (
	"testing"
)

func TestNewCredentialRepository(t *testing.T) {
	repo := NewCredentialRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil CredentialRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestCredentialSentinelError(t *testing.T) {
	if ErrCredentialNotFound == nil {
		t.Fatal("ErrCredentialNotFound should not be nil")
	}
	if ErrCredentialNotFound.Error() != "credential not found" {
		t.Fatalf("unexpected error message: %s", ErrCredentialNotFound.Error())
	}
}
