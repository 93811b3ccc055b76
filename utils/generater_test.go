package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	a := GenerateToken()
	b := GenerateToken()

	if len(a) != 40 {
		t.Errorf("expected a 40 character token, got %d", len(a))
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Errorf("expected a hex token, got %q", a)
	}
	if a == b {
		t.Error("expected two generated tokens to differ")
	}
}
