package validation

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.uk",
		"user+tag@example.com",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"user@",
		strings.Repeat("a", 250) + "@example.com",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Alice"); err != nil {
		t.Errorf("ValidateName(Alice) = %v", err)
	}
	if err := ValidateName("   "); err == nil {
		t.Error("whitespace-only name accepted")
	}
	if err := ValidateName(strings.Repeat("x", 101)); err == nil {
		t.Error("101-char name accepted")
	}
	if err := ValidateName(strings.Repeat("x", 100)); err != nil {
		t.Errorf("100-char name rejected: %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret"); err != nil {
		t.Errorf("6-char password rejected: %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("5-char password accepted")
	}
	if err := ValidatePassword(strings.Repeat("p", 73)); err == nil {
		t.Error("73-byte password accepted, bcrypt would truncate it")
	}
	if err := ValidatePassword(strings.Repeat("p", 72)); err != nil {
		t.Errorf("72-byte password rejected: %v", err)
	}
}
