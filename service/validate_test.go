package service

import (
	"errors"
	"testing"
)

func message(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return ""
}

func TestValidateFirstName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		strict  bool
		wantMsg string
	}{
		{"empty", "", true, "First name is required"},
		{"whitespace only", "   ", true, "First name is required"},
		{"too short", "M", true, "First name must be at least 2 characters"},
		{"digits strict", "Maria3rd", true, "First name can only contain letters"},
		{"digits relaxed", "Maria3rd", false, ""},
		{"hyphen and apostrophe", "Anne-Marie O'Neil", true, ""},
		{"plain", "Maria", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFirstName(tt.value, tt.strict)
			if got := message(err); got != tt.wantMsg {
				t.Errorf("got %q, want %q", got, tt.wantMsg)
			}
			if tt.wantMsg == "" && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if msg := message(ValidateEmail("")); msg != "Email address is required" {
		t.Errorf("empty: %q", msg)
	}
	if msg := message(ValidateEmail("not-an-email")); msg != "Please enter a valid email address" {
		t.Errorf("invalid: %q", msg)
	}
	if err := ValidateEmail("maria@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := ValidateEmail("maria@example"); err == nil {
		t.Error("missing tld accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		value   string
		wantMsg string
	}{
		{"", "Password is required"},
		{"Ab1", "Password must be at least 8 characters long"},
		{"alllower1", "Password must contain at least one uppercase letter"},
		{"ALLUPPER1", "Password must contain at least one lowercase letter"},
		{"NoDigitsHere", "Password must contain at least one number"},
		{"GoodPass1", ""},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.value)
		if got := message(err); got != tt.wantMsg {
			t.Errorf("ValidatePassword(%q) = %q, want %q", tt.value, got, tt.wantMsg)
		}
	}
}

func TestValidateMobileNumber(t *testing.T) {
	valid := []string{"09171234567", "+63 917 123 4567", "(0917) 123-4567"}
	for _, number := range valid {
		if err := ValidateMobileNumber(number); err != nil {
			t.Errorf("ValidateMobileNumber(%q): %v", number, err)
		}
	}

	invalid := []string{"12345", "telephone", "0917-abc-4567"}
	for _, number := range invalid {
		if err := ValidateMobileNumber(number); err == nil {
			t.Errorf("ValidateMobileNumber(%q) accepted", number)
		}
	}
}

func TestValidateAddressFields(t *testing.T) {
	if msg := message(ValidateStreet("abc")); msg != "Street address must be at least 5 characters" {
		t.Errorf("street: %q", msg)
	}
	if err := ValidateStreet("123 Katipunan Ave"); err != nil {
		t.Errorf("street rejected: %v", err)
	}

	if msg := message(ValidateCity("Q")); msg != "City is required" {
		t.Errorf("city: %q", msg)
	}
	if msg := message(ValidateProvince("")); msg != "Province is required" {
		t.Errorf("province: %q", msg)
	}

	if msg := message(ValidatePostalCode("1!")); msg != "Please enter a valid postal code" {
		t.Errorf("postal: %q", msg)
	}
	for _, code := range []string{"1108", "K1A 0B1", "SW1A-1AA"} {
		if err := ValidatePostalCode(code); err != nil {
			t.Errorf("ValidatePostalCode(%q): %v", code, err)
		}
	}

	if msg := message(ValidateCountry("  ")); msg != "Country is required" {
		t.Errorf("country: %q", msg)
	}
}
