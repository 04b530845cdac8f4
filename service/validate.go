package service

import (
	"regexp"
	"strings"
)

var (
	namePattern       = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	postalCodePattern = regexp.MustCompile(`^[0-9A-Za-z\s\-]{3,}$`)
	mobileStripper    = regexp.MustCompile(`[\s\-()+]`)
	digitsPattern     = regexp.MustCompile(`^[0-9]{10,}$`)
	upperPattern      = regexp.MustCompile(`[A-Z]`)
	lowerPattern      = regexp.MustCompile(`[a-z]`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
)

// ValidateFirstName checks a first name. The signup path passes
// strict=true and enforces the letters/space/hyphen/apostrophe charset;
// the profile-edit path passes strict=false and checks length only. Both
// behaviors exist upstream and are kept apart deliberately.
func ValidateFirstName(value string, strict bool) error {
	return validateName("firstName", "First name", value, strict)
}

func ValidateLastName(value string, strict bool) error {
	return validateName("lastName", "Last name", value, strict)
}

func validateName(field, label, value string, strict bool) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &ValidationError{Field: field, Message: label + " is required"}
	}
	if len(trimmed) < 2 {
		return &ValidationError{Field: field, Message: label + " must be at least 2 characters"}
	}
	if strict && !namePattern.MatchString(trimmed) {
		return &ValidationError{Field: field, Message: label + " can only contain letters"}
	}
	return nil
}

func ValidateEmail(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &ValidationError{Field: "email", Message: "Email address is required"}
	}
	if !emailPattern.MatchString(trimmed) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	return nil
}

func ValidatePassword(value string) error {
	if value == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	if len(value) < 8 {
		return &ValidationError{Field: "password", Message: "Password must be at least 8 characters long"}
	}
	if !upperPattern.MatchString(value) {
		return &ValidationError{Field: "password", Message: "Password must contain at least one uppercase letter"}
	}
	if !lowerPattern.MatchString(value) {
		return &ValidationError{Field: "password", Message: "Password must contain at least one lowercase letter"}
	}
	if !digitPattern.MatchString(value) {
		return &ValidationError{Field: "password", Message: "Password must contain at least one number"}
	}
	return nil
}

// ValidateMobileNumber accepts formatted numbers; formatting characters
// are stripped before the digit count is checked.
func ValidateMobileNumber(value string) error {
	cleaned := mobileStripper.ReplaceAllString(strings.TrimSpace(value), "")
	if !digitsPattern.MatchString(cleaned) {
		return &ValidationError{Field: "mobileNumber", Message: "Please enter a valid mobile number (at least 10 digits)"}
	}
	return nil
}

func ValidateStreet(value string) error {
	if len(strings.TrimSpace(value)) < 5 {
		return &ValidationError{Field: "street", Message: "Street address must be at least 5 characters"}
	}
	return nil
}

func ValidateCity(value string) error {
	if len(strings.TrimSpace(value)) < 2 {
		return &ValidationError{Field: "city", Message: "City is required"}
	}
	return nil
}

func ValidateProvince(value string) error {
	if len(strings.TrimSpace(value)) < 2 {
		return &ValidationError{Field: "province", Message: "Province is required"}
	}
	return nil
}

func ValidatePostalCode(value string) error {
	if !postalCodePattern.MatchString(strings.TrimSpace(value)) {
		return &ValidationError{Field: "postalCode", Message: "Please enter a valid postal code"}
	}
	return nil
}

func ValidateCountry(value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: "country", Message: "Country is required"}
	}
	return nil
}
