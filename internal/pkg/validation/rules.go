package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern is the accepted email shape
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// SlugPattern is the accepted course slug shape
	SlugPattern = `^[a-z0-9]+(-[a-z0-9]+)*$`

	// PasswordMinLength is the minimum password length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Slug  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Slug:  regexp.MustCompile(SlugPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidSlug reports whether the value is a well-formed course slug.
func IsValidSlug(value string) bool {
	return CompiledPatterns.Slug.MatchString(value)
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}

// IsValidName reports whether a person or entity name is within bounds.
func IsValidName(value string) bool {
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}
