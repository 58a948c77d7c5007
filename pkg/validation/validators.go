package validation

import (
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Tag names registered by RegisterValidators.
const (
	TagContactEmail = "contact_email"
	TagContactPhone = "contact_phone"
	// min_utf16=N counts UTF-16 code units, like the site's form does
	TagMinUTF16 = "min_utf16"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace and a single @ per side
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits, spaces, hyphens, parentheses and plus signs only
	phoneRegex = regexp.MustCompile(`^[0-9 \-\(\)\+]+$`)
)

// New returns a validator with the contact tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation(TagContactEmail, ContactEmail)
	_ = v.RegisterValidation(TagContactPhone, ContactPhone)
	_ = v.RegisterValidation(TagMinUTF16, MinUTF16)
}

// MinUTF16 checks a string has at least param UTF-16 code units.
func MinUTF16(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return UTF16Len(fl.Field().String()) >= n
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ContactEmail validates the minimal local@domain.tld shape
func ContactEmail(fl validator.FieldLevel) bool {
	return IsContactEmail(fl.Field().String())
}

// ContactPhone validates phone characters. Empty is allowed; use required if needed.
func ContactPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsContactPhone(val)
}

func IsContactEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func IsContactPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
