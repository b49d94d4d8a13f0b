package validation

import (
	"strings"
	"unicode/utf8"
)

// Strength is the coarse password score shown next to the password field.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// MinPasswordLength is the minimum accepted password length, in characters.
const MinPasswordLength = 8

// Messages reported by ValidatePassword.
const (
	MsgPasswordTooShort = "Password must be at least 8 characters"
	MsgPasswordWeak     = "Weak password"
	MsgPasswordMedium   = "Medium strength password"
	MsgPasswordStrong   = "Strong password"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Requirements holds the five independent password checks.
type Requirements struct {
	MinLength      bool `json:"minLength"`
	HasUpperCase   bool `json:"hasUpperCase"`
	HasLowerCase   bool `json:"hasLowerCase"`
	HasNumber      bool `json:"hasNumber"`
	HasSpecialChar bool `json:"hasSpecialChar"`
}

// Met returns how many of the five requirements hold.
func (r Requirements) Met() int {
	n := 0
	for _, ok := range []bool{r.MinLength, r.HasUpperCase, r.HasLowerCase, r.HasNumber, r.HasSpecialChar} {
		if ok {
			n++
		}
	}
	return n
}

// PasswordResult is the outcome of ValidatePassword.
type PasswordResult struct {
	IsValid      bool         `json:"isValid"`
	Strength     Strength     `json:"strength"`
	Message      string       `json:"message"`
	Requirements Requirements `json:"requirements"`
}

// ValidatePassword scores password.
//
// The length check is both a gate and one of the five scored requirements:
// below MinPasswordLength the result is always weak, otherwise fewer than
// three met requirements is weak, exactly three is medium and four or five
// is strong. Medium and strong passwords are valid.
func ValidatePassword(password string) PasswordResult {
	length := utf8.RuneCountInString(password)

	result := PasswordResult{
		Strength: StrengthWeak,
		Requirements: Requirements{
			MinLength:      length >= MinPasswordLength,
			HasUpperCase:   strings.ContainsFunc(password, isASCIIUpper),
			HasLowerCase:   strings.ContainsFunc(password, isASCIILower),
			HasNumber:      strings.ContainsFunc(password, isASCIIDigit),
			HasSpecialChar: strings.ContainsAny(password, specialChars),
		},
	}

	met := result.Requirements.Met()

	switch {
	case length < MinPasswordLength:
		result.Message = MsgPasswordTooShort
	case met < 3:
		result.Message = MsgPasswordWeak
	case met == 3:
		result.Strength = StrengthMedium
		result.Message = MsgPasswordMedium
		result.IsValid = true
	default:
		result.Strength = StrengthStrong
		result.Message = MsgPasswordStrong
		result.IsValid = true
	}

	return result
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
