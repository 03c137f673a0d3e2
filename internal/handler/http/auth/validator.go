package auth

import (
	"fmt"
	"strings"
)

// MinPasswordLength is the shortest password accepted for a configured user.
const MinPasswordLength = 12

var weakPasswordList = []string{
	"admin", "password", "123456", "secret", "admin123", "password123",
	"123456789", "12345678", "qwerty", "abc123", "letmein", "welcome",
	"monkey", "1234567890", "password1", "admin1", "test", "test123",
	"default", "root",
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"qwerty",
	"asdfgh",
	"zxcvb",
}

// ValidatePassword applies the startup password policy to the password of the
// user configured under envKey.
//
// Rules:
//   - at least MinPasswordLength characters
//   - not a repeated character or a digit run ("111111111111", "123456789012")
//   - no keyboard row ("qwerty", "asdfgh", ...) forwards or backwards
//   - not a common weak password, nor a short password that starts with one
//
// Parameters:
//   - envKey: Variable the password came from, used in the error message
//   - pass: Password to check
//
// Returns:
//   - error: nil if acceptable. The message names envKey and never the password.
//
// Example:
//
//	if err := ValidatePassword("ADMIN_USER_PASSWORD", os.Getenv("ADMIN_USER_PASSWORD")); err != nil {
//	    logger.Error("credentials validation failed", slog.Any("error", err))
//	    os.Exit(1)
//	}
func ValidatePassword(envKey, pass string) error {
	if pass == "" {
		return fmt.Errorf("%s must not be empty", envKey)
	}
	if len(pass) < MinPasswordLength {
		return fmt.Errorf("%s must be at least %d characters (current length: %d)", envKey, MinPasswordLength, len(pass))
	}
	if isSimpleNumericPattern(pass) {
		return fmt.Errorf("%s must not be a simple numeric pattern", envKey)
	}
	if isKeyboardPattern(pass) {
		return fmt.Errorf("%s must not be a keyboard pattern", envKey)
	}

	lower := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lower == weak {
			return fmt.Errorf("%s must not be a weak password", envKey)
		}
		if strings.HasPrefix(lower, weak) && len(pass) < MinPasswordLength+5 {
			return fmt.Errorf("%s must not be based on common weak passwords", envKey)
		}
	}
	return nil
}

// isSimpleNumericPattern catches repeated characters and digit runs such as
// 123456789012 or 987654321098.
func isSimpleNumericPattern(pass string) bool {
	if isRepeatedChar(pass) {
		return true
	}
	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	ascending, descending := true, true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		if diff != 1 && diff != -9 {
			ascending = false
		}
		if diff != -1 && diff != 9 {
			descending = false
		}
	}
	return ascending || descending
}

func isRepeatedChar(pass string) bool {
	if pass == "" {
		return false
	}
	return strings.Count(pass, pass[:1]) == len(pass)
}

func isKeyboardPattern(pass string) bool {
	lower := strings.ToLower(pass)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) || strings.Contains(lower, reverse(pattern)) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
