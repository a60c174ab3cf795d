package validators

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[\d\s\-().+]+$`)

const minPhoneDigits = 10

// IsPhoneValid accepts digits with common separators and at least ten digits.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits
}
