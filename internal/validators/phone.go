package validators

// IsPhoneValid accepts digit-only phone numbers between 7 and 15 digits,
// optionally prefixed with "+".
func IsPhoneValid(phone string) bool {
	if phone == "" {
		return false
	}

	digits := phone
	if digits[0] == '+' {
		digits = digits[1:]
	}

	if len(digits) < 7 || len(digits) > 15 {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
