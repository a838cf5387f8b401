package helper

import "strings"

// SanitizeCountryCode strips the leading '+' and space runs the form may
// carry ("+886 " -> "886").
func SanitizeCountryCode(code string) string {
	return strings.TrimLeft(code, "+ ")
}

// ComposePhoneCode builds the settlement phoneCode value: "+" plus the
// sanitized country code, defaulting to +886 when nothing usable remains.
func ComposePhoneCode(code string) string {
	sanitized := SanitizeCountryCode(code)
	if sanitized == "" {
		return "+886"
	}
	return "+" + sanitized
}

// BeautifyPhoneNumber removes junk the keypad lets through before pattern
// validation: non-digit prefixes and leading zeros.
func BeautifyPhoneNumber(number string) string {
	check := true

	if number == "" {
		return ""
	}

	for check {
		check = false

		if len(number) > 0 && !isNumeric(string(number[0])) {
			number = number[1:]
			check = true
		}

		for strings.HasPrefix(number, "0") {
			number = number[1:]
			check = true
		}
	}

	return number
}

// isNumeric checks if a string is numeric
func isNumeric(str string) bool {
	return str >= "0" && str <= "9"
}
