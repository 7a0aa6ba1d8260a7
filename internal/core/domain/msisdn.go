package domain

import (
	"regexp"
	"strings"
)

var nonNumericRegex = regexp.MustCompile(`[^0-9]`)

// SanitizeMSISDN normalizes a Kenyan mobile number to international format
// (2547XXXXXXXX / 2541XXXXXXXX). Returns ErrValidation for anything else.
func SanitizeMSISDN(phone string) (string, error) {
	sanitized := nonNumericRegex.ReplaceAllString(phone, "")

	if (strings.HasPrefix(sanitized, "07") || strings.HasPrefix(sanitized, "01")) && len(sanitized) == 10 {
		return "254" + sanitized[1:], nil
	}
	if (strings.HasPrefix(sanitized, "7") || strings.HasPrefix(sanitized, "1")) && len(sanitized) == 9 {
		return "254" + sanitized, nil
	}
	if strings.HasPrefix(sanitized, "254") && len(sanitized) == 12 {
		return sanitized, nil
	}

	return "", ErrValidation
}
