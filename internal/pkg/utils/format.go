package utils

import (
	"regexp"
	"strings"
)

var (
	reNonDigits      = regexp.MustCompile(`\D`)
	reNonPhoneDigits = regexp.MustCompile(`[^\d+]`)
)

func DigitsOnly(value string) string {
	return reNonDigits.ReplaceAllString(value, "")
}

// CleanPhone keeps digits and '+'.
func CleanPhone(value string) string {
	return reNonPhoneDigits.ReplaceAllString(value, "")
}

// FormatPhoneNumber renders an Indonesian number as "+62 812 3456 7890".
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}
	digits := DigitsOnly(phone)
	switch {
	case strings.HasPrefix(digits, "62"):
		return "+" + joinChunks(digits, 2, 5, 9)
	case strings.HasPrefix(digits, "0"):
		return "+62 " + joinChunks(digits[1:], 3, 7)
	}
	return phone
}

// FormatNIK groups a 16 digit NIK in blocks of four.
func FormatNIK(nik string) string {
	if nik == "" {
		return ""
	}
	digits := DigitsOnly(nik)
	if len(digits) == 16 {
		return joinChunks(digits, 4, 8, 12)
	}
	return digits
}

func joinChunks(value string, cuts ...int) string {
	parts := make([]string, 0, len(cuts)+1)
	start := 0
	for _, cut := range cuts {
		if cut > len(value) {
			cut = len(value)
		}
		parts = append(parts, value[start:cut])
		start = cut
	}
	parts = append(parts, value[start:])
	return strings.TrimSpace(strings.Join(parts, " "))
}
