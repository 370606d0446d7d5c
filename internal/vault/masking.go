package vault

import (
	"strings"
	"unicode/utf8"
)

// maskRune is the character used for hidden positions
const maskRune = "*"

// MaskName hides a personal name, keeping only the first rune. The mask length
// is fixed so the output leaks nothing about the real length.
func MaskName(name string) string {
	if name == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(name)
	return string(first) + strings.Repeat(maskRune, 5)
}

// MaskTail hides all but the last four characters of identifiers such as
// government IDs and mobile numbers. Values of four characters or fewer are
// fully masked.
func MaskTail(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat(maskRune, len(runes))
	}
	return strings.Repeat(maskRune, len(runes)-4) + string(runes[len(runes)-4:])
}

// MaskEmail hides the local part of an address, keeping its first rune and the
// full domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return MaskName(email)
	}
	return MaskName(email[:at]) + email[at:]
}
