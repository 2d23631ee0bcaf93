package utils

import (
	"regexp"
	"strings"
)

var (
	lowerUpperRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	digitLetterRe = regexp.MustCompile(`([0-9])([a-zA-Z])`)
	letterDigitRe = regexp.MustCompile(`([a-zA-Z])([0-9])`)
)

// NormalizeMalformedText repairs run-together LLM output.
// The rules run in a fixed order; later ones rely on the breaks added earlier.
func NormalizeMalformedText(text string) string {
	text = strings.ReplaceAll(text, ".Total", ".\nTotal")
	text = lowerUpperRe.ReplaceAllString(text, "$1\n$2")
	text = digitLetterRe.ReplaceAllString(text, "$1 $2")
	text = letterDigitRe.ReplaceAllString(text, "$1 $2")
	return text
}
