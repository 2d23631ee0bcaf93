package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var digitLetterAdjacent = regexp.MustCompile(`[0-9][a-zA-Z]|[a-zA-Z][0-9]`)

func TestNormalizeMalformedTextTotalLine(t *testing.T) {
	got := NormalizeMalformedText("Food.Total:200USD")

	assert.Equal(t, "Food.\nTotal:200 USD", got)
	assert.Contains(t, got, "\nTotal")
	assert.False(t, digitLetterAdjacent.MatchString(got))
}

func TestNormalizeMalformedTextRules(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"accommodationTransport", "accommodation\nTransport"},
		{"Meals300perday", "Meals 300 perday"},
		{"Day1Museum", "Day 1 Museum"},
		{"a1b2", "a 1 b 2"},
		{"Total: $1,200", "Total: $1,200"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeMalformedText(tc.in), tc.in)
	}
}

func TestNormalizeMalformedTextIdempotent(t *testing.T) {
	inputs := []string{
		"Food.Total:200USD",
		"Accommodation:$400Transportation:$150Meals:$200.Total:$750withinBudget",
		"| Day1 | VisitBelemTower |",
		"plain text already fine",
	}
	for _, in := range inputs {
		once := NormalizeMalformedText(in)
		assert.Equal(t, once, NormalizeMalformedText(once), in)
		assert.False(t, digitLetterAdjacent.MatchString(once), once)
		assert.NotContains(t, once, ".Total")
		assert.False(t, strings.Contains(once, "lT"), once)
	}
}
