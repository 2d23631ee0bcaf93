package services

import (
	"regexp"
	"strings"

	"navmind/internal/domain/models"
	"navmind/internal/utils"
)

const budgetTableWarning = "Could not format budget as table."

var (
	// "* Accommodation: $1,200"
	budgetColonRe = regexp.MustCompile(`^\*?\s*([\w\s]+):\s*\$?([0-9,]+(?:\.[0-9]+)?)`)
	// "| **Accommodation** | $1,200 |"
	budgetRowRe = regexp.MustCompile(`^\|\s*\**\s*([A-Za-z][\w\s&/()-]*?)\s*\**\s*\|\s*\**\s*\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)
)

// hasCostCategories gates the table: only budget text naming both core
// categories is worth scanning.
func hasCostCategories(text string) bool {
	return strings.Contains(text, "Accommodation") && strings.Contains(text, "Transportation")
}

// ExtractBudgetLineItems scans budget text for "label: $amount" lines (and
// markdown table rows) and converts each amount with rate.
// ok is false when the text looked like a breakdown but nothing could be parsed.
func ExtractBudgetLineItems(text string, rate float64) (items []models.BudgetLineItem, ok bool) {
	if !hasCostCategories(text) {
		return nil, true
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		m := budgetColonRe.FindStringSubmatch(line)
		if m == nil {
			m = budgetRowRe.FindStringSubmatch(strings.TrimSpace(line))
		}
		if m == nil {
			continue
		}
		item := utils.NormalizeSpace(m[1])
		if item == "" {
			continue
		}
		usd := strings.ReplaceAll(m[2], ",", "")
		if usd == "" {
			continue
		}
		items = append(items, models.BudgetLineItem{
			Item:    item,
			CostINR: utils.ConvertAmount(usd, rate),
		})
	}
	return items, len(items) > 0
}
