// Package catalog holds the fixed enumerations the application is seeded
// with: expense categories, saving tips, and the built-in challenge list.
// Everything here is immutable after process start.
package catalog

import "strings"

// Categories is the closed set of expense categories. Expenses outside this
// set are rejected at creation time.
var Categories = []string{
	"Food & Dining",
	"Travel & Transport",
	"Study Materials",
	"Entertainment",
	"Shopping",
	"Health & Medical",
	"Other",
}

// Tips shown on the dashboard, one picked at random per request.
var Tips = []string{
	"Track your daily expenses to identify spending patterns and save more effectively!",
	"Set a weekly limit for eating out to cut down on unnecessary spending.",
	"Use public transport instead of rideshares to save on travel costs.",
	"Buy used textbooks or share with friends to reduce study material expenses.",
	"Limit entertainment subscriptions to one or two essentials.",
	"Shop with a list to avoid impulse buys.",
	"Prioritize preventive health to avoid costly medical bills.",
}

// SeedChallenge is one entry of the built-in challenge catalog, inserted
// into the database on first start.
type SeedChallenge struct {
	Title       string
	Description string
	Category    string
	Points      int
}

var SeedChallenges = []SeedChallenge{
	{Title: "Save ₹100 this week", Description: "Avoid spending on non-essentials for 7 days.", Category: "Savings", Points: 100},
	{Title: "No coffee for 3 days", Description: "Skip buying coffee for 3 consecutive days.", Category: "Habits", Points: 50},
	{Title: "Cook at home all weekend", Description: "No food delivery or dining out from Friday to Sunday.", Category: "Habits", Points: 75},
	{Title: "Zero-spend day", Description: "Go one full day without spending anything.", Category: "Savings", Points: 30},
}

// CanonicalCategory matches name against Categories ignoring case and
// surrounding whitespace. It returns the canonical spelling and whether a
// match was found. Multi-word categories made the source's capitalization
// heuristic unreliable, so matching is done case-insensitively instead.
func CanonicalCategory(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(c, trimmed) {
			return c, true
		}
	}
	return "", false
}
