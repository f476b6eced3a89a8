// Package scan implements the keyword heuristic that finds ARO one-bedroom
// mentions in a listing page.
package scan

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/aro-monitor/internal/types"
)

// Category is the fixed label attached to every match.
const Category = "ARO One-Bedroom"

// classKeywords marks an element as a candidate listing container when any
// of them appears in its class attribute.
var classKeywords = []string{"apartment", "unit", "floorplan", "listing"}

// availabilityKeywords flag a matched unit as currently available.
var availabilityKeywords = []string{"available", "now"}

// Matches scans HTML for listing containers mentioning an ARO one-bedroom
// unit. The selectors are a best-effort heuristic; tune them against a saved
// copy of the real page with the scan subcommand. Malformed or empty input
// yields no matches, never an error.
func Matches(html string, now time.Time) []types.Match {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var matches []types.Match
	doc.Find("div, article, section").Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok || !containsAny(strings.ToLower(class), classKeywords) {
			return
		}

		text := strings.ToLower(s.Text())
		if !strings.Contains(text, "aro") {
			return
		}
		if !strings.Contains(text, "1 bed") && !strings.Contains(text, "one bed") {
			return
		}

		matches = append(matches, types.Match{
			Category:   Category,
			Available:  containsAny(text, availabilityKeywords),
			Excerpt:    truncate(strings.TrimSpace(s.Text()), types.ExcerptLimit),
			ObservedAt: now,
		})
	})

	return matches
}

// Available filters matches down to those flagged as currently available.
func Available(matches []types.Match) []types.Match {
	var out []types.Match
	for _, m := range matches {
		if m.Available {
			out = append(out, m)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
