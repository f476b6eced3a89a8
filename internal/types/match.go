// Package types holds the records shared across the monitor's packages.
package types

import "time"

// ExcerptLimit caps how much of a matched element's text is kept.
const ExcerptLimit = 200

// Match is one listing element that mentioned the target unit category.
// Matches live only for the cycle that produced them; nothing is persisted
// and no deduplication happens across runs.
type Match struct {
	Category   string
	Available  bool
	Excerpt    string
	ObservedAt time.Time
}
