// Package filter narrows an event sequence by type, repository, and date
// criteria.
package filter

import (
	"fmt"
	"strings"
	"time"

	"ghactivity/internal/github"
)

// Criteria is the conjunction of active filters for one run. Absent
// criteria are match-all.
type Criteria struct {
	// Type is the canonical event type to keep. TypeSet distinguishes
	// "no type filter" from "filter on the zero value"; when TypeSet is
	// true and Type is empty the criteria matches nothing (unrecognized
	// token).
	Type    github.EventType
	TypeSet bool

	// Repo is a case-insensitive substring of the repository name.
	Repo string

	// Since keeps events created at or after the given instant.
	Since *time.Time

	// Limit keeps the first N events after filtering; zero means no limit.
	Limit int
}

// Options carries the raw CLI filter values before resolution.
type Options struct {
	Type  string
	Repo  string
	Date  string // YYYY-MM-DD, already validated
	Today bool
	Week  bool
	Limit int
}

// Build resolves Options into Criteria. now anchors the --today/--week
// windows and the local timezone for --date. An unrecognized type token
// produces a warning and a criteria that matches nothing. Build assumes
// Date was validated upstream; a malformed value is ignored with a
// warning rather than aborting the run.
func Build(opts Options, now time.Time) (Criteria, []string) {
	var warnings []string

	criteria := Criteria{
		Repo:  opts.Repo,
		Limit: opts.Limit,
	}

	if opts.Type != "" {
		criteria.TypeSet = true
		if eventType, ok := github.ResolveEventType(opts.Type); ok {
			criteria.Type = eventType
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown event type %q: no events will match", opts.Type))
		}
	}

	// --date is the most explicit statement of intent and wins over the
	// --today/--week shortcuts.
	switch {
	case opts.Date != "":
		day, err := time.ParseInLocation("2006-01-02", opts.Date, now.Location())
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid date %q: ignoring date filter", opts.Date))
			break
		}
		criteria.Since = &day
	case opts.Today:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		criteria.Since = &midnight
	case opts.Week:
		weekAgo := now.AddDate(0, 0, -7)
		criteria.Since = &weekAgo
	}

	return criteria, warnings
}

// Apply returns the events satisfying every active criterion, in their
// original order. It never mutates or reorders the input; with no active
// criteria the input slice is returned as-is.
func Apply(events []github.Event, criteria Criteria) []github.Event {
	if !criteria.TypeSet && criteria.Repo == "" && criteria.Since == nil && criteria.Limit <= 0 {
		return events
	}

	filtered := events
	if criteria.TypeSet || criteria.Repo != "" || criteria.Since != nil {
		filtered = make([]github.Event, 0, len(events))
		for _, event := range events {
			if matches(event, criteria) {
				filtered = append(filtered, event)
			}
		}
	}

	if criteria.Limit > 0 && len(filtered) > criteria.Limit {
		filtered = filtered[:criteria.Limit]
	}

	return filtered
}

func matches(event github.Event, criteria Criteria) bool {
	if criteria.TypeSet && (criteria.Type == "" || event.Type != criteria.Type) {
		return false
	}
	if criteria.Repo != "" && !strings.Contains(strings.ToLower(event.Repo.Name), strings.ToLower(criteria.Repo)) {
		return false
	}
	if criteria.Since != nil && event.CreatedAt.Before(*criteria.Since) {
		return false
	}
	return true
}
