// Package format renders activity events as display lines and writes them
// in the supported output formats.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"ghactivity/internal/github"
)

const maxDetailsWidth = 60

// Line converts one event into its display sentence. It is total: unknown
// event types and missing payload fields degrade to generic phrasing
// rather than failing.
func Line(event github.Event) string {
	repo := event.RepoName()

	switch event.Type {
	case github.EventTypePush:
		return fmt.Sprintf("Pushed %d commit(s) to %s", event.CommitCount(), repo)
	case github.EventTypeCreate:
		return fmt.Sprintf("Created %s in %s", refType(event, "repository"), repo)
	case github.EventTypeDelete:
		return fmt.Sprintf("Deleted %s in %s", refType(event, "branch"), repo)
	case github.EventTypeIssues:
		return fmt.Sprintf("%s an issue in %s", actionVerb(event, "updated"), repo)
	case github.EventTypeIssueComment:
		return fmt.Sprintf("Commented on an issue in %s", repo)
	case github.EventTypeWatch:
		return fmt.Sprintf("Starred %s", repo)
	case github.EventTypeFork:
		return fmt.Sprintf("Forked %s", repo)
	case github.EventTypePullRequest:
		return fmt.Sprintf("%s a pull request in %s", actionVerb(event, "updated"), repo)
	case github.EventTypePRReview:
		return fmt.Sprintf("Reviewed a pull request in %s", repo)
	case github.EventTypePRReviewComment:
		return fmt.Sprintf("Commented on a pull request in %s", repo)
	case github.EventTypeRelease:
		return fmt.Sprintf("%s a new release in %s", actionVerb(event, "published"), repo)
	case github.EventTypeMember:
		return fmt.Sprintf("Added a collaborator to %s", repo)
	default:
		label := strings.TrimSuffix(string(event.Type), "Event")
		if label == "" {
			label = "Unknown"
		}
		return fmt.Sprintf("%s event in %s", label, repo)
	}
}

// Details returns a short per-type annotation for the table's last column,
// clipped to a display width that keeps rows readable.
func Details(event github.Event) string {
	var details string
	switch event.Type {
	case github.EventTypePush:
		if len(event.Payload.Commits) > 0 {
			details = firstLine(event.Payload.Commits[0].Message)
		}
	case github.EventTypeCreate, github.EventTypeDelete:
		details = event.Payload.RefType
	case github.EventTypeIssues, github.EventTypePullRequest, github.EventTypeRelease:
		details = event.Payload.Action
	}
	if details == "" {
		return "-"
	}
	return runewidth.Truncate(details, maxDetailsWidth, "…")
}

// TimeAgo phrases how long before now t happened.
func TimeAgo(t, now time.Time) string {
	seconds := now.Sub(t).Seconds()

	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return pluralize(int(seconds/60), "minute")
	case seconds < 86400:
		return pluralize(int(seconds/3600), "hour")
	case seconds < 30*86400:
		return pluralize(int(seconds/86400), "day")
	default:
		return pluralize(int(seconds/(30*86400)), "month")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func actionVerb(event github.Event, fallback string) string {
	action := event.Payload.Action
	if action == "" {
		action = fallback
	}
	return strings.ToUpper(action[:1]) + action[1:]
}

func refType(event github.Event, fallback string) string {
	if event.Payload.RefType == "" {
		return fallback
	}
	return event.Payload.RefType
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
