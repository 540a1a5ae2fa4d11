// Package github provides the event model and API client for a user's
// public activity feed.
package github

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType represents the "type" field values observed in the events API.
type EventType string

const (
	EventTypePush            EventType = "PushEvent"
	EventTypeCreate          EventType = "CreateEvent"
	EventTypeDelete          EventType = "DeleteEvent"
	EventTypeIssues          EventType = "IssuesEvent"
	EventTypeIssueComment    EventType = "IssueCommentEvent"
	EventTypeWatch           EventType = "WatchEvent"
	EventTypeFork            EventType = "ForkEvent"
	EventTypePullRequest     EventType = "PullRequestEvent"
	EventTypePRReview        EventType = "PullRequestReviewEvent"
	EventTypePRReviewComment EventType = "PullRequestReviewCommentEvent"
	EventTypeRelease         EventType = "ReleaseEvent"
	EventTypeMember          EventType = "MemberEvent"
)

// aliasTable maps user-facing filter tokens to canonical event types.
var aliasTable = map[string]EventType{
	"push":          EventTypePush,
	"create":        EventTypeCreate,
	"delete":        EventTypeDelete,
	"issues":        EventTypeIssues,
	"issue_comment": EventTypeIssueComment,
	"star":          EventTypeWatch,
	"watch":         EventTypeWatch,
	"fork":          EventTypeFork,
	"pr":            EventTypePullRequest,
	"pull_request":  EventTypePullRequest,
	"pr_review":     EventTypePRReview,
	"pr_comment":    EventTypePRReviewComment,
	"release":       EventTypeRelease,
	"member":        EventTypeMember,
}

// ResolveEventType maps a filter token to its canonical event type.
// Matching is case-insensitive. The second result reports whether the
// token is recognized.
func ResolveEventType(token string) (EventType, bool) {
	eventType, ok := aliasTable[strings.ToLower(strings.TrimSpace(token))]
	return eventType, ok
}

// friendlyNames holds display names for the filter echo line. Types with
// several aliases pick the most descriptive one.
var friendlyNames = map[EventType]string{
	EventTypePush:            "Push",
	EventTypeCreate:          "Create",
	EventTypeDelete:          "Delete",
	EventTypeIssues:          "Issues",
	EventTypeIssueComment:    "Issue Comment",
	EventTypeWatch:           "Star",
	EventTypeFork:            "Fork",
	EventTypePullRequest:     "Pull Request",
	EventTypePRReview:        "PR Review",
	EventTypePRReviewComment: "PR Comment",
	EventTypeRelease:         "Release",
	EventTypeMember:          "Member",
}

// FriendlyName converts a canonical event type back to a display name,
// e.g. "PushEvent" -> "Push", "WatchEvent" -> "Star".
func FriendlyName(eventType EventType) string {
	if name, ok := friendlyNames[eventType]; ok {
		return name
	}
	return strings.TrimSuffix(string(eventType), "Event")
}

// Commit is one entry of a push payload's commit list.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// Payload carries the type-dependent fields the formatter reads. Raw keeps
// the undecoded bytes for payload shapes we don't model.
type Payload struct {
	Action  string   `json:"action"`
	RefType string   `json:"ref_type"`
	Size    int      `json:"size"`
	Commits []Commit `json:"commits"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and retains the raw bytes.
func (p *Payload) UnmarshalJSON(data []byte) error {
	type alias Payload
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = Payload(decoded)
	p.Raw = append(p.Raw[:0], data...)
	return nil
}

// Repo identifies the repository an event happened in.
type Repo struct {
	Name string `json:"name"`
}

// Event is one entry from a user's public activity feed. Events are
// immutable once fetched.
type Event struct {
	Type      EventType `json:"type"`
	Repo      Repo      `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
	Payload   Payload   `json:"payload"`
}

// RepoName returns the repository name, or a placeholder when absent.
func (e Event) RepoName() string {
	if e.Repo.Name == "" {
		return "unknown repo"
	}
	return e.Repo.Name
}

// CommitCount returns the number of commits in a push payload, preferring
// the size field over the (possibly truncated) commit list.
func (e Event) CommitCount() int {
	if e.Payload.Size > 0 {
		return e.Payload.Size
	}
	return len(e.Payload.Commits)
}
