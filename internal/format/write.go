package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"ghactivity/internal/github"
)

// WriteOptions controls how WriteEvents renders its output.
type WriteOptions struct {
	// Format selects the output format: plain (default), table, json,
	// or jsonl.
	Format string

	// Header includes the count/filter header (plain) or the column
	// header row (table).
	Header bool

	// FilterSummary echoes the active filters in the plain header,
	// e.g. "Type: Push, Repo: linux".
	FilterSummary string

	// ShowAge appends a relative age to each plain line.
	ShowAge bool

	// Now anchors relative ages; zero means time.Now.
	Now time.Time

	// Width caps the rendered table row length; zero means unbounded.
	Width int
}

type eventRecord struct {
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Repo      string    `json:"repo"`
	Summary   string    `json:"summary"`
}

// WriteEvents writes the events to w in the requested format.
func WriteEvents(w io.Writer, events []github.Event, opts WriteOptions) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	switch strings.ToLower(opts.Format) {
	case "", "plain":
		return writeEventsPlain(w, events, opts)
	case "table":
		return writeEventsTable(w, events, opts)
	case "json":
		return writeEventsJSON(w, events)
	case "jsonl":
		return writeEventsJSONL(w, events)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func writeEventsPlain(w io.Writer, events []github.Event, opts WriteOptions) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No activity found matching the filters.")
		return err
	}

	if opts.Header {
		if _, err := fmt.Fprintf(w, "Recent Activity (%d events)\n", len(events)); err != nil {
			return err
		}
		if opts.FilterSummary != "" {
			if _, err := fmt.Fprintf(w, "Filters: %s\n", opts.FilterSummary); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
			return err
		}
	}

	for _, event := range events {
		line := Line(event)
		if opts.ShowAge {
			line += fmt.Sprintf(" (%s)", TimeAgo(event.CreatedAt, opts.Now))
		}
		if _, err := fmt.Fprintf(w, "- %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func writeEventsTable(w io.Writer, events []github.Event, opts WriteOptions) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true
	tw.Style().Options.DrawBorder = true
	if opts.Width > 0 {
		tw.SetAllowedRowLength(opts.Width)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 80},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: maxDetailsWidth + 2},
	})

	if opts.Header {
		tw.AppendHeader(table.Row{"Timestamp", "Type", "Repository", "Activity", "Details"})
	}

	for _, event := range events {
		tw.AppendRow(table.Row{
			event.CreatedAt.Format(time.RFC3339),
			github.FriendlyName(event.Type),
			event.RepoName(),
			Line(event),
			Details(event),
		})
	}

	if len(events) == 0 {
		tw.AppendRow(table.Row{"-", "-", "-", "(no activity)", "-"})
	}

	_ = tw.Render()
	return nil
}

func writeEventsJSON(w io.Writer, events []github.Event) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(events))
}

func writeEventsJSONL(w io.Writer, events []github.Event) error {
	enc := json.NewEncoder(w)
	for _, record := range records(events) {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

func records(events []github.Event) []eventRecord {
	out := make([]eventRecord, 0, len(events))
	for _, event := range events {
		out = append(out, eventRecord{
			CreatedAt: event.CreatedAt,
			Type:      string(event.Type),
			Repo:      event.RepoName(),
			Summary:   Line(event),
		})
	}
	return out
}
