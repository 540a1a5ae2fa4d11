package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"ghactivity/internal/filter"
	"ghactivity/internal/format"
	"ghactivity/internal/github"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ghactivity: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		typeArg      string
		repoArg      string
		limitArg     int
		dateArg      string
		today        bool
		week         bool
		formatFlag   string
		noHeader     bool
		forceColor   bool
		forceNoColor bool
		apiURL       string
	)

	cmd := &cobra.Command{
		Use:   "ghactivity <username>",
		Short: "Show recent public GitHub activity for a user",
		Long: `Fetch a GitHub user's public event feed and print readable summaries,
optionally filtered by event type, repository, or date.

Event types (and aliases):
  push, create, delete, issues, issue_comment, star (watch),
  fork, pr (pull_request), pr_review, pr_comment, release, member`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			if forceColor && forceNoColor {
				return errors.New("--color and --no-color cannot be used together")
			}
			if cmd.Flags().Changed("limit") && limitArg <= 0 {
				return fmt.Errorf("--limit must be a positive integer, got %d", limitArg)
			}
			if dateArg != "" {
				if _, err := time.Parse("2006-01-02", dateArg); err != nil {
					return fmt.Errorf("invalid --date value %q: expected YYYY-MM-DD", dateArg)
				}
			}

			// Past this point failures are not usage errors.
			cmd.SilenceUsage = true

			errs := cmd.ErrOrStderr()
			useColor := resolveColorChoice(errs, forceColor, forceNoColor)

			now := time.Now()
			criteria, warnings := filter.Build(filter.Options{
				Type:  typeArg,
				Repo:  repoArg,
				Date:  dateArg,
				Today: today,
				Week:  week,
				Limit: limitArg,
			}, now)
			for _, warn := range warnings {
				fmt.Fprintf(errs, "%s %s\n", colorize(useColor, ansiWarning, "warning:"), warn)
			}

			fmt.Fprintf(errs, "Fetching activity for GitHub user: %s...\n", username)

			client := github.NewClient(apiURL)
			events, err := client.FetchEvents(cmd.Context(), username)
			if err != nil {
				return err
			}

			filtered := filter.Apply(events, criteria)

			out := cmd.OutOrStdout()
			opts := format.WriteOptions{
				Format:        strings.ToLower(formatFlag),
				Header:        !noHeader,
				FilterSummary: filterSummary(criteria),
				ShowAge:       criteria.Since != nil,
				Now:           now,
				Width:         determineWidth(out),
			}
			return format.WriteEvents(out, filtered, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&typeArg, "type", "t", "", "filter by event type (see event types below)")
	flags.StringVarP(&repoArg, "repo", "r", "", "filter by repository name substring (case-insensitive)")
	flags.IntVarP(&limitArg, "limit", "l", 0, "limit the number of results (0 means no limit)")
	flags.StringVarP(&dateArg, "date", "d", "", "show events on/after the given date (YYYY-MM-DD); wins over --today/--week")
	flags.BoolVar(&today, "today", false, "show only today's events")
	flags.BoolVar(&week, "week", false, "show events from the last 7 days")
	flags.StringVar(&formatFlag, "format", "plain", "output format: plain, table, json, or jsonl")
	flags.BoolVar(&noHeader, "no-header", false, "omit the header for plain and table output")
	flags.BoolVar(&forceColor, "color", false, "force-enable ANSI colors even when stderr is not a TTY")
	flags.BoolVar(&forceNoColor, "no-color", false, "disable ANSI colors regardless of terminal detection")
	flags.StringVar(&apiURL, "api-url", defaultAPIBase(), "override the GitHub API base URL")

	return cmd
}

// filterSummary echoes the active criteria for the plain header.
func filterSummary(criteria filter.Criteria) string {
	var parts []string
	if criteria.TypeSet && criteria.Type != "" {
		parts = append(parts, fmt.Sprintf("Type: %s", github.FriendlyName(criteria.Type)))
	}
	if criteria.Repo != "" {
		parts = append(parts, fmt.Sprintf("Repo: %s", criteria.Repo))
	}
	if criteria.Since != nil {
		parts = append(parts, fmt.Sprintf("Since: %s", criteria.Since.Format("2006-01-02")))
	}
	return strings.Join(parts, ", ")
}

func defaultAPIBase() string {
	if base := os.Getenv("GHACTIVITY_API_URL"); base != "" {
		return base
	}
	return github.DefaultBaseURL
}

func determineWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if ok {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if colsStr := os.Getenv("COLUMNS"); colsStr != "" {
		if v, err := strconv.Atoi(colsStr); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

const (
	ansiReset   = "\x1b[0m"
	ansiWarning = "\x1b[38;5;220m"
)

func colorize(enabled bool, code string, text string) string {
	if !enabled {
		return text
	}
	return code + text + ansiReset
}

func resolveColorChoice(out io.Writer, forceColor, forceNoColor bool) bool {
	if forceColor {
		return true
	}
	if forceNoColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
