// Package issues provides helpers to inspect and update the project's local
// issue list, stored as a JSON file. It is intentionally small and framework
// agnostic so the same logic serves both maintenance CLIs and tests.
package issues

import (
	"fmt"
	"strings"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Issue is a single entry of the tracked issue list.
type Issue struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Implemented bool   `json:"implemented"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// Open reports whether the issue is still open.
func (i Issue) Open() bool {
	return strings.EqualFold(i.Status, StatusOpen)
}

// Close marks the issue as closed and optionally records a note.
func (i *Issue) Close(note string) {
	i.Status = StatusClosed
	i.Implemented = true
	if note != "" {
		i.Notes = note
	}
}

// ListOpen returns only the issues that are still open.
func ListOpen(issues []Issue) []Issue {
	open := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Open() {
			open = append(open, issue)
		}
	}
	return open
}

// CloseImplemented closes every open issue that is already implemented.
// The input slice is not mutated; a new slice is returned.
func CloseImplemented(issues []Issue) []Issue {
	updated := make([]Issue, len(issues))
	copy(updated, issues)
	for idx := range updated {
		if updated[idx].Implemented && updated[idx].Open() {
			updated[idx].Close("Automatically closed because implementation exists.")
		}
	}
	return updated
}

// Complete marks the issue identified by id as completed and returns a new
// slice with the update applied. Returns ErrIssueNotFound for unknown ids.
func Complete(issues []Issue, id int, note string) ([]Issue, error) {
	updated := make([]Issue, len(issues))
	copy(updated, issues)
	for idx := range updated {
		if updated[idx].ID == id {
			updated[idx].Close(note)
			return updated, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrIssueNotFound, id)
}

// Summarize produces a human readable summary of the open issues.
func Summarize(issues []Issue) string {
	open := ListOpen(issues)
	if len(open) == 0 {
		return "No open issues 🎉"
	}

	lines := make([]string, 0, len(open)+1)
	lines = append(lines, "Open issues:")
	for _, issue := range open {
		line := fmt.Sprintf(" - #%d %s", issue.ID, issue.Title)
		if issue.Priority != "" {
			line += fmt.Sprintf(" [%s]", issue.Priority)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
