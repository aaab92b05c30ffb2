package report

import (
	"fmt"
	"sort"

	"github.com/standup-cli/standup/internal/gitlog"
	"github.com/standup-cli/standup/internal/notes"
)

// Stats summarizes one aggregation run.
type Stats struct {
	ReposTouched  int `json:"reposTouched"`
	TotalCommits  int `json:"totalCommits"`
	MemoryEntries int `json:"memoryEntries"`
}

// Report is the merged result of one run: all commits across the workspace
// plus the note entries for the window. Built once, never mutated.
type Report struct {
	Range   string          `json:"range"`
	Author  string          `json:"author"`
	Stats   Stats           `json:"stats"`
	Commits []gitlog.Commit `json:"commits"`
	Memory  []notes.Entry   `json:"memory"`
}

// Build merges commit and note sequences into a report. Commits arrive
// concatenated in locator order and are re-sorted by date descending; the
// sort is stable so same-date commits keep their input order. Pure function;
// identical inputs always produce an identical report.
func Build(days int, author string, commits []gitlog.Commit, memory []notes.Entry) Report {
	sorted := make([]gitlog.Commit, len(commits))
	copy(sorted, commits)
	// ISO dates compare correctly as strings.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	repoSet := make(map[string]bool)
	for _, c := range sorted {
		repoSet[c.Repo] = true
	}

	// Absence is an empty sequence, never null in the structured output.
	entries := make([]notes.Entry, len(memory))
	copy(entries, memory)

	return Report{
		Range:  fmt.Sprintf("last %d days", days),
		Author: author,
		Stats: Stats{
			ReposTouched:  len(repoSet),
			TotalCommits:  len(sorted),
			MemoryEntries: len(entries),
		},
		Commits: sorted,
		Memory:  entries,
	}
}
