package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/standup-cli/standup/internal/gitlog"
)

// digestLines is how many meaningful lines of a note survive into the text
// report.
const digestLines = 10

const truncationNotice = "_... (excerpt; see full note)_"

// RenderJSON serializes the report without loss; parsing it back yields the
// same report.
func RenderJSON(r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

// RenderText formats the report as a markdown document: commits grouped by
// repository in order of first appearance, then one subsection per note entry
// with a digest of its content.
func RenderText(r Report, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Standup Report — %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("**Range:** %s\n", r.Range))
	author := r.Author
	if author == "" {
		author = "all authors"
	}
	sb.WriteString(fmt.Sprintf("**Author:** %s\n", author))
	sb.WriteString(fmt.Sprintf("**Activity:** %d commits across %d repositories, %d notes.\n\n",
		r.Stats.TotalCommits, r.Stats.ReposTouched, r.Stats.MemoryEntries))

	sb.WriteString("## Code Activity\n\n")
	if len(r.Commits) == 0 {
		sb.WriteString("No commits found in this range.\n\n")
	} else {
		for _, group := range groupByRepo(r.Commits) {
			sb.WriteString(fmt.Sprintf("### %s\n\n", group.repo))
			for _, c := range group.commits {
				sb.WriteString(fmt.Sprintf("- %s  %s (`%s`)\n", c.Date, c.Subject, c.Hash))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## Memory / Notes\n\n")
	if len(r.Memory) == 0 {
		sb.WriteString("No notes found in this range.\n")
	} else {
		for _, entry := range r.Memory {
			sb.WriteString(fmt.Sprintf("### %s\n\n", entry.Date))
			sb.WriteString(Digest(entry.Content))
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

type repoGroup struct {
	repo    string
	commits []gitlog.Commit
}

// groupByRepo buckets commits by repository name, ordered by each name's
// first appearance in the input.
func groupByRepo(commits []gitlog.Commit) []repoGroup {
	byRepo := make(map[string][]gitlog.Commit)
	var order []string

	for _, c := range commits {
		if _, seen := byRepo[c.Repo]; !seen {
			order = append(order, c.Repo)
		}
		byRepo[c.Repo] = append(byRepo[c.Repo], c)
	}

	groups := make([]repoGroup, 0, len(order))
	for _, repo := range order {
		groups = append(groups, repoGroup{repo: repo, commits: byRepo[repo]})
	}
	return groups
}

// Digest excerpts note content: the first meaningful lines (headings, list
// items, prose — anything non-blank after trimming) in original order, capped
// at digestLines, followed by a truncation notice.
func Digest(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == digestLines {
			break
		}
	}
	kept = append(kept, truncationNotice)
	return strings.Join(kept, "\n")
}

// WithNarrative prepends an AI narrative to a rendered report, separated by a
// divider. The report body is untouched.
func WithNarrative(rendered, narrative string) string {
	return fmt.Sprintf("## Summary\n\n%s\n\n---\n\n%s", strings.TrimSpace(narrative), rendered)
}

// WithNarrativeFailure appends a visible notice when the AI call failed. The
// report itself is still produced in full.
func WithNarrativeFailure(rendered string, err error) string {
	return fmt.Sprintf("%s\n> AI summary unavailable: %v\n", rendered, err)
}
