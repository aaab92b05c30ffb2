package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed standup_summary.md
var standupSummaryPromptTemplate string

// BuildStandupSummaryPrompt assembles the narrative-summary prompt from the
// author, the day window, and the serialized activity report.
func BuildStandupSummaryPrompt(author string, days int, report string) string {
	if author == "" {
		author = "the developer"
	}
	return fmt.Sprintf(strings.TrimSpace(standupSummaryPromptTemplate), author, days, report)
}
