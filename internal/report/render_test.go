package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standup-cli/standup/internal/gitlog"
	"github.com/standup-cli/standup/internal/notes"
)

var renderNow = time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)

func sampleReport() Report {
	return Build(7, "Jane Doe",
		[]gitlog.Commit{
			{Hash: "a1", Date: "2026-08-26", Subject: "Fix token refresh", Repo: "api"},
			{Hash: "b1", Date: "2026-08-26", Subject: "Restyle nav", Repo: "web"},
			{Hash: "a2", Date: "2026-08-25", Subject: "Add retry", Repo: "api"},
		},
		[]notes.Entry{
			{Date: "2026-08-27", Content: "Paired on the auth bug.\n\nStill blocked on staging access."},
		})
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	r := sampleReport()

	out, err := RenderJSON(r)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, r, parsed)
}

func TestRenderJSON_FieldNames(t *testing.T) {
	out, err := RenderJSON(sampleReport())
	require.NoError(t, err)

	for _, key := range []string{`"range"`, `"author"`, `"stats"`, `"reposTouched"`,
		`"totalCommits"`, `"memoryEntries"`, `"commits"`, `"hash"`, `"date"`, `"msg"`,
		`"repo"`, `"memory"`, `"content"`} {
		assert.Contains(t, out, key)
	}
}

func TestRenderJSON_EmptyReportHasEmptyArrays(t *testing.T) {
	// Absent commits and notes serialize as empty sequences, never null.
	out, err := RenderJSON(Build(7, "", nil, nil))
	require.NoError(t, err)

	assert.Contains(t, out, `"commits": []`)
	assert.Contains(t, out, `"memory": []`)
	assert.NotContains(t, out, "null")
}

func TestRenderText_GroupsByFirstAppearance(t *testing.T) {
	out := RenderText(sampleReport(), renderNow)

	// One subsection per distinct repo, api before web (both dated 2026-08-26,
	// api appears first in the sorted sequence).
	apiIdx := strings.Index(out, "### api")
	webIdx := strings.Index(out, "### web")
	require.NotEqual(t, -1, apiIdx)
	require.NotEqual(t, -1, webIdx)
	assert.Less(t, apiIdx, webIdx)

	assert.Equal(t, 1, strings.Count(out, "### api"))
	assert.Equal(t, 1, strings.Count(out, "### web"))
}

func TestRenderText_Headers(t *testing.T) {
	out := RenderText(sampleReport(), renderNow)

	assert.Contains(t, out, "# Standup Report — 2026-08-27")
	assert.Contains(t, out, "**Range:** last 7 days")
	assert.Contains(t, out, "**Author:** Jane Doe")
	assert.Contains(t, out, "3 commits across 2 repositories, 1 notes")
}

func TestRenderText_CommitLine(t *testing.T) {
	out := RenderText(sampleReport(), renderNow)
	assert.Contains(t, out, "- 2026-08-26  Fix token refresh (`a1`)")
}

func TestRenderText_EmptySections(t *testing.T) {
	out := RenderText(Build(7, "Nobody", nil, nil), renderNow)

	assert.Contains(t, out, "No commits found in this range.")
	assert.Contains(t, out, "No notes found in this range.")
}

func TestRenderText_OneNoteSubsectionPerEntry(t *testing.T) {
	r := Build(3, "", nil, []notes.Entry{
		{Date: "2026-08-27", Content: "a"},
		{Date: "2026-08-25", Content: "b"},
	})
	out := RenderText(r, renderNow)

	assert.Contains(t, out, "### 2026-08-27")
	assert.Contains(t, out, "### 2026-08-25")
}

func TestDigest_KeepsMeaningfulLines(t *testing.T) {
	content := "# Tuesday\n\n- fixed the build\n\n- reviewed PRs\nplain line\n"

	digest := Digest(content)
	lines := strings.Split(digest, "\n")

	// Blank lines are dropped, content lines kept in order, notice appended.
	assert.Equal(t, "# Tuesday", lines[0])
	assert.Equal(t, "- fixed the build", lines[1])
	assert.Equal(t, "- reviewed PRs", lines[2])
	assert.Equal(t, "plain line", lines[3])
	assert.Equal(t, truncationNotice, lines[len(lines)-1])
}

func TestDigest_DropsWhitespaceOnlyLines(t *testing.T) {
	digest := Digest("first\n   \n\t\n  - indented item\n")
	lines := strings.Split(digest, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0])
	assert.Equal(t, "  - indented item", lines[1])
	assert.Equal(t, truncationNotice, lines[2])
}

func TestDigest_CapsAtTenLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 25; i++ {
		sb.WriteString("- item\n")
	}

	digest := Digest(sb.String())
	lines := strings.Split(digest, "\n")

	require.Len(t, lines, digestLines+1)
	assert.Equal(t, truncationNotice, lines[digestLines])
}

func TestWithNarrative_Prepends(t *testing.T) {
	out := WithNarrative("REPORT BODY", "Shipped the auth fix.")

	assert.True(t, strings.HasSuffix(out, "REPORT BODY"))
	assert.Contains(t, out, "Shipped the auth fix.")
	assert.Contains(t, out, "---")
	assert.Less(t, strings.Index(out, "Shipped the auth fix."), strings.Index(out, "REPORT BODY"))
}

func TestWithNarrativeFailure_Appends(t *testing.T) {
	body := RenderText(sampleReport(), renderNow)
	out := WithNarrativeFailure(body, errors.New("service unreachable"))

	// The full report comes through untouched, with the notice after it.
	assert.True(t, strings.HasPrefix(out, body))
	assert.Contains(t, out, "AI summary unavailable: service unreachable")
}
