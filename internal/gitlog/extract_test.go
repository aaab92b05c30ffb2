package gitlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource returns canned log output keyed by repository path.
type fakeSource struct {
	output map[string]string
	err    error
	// last query seen, for asserting what was passed through
	lastDays   int
	lastAuthor string
}

func (f *fakeSource) Log(ctx context.Context, repoPath string, days int, author string) (string, error) {
	f.lastDays = days
	f.lastAuthor = author
	if f.err != nil {
		return "", f.err
	}
	return f.output[repoPath], nil
}

func TestExtract_ParsesRecords(t *testing.T) {
	src := &fakeSource{output: map[string]string{
		"/ws/api": "ab12cd3|2026-08-26|Fix token refresh\nef45ab1|2026-08-25|Add retry to client",
	}}

	commits, err := Extract(context.Background(), src, "/ws/api", 7, "Jane Doe")
	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, Commit{Hash: "ab12cd3", Date: "2026-08-26", Subject: "Fix token refresh", Repo: "api"}, commits[0])
	assert.Equal(t, Commit{Hash: "ef45ab1", Date: "2026-08-25", Subject: "Add retry to client", Repo: "api"}, commits[1])

	assert.Equal(t, 7, src.lastDays)
	assert.Equal(t, "Jane Doe", src.lastAuthor)
}

func TestExtract_EmptyOutput(t *testing.T) {
	src := &fakeSource{output: map[string]string{}}

	commits, err := Extract(context.Background(), src, "/ws/api", 7, "")
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestExtract_SubjectKeepsExtraSeparators(t *testing.T) {
	// SplitN caps at three fields; separators inside the subject stay put.
	src := &fakeSource{output: map[string]string{
		"/ws/api": "ab12cd3|2026-08-26|Parse a|b expressions",
	}}

	commits, err := Extract(context.Background(), src, "/ws/api", 7, "")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "Parse a|b expressions", commits[0].Subject)
}

func TestExtract_MalformedLine(t *testing.T) {
	src := &fakeSource{output: map[string]string{
		"/ws/api": "ab12cd3|2026-08-26",
	}}

	commits, err := Extract(context.Background(), src, "/ws/api", 7, "")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "ab12cd3", commits[0].Hash)
	assert.Equal(t, "2026-08-26", commits[0].Date)
	assert.Empty(t, commits[0].Subject)
}

func TestExtract_QueryFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("not a git repository")}

	commits, err := Extract(context.Background(), src, "/ws/broken", 7, "")
	assert.Empty(t, commits)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogQuery)
}

func TestExtract_SkipsBlankLines(t *testing.T) {
	src := &fakeSource{output: map[string]string{
		"/ws/api": "\nab12cd3|2026-08-26|One\n\n",
	}}

	commits, err := Extract(context.Background(), src, "/ws/api", 7, "")
	require.NoError(t, err)
	assert.Len(t, commits, 1)
}
