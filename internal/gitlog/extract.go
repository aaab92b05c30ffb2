package gitlog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrLogQuery marks a per-repository log failure. Callers treat the
// repository as having no commits; the run continues.
var ErrLogQuery = errors.New("log query failed")

// Commit is one logged change in a repository.
type Commit struct {
	Hash    string `json:"hash"`
	Date    string `json:"date"`
	Subject string `json:"msg"`
	Repo    string `json:"repo"`
}

// Extract queries src for the repository's commits over the last `days` days,
// optionally filtered to a single author, and parses the output into commit
// records. The repository name on each record is the base name of repoPath.
// A failed query returns an empty slice wrapped in ErrLogQuery.
func Extract(ctx context.Context, src Source, repoPath string, days int, author string) ([]Commit, error) {
	out, err := src.Log(ctx, repoPath, days, author)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogQuery, err)
	}

	repoName := filepath.Base(repoPath)
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		commits = append(commits, parseRecord(line, repoName))
	}
	return commits, nil
}

// parseRecord splits a log line into hash, date, and subject. Lines with
// fewer than three fields leave the trailing fields empty.
func parseRecord(line, repoName string) Commit {
	fields := strings.SplitN(line, FieldSep, 3)
	c := Commit{Repo: repoName}
	c.Hash = fields[0]
	if len(fields) > 1 {
		c.Date = fields[1]
	}
	if len(fields) > 2 {
		c.Subject = fields[2]
	}
	return c
}
