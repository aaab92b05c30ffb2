package gitlog

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FieldSep delimits the hash, date, and subject fields in a log record.
// A subject containing the separator misaligns its record; git offers no
// escaping for custom pretty formats, so that stays a known limitation.
const FieldSep = "|"

// Source produces raw log output for a repository: one record per line,
// fields joined by FieldSep, newest commit first, merges excluded.
type Source interface {
	Log(ctx context.Context, repoPath string, days int, author string) (string, error)
}

// CLISource queries history by running the git executable.
type CLISource struct{}

func (CLISource) Log(ctx context.Context, repoPath string, days int, author string) (string, error) {
	args := []string{
		"-C", repoPath,
		"log",
		fmt.Sprintf("--since=%d days ago", days),
		"--no-merges",
		"--pretty=format:%h" + FieldSep + "%as" + FieldSep + "%s",
	}
	if author != "" {
		args = append(args, "--author="+author)
	}

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return "", fmt.Errorf("git log in %s: %w", repoPath, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
