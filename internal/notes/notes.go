package notes

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DirName is the conventional notes directory inside a workspace.
	DirName = "notes"
	// FileExt is the extension of dated note files.
	FileExt = ".md"
)

// Entry is one day's note file.
type Entry struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// DefaultDirs returns the candidate notes directories in lookup order: the
// workspace's notes directory, then a notes directory under the current
// working directory.
func DefaultDirs(workspace string) []string {
	return []string{filepath.Join(workspace, DirName), DirName}
}

// Read loads note entries for the `days` most recent calendar days, today
// first. Each date's file (<dir>/<YYYY-MM-DD>.md) is looked up in dirs in
// order; the first directory containing it wins. Dates with no file in any
// directory are skipped.
func Read(dirs []string, days int, now time.Time) []Entry {
	var entries []Entry
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		for _, dir := range dirs {
			content, err := os.ReadFile(filepath.Join(dir, date+FileExt))
			if err != nil {
				continue
			}
			entries = append(entries, Entry{Date: date, Content: string(content)})
			break
		}
	}
	return entries
}
