package workspace

import (
	"os"
	"path/filepath"
)

const gitMarker = ".git"

// Directories that are never repository candidates even when they sit
// directly under the workspace root.
var skippedDirs = map[string]bool{
	gitMarker:      true,
	"node_modules": true,
}

// FindRepos returns the git repositories under root: the root itself if it is
// one, plus any immediate subdirectory that is one. The scan is exactly one
// level deep. Subdirectories that cannot be listed contribute nothing.
func FindRepos(root string) []string {
	var repos []string

	if IsRepo(root) {
		repos = append(repos, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return repos
	}

	for _, entry := range entries {
		if !entry.IsDir() || skippedDirs[entry.Name()] {
			continue
		}
		candidate := filepath.Join(root, entry.Name())
		if IsRepo(candidate) {
			repos = append(repos, candidate)
		}
	}

	return repos
}

// IsRepo reports whether dir contains a .git marker directory.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, gitMarker))
	return err == nil && info.IsDir()
}
