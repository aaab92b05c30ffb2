package gitlog

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"
)

// GlobalAuthorName reads user.name from the global git configuration. Used
// once at startup to resolve the default author filter; the pipeline itself
// only ever sees the resolved string.
func GlobalAuthorName() (string, error) {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return "", fmt.Errorf("failed to load global git config: %w", err)
	}
	return cfg.User.Name, nil
}
