package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
)

// RemoteURL is the SSH remote for user/project on host.
func RemoteURL(host, user, project string) string {
	return fmt.Sprintf("git@%s:%s/%s.git", host, user, project)
}

// InitRepository creates a git repository in root with an "origin" remote.
// An existing .git directory is left alone.
func InitRepository(root, remoteURL string) (bool, error) {
	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", root, err)
	}

	repo, err := git.PlainInit(root, false)
	if err != nil {
		return false, fmt.Errorf("initializing repository in %s: %w", root, err)
	}
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	}); err != nil {
		return false, fmt.Errorf("adding origin remote: %w", err)
	}
	return true, nil
}
