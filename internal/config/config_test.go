package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CREATE_XX_CONFIG_DIR", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirOverride(t *testing.T) {
	dir := withConfigDir(t)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestLoadDefaults(t *testing.T) {
	withConfigDir(t)
	Load()

	s := Current()
	assert.Equal(t, "xnscu", s.GitHubUser)
	assert.Equal(t, "private", s.GitHubScope)
	assert.Empty(t, s.TemplateDir)
}

func TestSetPersists(t *testing.T) {
	dir := withConfigDir(t)
	Load()

	require.NoError(t, Set(KeyGitHubUser, "octocat"))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "github_user: octocat")

	viper.Reset()
	Load()
	assert.Equal(t, "octocat", Get(KeyGitHubUser))
}

func TestSetUnknownKey(t *testing.T) {
	withConfigDir(t)
	Load()

	err := Set("no_such_key", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestEnvOverride(t *testing.T) {
	withConfigDir(t)
	t.Setenv("CREATE_XX_GITHUB_SCOPE", "public")
	Load()

	assert.Equal(t, "public", Current().GitHubScope)
}
