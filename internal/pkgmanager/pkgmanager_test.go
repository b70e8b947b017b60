package pkgmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, PNPM, Detect("pnpm/8.6.0 npm/? node/v18.16.0 darwin arm64"))
	assert.Equal(t, Yarn, Detect("yarn/1.22.19 npm/? node/v18.16.0 linux x64"))
	assert.Equal(t, NPM, Detect("npm/9.5.1 node/v18.16.0 linux x64"))
	assert.Equal(t, NPM, Detect(""))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("npm_config_user_agent", "pnpm/9.0.0")
	assert.Equal(t, PNPM, FromEnv())
}

func TestCommand(t *testing.T) {
	tests := []struct {
		pm, script string
		args       []string
		want       string
	}{
		{NPM, "install", nil, "npm install"},
		{Yarn, "install", nil, "yarn"},
		{PNPM, "install", nil, "pnpm install"},
		{NPM, "dev", nil, "npm run dev"},
		{Yarn, "dev", nil, "yarn dev"},
		{PNPM, "git", nil, "pnpm git"},
		{NPM, "test:unit", []string{"--watch"}, "npm run test:unit -- --watch"},
		{PNPM, "test:unit", []string{"--watch"}, "pnpm test:unit --watch"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Command(tt.pm, tt.script, tt.args...))
	}
}
