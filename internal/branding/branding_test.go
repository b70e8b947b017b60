package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "create-xx", CLIName())
	assert.Equal(t, "create-xx", DefaultProjectName())
	assert.Equal(t, "create-", GeneratorPrefix())
	assert.Equal(t, "xnscu", GitHubUser())
	assert.Equal(t, "github.com", GitHubHost())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "CREATE_XX_GITHUB_USER", EnvVar("github_user"))
}
