package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReadme(t *testing.T) {
	out, err := GenerateReadme(ReadmeData{ProjectName: "my-app", PackageManager: "pnpm", TypeScript: true, Eslint: true})
	require.NoError(t, err)
	assert.Contains(t, out, "# my-app")
	assert.Contains(t, out, "## Type Support")
	assert.Contains(t, out, "pnpm install")
	assert.Contains(t, out, "pnpm dev")
	assert.Contains(t, out, "### Type-Check, Compile and Minify for Production")
	assert.Contains(t, out, "pnpm lint")
}

func TestGenerateReadmeMinimal(t *testing.T) {
	out, err := GenerateReadme(ReadmeData{ProjectName: "plain"})
	require.NoError(t, err)
	assert.Contains(t, out, "npm install")
	assert.Contains(t, out, "npm run dev")
	assert.NotContains(t, out, "Type Support")
	assert.NotContains(t, out, "ESLint")
}
