package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(fs afero.Fs, target string) Input {
	return Input{
		FS:                 fs,
		Cwd:                "/work",
		TargetDir:          target,
		DefaultProjectName: "create-xx",
		GitHubUser:         "xnscu",
		GitHubScope:        "private",
	}
}

func TestAskWithTargetArgument(t *testing.T) {
	// GitHub user, then scope.
	p := NewLine(strings.NewReader("\n2\n"), &bytes.Buffer{})

	a, err := Ask(p, input(afero.NewMemMapFs(), "my-app/"))
	require.NoError(t, err)
	assert.Equal(t, &Answers{
		TargetDir:   "my-app",
		PackageName: "my-app",
		GitHubUser:  "xnscu",
		GitHubScope: "public",
	}, a)
}

func TestAskProjectNameWhenNoTarget(t *testing.T) {
	var out bytes.Buffer
	// project name (default), user, scope.
	p := NewLine(strings.NewReader("\nsomeone\n\n"), &out)

	a, err := Ask(p, input(afero.NewMemMapFs(), ""))
	require.NoError(t, err)
	assert.Equal(t, "create-xx", a.TargetDir)
	assert.Equal(t, "someone", a.GitHubUser)
	assert.Equal(t, "private", a.GitHubScope)
	assert.Contains(t, out.String(), "Project name: (create-xx)")
}

func TestAskPackageNameWhenInvalid(t *testing.T) {
	var out bytes.Buffer
	// rejected name, accepted default, user, scope.
	p := NewLine(strings.NewReader("Not Valid\n\n\n\n"), &out)

	a, err := Ask(p, input(afero.NewMemMapFs(), "My App"))
	require.NoError(t, err)
	assert.Equal(t, "My App", a.TargetDir)
	assert.Equal(t, "my-app", a.PackageName)
	assert.Contains(t, out.String(), "invalid package.json name")
}

func TestAskOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/my-app/keep.txt", []byte("x"), 0644))

	var out bytes.Buffer
	p := NewLine(strings.NewReader("y\n\n\n"), &out)
	a, err := Ask(p, input(fs, "my-app"))
	require.NoError(t, err)
	assert.True(t, a.Overwrite)
	assert.Contains(t, out.String(), `Target directory "my-app" is not empty`)
}

func TestAskOverwriteDefaultsToYes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/my-app/keep.txt", []byte("x"), 0644))

	var out bytes.Buffer
	// empty overwrite answer, user, scope.
	p := NewLine(strings.NewReader("\n\n\n"), &out)
	a, err := Ask(p, input(fs, "my-app"))
	require.NoError(t, err)
	assert.True(t, a.Overwrite)
	assert.Contains(t, out.String(), "(Y/n)")
}

func TestAskOverwriteDeclinedCancels(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/keep.txt", []byte("x"), 0644))

	var out bytes.Buffer
	p := NewLine(strings.NewReader("n\n"), &out)
	_, err := Ask(p, input(fs, "."))
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Contains(t, out.String(), "Current directory is not empty")
}

func TestAskForceSkipsOverwriteQuestion(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/my-app/keep.txt", []byte("x"), 0644))

	in := input(fs, "my-app")
	in.Force = true
	a, err := Ask(NewLine(strings.NewReader("\n\n"), &bytes.Buffer{}), in)
	require.NoError(t, err)
	assert.True(t, a.Overwrite)
}

func TestDefaults(t *testing.T) {
	in := input(afero.NewMemMapFs(), "")
	in.GitHubScope = ""
	a := Defaults(in)
	assert.Equal(t, "create-xx", a.TargetDir)
	assert.Equal(t, "create-xx", a.PackageName)
	assert.Equal(t, "private", a.GitHubScope)
	assert.False(t, a.Overwrite)

	a = Defaults(input(afero.NewMemMapFs(), "Big Project"))
	assert.Equal(t, "big-project", a.PackageName)
}

func TestNewUsesLineForNonTerminal(t *testing.T) {
	_, ok := New(strings.NewReader(""), &bytes.Buffer{}).(*Line)
	assert.True(t, ok)
}
