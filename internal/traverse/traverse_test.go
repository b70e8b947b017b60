package traverse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates 5 files and 3 subdirectories under /root.
func buildTree(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := []string{
		"/root/a.txt",
		"/root/b/c.txt",
		"/root/b/d/e.txt",
		"/root/b/d/f.txt",
		"/root/g/h.txt",
	}
	for _, f := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(f), 0755))
		require.NoError(t, afero.WriteFile(fsys, f, []byte("x"), 0644))
	}
	return fsys
}

func TestPostOrderCounts(t *testing.T) {
	fsys := buildTree(t)

	var dirs, files []string
	err := PostOrder(fsys, "/root",
		func(p string) error { dirs = append(dirs, p); return nil },
		func(p string) error { files = append(files, p); return nil },
	)
	require.NoError(t, err)

	assert.Len(t, files, 5)
	assert.Len(t, dirs, 3)
}

func TestPostOrderVisitsDirectoriesAfterDescendants(t *testing.T) {
	fsys := buildTree(t)

	var order []string
	visit := func(p string) error { order = append(order, p); return nil }
	require.NoError(t, PostOrder(fsys, "/root", visit, visit))

	pos := map[string]int{}
	for i, p := range order {
		pos[p] = i
	}
	for p, i := range pos {
		for q, j := range pos {
			if strings.HasPrefix(q, p+"/") {
				assert.Greater(t, i, j, "%s must come after %s", p, q)
			}
		}
	}
}

func TestPreOrderVisitsDirectoriesFirst(t *testing.T) {
	fsys := buildTree(t)

	var order []string
	visit := func(p string) error { order = append(order, p); return nil }
	require.NoError(t, PreOrder(fsys, "/root", visit, visit))

	assert.Equal(t, []string{
		"/root/a.txt",
		"/root/b",
		"/root/b/c.txt",
		"/root/b/d",
		"/root/b/d/e.txt",
		"/root/b/d/f.txt",
		"/root/g",
		"/root/g/h.txt",
	}, order)
}

func TestPostOrderDeletesTree(t *testing.T) {
	fsys := buildTree(t)

	err := PostOrder(fsys, "/root", fsys.Remove, fsys.Remove)
	require.NoError(t, err)

	entries, err := afero.ReadDir(fsys, "/root")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPreOrderFileVisitorMayRewrite(t *testing.T) {
	fsys := buildTree(t)

	err := PreOrder(fsys, "/root", Noop, func(p string) error {
		if err := afero.WriteFile(fsys, p+".out", []byte("y"), 0644); err != nil {
			return err
		}
		return fsys.Remove(p)
	})
	require.NoError(t, err)

	ok, err := afero.Exists(fsys, "/root/b/d/e.txt.out")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = afero.Exists(fsys, "/root/b/d/e.txt")
	assert.False(t, ok)
}

func TestMissingRootFailsFast(t *testing.T) {
	fsys := afero.NewMemMapFs()
	called := false
	visit := func(string) error { called = true; return nil }

	err := PostOrder(fsys, "/nope", visit, visit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, called)

	err = PreOrder(fsys, "/nope", visit, visit)
	require.Error(t, err)
	assert.False(t, called)
}

func TestVisitorErrorStops(t *testing.T) {
	fsys := buildTree(t)
	boom := errors.New("boom")

	count := 0
	err := PreOrder(fsys, "/root", Noop, func(string) error {
		count++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count)
}

func TestSymlinksAreNotFollowed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("x"), 0644))
	// A link back to the root would loop forever if followed.
	if err := os.Symlink(dir, filepath.Join(dir, "sub", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	var files, dirs []string
	err := PreOrder(afero.NewOsFs(), dir,
		func(p string) error { dirs = append(dirs, p); return nil },
		func(p string) error { files = append(files, p); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "sub")}, dirs)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "sub", "f.txt"),
		filepath.Join(dir, "sub", "loop"),
	}, files)
}
