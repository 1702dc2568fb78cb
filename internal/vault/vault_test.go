package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVault builds a vault from relative file paths.
func newTestVault(t *testing.T, files ...string) *Vault {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	v, err := Open(root)
	require.NoError(t, err)
	return v
}

func TestResolveLink_ExactRelativePath(t *testing.T) {
	v := newTestVault(t, "img/pic.png")
	handle, ok := v.ResolveLink("img/pic.png", "note.md")
	require.True(t, ok)
	assert.Equal(t, "img/pic.png", handle)
}

func TestResolveLink_ByBaseName(t *testing.T) {
	v := newTestVault(t, "deep/nested/pic.png")
	handle, ok := v.ResolveLink("pic.png", "note.md")
	require.True(t, ok)
	assert.Equal(t, "deep/nested/pic.png", handle)
}

func TestResolveLink_SiblingBeatsBaseName(t *testing.T) {
	v := newTestVault(t, "a/pic.png", "b/pic.png", "b/note.md")
	handle, ok := v.ResolveLink("pic.png", "b/note.md")
	require.True(t, ok)
	assert.Equal(t, "b/pic.png", handle)
}

func TestResolveLink_AmbiguousBaseNameIsDeterministic(t *testing.T) {
	v := newTestVault(t, "b/pic.png", "a/pic.png")
	handle, ok := v.ResolveLink("pic.png", "note.md")
	require.True(t, ok)
	assert.Equal(t, "a/pic.png", handle)
}

func TestResolveLink_Missing(t *testing.T) {
	v := newTestVault(t, "img/pic.png")
	_, ok := v.ResolveLink("other.png", "note.md")
	assert.False(t, ok)
}

func TestResolveLink_EmptyRef(t *testing.T) {
	v := newTestVault(t, "img/pic.png")
	_, ok := v.ResolveLink("   ", "note.md")
	assert.False(t, ok)
}

func TestResolveLink_HiddenDirsSkipped(t *testing.T) {
	v := newTestVault(t, ".trash/pic.png")
	_, ok := v.ResolveLink("pic.png", "note.md")
	assert.False(t, ok)
}

func TestResourcePath(t *testing.T) {
	v := newTestVault(t, "img/pic.png")
	assert.Equal(t, filepath.ToSlash(filepath.Join(v.Root(), "img/pic.png")), v.ResourcePath("img/pic.png"))
}
