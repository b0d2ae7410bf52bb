package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeBlogDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/me", ".blog-cli"), homeBlogDir("/home/me", ""))
	assert.Equal(t, filepath.Join("/home/me", ".blog-cli-dev"), homeBlogDir("/home/me", "development"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("BLOG_TITLE=Local\n"), 0644))
	require.NoError(t, os.WriteFile(shared, []byte("BLOG_TITLE=Shared\nBLOG_API_HOST=http://from-file\n"), 0644))

	t.Setenv("BLOG_TITLE", "")
	os.Unsetenv("BLOG_TITLE")
	t.Setenv("BLOG_API_HOST", "http://from-env")

	require.NoError(t, loadDotEnv([]string{local, shared, filepath.Join(dir, "missing.env")}))

	assert.Equal(t, "Local", os.Getenv("BLOG_TITLE"))
	assert.Equal(t, "http://from-env", os.Getenv("BLOG_API_HOST"))
}

func TestLoadDotEnvMalformed(t *testing.T) {
	bad := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(bad, []byte("BLOG_TITLE='unterminated\n"), 0644))

	err := loadDotEnv([]string{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
