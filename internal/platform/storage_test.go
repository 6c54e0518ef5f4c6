package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoot(t *testing.T) {
	t.Run("Env Var Wins", func(t *testing.T) {
		t.Setenv(rootEnvVar, "/custom/root")

		root, err := DefaultRoot()
		require.NoError(t, err)
		assert.Equal(t, "/custom/root", root)
	})

	t.Run("Falls Back To Home", func(t *testing.T) {
		t.Setenv(rootEnvVar, "")

		root, err := DefaultRoot()
		require.NoError(t, err)
		assert.NotEmpty(t, root)
	})
}

func TestIsDevRun(t *testing.T) {
	// Running under `go test` must always count as a dev run; this is the
	// safety net that keeps tests away from real vaults.
	assert.True(t, IsDevRun())
}

func TestResolveVaultPath(t *testing.T) {
	t.Run("Plain Root", func(t *testing.T) {
		got := ResolveVaultPath("/data", false)
		assert.Equal(t, filepath.Join("/data", VaultDirName), got)
	})

	t.Run("Temp Root Is Trusted", func(t *testing.T) {
		root := t.TempDir()
		got := ResolveVaultPath(root, true)
		assert.Equal(t, filepath.Join(root, VaultDirName), got)
	})

	t.Run("Force Temp Re-Roots Outside Paths", func(t *testing.T) {
		got := ResolveVaultPath("/home/user/real-notes", true)
		assert.True(t, strings.HasPrefix(got, filepath.Join(os.TempDir(), "inkwell-dev")), got)
		assert.True(t, strings.HasSuffix(got, filepath.Join("real-notes", VaultDirName)), got)
	})
}
