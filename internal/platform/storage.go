package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwell-notes/inkwell/pkg/core"
)

// VaultDirName is the subdirectory under the storage root that holds the
// note records.
const VaultDirName = "Notes"

// rootEnvVar overrides the storage root when set.
const rootEnvVar = "INKWELL_ROOT"

// DefaultRoot resolves the platform storage root for the current user.
// Order: $INKWELL_ROOT, then ~/Documents when present, then the home
// directory itself. When no root can be resolved the error wraps
// core.ErrStorageUnavailable; there is no silent fallback.
func DefaultRoot() (string, error) {
	if root := os.Getenv(rootEnvVar); root != "" {
		return root, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve home directory: %v", core.ErrStorageUnavailable, err)
	}

	docs := filepath.Join(home, "Documents")
	if info, err := os.Stat(docs); err == nil && info.IsDir() {
		return docs, nil
	}
	return home, nil
}

// IsDevRun checks if the current process is running via `go run` or
// `go test`. It relies on the fact that these commands build binaries in
// temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveVaultPath determines the actual vault directory for a storage
// root. If forceTemp is set, the vault is re-rooted into a temporary
// directory to avoid polluting the user's real notes. A root that already
// lives inside the system temp dir (e.g. t.TempDir()) is trusted as-is.
func ResolveVaultPath(root string, forceTemp bool) string {
	if !forceTemp {
		return filepath.Join(root, VaultDirName)
	}

	cleaned := filepath.Clean(root)
	tempRoot := os.TempDir()
	rel, err := filepath.Rel(tempRoot, cleaned)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.Join(cleaned, VaultDirName)
	}

	baseTemp := filepath.Join(tempRoot, "inkwell-dev")
	subName := filepath.Base(cleaned)
	if subName == "." || subName == string(os.PathSeparator) || subName == "" {
		subName = "default"
	}
	return filepath.Join(baseTemp, subName, VaultDirName)
}
