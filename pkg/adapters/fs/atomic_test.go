package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates File With Content", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.json")

		if err := writeFileAtomic(target, []byte("hello"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("expected hello, got %s", data)
		}
	})

	t.Run("Replaces Existing File", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.json")

		if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := writeFileAtomic(target, []byte("new"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		data, _ := os.ReadFile(target)
		if string(data) != "new" {
			t.Errorf("expected new, got %s", data)
		}
	})

	t.Run("Cleans Up Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.json")

		if err := writeFileAtomic(target, []byte("x"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("leftover temp file: %s", e.Name())
			}
		}
	})

	t.Run("Fails On Missing Directory", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")

		if err := writeFileAtomic(target, []byte("x"), 0644); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
