// Package testsupport holds fixture and golden-file helpers for converter
// tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateEnv rewrites golden files instead of comparing when set to "1".
const UpdateEnv = "DOC2MD_UPDATE_GOLDEN"

// LoadFixture reads a testdata file.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// AssertGolden compares got against the file at path and fails with a diff.
func AssertGolden(t testing.TB, path string, got []byte) {
	t.Helper()
	if os.Getenv(UpdateEnv) == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("update golden %s: %v", path, err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}
