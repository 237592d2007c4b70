package fsutil_test

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/gotplfmt/pkg/fsutil"
)

// readTemplate writes a template fixture and reads it back through
// fsutil.ReadFile, returning its snapshot.
func readTemplate(t *testing.T, content string) (string, *fsutil.FileInfo) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, info, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return path, info
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and snapshot", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		content := []byte("{% block body %}\n{% endblock %}\n")
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
		if info.Mode.Perm() != 0o600 {
			t.Errorf("Mode = %o, want %o", info.Mode.Perm(), 0o600)
		}
		if want := sha256.Sum256(content); info.Hash != want {
			t.Errorf("Hash = %x, want %x", info.Hash, want)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		if _, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "gone.html")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("directory is an error", func(t *testing.T) {
		t.Parallel()

		if _, _, err := fsutil.ReadFile(context.Background(), t.TempDir()); err == nil {
			t.Fatal("expected error for directory")
		}
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, _, err := fsutil.ReadFile(ctx, "index.html"); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("untouched file", func(t *testing.T) {
		t.Parallel()

		_, info := readTemplate(t, "<p>hello</p>\n")

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if modified {
			t.Error("untouched file reported as modified")
		}
	})

	t.Run("rewritten file", func(t *testing.T) {
		t.Parallel()

		path, info := readTemplate(t, "<p>hello</p>\n")
		if err := os.WriteFile(path, []byte("<p>bye</p>\n"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("rewritten file not reported as modified")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		path, info := readTemplate(t, "<p>hello</p>\n")
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("deleted file not reported as modified")
		}
	})

	t.Run("nil snapshot is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := fsutil.CheckModified(context.Background(), nil); err == nil {
			t.Fatal("expected error for nil snapshot")
		}
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.CheckModified(ctx, &fsutil.FileInfo{Path: "index.html"}); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestCheckModifiedQuick(t *testing.T) {
	t.Parallel()

	t.Run("untouched file", func(t *testing.T) {
		t.Parallel()

		_, info := readTemplate(t, "<p>hello</p>\n")

		modified, err := fsutil.CheckModifiedQuick(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModifiedQuick() error = %v", err)
		}
		if modified {
			t.Error("untouched file reported as modified")
		}
	})

	t.Run("size change", func(t *testing.T) {
		t.Parallel()

		path, info := readTemplate(t, "<p>hello</p>\n")
		if err := os.WriteFile(path, []byte("<p>hello again, longer now</p>\n"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		modified, err := fsutil.CheckModifiedQuick(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModifiedQuick() error = %v", err)
		}
		if !modified {
			t.Error("size change not detected")
		}
	})

	t.Run("mtime change with same content", func(t *testing.T) {
		t.Parallel()

		path, info := readTemplate(t, "<p>hello</p>\n")
		bumped := info.ModTime.Add(time.Hour)
		if err := os.Chtimes(path, bumped, bumped); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := fsutil.CheckModifiedQuick(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModifiedQuick() error = %v", err)
		}
		if !modified {
			t.Error("mtime change not detected")
		}
	})
}
