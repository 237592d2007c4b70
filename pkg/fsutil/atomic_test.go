package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gotplfmt/pkg/fsutil"
)

const formattedDoc = "<div>\n    <p>\n        hello\n    </p>\n</div>\n"

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte(formattedDoc), 0o644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != formattedDoc {
			t.Errorf("content = %q, want %q", got, formattedDoc)
		}
	})

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("<div><p>hello</p></div>\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte(formattedDoc), 0o644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != formattedDoc {
			t.Errorf("content = %q, want %q", got, formattedDoc)
		}
	})

	t.Run("keeps the caller's mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte(formattedDoc), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := stat.Mode().Perm(); got != 0o600 {
			t.Errorf("mode = %o, want %o", got, 0o600)
		}
	})

	t.Run("zero mode falls back to the default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gotplfmt.css")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte(".a { color: red }\n"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := stat.Mode().Perm(); got != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", got, fsutil.DefaultFileMode)
		}
	})

	t.Run("cancelled context writes nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte(formattedDoc), 0o644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("leaves no temp file behind on error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "missing", "page.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte(formattedDoc), 0o644); err == nil {
			t.Fatal("expected error for missing parent directory")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp.") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	stylesheet := ".class-0a1b2c3d4e-1 { color: red }\n"

	t.Run("creates a missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gotplfmt.css")
		written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte(stylesheet), 0o644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("expected a write for a missing file")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != stylesheet {
			t.Errorf("content = %q, want %q", got, stylesheet)
		}
	})

	t.Run("skips an up-to-date file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gotplfmt.css")
		if err := os.WriteFile(path, []byte(stylesheet), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte(stylesheet), 0o644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if written {
			t.Error("expected no write for identical content")
		}
	})

	t.Run("rewrites a stale file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gotplfmt.css")
		if err := os.WriteFile(path, []byte(".old { margin: 0 }\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte(stylesheet), 0o644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("expected a write for changed content")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != stylesheet {
			t.Errorf("content = %q, want %q", got, stylesheet)
		}
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gotplfmt.css")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(stylesheet), 0o644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
