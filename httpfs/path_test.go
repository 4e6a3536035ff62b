package httpfs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePath_Simple(t *testing.T) {
	root := t.TempDir()
	got, err := ResolvePath("/a/b.txt", root)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if want := filepath.Join(root, "a", "b.txt"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolvePath_DefaultDocument(t *testing.T) {
	root := t.TempDir()
	got, err := ResolvePath("/", root)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if want := filepath.Join(root, "index.html"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got, err = ResolvePath("/sub/", root)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if want := filepath.Join(root, "sub", "index.html"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolvePath_Traversal(t *testing.T) {
	root := t.TempDir()
	for _, raw := range []string{
		"/../../etc/passwd",
		"/../../../../../../etc/passwd",
		"/%2e%2e/%2e%2e/etc/passwd",
		"/a/%2e%2e/%2e%2e/%2e%2e/etc/passwd",
		"/..%2f..%2fetc%2fpasswd",
	} {
		got, err := ResolvePath(raw, root)
		if err == nil {
			// Either rejected or still confined; never outside root.
			if got != root && !strings.HasPrefix(got, root+string(os.PathSeparator)) {
				t.Fatalf("raw=%q escaped root: %q", raw, got)
			}
			continue
		}
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("raw=%q err=%v, want ErrForbidden", raw, err)
		}
	}
}

func TestResolvePath_SiblingPrefix(t *testing.T) {
	// /base/www-secret must not pass containment for root /base/www.
	base := t.TempDir()
	root := filepath.Join(base, "www")
	if err := os.MkdirAll(filepath.Join(base, "www-secret"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := ResolvePath("/../www-secret/creds.txt", root); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err=%v, want ErrForbidden", err)
	}
}

func TestResolvePath_BadEncoding(t *testing.T) {
	if _, err := ResolvePath("/%zz", t.TempDir()); !errors.Is(err, ErrBadPath) {
		t.Fatalf("err=%v, want ErrBadPath", err)
	}
}

func TestResolvePath_AbsoluteStyle(t *testing.T) {
	// Leading slash runs are stripped, never treated as an absolute
	// override.
	root := t.TempDir()
	got, err := ResolvePath("//etc/passwd", root)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if want := filepath.Join(root, "etc", "passwd"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
