package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	// git must be available in CI and dev environments
	if err := Check(""); err != nil {
		t.Fatalf("Check() = %v, want nil (git should be in PATH)", err)
	}

	if err := Check("definitely-not-a-git-binary"); !errors.Is(err, ErrGitNotFound) {
		t.Errorf("Check(bogus) = %v, want ErrGitNotFound", err)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("clones a local repo", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		src := filepath.Join(t.TempDir(), "src")
		if err := os.Mkdir(src, 0755); err != nil {
			t.Fatal(err)
		}
		run := func(args ...string) {
			t.Helper()
			if err := cmdRun(ctx, src, args...); err != nil {
				t.Skipf("git setup failed (%v), skipping", err)
			}
		}
		run("init")
		run("-c", "user.email=t@t", "-c", "user.name=t", "commit", "--allow-empty", "-m", "init")

		dest := filepath.Join(t.TempDir(), "clone")
		if err := Clone(ctx, "", src, dest); err != nil {
			t.Fatalf("Clone() = %v, want nil", err)
		}
		if _, err := os.Stat(filepath.Join(dest, ".git")); err != nil {
			t.Errorf("clone destination missing .git: %v", err)
		}
	})

	t.Run("clone failure reports stderr", func(t *testing.T) {
		t.Parallel()
		dest := filepath.Join(t.TempDir(), "clone")
		err := Clone(context.Background(), "", filepath.Join(t.TempDir(), "no-such-repo"), dest)
		if err == nil {
			t.Fatal("Clone() = nil, want error for missing source")
		}
	})
}
