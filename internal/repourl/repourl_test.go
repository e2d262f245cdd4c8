package repourl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantOwner  string
		wantRepo   string
		wantReason Reason
	}{
		{
			name:      "plain github url",
			line:      "https://github.com/ltdrdata/ComfyUI-Manager",
			wantOwner: "ltdrdata",
			wantRepo:  "ComfyUI-Manager",
		},
		{
			name:      "trailing .git stripped",
			line:      "https://github.com/a/b.git",
			wantOwner: "a",
			wantRepo:  "b",
		},
		{
			name:      "trailing slash stripped",
			line:      "https://github.com/a/b/",
			wantOwner: "a",
			wantRepo:  "b",
		},
		{
			name:      "http scheme accepted",
			line:      "http://github.com/a/b",
			wantOwner: "a",
			wantRepo:  "b",
		},
		{
			name:      "gitlab accepted",
			line:      "https://gitlab.com/group/node",
			wantOwner: "group",
			wantRepo:  "node",
		},
		{
			name:      "host case insensitive",
			line:      "https://GitHub.com/a/b",
			wantOwner: "a",
			wantRepo:  "b",
		},
		{
			name:      "surrounding whitespace trimmed",
			line:      "  https://github.com/a/b  ",
			wantOwner: "a",
			wantRepo:  "b",
		},
		{
			name:       "not a url",
			line:       "not-a-url",
			wantReason: ReasonMalformed,
		},
		{
			name:       "missing repo segment",
			line:       "https://github.com/onlyowner",
			wantReason: ReasonMalformed,
		},
		{
			name:       "extra path segments",
			line:       "https://github.com/a/b/tree/main",
			wantReason: ReasonMalformed,
		},
		{
			name:       "only .git as repo",
			line:       "https://github.com/a/.git",
			wantReason: ReasonMalformed,
		},
		{
			name:       "ssh form rejected",
			line:       "git@github.com:a/b.git",
			wantReason: ReasonMalformed,
		},
		{
			name:       "unknown host",
			line:       "https://example.com/a/b",
			wantReason: ReasonUnsupportedHost,
		},
		{
			name:       "wrong scheme",
			line:       "ftp://github.com/a/b",
			wantReason: ReasonUnsupportedHost,
		},
		{
			name:       "empty line",
			line:       "   ",
			wantReason: ReasonMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u, err := Parse(tt.line)

			if tt.wantReason != "" {
				if err == nil {
					t.Fatalf("Parse(%q) = %+v, want error", tt.line, u)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Parse(%q) error = %T, want *ParseError", tt.line, err)
				}
				if perr.Reason != tt.wantReason {
					t.Errorf("reason = %q, want %q", perr.Reason, tt.wantReason)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) = %v, want nil", tt.line, err)
			}
			if u.Owner != tt.wantOwner || u.Repo != tt.wantRepo {
				t.Errorf("Parse(%q) = %s/%s, want %s/%s", tt.line, u.Owner, u.Repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestNormalized(t *testing.T) {
	t.Parallel()

	u, err := Parse("https://GitHub.com/Acly/comfyui-inpaint-nodes.git/")
	if err != nil {
		t.Fatalf("Parse() = %v, want nil", err)
	}
	want := "https://github.com/Acly/comfyui-inpaint-nodes"
	if got := u.Normalized(); got != want {
		t.Errorf("Normalized() = %q, want %q", got, want)
	}
	if got := u.CloneDirName(); got != "comfyui-inpaint-nodes" {
		t.Errorf("CloneDirName() = %q", got)
	}
	if got := u.Spec(); got != "Acly/comfyui-inpaint-nodes" {
		t.Errorf("Spec() = %q", got)
	}
}

// TestClassify runs a mixed list: two valid URLs, one malformed line and
// one blank line.
func TestClassify(t *testing.T) {
	t.Parallel()

	lines := []string{
		"https://github.com/a/b",
		"not-a-url",
		"",
		"https://github.com/c/d.git",
	}

	valid, rejected := Classify(lines)

	if len(valid) != 2 {
		t.Fatalf("valid = %d entries, want 2", len(valid))
	}
	if valid[0].Spec() != "a/b" || valid[1].Spec() != "c/d" {
		t.Errorf("valid = %s, %s; want a/b, c/d", valid[0].Spec(), valid[1].Spec())
	}
	if len(rejected) != 1 {
		t.Fatalf("rejected = %d entries, want 1", len(rejected))
	}
	if rejected[0].Raw != "not-a-url" || rejected[0].Reason != ReasonMalformed {
		t.Errorf("rejected[0] = %+v", rejected[0])
	}
}

func TestClassifyPreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	lines := []string{
		"https://github.com/x/one",
		"https://github.com/x/two",
		"https://github.com/x/one",
	}

	valid, rejected := Classify(lines)
	if len(rejected) != 0 {
		t.Fatalf("rejected = %v, want none", rejected)
	}
	if len(valid) != 3 {
		t.Fatalf("valid = %d entries, want 3 (duplicates passed through)", len(valid))
	}
	if valid[0].Repo != "one" || valid[1].Repo != "two" || valid[2].Repo != "one" {
		t.Errorf("order not preserved: %v", valid)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads lines", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "repos.txt")
		content := "https://github.com/a/b\r\n\nhttps://github.com/c/d\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		lines, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() = %v, want nil", err)
		}
		valid, _ := Classify(lines)
		if len(valid) != 2 {
			t.Errorf("valid = %d entries, want 2", len(valid))
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
			t.Fatal("ReadFile() = nil, want error")
		}
	})
}
