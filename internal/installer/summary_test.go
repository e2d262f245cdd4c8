package installer

import (
	"errors"
	"testing"

	"github.com/comfyops/autonode/internal/repourl"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		s := Summarize(nil)
		if s.Attempted != 0 || s.Succeeded != 0 || s.FailedCount() != 0 {
			t.Errorf("Summarize(nil) = %+v, want zero summary", s)
		}
	})

	t.Run("mixed outcomes keep order of failures", func(t *testing.T) {
		t.Parallel()
		u := func(repo string) repourl.URL {
			parsed, err := repourl.Parse("https://github.com/x/" + repo)
			if err != nil {
				t.Fatal(err)
			}
			return parsed
		}
		outcomes := []Outcome{
			{URL: u("a"), Stage: StageComplete},
			{URL: u("b"), Stage: StageClone, Err: errors.New("clone failed")},
			{URL: u("c"), Stage: StageDeps, Err: errors.New("pip failed")},
			{URL: u("d"), Stage: StageComplete},
		}

		s := Summarize(outcomes)
		if s.Attempted != 4 || s.Succeeded != 2 || s.FailedCount() != 2 {
			t.Fatalf("summary = %+v, want 4/2/2", s)
		}
		if s.Failed[0].URL.Repo != "b" || s.Failed[1].URL.Repo != "c" {
			t.Errorf("failed order = %s, %s; want b, c", s.Failed[0].URL.Repo, s.Failed[1].URL.Repo)
		}
	})
}
