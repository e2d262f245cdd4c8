package static

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("empty rows renders nothing", func(t *testing.T) {
		t.Parallel()
		if got := RenderTable([]string{"URL", "STAGE"}, nil); got != "" {
			t.Errorf("RenderTable() = %q, want empty", got)
		}
	})

	t.Run("renders headers and rows", func(t *testing.T) {
		t.Parallel()
		out := RenderTable(
			[]string{"URL", "STAGE", "ERROR"},
			[][]string{
				{"https://github.com/a/b", "clone", "remote not found"},
				{"https://github.com/c/d", "dependency-install", "pip failed"},
			},
		)
		for _, want := range []string{"URL", "clone", "dependency-install", "pip failed"} {
			if !strings.Contains(out, want) {
				t.Errorf("RenderTable() output missing %q:\n%s", want, out)
			}
		}
	})
}
