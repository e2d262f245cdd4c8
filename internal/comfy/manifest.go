package comfy

import (
	"fmt"
	"os"
	"strings"

	"github.com/comfyops/autonode/internal/repourl"
)

// WriteManifest overwrites the repository manifest in the target directory
// with the normalized URLs, one per line, in input order. Duplicates are
// preserved. The write goes through a temp file and rename so a failed run
// never leaves a half-written manifest behind.
func WriteManifest(dir Dir, urls []repourl.URL) error {
	path := dir.ManifestPath()

	var sb strings.Builder
	for _, u := range urls {
		sb.WriteString(u.Normalized())
		sb.WriteByte('\n')
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // Clean up temp file on failure
		return fmt.Errorf("save manifest: %w", err)
	}

	return nil
}

// ReadManifest returns the non-blank lines of the manifest file.
func ReadManifest(dir Dir) ([]string, error) {
	data, err := os.ReadFile(dir.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
