// Package git wraps the git binary for cloning custom-node repositories.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/comfyops/autonode/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// DefaultBinary is the git binary used when no override is configured.
const DefaultBinary = "git"

// Check verifies that the given git binary is available in PATH.
func Check(binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Clone clones url into dest using the given git binary. The command's
// stderr is returned in the error on failure.
func Clone(ctx context.Context, binary, url, dest string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	return cmd.RunContext(ctx, "", binary, "clone", url, dest)
}
