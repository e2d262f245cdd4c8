// Package pip wraps the pip binary for installing per-node dependency
// manifests.
package pip

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/comfyops/autonode/internal/cmd"
)

// ErrPipNotFound indicates pip is not installed or not in PATH
var ErrPipNotFound = fmt.Errorf("pip not found: please install pip (https://pip.pypa.io)")

// DefaultBinary is the pip binary used when no override is configured.
const DefaultBinary = "pip"

// Check verifies that the given pip binary is available in PATH.
func Check(binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return ErrPipNotFound
	}
	return nil
}

// Install runs `pip install -r <requirements>` in the directory containing
// the requirements file, so relative references inside it resolve.
func Install(ctx context.Context, binary, requirements string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	dir := filepath.Dir(requirements)
	return cmd.RunContext(ctx, dir, binary, "install", "-r", filepath.Base(requirements))
}
