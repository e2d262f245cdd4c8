package installer

import (
	"context"

	"github.com/comfyops/autonode/internal/git"
	"github.com/comfyops/autonode/internal/pip"
)

// ExecRunner runs clones and dependency installs with the real git and pip
// binaries.
type ExecRunner struct {
	Git string // git binary, empty for default
	Pip string // pip binary, empty for default
}

// Clone implements Runner.
func (r ExecRunner) Clone(ctx context.Context, url, dest string) error {
	return git.Clone(ctx, r.Git, url, dest)
}

// InstallDeps implements Runner.
func (r ExecRunner) InstallDeps(ctx context.Context, requirements string) error {
	return pip.Install(ctx, r.Pip, requirements)
}
