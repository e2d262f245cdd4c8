// Package installer runs the batch install: clone each validated
// repository into the custom_nodes directory, then install its
// requirements.txt if it has one. Items are processed strictly in input
// order and a failing item never aborts the batch.
package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/comfyops/autonode/internal/comfy"
	"github.com/comfyops/autonode/internal/log"
	"github.com/comfyops/autonode/internal/repourl"
)

// ErrAlreadyExists indicates the clone destination exists and is non-empty.
var ErrAlreadyExists = errors.New("already exists")

// Runner executes the external operations of the batch. It exists so tests
// can run the batch without invoking git or pip.
type Runner interface {
	// Clone clones url into dest.
	Clone(ctx context.Context, url, dest string) error

	// InstallDeps installs the dependency manifest at requirements.
	InstallDeps(ctx context.Context, requirements string) error
}

// Stage identifies how far an item got.
type Stage string

const (
	// StageClone means the item failed while cloning (or was never cloned).
	StageClone Stage = "clone"
	// StageDeps means the clone succeeded but the dependency install failed.
	StageDeps Stage = "dependency-install"
	// StageComplete means the item installed fully.
	StageComplete Stage = "complete"
)

// Outcome records the result of one processed URL. It is never mutated
// after creation.
type Outcome struct {
	URL   repourl.URL
	Stage Stage
	Err   error
}

// Succeeded reports whether the item installed without error.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Batch holds the collaborators for a batch run.
type Batch struct {
	Runner Runner
	Dir    comfy.Dir

	// Progress, if set, is called before each item is processed.
	Progress func(index, total int, u repourl.URL)
}

// Run processes the URLs sequentially and returns one Outcome per URL, in
// input order. If confirmed is false nothing is processed and no outcomes
// are returned. A cancelled context stops the batch after the item that
// observed the cancellation.
func (b Batch) Run(ctx context.Context, urls []repourl.URL, confirmed bool) []Outcome {
	if !confirmed {
		return nil
	}

	l := log.FromContext(ctx)
	outcomes := make([]Outcome, 0, len(urls))

	for i, u := range urls {
		if b.Progress != nil {
			b.Progress(i, len(urls), u)
		}

		outcome := b.installOne(ctx, u)
		outcomes = append(outcomes, outcome)

		if outcome.Err != nil {
			l.Printf("%s: %s failed: %v\n", u.Spec(), outcome.Stage, outcome.Err)
		} else {
			l.Debug("installed node", "node", u.Spec())
		}

		if ctx.Err() != nil {
			break
		}
	}

	return outcomes
}

func (b Batch) installOne(ctx context.Context, u repourl.URL) Outcome {
	dest := b.Dir.NodePath(u.CloneDirName())

	if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
		return Outcome{URL: u, Stage: StageClone, Err: ErrAlreadyExists}
	}

	if err := b.Runner.Clone(ctx, u.Normalized(), dest); err != nil {
		return Outcome{URL: u, Stage: StageClone, Err: err}
	}

	requirements := filepath.Join(dest, comfy.RequirementsName)
	if _, err := os.Stat(requirements); err != nil {
		// No dependency manifest, the clone alone completes the item.
		return Outcome{URL: u, Stage: StageComplete}
	}

	if err := b.Runner.InstallDeps(ctx, requirements); err != nil {
		return Outcome{URL: u, Stage: StageDeps, Err: err}
	}

	return Outcome{URL: u, Stage: StageComplete}
}
