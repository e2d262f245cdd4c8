package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/comfyops/autonode/internal/comfy"
	"github.com/comfyops/autonode/internal/installer"
	"github.com/comfyops/autonode/internal/log"
	"github.com/comfyops/autonode/internal/output"
	"github.com/comfyops/autonode/internal/repourl"
	"github.com/comfyops/autonode/internal/ui/prompt"
	"github.com/comfyops/autonode/internal/ui/static"
	"github.com/comfyops/autonode/internal/ui/styles"
)

// installParams holds the resolved inputs of an install run.
type installParams struct {
	urlFile      string
	dir          string // target custom_nodes directory
	validateOnly bool
	confirm      func(count int, dirPath string) (bool, error)
	runner       installer.Runner
	progress     func(index, total int, u repourl.URL)
	finish       func() // called after the batch, before the summary
}

// runInstall executes the install pipeline: read and classify the URL
// list, validate the target directory, persist the manifest, then run the
// batch and report the summary. Returns an error for fatal pre-flight
// failures or when one or more installs failed.
func runInstall(ctx context.Context, p installParams) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	lines, err := repourl.ReadFile(p.urlFile)
	if err != nil {
		return err
	}

	valid, rejected := repourl.Classify(lines)
	for _, r := range rejected {
		l.Printf("skipping %q: %s\n", r.Raw, r.Reason)
	}
	if len(valid) == 0 {
		return fmt.Errorf("no valid repository URLs found in %s", p.urlFile)
	}
	l.Debug("classified URL list", "valid", len(valid), "rejected", len(rejected))

	dir, err := comfy.ValidateDir(p.dir)
	if err != nil {
		return err
	}

	// The manifest is written before any clone so it records the intended
	// work even if the batch fails partway.
	if err := comfy.WriteManifest(dir, valid); err != nil {
		return err
	}
	l.Debug("manifest written", "path", dir.ManifestPath(), "entries", len(valid))

	if p.validateOnly {
		out.Printf("Validated %d repository URLs (%d rejected)\n", len(valid), len(rejected))
		out.Printf("Manifest written to %s\n", dir.ManifestPath())
		return nil
	}

	// The confirmation gate sits between the manifest write and the first
	// clone, like the original flow: the manifest exists even when the
	// user declines.
	confirmed, err := p.confirm(len(valid), dir.Path)
	if err != nil {
		return err
	}
	if !confirmed {
		out.Println("Installation cancelled")
		return nil
	}

	batch := installer.Batch{
		Runner:   p.runner,
		Dir:      dir,
		Progress: p.progress,
	}
	outcomes := batch.Run(ctx, valid, confirmed)

	if p.finish != nil {
		p.finish()
	}

	summary := installer.Summarize(outcomes)
	printSummary(ctx, summary)

	if n := summary.FailedCount(); n > 0 {
		return fmt.Errorf("%d of %d installs failed", n, summary.Attempted)
	}
	return nil
}

// printSummary writes the run summary to stdout. Styling is dropped when
// stdout is not a terminal.
func printSummary(ctx context.Context, s installer.Summary) {
	out := output.FromContext(ctx)
	styled := colorprofile.Detect(out.Writer(), os.Environ()) != colorprofile.NoTTY

	okMark := styles.OK
	failMark := styles.Fail
	if styled {
		okMark = styles.SuccessStyle.Render(okMark)
		failMark = styles.ErrorStyle.Render(failMark)
	}

	out.Printf("\n%s %d installed, %s %d failed (%d total)\n",
		okMark, s.Succeeded, failMark, s.FailedCount(), s.Attempted)

	if len(s.Failed) == 0 {
		return
	}

	rows := make([][]string, 0, len(s.Failed))
	for _, o := range s.Failed {
		rows = append(rows, []string{o.URL.Normalized(), string(o.Stage), o.Err.Error()})
	}
	out.Print("\n" + static.RenderTable([]string{"URL", "STAGE", "ERROR"}, rows))
}

// resolveTargetDir picks the custom_nodes directory: the --dir flag, then
// the configured nodes_dir, then an interactive prompt when stdin is a
// terminal.
func resolveTargetDir(flagDir, configDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if configDir != "" {
		return configDir, nil
	}
	if !stdinIsTerminal() {
		return "", fmt.Errorf("no target directory: pass --dir or set nodes_dir in the config")
	}
	res, err := prompt.TextInput("Path to your ComfyUI custom_nodes directory:", "/path/to/ComfyUI/custom_nodes")
	if err != nil {
		return "", err
	}
	if res.Cancelled || res.Value == "" {
		return "", fmt.Errorf("no target directory given")
	}
	return res.Value, nil
}

// confirmInstall resolves the confirmation gate. --yes confirms without a
// prompt; otherwise the user is asked on a terminal, and a non-terminal
// run without --yes refuses to install.
func confirmInstall(yes bool, count int, dirPath string) (bool, error) {
	if yes {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, fmt.Errorf("refusing to install without confirmation: pass --yes on non-interactive runs")
	}
	res, err := prompt.Confirm(fmt.Sprintf("Install %d custom nodes into %s?", count, dirPath))
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
