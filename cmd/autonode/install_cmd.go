package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comfyops/autonode/internal/installer"
	"github.com/comfyops/autonode/internal/log"
	"github.com/comfyops/autonode/internal/pip"
	"github.com/comfyops/autonode/internal/repourl"
	"github.com/comfyops/autonode/internal/ui/progress"
)

func newInstallCmd() *cobra.Command {
	var (
		file         string
		dir          string
		validateOnly bool
		yes          bool
	)

	cmd := &cobra.Command{
		Use:     "install -f <file> [-d <dir>]",
		Short:   "Install custom nodes from a URL list",
		Aliases: []string{"i"},
		Args:    cobra.NoArgs,
		Long: `Install ComfyUI custom nodes listed in a text file.

The file contains one repository URL per line; blank lines are ignored and
invalid lines are reported and skipped. The validated list is saved as
comfy-repos.txt in the custom_nodes directory before anything is cloned.
Each repository is cloned with git, and its requirements.txt (if present)
is installed with pip. A failing repository never aborts the batch; the
run reports a summary at the end and exits non-zero if anything failed.`,
		Example: `  autonode install -f nodes.txt -d ~/ComfyUI/custom_nodes
  autonode install -f nodes.txt                  # prompts for the directory
  autonode install -f nodes.txt -d ... --validate  # no clones, manifest only
  autonode install -f nodes.txt -d ... -y        # skip confirmation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			target, err := resolveTargetDir(dir, cfg.NodesDir)
			if err != nil {
				return err
			}

			if !validateOnly {
				if err := pip.Check(cfg.Pip); err != nil {
					l.Printf("Warning: %v (dependency installs will fail)\n", err)
				}
			}

			// Show a spinner only when it won't fight other output.
			var sp *progress.Spinner
			var progressFn func(index, total int, u repourl.URL)
			if stdinIsTerminal() && !l.IsVerbose() {
				sp = progress.NewSpinner("")
				progressFn = func(index, total int, u repourl.URL) {
					sp.UpdateMessage(fmt.Sprintf("[%d/%d] Installing %s...", index+1, total, u.Spec()))
				}
			}

			p := installParams{
				urlFile:      file,
				dir:          target,
				validateOnly: validateOnly,
				runner:       installer.ExecRunner{Git: cfg.Git, Pip: cfg.Pip},
				progress:     progressFn,
				confirm: func(count int, dirPath string) (bool, error) {
					confirmed, err := confirmInstall(yes, count, dirPath)
					if err == nil && confirmed && sp != nil {
						sp.Start()
					}
					return confirmed, err
				},
			}
			if sp != nil {
				p.finish = sp.Stop
			}

			return runInstall(ctx, p)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Text file with repository URLs, one per line (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Path to the ComfyUI custom_nodes directory")
	cmd.Flags().BoolVar(&validateOnly, "validate", false, "Validate inputs and write the manifest without installing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.MarkFlagRequired("file")
	cmd.MarkFlagFilename("file", "txt")
	cmd.MarkFlagDirname("dir")

	return cmd
}
