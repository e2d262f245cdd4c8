package git

import (
	"context"

	"github.com/comfyops/autonode/internal/cmd"
)

// cmdRun runs git in dir for test setup.
func cmdRun(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, dir, DefaultBinary, args...)
}
