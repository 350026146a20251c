package gen

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Run invokes the external localization generator in the project root. The
// exit code and output are logged but never alter the extraction result; a
// failed run only warns with guidance to rerun manually.
func Run(ctx context.Context, root string) {
	cmd := exec.CommandContext(ctx, "flutter", "gen-l10n")
	cmd.Dir = root

	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Warn().
			Err(err).
			Str("output", string(out)).
			Msg("Generator invocation failed, run 'flutter gen-l10n' manually")
		return
	}
	log.Info().Str("output", string(out)).Msg("Generator run complete")
}
