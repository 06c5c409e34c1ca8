package clipper

import (
	"fmt"
	"os"
)

// ConcatClips joins the given clip files, in order, into a single output
// file and returns the output path. An empty input list or a missing input
// file is an error; a failed concatenation never reports the output path
// as usable.
func (c *Clipper) ConcatClips(paths []string, out string) (string, error) {
	if len(paths) == 0 {
		c.logger.Error().Str("output", out).Msg("no clips to concatenate")
		return "", fmt.Errorf("no clips to concatenate")
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			c.logger.Error().Err(err).Str("clip", p).Msg("concat input missing")
			return "", fmt.Errorf("concat input %s: %w", p, err)
		}
	}

	if err := c.engine.Concat(paths, out); err != nil {
		c.logger.Error().Err(err).Str("output", out).Msg("concatenation failed")
		return "", err
	}

	c.logger.Info().Int("clips", len(paths)).Str("output", out).Msg("clips concatenated")
	return out, nil
}
