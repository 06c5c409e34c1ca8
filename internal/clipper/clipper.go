package clipper

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/melody-ding/go-vidclip/internal/media"
	"github.com/melody-ding/go-vidclip/internal/timestamp"
	"github.com/melody-ding/go-vidclip/internal/types"
)

// DefaultMaxClipDuration caps each extracted segment at three seconds.
const DefaultMaxClipDuration = 3.0

// Options configures a clipping run.
type Options struct {
	// OutputDir receives the produced clip files.
	OutputDir string

	// MaxClipDuration caps each segment in seconds. Zero disables the cap.
	MaxClipDuration float64

	// TargetDuration is the total duration to accumulate across clips.
	// Zero disables the target and the padding pass.
	TargetDuration float64
}

// Result is the outcome of a clipping run. Clips preserve insertion order,
// which also fixes the padding rotation and any later concatenation order.
type Result struct {
	Clips         []types.ClipRecord
	TotalDuration float64
}

// Paths returns the clip file paths in insertion order.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Clips))
	for i, c := range r.Clips {
		paths[i] = c.Path
	}
	return paths
}

// Clipper plans trim boundaries and extracts subclips through a media
// engine. It is single-threaded; each extraction is a blocking call.
type Clipper struct {
	engine media.Engine
	logger zerolog.Logger
}

func New(engine media.Engine, logger zerolog.Logger) *Clipper {
	return &Clipper{engine: engine, logger: logger}
}

// ClipVideo extracts one subclip per requested timestamp range from src.
// Ranges that fail to parse or fall outside the video are logged and
// skipped; the batch continues. When opts.TargetDuration is set and the
// primary pass comes up short, already-produced clips are re-trimmed in
// round-robin order until the target is met. A source that cannot be
// opened yields an empty result.
func (c *Clipper) ClipVideo(src string, timestamps []string, opts Options) *Result {
	result := &Result{}

	meta, err := c.engine.Probe(src)
	if err != nil {
		c.logger.Error().Err(err).Str("video", src).Msg("cannot open source video")
		return result
	}
	c.logger.Info().
		Str("video", src).
		Int("width", meta.Width).
		Int("height", meta.Height).
		Float64("fps", meta.FPS).
		Str("duration", timestamp.FormatSeconds(meta.Duration)).
		Bool("audio", meta.HasAudio).
		Msg("source video opened")
	if !meta.HasAudio {
		c.logger.Warn().Str("video", src).Msg("no audio track found")
	}

	for _, ts := range timestamps {
		if opts.TargetDuration > 0 && result.TotalDuration >= opts.TargetDuration {
			c.logger.Info().
				Float64("target", opts.TargetDuration).
				Msg("target duration reached, skipping remaining timestamps")
			break
		}

		start, end, err := timestamp.ParseRange(ts)
		if err != nil {
			c.logger.Warn().Err(err).Str("timestamp", ts).Msg("skipping unparseable timestamp")
			continue
		}
		if end > meta.Duration {
			c.logger.Warn().
				Str("timestamp", ts).
				Float64("end", end).
				Float64("video_duration", meta.Duration).
				Msg("end time beyond video duration, clamping")
			end = meta.Duration
		}
		if start >= meta.Duration {
			c.logger.Error().
				Str("timestamp", ts).
				Float64("start", start).
				Float64("video_duration", meta.Duration).
				Msg("start time beyond video duration, skipping")
			continue
		}
		if start >= end {
			c.logger.Error().
				Str("timestamp", ts).
				Float64("start", start).
				Float64("end", end).
				Msg("empty time range after clamping, skipping")
			continue
		}

		planned := end - start
		if opts.MaxClipDuration > 0 && planned > opts.MaxClipDuration {
			planned = opts.MaxClipDuration
		}
		if opts.TargetDuration > 0 && result.TotalDuration+planned > opts.TargetDuration {
			planned = opts.TargetDuration - result.TotalDuration
		}
		end = start + planned

		out := clipPath(opts.OutputDir, ts)
		if err := c.engine.ExtractSubclip(src, start, end, meta.HasAudio, out); err != nil {
			c.logger.Error().Err(err).Str("timestamp", ts).Msg("subclip extraction failed, skipping")
			continue
		}

		result.Clips = append(result.Clips, types.ClipRecord{Key: ts, Path: out, Duration: planned})
		result.TotalDuration += planned
		c.logger.Info().
			Str("timestamp", ts).
			Str("clip", out).
			Float64("duration", planned).
			Float64("total", result.TotalDuration).
			Msg("subclip extracted")
	}

	if opts.TargetDuration > 0 && result.TotalDuration < opts.TargetDuration {
		c.pad(result, meta.HasAudio, opts)
	}

	return result
}

// pad cycles over the clips produced by the primary pass, in insertion
// order, taking a sub-segment from the front of each until the target
// duration is met. It exits after any full pass that adds no duration, so
// a failing or empty record set cannot loop forever.
func (c *Clipper) pad(result *Result, hasAudio bool, opts Options) {
	if len(result.Clips) == 0 {
		c.logger.Error().
			Float64("target", opts.TargetDuration).
			Msg("no clips produced, cannot pad to target duration")
		return
	}

	sources := make([]types.ClipRecord, len(result.Clips))
	copy(sources, result.Clips)

	serial := 0
	for result.TotalDuration < opts.TargetDuration {
		progressed := false
		for _, rec := range sources {
			remaining := opts.TargetDuration - result.TotalDuration
			if remaining <= 0 {
				return
			}

			take := rec.Duration
			if take > remaining {
				take = remaining
			}
			if take <= 0 {
				continue
			}

			serial++
			key := fmt.Sprintf("extra_%d_%s", serial, rec.Key)
			out := clipPath(opts.OutputDir, key)
			if err := c.engine.ExtractSubclip(rec.Path, 0, take, hasAudio, out); err != nil {
				c.logger.Error().Err(err).Str("clip", rec.Path).Msg("padding extraction failed, skipping")
				continue
			}

			result.Clips = append(result.Clips, types.ClipRecord{Key: key, Path: out, Duration: take})
			result.TotalDuration += take
			progressed = true
			c.logger.Info().
				Str("key", key).
				Float64("duration", take).
				Float64("total", result.TotalDuration).
				Msg("padding clip extracted")
		}

		if !progressed {
			c.logger.Error().
				Float64("target", opts.TargetDuration).
				Float64("total", result.TotalDuration).
				Msg("no progress padding toward target duration, giving up")
			return
		}
	}
}

func clipPath(dir, key string) string {
	return filepath.Join(dir, fmt.Sprintf("clip_%s.mp4", timestamp.SanitizeKey(key)))
}
