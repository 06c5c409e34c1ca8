package media

import "github.com/melody-ding/go-vidclip/internal/types"

// Engine is the media-processing collaborator. Implementations own
// demuxing, codec work, and muxing; callers only supply trim boundaries.
type Engine interface {
	// Probe opens the file read-only and returns its stream properties.
	Probe(path string) (*types.VideoMetadata, error)

	// ExtractSubclip re-encodes [start, end) of src into out. When hasAudio
	// is true the source audio track is carried over.
	ExtractSubclip(src string, start, end float64, hasAudio bool, out string) error

	// Concat joins the inputs in order into a single output file.
	Concat(paths []string, out string) error
}
