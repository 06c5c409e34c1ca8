package types

// VideoMetadata holds the probed stream properties of a source video.
type VideoMetadata struct {
	Path     string
	Width    int
	Height   int
	FPS      float64
	Duration float64 // seconds
	HasAudio bool
}
