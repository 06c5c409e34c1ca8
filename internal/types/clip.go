package types

// ClipRecord describes a single extracted subclip on disk. Records are
// created once and never mutated; callers keep them in insertion order.
type ClipRecord struct {
	Key      string
	Path     string
	Duration float64 // seconds
}
