package taskdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve returns the working directory for a task under baseDir, creating
// it if needed. Reruns with the same task id resolve to the same directory.
func Resolve(baseDir, taskID string) (string, error) {
	if strings.TrimSpace(taskID) == "" {
		return "", fmt.Errorf("empty task id")
	}

	dir := filepath.Join(baseDir, sanitize(taskID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create task dir: %w", err)
	}
	return dir, nil
}

// sanitize keeps task ids to a single safe path component.
func sanitize(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
