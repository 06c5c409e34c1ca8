package timestamp

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a timestamp range string that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Input, e.Reason)
}

// ParseRange parses a "start-end" range into seconds. Each side has one to
// three colon-separated components: seconds, minutes:seconds, or
// hours:minutes:seconds. Components may carry fractional precision.
func ParseRange(text string) (float64, float64, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return 0, 0, &ParseError{Input: text, Reason: "expected exactly one '-' separator"}
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return 0, 0, &ParseError{Input: text, Reason: err.Error()}
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return 0, 0, &ParseError{Input: text, Reason: err.Error()}
	}

	return start, end, nil
}

func parseClock(s string) (float64, error) {
	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("too many ':' components in %q", s)
	}

	var total float64
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric component %q", f)
		}
		total = total*60 + v
	}
	return total, nil
}

// FormatSeconds renders seconds as H:MM:SS for log output.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// SanitizeKey maps a timestamp key to a filesystem-safe fragment by
// replacing ':' and '-' with '_'.
func SanitizeKey(text string) string {
	return strings.NewReplacer(":", "_", "-", "_").Replace(text)
}
