// Package normalize converts the upstream API's heterogeneous post and
// category payloads into the unified catalog model. All functions are pure:
// malformed or missing input degrades to documented fallbacks, never errors.
package normalize

import (
	"regexp"
	"strconv"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)h`)
	minutesPattern = regexp.MustCompile(`(\d+)m`)
)

// ParseWatchTime converts a human duration string such as "1h 54m", "2h" or
// "45m" into total minutes. Absent groups contribute zero; an empty string
// yields zero.
func ParseWatchTime(watchTime string) int {
	if watchTime == "" {
		return 0
	}

	hours := 0
	if m := hoursPattern.FindStringSubmatch(watchTime); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}

	minutes := 0
	if m := minutesPattern.FindStringSubmatch(watchTime); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	return hours*60 + minutes
}
