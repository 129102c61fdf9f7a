package plan

import (
	"fmt"
	"regexp"
	"strconv"
)

const DefaultRestSeconds = 60

var restSecondsRegex = regexp.MustCompile(`(\d+)s`)

// RestSeconds extracts the numeral of a "<n>s" rest string. Missing or
// malformed values yield DefaultRestSeconds.
func RestSeconds(rest string) int {
	m := restSecondsRegex.FindStringSubmatch(rest)
	if m == nil {
		return DefaultRestSeconds
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultRestSeconds
	}
	return n
}

func FormatRest(seconds int) string {
	return fmt.Sprintf("%ds", seconds)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
