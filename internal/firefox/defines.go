package firefox

import (
	"regexp"
	"strings"
)

var defineLine = regexp.MustCompile(`^#define\s+(\S+)\s+(\S+)`)

// ParseDefines maps macro name to raw value text for every simple
// "#define NAME VALUE" line in a header. For sslproto.h this yields the
// numeric code of each suite macro; values are kept as written, so callers
// normalize case themselves.
func ParseDefines(src string) map[string]string {
	defs := make(map[string]string)
	for _, line := range strings.Split(src, "\n") {
		if m := defineLine.FindStringSubmatch(line); m != nil {
			defs[m[1]] = m[2]
		}
	}
	return defs
}
