package parse

import (
	"regexp"
	"strings"
)

var (
	numberLineRe = regexp.MustCompile(`^\d+$`)
	headerWordRe = regexp.MustCompile(`(?i)\b(?:volume|vol\.?|disc|part|section|chapter)\s*\d+\b`)
)

// IsHeader reports whether a line introduces a new volume: either a
// bare number ("3") or a section keyword followed by one ("VOLUME 2",
// "vol. 2", "Disc 1"). Lines that carry a timestamp are chapter lines
// and must be checked first; this only classifies the leftovers.
func IsHeader(line string) bool {
	s := strings.TrimSpace(line)
	if numberLineRe.MatchString(s) {
		return true
	}
	return headerWordRe.MatchString(s)
}
