package util

import (
	"regexp"
	"strings"
)

var (
	forbiddenRe = regexp.MustCompile(`[<>:"/\\|?*]+`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// SafeFileName turns a chapter or volume title into a name usable as a
// file name on common filesystems: lowercase, forbidden characters
// blanked, whitespace collapsed, edge dots and spaces trimmed.
//
//	"Intro: The BIG Picture?" -> "intro the big picture"
//	"  a/b   testing  "       -> "a b testing"
//
// Returns "" when nothing survives; callers pick a fallback.
func SafeFileName(s string) string {
	s = strings.ToLower(s)
	s = forbiddenRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " .")
}
