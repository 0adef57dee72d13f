package parse

import (
	"regexp"
	"strings"
)

var (
	// digit groups joined by ":" or ".", at least one separator
	timestampRe = regexp.MustCompile(`\d+(?:[:.]\d+)+`)

	// a lone "0" at the start or end of a line, used by lists that
	// write the opening chapter as just "0"
	bareZeroStartRe = regexp.MustCompile(`^\s*0(?:\s|$)`)
	bareZeroEndRe   = regexp.MustCompile(`(?:^|\s)0\s*$`)

	leadDashRe  = regexp.MustCompile(`^(?:\s*[-–—]+)+\s*`)
	trailDashRe = regexp.MustCompile(`\s*(?:[-–—]+\s*)+$`)
	midDashRe   = regexp.MustCompile(`\s+(?:[-–—]+\s+)+`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// Line extracts a chapter from one line of chapter text. The first
// timestamp on the line is the start; every timestamp is removed from
// the title, so "Intro 0:00 - 1:23" keeps only "Intro". Lines with no
// timestamp, or whose title is empty after cleanup, yield (nil, nil).
func Line(s string) (*Chapter, error) {
	tok := timestampRe.FindString(s)
	bareZero := false
	if tok == "" {
		if !bareZeroStartRe.MatchString(s) && !bareZeroEndRe.MatchString(s) {
			return nil, nil
		}
		tok = "0"
		bareZero = true
	}

	start := 0
	if !bareZero {
		v, err := Timestamp(tok, Auto)
		if err != nil {
			return nil, err
		}
		start = v
	}

	title := stripTimestamps(s)
	if bareZero {
		title = stripBareZero(title)
	}
	title = collapseWhitespace(stripDashes(title))
	if title == "" {
		return nil, nil
	}

	return &Chapter{Title: title, Start: start, Token: tok}, nil
}

// stripTimestamps blanks every timestamp token out of s.
func stripTimestamps(s string) string {
	return timestampRe.ReplaceAllString(s, " ")
}

// stripBareZero removes a lone "0" from the start or end of s.
func stripBareZero(s string) string {
	s = bareZeroStartRe.ReplaceAllString(s, "")
	return bareZeroEndRe.ReplaceAllString(s, "")
}

// stripDashes drops separator dashes: leading, trailing, and runs
// surrounded by whitespace. Hyphenated words are left alone:
//
//	"- Intro -"        -> "Intro"
//	"Setup – teardown" -> "Setup teardown"
//	"re-encode basics" -> "re-encode basics"
func stripDashes(s string) string {
	s = leadDashRe.ReplaceAllString(s, "")
	s = trailDashRe.ReplaceAllString(s, "")
	return midDashRe.ReplaceAllString(s, " ")
}

// collapseWhitespace squeezes whitespace runs to single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}
