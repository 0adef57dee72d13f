package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how three-group timestamps are read. Chapter lists in the
// wild mix H:MM:SS with MM:SS:FF (frames), so the three-group form is
// ambiguous and needs a heuristic or an explicit override.
type Mode int

const (
	// Auto reads A:B:C as hours:minutes:seconds unless A can't be an
	// hour (A > 23) or C looks like a frame counter (C == 0).
	Auto Mode = iota
	// ForceMinSec reads A:B:C as minutes:seconds, discarding C.
	ForceMinSec
)

var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Timestamp converts a token like "45", "1:23" or "1.23.45" to seconds.
// "." and ":" are interchangeable separators. Groups are not
// range-checked, so "25:99" is simply 25*60+99. Four groups read as
// H:MM:SS with the last group discarded; any other count is malformed.
func Timestamp(token string, mode Mode) (int, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(token), ".", ":")
	parts := strings.Split(norm, ":")

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, token)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 1:
		return nums[0], nil
	case 2:
		return nums[0]*60 + nums[1], nil
	case 3:
		a, b, c := nums[0], nums[1], nums[2]
		if mode == ForceMinSec || a > 23 || c == 0 {
			return a*60 + b, nil
		}
		return a*3600 + b*60 + c, nil
	case 4:
		return nums[0]*3600 + nums[1]*60 + nums[2], nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, token)
}

// FormatTimestamp renders seconds as "M:SS", or "H:MM:SS" from one hour
// up. The leading field is unpadded, the rest are two digits.
func FormatTimestamp(sec int) string {
	if sec < 3600 {
		return fmt.Sprintf("%d:%02d", sec/60, sec%60)
	}
	return fmt.Sprintf("%d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}
