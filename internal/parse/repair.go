package parse

// RepairChronology fixes chapter lists whose three-group timestamps were
// really MM:SS:FF. When the sequence runs backwards anywhere, every
// token is re-read as minutes:seconds; the rereading is adopted only if
// it makes the whole sequence non-decreasing. All or nothing: a partial
// fix would silently shuffle chapters. Returns the chapters to use and
// whether the order stayed broken.
func RepairChronology(chapters []Chapter) ([]Chapter, bool) {
	if !outOfOrder(chapters) {
		return chapters, false
	}

	redone := make([]Chapter, len(chapters))
	copy(redone, chapters)
	for i := range redone {
		if redone[i].Token == "" {
			continue // synthesized, nothing to re-read
		}
		v, err := Timestamp(redone[i].Token, ForceMinSec)
		if err != nil {
			return chapters, true
		}
		redone[i].Start = v
	}

	if outOfOrder(redone) {
		return chapters, true
	}
	return redone, false
}

func outOfOrder(chapters []Chapter) bool {
	for i := 1; i < len(chapters); i++ {
		if chapters[i].Start < chapters[i-1].Start {
			return true
		}
	}
	return false
}
