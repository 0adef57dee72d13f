package parse

// Chapter is one titled cut point inside a volume.
type Chapter struct {
	Title string
	Start int    // offset from the start of the video, in seconds
	Token string // timestamp exactly as written; "" for synthesized chapters
}

// Volume groups the chapters that belong to a single video.
// Name is the raw header line that opened it, "" when no header did.
type Volume struct {
	Name     string
	Chapters []Chapter
}

// Result is the parsed form of one chapter text file.
type Result struct {
	Volumes  []Volume
	Warnings []string
}

// ChapterCount sums chapters across all volumes.
func (r *Result) ChapterCount() int {
	n := 0
	for _, v := range r.Volumes {
		n += len(v.Chapters)
	}
	return n
}
