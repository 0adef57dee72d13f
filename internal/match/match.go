package match

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Zuo-Peng/chapcut/internal/parse"
	"github.com/Zuo-Peng/chapcut/internal/scan"
)

// Pair binds one video file to the volume whose chapters describe it.
// Index is the volume number used to label output: the position for
// positional matches, the number taken from the file name otherwise,
// so track numbering follows the volume's own numbering even when
// videos turn up out of order.
type Pair struct {
	Video  scan.Video
	Volume parse.Volume
	Index  int
}

// Unmatched is a video no volume could be found for. Not fatal: the
// rest of the folder still gets processed.
type Unmatched struct {
	Video  scan.Video
	Reason string
}

type Result struct {
	Pairs     []Pair
	Unmatched []Unmatched
}

var (
	trailingNumRe = regexp.MustCompile(`(\d+)\s*$`)
	numberRunRe   = regexp.MustCompile(`\d+`)
)

// Videos pairs videos with volumes. Equal counts pair positionally in
// order. Otherwise each video's trailing number ("lesson 2", "S01E02")
// is looked up in the volume names by integer value, so "02" finds
// "VOLUME 2".
func Videos(videos []scan.Video, volumes []parse.Volume) Result {
	var res Result

	if len(videos) == len(volumes) {
		for i, v := range videos {
			res.Pairs = append(res.Pairs, Pair{Video: v, Volume: volumes[i], Index: i + 1})
		}
		return res
	}

	for _, v := range videos {
		m := trailingNumRe.FindStringSubmatch(v.Base)
		if m == nil {
			res.Unmatched = append(res.Unmatched, Unmatched{
				Video:  v,
				Reason: fmt.Sprintf("%d videos vs %d volumes and no trailing number in the file name", len(videos), len(volumes)),
			})
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			res.Unmatched = append(res.Unmatched, Unmatched{
				Video:  v,
				Reason: fmt.Sprintf("file number %q out of range", m[1]),
			})
			continue
		}
		vol, ok := volumeNumbered(volumes, n)
		if !ok {
			res.Unmatched = append(res.Unmatched, Unmatched{
				Video:  v,
				Reason: fmt.Sprintf("no volume numbered %d", n),
			})
			continue
		}
		res.Pairs = append(res.Pairs, Pair{Video: v, Volume: vol, Index: n})
	}
	return res
}

// volumeNumbered finds the first volume whose name contains n as a
// digit run, compared by value.
func volumeNumbered(volumes []parse.Volume, n int) (parse.Volume, bool) {
	for _, vol := range volumes {
		for _, run := range numberRunRe.FindAllString(vol.Name, -1) {
			if v, err := strconv.Atoi(run); err == nil && v == n {
				return vol, true
			}
		}
	}
	return parse.Volume{}, false
}
