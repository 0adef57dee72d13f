package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chapterFromToken(t *testing.T, title, token string) Chapter {
	t.Helper()
	start, err := Timestamp(token, Auto)
	require.NoError(t, err)
	return Chapter{Title: title, Start: start, Token: token}
}

func TestRepairChronology_InOrderUntouched(t *testing.T) {
	chapters := []Chapter{
		chapterFromToken(t, "a", "0:00"),
		chapterFromToken(t, "b", "5:00"),
		chapterFromToken(t, "c", "5:00"), // duplicates are in order
	}

	got, broken := RepairChronology(chapters)
	assert.False(t, broken)
	assert.Equal(t, chapters, got)
}

func TestRepairChronology_MinSecFramesFixed(t *testing.T) {
	// A MM:SS:FF chapter list: "5:59:20" reads as 5h59m under the hours
	// heuristic, while "6:10:00" reads as 6m10s because of its trailing
	// zero group. The collapse backwards triggers a wholesale rereading.
	chapters := []Chapter{
		chapterFromToken(t, "a", "5:59:20"),
		chapterFromToken(t, "b", "6:10:00"),
		chapterFromToken(t, "c", "7:30:15"),
	}
	require.True(t, chapters[1].Start < chapters[0].Start)

	got, broken := RepairChronology(chapters)
	assert.False(t, broken)
	assert.Equal(t, []int{359, 370, 450}, starts(got))

	// the input slice is left alone
	assert.Equal(t, 5*3600+59*60+20, chapters[0].Start)
}

func TestRepairChronology_SynthesizedKeepsValue(t *testing.T) {
	chapters := []Chapter{
		{Title: "Intro", Start: 0},
		chapterFromToken(t, "a", "5:59:20"),
		chapterFromToken(t, "b", "6:10:00"),
	}

	got, broken := RepairChronology(chapters)
	assert.False(t, broken)
	assert.Equal(t, []int{0, 359, 370}, starts(got))
	assert.Empty(t, got[0].Token)
}

func TestRepairChronology_Ambiguous(t *testing.T) {
	// Two-group tokens don't change under rereading, so a backwards
	// pair stays backwards and the original order is returned.
	chapters := []Chapter{
		chapterFromToken(t, "a", "2:00"),
		chapterFromToken(t, "b", "1:00"),
	}

	got, broken := RepairChronology(chapters)
	assert.True(t, broken)
	assert.Equal(t, []int{120, 60}, starts(got))
}

func starts(chapters []Chapter) []int {
	out := make([]int, len(chapters))
	for i, c := range chapters {
		out[i] = c.Start
	}
	return out
}
