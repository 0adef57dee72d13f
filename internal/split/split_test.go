package split

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/chapcut/internal/parse"
)

type fakeEncoder struct {
	mu     sync.Mutex
	cuts   []string
	failOn string // fail any cut whose output path contains this
}

func (f *fakeEncoder) Duration(context.Context, string) (int, error) {
	return 900, nil
}

func (f *fakeEncoder) Cut(_ context.Context, in, out string, start, end int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && strings.Contains(out, f.failOn) {
		return errors.New("boom")
	}
	f.cuts = append(f.cuts, fmt.Sprintf("%s %d %d", filepath.Base(out), start, end))
	return nil
}

func testVolume() parse.Volume {
	return parse.Volume{
		Name: "VOLUME 2",
		Chapters: []parse.Chapter{
			{Title: "Intro", Start: 0, Token: "0:00"},
			{Title: "Middle", Start: 300, Token: "5:00"},
			{Title: "End", Start: 600, Token: "10:00"},
		},
	}
}

func TestNewTask_Plan(t *testing.T) {
	task, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 900, Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/course", "02 volume 2"), task.OutDir)
	require.Len(t, task.Cuts, 3)
	assert.Empty(t, task.Skipped)

	assert.Equal(t, Cut{
		Title:   "Intro",
		Start:   0,
		End:     300,
		OutPath: filepath.Join(task.OutDir, "01 intro.mp4"),
	}, task.Cuts[0])
	assert.Equal(t, 600, task.Cuts[1].End)
	assert.Equal(t, 900, task.Cuts[2].End) // last one ends at the probed duration
}

func TestNewTask_UnknownDurationRunsOpenEnded(t *testing.T) {
	task, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 0, Options{})
	require.NoError(t, err)
	require.Len(t, task.Cuts, 3)
	assert.Equal(t, 0, task.Cuts[2].End)

	entries := task.PlaylistEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, 300, entries[0].Seconds)
	assert.Equal(t, -1, entries[2].Seconds)
	assert.Equal(t, "01 intro.mp4", entries[0].File)
}

func TestNewTask_UnnamedVolumeUsesVideoBase(t *testing.T) {
	vol := testVolume()
	vol.Name = ""
	task, err := NewTask("/course/My Lesson.mp4", 1, vol, 900, Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/course", "my lesson"), task.OutDir)
}

func TestNewTask_OutRootOverride(t *testing.T) {
	task, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 900, Options{OutRoot: "/mnt/out"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/mnt/out", "02 volume 2"), task.OutDir)
}

func TestNewTask_ChapterBeyondDuration(t *testing.T) {
	vol := testVolume()
	vol.Chapters = append(vol.Chapters, parse.Chapter{Title: "Ghost", Start: 1200, Token: "20:00"})

	_, err := NewTask("/course/lesson 2.mp4", 2, vol, 900, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Ghost"`)
	assert.Contains(t, err.Error(), "20:00")
}

func TestNewTask_DuplicateStartSkipped(t *testing.T) {
	vol := parse.Volume{
		Name: "VOLUME 1",
		Chapters: []parse.Chapter{
			{Title: "A", Start: 0},
			{Title: "B", Start: 300},
			{Title: "B again", Start: 300},
			{Title: "C", Start: 600},
		},
	}

	task, err := NewTask("/course/lesson 1.mp4", 1, vol, 900, Options{})
	require.NoError(t, err)
	require.Len(t, task.Skipped, 1)
	assert.Contains(t, task.Skipped[0], `"B"`)

	require.Len(t, task.Cuts, 3)
	// numbering keeps the chapter's position, so gaps mark skips
	assert.Equal(t, "01 a.mp4", filepath.Base(task.Cuts[0].OutPath))
	assert.Equal(t, "03 b again.mp4", filepath.Base(task.Cuts[1].OutPath))
	assert.Equal(t, "04 c.mp4", filepath.Base(task.Cuts[2].OutPath))
}

func TestRun(t *testing.T) {
	outRoot := t.TempDir()
	task, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 900, Options{OutRoot: outRoot})
	require.NoError(t, err)

	enc := &fakeEncoder{}
	require.NoError(t, Run(context.Background(), enc, task, Options{Playlist: true, Jobs: 2}))

	assert.Len(t, enc.cuts, 3)
	assert.Contains(t, enc.cuts, "01 intro.mp4 0 300")

	data, err := os.ReadFile(filepath.Join(task.OutDir, "playlist.m3u"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "#EXTM3U")
	assert.Contains(t, string(data), "#EXTINF:300,Intro")
}

func TestRun_NoPlaylist(t *testing.T) {
	outRoot := t.TempDir()
	task, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 900, Options{OutRoot: outRoot})
	require.NoError(t, err)

	require.NoError(t, Run(context.Background(), &fakeEncoder{}, task, Options{}))
	_, statErr := os.Stat(filepath.Join(task.OutDir, "playlist.m3u"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunAll_IsolatesFailures(t *testing.T) {
	outRoot := t.TempDir()

	bad := testVolume()
	bad.Name = "VOLUME 1"
	bad.Chapters[0].Title = "poison"
	badTask, err := NewTask("/course/lesson 1.mp4", 1, bad, 900, Options{OutRoot: outRoot})
	require.NoError(t, err)

	goodTask, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 900, Options{OutRoot: outRoot})
	require.NoError(t, err)

	fe := &fakeEncoder{failOn: "poison"}
	stats := RunAll(context.Background(), fe, []Task{badTask, goodTask}, Options{})

	assert.Equal(t, 2, stats.Videos)
	assert.Equal(t, 6, stats.Chapters)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 3, stats.Cut) // only the good task counts
}

func TestRunAll_DryRun(t *testing.T) {
	task, err := NewTask("/course/lesson 2.mp4", 2, testVolume(), 900, Options{OutRoot: "/nowhere"})
	require.NoError(t, err)

	fe := &fakeEncoder{}
	stats := RunAll(context.Background(), fe, []Task{task}, Options{DryRun: true})

	assert.Empty(t, fe.cuts)
	assert.Equal(t, 1, stats.Videos)
	assert.Equal(t, 3, stats.Chapters)
	assert.Zero(t, stats.Cut)
	assert.Zero(t, stats.Errors)
}

func TestStatsString(t *testing.T) {
	s := Stats{Folders: 2, Videos: 5, Unmatched: 1, Chapters: 40, Cut: 38, Skipped: 1, Errors: 1}
	assert.Equal(t, "folders=2 videos=5 unmatched=1 chapters=40 cut=38 skipped=1 errors=1", s.String())
}
