package playlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got := Render([]Entry{
		{File: "01 intro.mp4", Title: "Intro", Seconds: 300},
		{File: "02 outro.mp4", Title: "Outro", Seconds: -1},
	})

	want := `#EXTM3U
#EXTINF:300,Intro
01 intro.mp4
#EXTINF:-1,Outro
02 outro.mp4
`
	assert.Equal(t, want, got)
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "#EXTM3U\n", Render(nil))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")
	entries := []Entry{{File: "01 a.mp4", Title: "A", Seconds: 60}}

	require.NoError(t, Write(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(entries), string(data))
}
