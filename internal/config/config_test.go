package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "ffprobe", cfg.FFprobePath)
	assert.Contains(t, cfg.VideoExts, ".mp4")
	assert.Contains(t, cfg.VideoExts, ".mkv")
	assert.True(t, cfg.Playlist)
	assert.Equal(t, 1, cfg.Jobs)
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "chapcut")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data := `
ffmpeg_path = "~/bin/ffmpeg"
video_exts = [".mp4"]
playlist = false
jobs = 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "bin", "ffmpeg"), cfg.FFmpegPath)
	assert.Equal(t, "ffprobe", cfg.FFprobePath) // untouched default
	assert.Equal(t, []string{".mp4"}, cfg.VideoExts)
	assert.False(t, cfg.Playlist)
	assert.Equal(t, 4, cfg.Jobs)
}

func TestLoad_BadFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "chapcut")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("jobs = [nope"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "chapcut", "config.toml"), p)
}
