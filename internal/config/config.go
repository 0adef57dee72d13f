package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	FFmpegPath  string   `toml:"ffmpeg_path"`
	FFprobePath string   `toml:"ffprobe_path"`
	VideoExts   []string `toml:"video_exts"`
	Playlist    bool     `toml:"playlist"`
	Jobs        int      `toml:"jobs"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		VideoExts:   []string{".mp4", ".mkv", ".avi", ".mov", ".webm", ".m4v"},
		Playlist:    true,
		Jobs:        1,
	}

	cfgPath := filepath.Join(home, ".config", "chapcut", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.FFmpegPath = expandHome(cfg.FFmpegPath, home)
	cfg.FFprobePath = expandHome(cfg.FFprobePath, home)

	return cfg, nil
}

// Path returns where Load looks for the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "chapcut", "config.toml"), nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
