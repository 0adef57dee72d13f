package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercased", "Getting STARTED", "getting started"},
		{"colon and question mark", "Intro: The BIG Picture?", "intro the big picture"},
		{"path separators", `a/b\c|d`, "a b c d"},
		{"whitespace collapsed", "  spaced   out  ", "spaced out"},
		{"trailing dots", "Outro...", "outro"},
		{"quotes and wildcards", `"find *.go"`, "find .go"},
		{"unicode kept", "Überblick Teil 2", "überblick teil 2"},
		{"nothing left", `<>:"?*`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeFileName(tt.in))
		})
	}
}
