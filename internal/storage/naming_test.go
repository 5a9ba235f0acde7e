package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
		wantErr  bool
	}{
		{name: "plain name", original: "notes.txt", want: "notes.txt"},
		{name: "windows separators", original: `reports\q3\summary.pdf`, want: "summary.pdf"},
		{name: "leading directories stripped", original: "a/b/c.png", want: "c.png"},
		{name: "dot segments collapsed", original: "./x/./y.txt", want: "y.txt"},
		{name: "traversal rejected", original: "../etc/passwd", wantErr: true},
		{name: "embedded traversal rejected", original: "a/../../b.txt", wantErr: true},
		{name: "bare dotdot rejected", original: "..", wantErr: true},
		{name: "empty rejected", original: "", wantErr: true},
		{name: "whitespace only rejected", original: "   ", wantErr: true},
		{name: "root only rejected", original: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.original)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignFileName(t *testing.T) {
	t.Run("suffix and token format", func(t *testing.T) {
		got, err := AssignFileName("notes.txt")
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]+_notes\.txt$`), got)
		assert.True(t, strings.HasSuffix(got, "_notes.txt"))
	})

	t.Run("distinct tokens under repetition", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			got, err := AssignFileName("notes.txt")
			require.NoError(t, err)
			assert.False(t, seen[got], "duplicate assigned name %s", got)
			seen[got] = true
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := AssignFileName("../../notes.txt")
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}
