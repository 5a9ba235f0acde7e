package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("text type keeps content verbatim", func(t *testing.T) {
		title, content := classify("tok_notes.txt", "text/plain", []byte("hello"), now)

		assert.Equal(t, "tok_notes.txt", title)
		assert.Equal(t, "hello", content)
	})

	t.Run("text prefix is case-insensitive", func(t *testing.T) {
		_, content := classify("tok_a.csv", "TEXT/CSV", []byte("a,b"), now)
		assert.Equal(t, "a,b", content)
	})

	t.Run("text subtype with parameters", func(t *testing.T) {
		_, content := classify("tok_a.html", "text/html; charset=utf-8", []byte("<p>x</p>"), now)
		assert.Equal(t, "<p>x</p>", content)
	})

	t.Run("empty text content is valid", func(t *testing.T) {
		_, content := classify("tok_empty.txt", "text/plain", nil, now)
		assert.Equal(t, "", content)
	})

	t.Run("invalid utf8 replaced, never fatal", func(t *testing.T) {
		_, content := classify("tok_bad.txt", "text/plain", []byte{0x68, 0xff, 0x69}, now)

		assert.Contains(t, content, "h")
		assert.Contains(t, content, "i")
		assert.Contains(t, content, "�")
	})

	t.Run("non-text gets placeholder", func(t *testing.T) {
		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		title, content := classify("tok_photo.png", "image/png", raw, now)

		assert.Equal(t, "tok_photo.png", title)
		assert.True(t, strings.HasPrefix(content, uploadPlaceholderPrefix))
		assert.Contains(t, content, "2025-03-14T09:26:53Z")
		assert.NotEqual(t, string(raw), content)
	})

	t.Run("unknown type gets placeholder", func(t *testing.T) {
		_, content := classify("tok_blob", "", []byte("x"), now)
		assert.True(t, strings.HasPrefix(content, uploadPlaceholderPrefix))
	})
}
