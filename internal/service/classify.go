package service

import (
	"strings"
	"time"
	"unicode/utf8"
)

// uploadPlaceholderPrefix starts the generated content of every non-text
// upload. Tests and search behavior depend on this exact prefix.
const uploadPlaceholderPrefix = "File uploaded on "

// classify derives the indexable title and content for an ingested file from
// its declared MIME type. Files declared with a "text" prefix keep their
// bytes as content, decoded best-effort as UTF-8; everything else gets a
// placeholder embedding the ingestion timestamp. The declared type is
// trusted, not sniffed.
func classify(storedName, declaredType string, data []byte, now time.Time) (title, content string) {
	if isTextType(declaredType) {
		return storedName, strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return storedName, uploadPlaceholderPrefix + now.UTC().Format(time.RFC3339)
}

func isTextType(declaredType string) bool {
	return strings.HasPrefix(strings.ToLower(declaredType), "text")
}
