package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// SanitizeFileName normalizes a caller-declared original filename to a flat
// storage-safe base name. Separators are normalized, the path is cleaned,
// and any residual ".." segment is rejected with ErrInvalidName.
func SanitizeFileName(original string) (string, error) {
	name := strings.TrimSpace(strings.ReplaceAll(original, "\\", "/"))
	if name == "" {
		return "", ErrInvalidName
	}

	cleaned := path.Clean(name)
	for _, seg := range strings.Split(cleaned, "/") {
		if seg == ".." {
			return "", ErrInvalidName
		}
	}

	base := path.Base(cleaned)
	if base == "" || base == "." || base == "/" {
		return "", ErrInvalidName
	}
	return base, nil
}

// AssignFileName produces the collision-resistant storage name for an
// incoming file: "<uuid>_<sanitized original name>". The random token makes
// collisions between uploads functionally impossible, so no existence check
// is performed before writing.
func AssignFileName(original string) (string, error) {
	base, err := SanitizeFileName(original)
	if err != nil {
		return "", err
	}
	return uuid.NewString() + "_" + base, nil
}
