package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// AllowedImageFile reports whether the filename carries an extension from
// the image allow-list.
func AllowedImageFile(filename string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips any path components and replaces characters
// outside [a-zA-Z0-9._-].
func SanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// UniqueFilename prefixes a sanitized filename with random hex so that
// identical client filenames never collide in the upload directory.
func UniqueFilename(filename string) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return fmt.Sprintf("%s_%s", hex.EncodeToString(buf), SanitizeFilename(filename))
}
