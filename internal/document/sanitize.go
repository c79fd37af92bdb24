package document

import (
	"regexp"
	"strings"
)

var (
	unsafeFolderChars = regexp.MustCompile(`[^\w\s-]`)
	folderSeparators  = regexp.MustCompile(`[-\s]+`)
)

// SanitizeFolderName converts a title into a single filesystem-safe path segment.
// The result contains only word characters and single hyphens, never starting
// or ending with a hyphen. It may be empty; callers fall back to DefaultFolderName.
func SanitizeFolderName(title string) string {
	name := unsafeFolderChars.ReplaceAllString(title, "")
	name = folderSeparators.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
