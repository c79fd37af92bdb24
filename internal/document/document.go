package document

import (
	"path/filepath"
	"regexp"
)

const (
	// DefaultTitle is spoken in the intro and outro when a document has no H1 heading.
	DefaultTitle = "this topic"
	// DefaultFolderName is used for the output directory when no usable title exists.
	DefaultFolderName = "untitled"
)

// titlePattern matches a level-1 ATX heading on its own line.
var titlePattern = regexp.MustCompile(`(?m)^# (.+)$`)

// Document is a markdown source file loaded for narration.
type Document struct {
	Raw      string // Raw markdown text
	Filename string // Base name of the source file
	Title    string // First "# Heading" text, empty if none
	HasTitle bool   // Whether an H1 heading was found
}

// Parse wraps raw markdown into a Document and detects its title.
func Parse(raw, filename string) *Document {
	title, ok := FindTitle(raw)
	return &Document{
		Raw:      raw,
		Filename: filepath.Base(filename),
		Title:    title,
		HasTitle: ok,
	}
}

// FindTitle returns the text of the first "# Heading" line.
func FindTitle(raw string) (string, bool) {
	m := titlePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SpokenTitle returns the title as read aloud in the intro and outro.
func (d *Document) SpokenTitle() string {
	if !d.HasTitle {
		return DefaultTitle
	}
	return d.Title
}

// FolderName returns the sanitized output directory name for the document.
func (d *Document) FolderName() string {
	if !d.HasTitle {
		return DefaultFolderName
	}
	if name := SanitizeFolderName(d.Title); name != "" {
		return name
	}
	return DefaultFolderName
}
