package speech

import (
	"fmt"

	"talkdoc/internal/document"
)

// Script is the speakable rendition of a markdown document, intro and outro included.
type Script struct {
	Title string // Title spoken in the intro and outro
	Text  string // Full speech text
}

// Transcoder rewrites markdown into speakable prose using an ordered rule table.
type Transcoder struct {
	rules []Rule
}

// NewTranscoder creates a transcoder with the default rule table.
func NewTranscoder() *Transcoder {
	return &Transcoder{rules: Rules()}
}

// Intro returns the opening sentence spoken before the document body.
func Intro(title string) string {
	return fmt.Sprintf("Hello! Let me walk you through %s. I'll explain everything step by step. Let's begin.\n\n", title)
}

// Outro returns the closing sentence spoken after the document body.
func Outro(title string) string {
	return fmt.Sprintf("\n\nAnd that's the complete overview of %s. I hope this explanation was clear and helpful. "+
		"Thank you for using TalkDoc, created by Manish. "+
		"If you found this useful, feel free to share it with your team. Have a great day!", title)
}

// Transcode converts raw markdown into a Script.
// The title is taken from the first "# Heading" line before any rule runs.
func (t *Transcoder) Transcode(raw string) Script {
	title, ok := document.FindTitle(raw)
	if !ok {
		title = document.DefaultTitle
	}

	body := raw
	for _, rule := range t.rules {
		body = rule.Apply(body)
	}

	return Script{
		Title: title,
		Text:  Intro(title) + body + Outro(title),
	}
}
