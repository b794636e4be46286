package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// Markdown renders the about blurb to HTML. Raw HTML in the input is dropped
// by goldmark's default renderer and replaced with an omission comment.
func Markdown(text string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("could not render markdown: %w", err)
	}

	return buf.String(), nil
}
