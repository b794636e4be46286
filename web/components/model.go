package components

import (
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/nav"
)

// TerminalContext configures the typing widget in the hero terminal.
type TerminalContext struct {
	// Initial is the prefix already revealed when the page is rendered.
	Initial string
	// SocketPath streams the reveal. Empty means the page reveals Text itself.
	SocketPath string
	Text       string
	DelayMs    int64
}

// RenderContext is everything the page templates read.
type RenderContext struct {
	Profile      *model.Profile
	NavLinks     []nav.Link
	MenuOpen     bool
	Terminal     TerminalContext
	AboutHTML    string
	AssetsPrefix string
	Static       bool
}

// SectionHref is where a link to the section should point.
func (rc *RenderContext) SectionHref(s nav.Section) string {
	for _, link := range rc.NavLinks {
		if link.Section == s {
			return link.Href
		}
	}

	return "#" + string(s)
}
