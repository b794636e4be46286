package nav_test

import (
	"fmt"
	"testing"

	"github.com/okbaghel/devfolio/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScroller struct {
	known map[string]bool
	calls []string
}

func (r *recordingScroller) ScrollIntoView(id string) bool {
	r.calls = append(r.calls, id)

	return r.known[id]
}

func pageScroller() *recordingScroller {
	return &recordingScroller{known: map[string]bool{
		"home": true, "about": true, "projects": true, "contact": true,
	}}
}

func TestNavigateClosesMenu(t *testing.T) {
	for _, section := range nav.Sections {
		for _, startOpen := range []bool{true, false} {
			t.Run(fmt.Sprintf("%s/open=%v", section, startOpen), func(t *testing.T) {
				c := nav.NewController()
				if startOpen {
					c.Toggle()
				}

				scroller := pageScroller()

				ok := c.Navigate(scroller, string(section))

				assert.True(t, ok)
				assert.Equal(t, []string{string(section)}, scroller.calls)
				assert.False(t, c.MenuOpen())
			})
		}
	}
}

func TestNavigateUnknownTarget(t *testing.T) {
	c := nav.NewController()
	c.Toggle()

	scroller := pageScroller()

	assert.NotPanics(t, func() {
		ok := c.Navigate(scroller, "blog")
		assert.False(t, ok)
	})
	assert.Equal(t, []string{"blog"}, scroller.calls, "scroll is attempted exactly once, never retried")
	assert.False(t, c.MenuOpen())
}

func TestToggleTwiceRestores(t *testing.T) {
	tests := []struct {
		name  string
		start bool
	}{
		{name: "from closed", start: false},
		{name: "from open", start: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := nav.NewController()
			if tc.start {
				c.Toggle()
			}

			require.Equal(t, tc.start, c.MenuOpen())

			assert.Equal(t, !tc.start, c.Toggle())
			assert.Equal(t, tc.start, c.Toggle())
			assert.Equal(t, tc.start, c.MenuOpen())
		})
	}
}

func TestParseSection(t *testing.T) {
	s, ok := nav.ParseSection("projects")
	assert.True(t, ok)
	assert.Equal(t, nav.Projects, s)

	_, ok = nav.ParseSection("Projects")
	assert.False(t, ok)

	_, ok = nav.ParseSection("")
	assert.False(t, ok)
}

func TestPageAnchors(t *testing.T) {
	anchors := nav.PageAnchors()

	for _, s := range nav.Sections {
		assert.True(t, anchors.ScrollIntoView(string(s)))
		assert.Equal(t, string(s), anchors.Target)
	}

	assert.False(t, anchors.ScrollIntoView("missing"))
	assert.Equal(t, "contact", anchors.Target, "failed scroll keeps the previous target")
}

func TestLinks(t *testing.T) {
	links := nav.Links("")

	require.Len(t, links, 4)
	assert.Equal(t, "/nav/home", links[0].Href)
	assert.Equal(t, "contact", links[3].Text)
}
