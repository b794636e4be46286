// Package nav implements section navigation and the mobile menu toggle.
package nav

import "sync"

// Section is an anchor-addressable region of the page.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Projects Section = "projects"
	Contact  Section = "contact"
)

// Sections lists every section in page order.
var Sections = []Section{Home, About, Projects, Contact}

// ParseSection returns the section with the given id.
func ParseSection(id string) (Section, bool) {
	for _, s := range Sections {
		if string(s) == id {
			return s, true
		}
	}

	return "", false
}

// Scroller brings an element into view. It reports false when no element
// carries the id.
type Scroller interface {
	ScrollIntoView(id string) bool
}

// Controller owns the menu-open flag of one page instance.
type Controller struct {
	mu       sync.Mutex
	menuOpen bool
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) MenuOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.menuOpen
}

// Toggle flips the menu and returns the new state.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.menuOpen = !c.menuOpen

	return c.menuOpen
}

func (c *Controller) Close() {
	c.mu.Lock()
	c.menuOpen = false
	c.mu.Unlock()
}

// Navigate scrolls to id and closes the menu. A missing target is not an
// error: nothing scrolls, the menu still closes.
func (c *Controller) Navigate(s Scroller, id string) bool {
	scrolled := s.ScrollIntoView(id)
	c.Close()

	return scrolled
}

// Link is one entry of the navigation bar.
type Link struct {
	Section Section
	Text    string
	Href    string
}

// Links builds the navigation entries, each pointing at base + "/nav/<section>".
func Links(base string) []Link {
	links := make([]Link, 0, len(Sections))

	for _, s := range Sections {
		links = append(links, Link{
			Section: s,
			Text:    string(s),
			Href:    base + "/nav/" + string(s),
		})
	}

	return links
}

// Anchors is a Scroller over a fixed set of element ids. Target records the
// last id scrolled to.
type Anchors struct {
	ids    map[string]struct{}
	Target string
}

func NewAnchors(ids ...string) *Anchors {
	a := &Anchors{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		a.ids[id] = struct{}{}
	}

	return a
}

// PageAnchors covers the sections rendered on the portfolio page.
func PageAnchors() *Anchors {
	ids := make([]string, 0, len(Sections))
	for _, s := range Sections {
		ids = append(ids, string(s))
	}

	return NewAnchors(ids...)
}

func (a *Anchors) ScrollIntoView(id string) bool {
	if _, ok := a.ids[id]; !ok {
		return false
	}

	a.Target = id

	return true
}

// AnchorLinks builds navigation entries that jump straight to the in-page
// anchor, for pages served without the navigation endpoints.
func AnchorLinks() []Link {
	links := make([]Link, 0, len(Sections))

	for _, s := range Sections {
		links = append(links, Link{Section: s, Text: string(s), Href: "#" + string(s)})
	}

	return links
}
