package components_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/nav"
	"github.com/okbaghel/devfolio/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")

	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}

	return false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return out
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func textOf(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}

func TestProjectsRendersOneCardPerEntry(t *testing.T) {
	projects := []model.Project{
		{ID: "a", Title: "Alpha", Description: "first one", TechStack: []string{"Go", "templ", "SQLite"}},
		{ID: "b", Title: "Beta", Description: "second <one>", TechStack: []string{"Zig"}, LiveURL: "https://beta.example"},
		{ID: "c", Title: "Gamma", Description: "third", TechStack: []string{"C", "B", "A"}, SourceURL: "https://src.example/c"},
	}

	doc := parse(t, render(t, components.Projects(projects)))
	cards := findAll(doc, byClass("project-card"))

	require.Len(t, cards, 3)

	for i, card := range cards {
		want := projects[i]

		id, _ := attr(card, "data-project")
		assert.Equal(t, want.ID, id)

		titles := findAll(card, byClass("project-title"))
		require.Len(t, titles, 1)
		assert.Equal(t, want.Title, textOf(titles[0]))

		descriptions := findAll(card, byClass("project-description"))
		require.Len(t, descriptions, 1)
		assert.Equal(t, want.Description, textOf(descriptions[0]))

		var tech []string
		for _, item := range findAll(card, byClass("tech-item")) {
			tech = append(tech, textOf(item))
		}

		assert.Equal(t, want.TechStack, tech, "tech list keeps its order")
	}
}

func TestProjectCardLinks(t *testing.T) {
	tests := []struct {
		name       string
		project    model.Project
		wantLive   bool
		wantSource bool
	}{
		{name: "both", project: model.Project{Title: "x", LiveURL: "https://l", SourceURL: "https://s"}, wantLive: true, wantSource: true},
		{name: "live only", project: model.Project{Title: "x", LiveURL: "https://l"}, wantLive: true},
		{name: "source only", project: model.Project{Title: "x", SourceURL: "https://s"}, wantSource: true},
		{name: "none", project: model.Project{Title: "x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := parse(t, render(t, components.ProjectCard(tc.project)))

			links := findAll(doc, func(n *html.Node) bool {
				_, ok := attr(n, "data-link")

				return ok
			})

			kinds := map[string]*html.Node{}
			for _, l := range links {
				kind, _ := attr(l, "data-link")
				kinds[kind] = l
			}

			_, live := kinds["live"]
			_, source := kinds["source"]
			assert.Equal(t, tc.wantLive, live)
			assert.Equal(t, tc.wantSource, source)

			for _, l := range links {
				target, _ := attr(l, "target")
				rel, _ := attr(l, "rel")
				assert.Equal(t, "_blank", target)
				assert.Equal(t, "noopener noreferrer", rel)
			}
		})
	}
}

func TestSkillBarWidth(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 80, want: "width: 80%"},
		{level: 0, want: "width: 0%"},
		{level: 100, want: "width: 100%"},
		{level: 140, want: "width: 100%"},
		{level: -5, want: "width: 0%"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			doc := parse(t, render(t, components.SkillBar(model.Skill{Name: "Go", Level: tc.level, Icon: "G"})))

			fills := findAll(doc, byClass("skill-fill"))
			require.Len(t, fills, 1)

			style, _ := attr(fills[0], "style")
			assert.Equal(t, tc.want, style)
		})
	}
}

func TestSkillFill(t *testing.T) {
	assert.Equal(t, "80%", components.SkillFill(80))
	assert.Equal(t, "0%", components.SkillFill(0))
	assert.Equal(t, "100%", components.SkillFill(100))
}

func TestMobileNav(t *testing.T) {
	links := nav.Links("")

	closed := parse(t, render(t, components.MobileNav(links, false)))
	assert.Empty(t, findAll(closed, byClass("nav-mobile-link")))
	require.Len(t, findAll(closed, byClass("nav-mobile")), 1)

	open := parse(t, render(t, components.MobileNav(links, true)))
	items := findAll(open, byClass("nav-mobile-link"))
	require.Len(t, items, 4)

	href, _ := attr(items[1], "href")
	assert.Equal(t, "/nav/about", href)
}

func TestTerminal(t *testing.T) {
	t.Run("streamed", func(t *testing.T) {
		doc := parse(t, render(t, components.Terminal(components.TerminalContext{Initial: "Bui", SocketPath: "/ws/terminal"})))

		spans := findAll(doc, byClass("typing"))
		require.Len(t, spans, 1)

		socket, _ := attr(spans[0], "data-socket")
		assert.Equal(t, "/ws/terminal", socket)
		assert.Equal(t, "Bui", textOf(findAll(doc, byClass("typing-text"))[0]))
	})

	t.Run("self revealing", func(t *testing.T) {
		doc := parse(t, render(t, components.Terminal(components.TerminalContext{Text: "ready", DelayMs: 50})))

		span := findAll(doc, byClass("typing"))[0]

		text, _ := attr(span, "data-text")
		delay, _ := attr(span, "data-delay")
		assert.Equal(t, "ready", text)
		assert.Equal(t, "50", delay)
		assert.Empty(t, textOf(findAll(doc, byClass("typing-text"))[0]))
	})
}

func TestPageHasEverySectionAnchor(t *testing.T) {
	profile := content.Default()
	rc := &components.RenderContext{
		Profile:      profile,
		NavLinks:     nav.Links(""),
		AssetsPrefix: "/assets",
		Terminal:     components.TerminalContext{SocketPath: "/ws/terminal"},
	}

	doc := parse(t, render(t, components.Page(rc)))

	for _, s := range nav.Sections {
		found := findAll(doc, func(n *html.Node) bool {
			id, _ := attr(n, "id")

			return n.Data == "section" && id == string(s)
		})
		assert.Len(t, found, 1, "section %s", s)
	}

	assert.Len(t, findAll(doc, byClass("project-card")), len(profile.Projects))
	assert.Len(t, findAll(doc, byClass("skill")), len(profile.Skills))

	contacts := findAll(doc, func(n *html.Node) bool {
		_, ok := attr(n, "data-contact")

		return ok
	})
	require.Len(t, contacts, 3)

	mail, _ := attr(contacts[0], "href")
	assert.Equal(t, "mailto:yogeshbaghel09.in@gmail.com", mail)

	_, newTab := attr(contacts[0], "target")
	assert.False(t, newTab, "mail link opens in place")
}

func TestSectionHrefFallsBackToAnchor(t *testing.T) {
	rc := &components.RenderContext{}
	assert.Equal(t, "#projects", rc.SectionHref(nav.Projects))

	rc.NavLinks = nav.Links("")
	assert.Equal(t, "/nav/projects", rc.SectionHref(nav.Projects))
}

func TestMenuButtonReflectsState(t *testing.T) {
	for _, open := range []bool{false, true} {
		doc := parse(t, render(t, components.Nav("yogesh.dev", nav.Links(""), open)))

		buttons := findAll(doc, byClass("menu-button"))
		require.Len(t, buttons, 1)

		expanded, _ := attr(buttons[0], "aria-expanded")
		assert.Equal(t, strconv.FormatBool(open), expanded)

		panels := findAll(doc, byClass("nav-mobile"))
		require.Len(t, panels, 1)

		state, _ := attr(panels[0], "data-open")
		assert.Equal(t, strconv.FormatBool(open), state)
		assert.Len(t, findAll(doc, byClass("nav-link")), 4)
	}
}
