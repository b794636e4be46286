package model

import (
	"time"
)

// Project is one entry of the project showcase.
type Project struct {
	ID          string   `json:"id"          yaml:"id"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	TechStack   []string `json:"tech_stack"  yaml:"tech_stack"`
	LiveURL     string   `json:"live_url,omitempty"   yaml:"live_url,omitempty"`
	SourceURL   string   `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	ImageURL    string   `json:"image_url"   yaml:"image_url"`
}

// HasLive reports whether the project has a live deployment link.
func (p Project) HasLive() bool {
	return p.LiveURL != ""
}

// HasSource reports whether the project has a source repository link.
func (p Project) HasSource() bool {
	return p.SourceURL != ""
}

type Skill struct {
	Name  string `json:"name"  yaml:"name"`
	Level int    `json:"level" yaml:"level"`
	Icon  string `json:"icon"  yaml:"icon"`
}

type LinkKind string

const (
	LinkEmail    LinkKind = "email"
	LinkGitHub   LinkKind = "github"
	LinkLinkedIn LinkKind = "linkedin"
)

// ContactLink is an outbound link of the contact section. Href is passed
// through to the browser untouched.
type ContactLink struct {
	Kind   LinkKind `json:"kind"   yaml:"kind"`
	Label  string   `json:"label"  yaml:"label"`
	Href   string   `json:"href"   yaml:"href"`
	NewTab bool     `json:"new_tab" yaml:"new_tab"`
}

type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Profile is everything the page shows.
type Profile struct {
	Brand       string        `json:"brand"        yaml:"brand"`
	Name        string        `json:"name"         yaml:"name"`
	Role        string        `json:"role"         yaml:"role"`
	Headline    string        `json:"headline"     yaml:"headline"`
	Status      string        `json:"status"       yaml:"status"`
	About       string        `json:"about"        yaml:"about"`
	TypingText  string        `json:"typing_text"  yaml:"typing_text"`
	TypingDelay time.Duration `json:"typing_delay" yaml:"typing_delay"`
	Stats       []Stat        `json:"stats"        yaml:"stats"`
	Projects    []Project     `json:"projects"     yaml:"projects"`
	Skills      []Skill       `json:"skills"       yaml:"skills"`
	Contacts    []ContactLink `json:"contacts"     yaml:"contacts"`
	Tagline     string        `json:"tagline"      yaml:"tagline"`
	Footer      string        `json:"footer"       yaml:"footer"`
	Copyright   string        `json:"copyright"    yaml:"copyright"`
}

// ProjectByID returns the project with the given id.
func (p *Profile) ProjectByID(id string) (*Project, bool) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], true
		}
	}

	return nil, false
}

// Visit is one tracked page view.
type Visit struct {
	HashedIP  string
	UserAgent string
	Path      string
	Timestamp time.Time
}

type PathCount struct {
	Path  string
	Count int
}

type VisitSummary struct {
	Total  int
	Unique int
	Paths  []PathCount
}
