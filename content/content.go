// Package content holds the data rendered by the portfolio page.
package content

import (
	"time"

	"github.com/okbaghel/devfolio/model"
)

const (
	// DefaultTypingDelay is used when a typewriter is created without a delay.
	DefaultTypingDelay = 100 * time.Millisecond
	heroTypingDelay    = 50 * time.Millisecond
)

// Glyphs below are kept exactly as they appear in the published page, mis-encoding included.
const (
	glyphReact   = "âš›ï¸"
	glyphJS      = "ðŸŸ¨"
	glyphNode    = "ðŸŸ¢"
	glyphMongo   = "ðŸƒ"
	glyphJava    = "ðŸ³"
	glyphAPI     = "ðŸ”—"
	glyphRocket  = "ðŸš€"
	glyphCoffee  = "â˜•"
	glyphInf     = "âˆž"
	glyphCopy    = "Â©"
	GlyphPrompt  = "âžœ"
	sourceGitHub = "https://github.com/okbaghel"
)

// Default returns the built-in profile. Every call returns a fresh copy.
func Default() *model.Profile {
	return &model.Profile{
		Brand:       "Yogesh.portfolio",
		Name:        "Yogeshhh",
		Role:        "Full Stack Developer",
		Headline:    "MERN Stack Developer",
		Status:      "Available for new opportunities",
		About:       "Hi, I am Yogesh Baghel I am a software developer who loves solving problems and building simple, useful solutions. I enjoy learning new technologies and working on projects that make a real impact.",
		TypingText:  "Building scalable web applications with modern technologies...",
		TypingDelay: heroTypingDelay,
		Stats: []model.Stat{
			{Value: "Final Year", Label: "CSE"},
			{Value: "2+", Label: "Projects Built"},
			{Value: glyphInf, Label: "Lines of Code"},
			{Value: "24/7", Label: "Learning Mode"},
		},
		Projects: []model.Project{
			{
				ID:          "1",
				Title:       "DirectNaukri Job Platform",
				Description: "Full-stack job platform with subscription model, real-time notifications, and payment processing. Built with modern serverless architecture.",
				TechStack:   []string{"Next.js 14", "MongoDB", "Stripe API", "Vercel", "Tailwind"},
				LiveURL:     "https://www.directnaukri.in/",
				SourceURL:   sourceGitHub,
				ImageURL:    "https://images.pexels.com/photos/416405/pexels-photo-416405.jpeg",
			},
			{
				ID:          "2",
				Title:       "ScratchClone",
				Description: "Scratch clone website there are some operations performs .",
				TechStack:   []string{"React", "Tailwind CSS", "Lucide Icons"},
				LiveURL:     "https://scratchapp-clone.vercel.app/",
				SourceURL:   sourceGitHub,
				ImageURL:    "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800&h=500&fit=crop",
			},
			{
				ID:          "3",
				Title:       "SmartScrap",
				Description: "SmartScrap is a system by which we can manage the garbage or waste from the society.",
				TechStack:   []string{"next", "mongodb", "cleark"},
				LiveURL:     "https://smartscrap.vercel.app/",
				SourceURL:   sourceGitHub,
				ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=500&fit=crop",
			},
		},
		Skills: []model.Skill{
			{Name: "React/Next.js", Level: 95, Icon: glyphReact},
			{Name: "JavaScript/TypeScript", Level: 90, Icon: glyphJS},
			{Name: "Node.js/Express", Level: 85, Icon: glyphNode},
			{Name: "MongoDB", Level: 80, Icon: glyphMongo},
			{Name: "Java/C++", Level: 90, Icon: glyphJava},
			{Name: "GraphQL/REST APIs", Level: 85, Icon: glyphAPI},
		},
		Contacts: []model.ContactLink{
			{Kind: model.LinkEmail, Label: `email: "contact"`, Href: "mailto:yogeshbaghel09.in@gmail.com"},
			{Kind: model.LinkGitHub, Label: `github: "code"`, Href: sourceGitHub, NewTab: true},
			{Kind: model.LinkLinkedIn, Label: `linkedin: "network"`, Href: "https://www.linkedin.com/in/yogesh-baghel-14a34a239/", NewTab: true},
		},
		Tagline:   "// Let's collaborate and build something amazing together! " + glyphRocket,
		Footer:    "Built with Go, templ, and lots of " + glyphCoffee,
		Copyright: glyphCopy + " 2025 Yogesh Baghel",
	}
}
