package components

import (
	"fmt"

	"github.com/a-h/templ"
)

// SkillFill is the CSS width of a skill bar's filled part, clamped to the track.
func SkillFill(level int) string {
	return fmt.Sprintf("%d%%", clamp(level, 0, 100))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func skillFillAttrs(level int) templ.Attributes {
	return templ.Attributes{"style": "width: " + SkillFill(level)}
}

func menuLabel(open bool) string {
	if open {
		return "✕"
	}

	return "☰"
}
