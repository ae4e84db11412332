package transcript

import (
	"slices"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/odvcencio/furry-list/backend"
)

// Theme styles rendered entries.
type Theme struct {
	Text      backend.Style
	Heading   backend.Style
	Code      backend.Style
	Link      backend.Style
	Quote     backend.Style
	Rule      backend.Style
	Timestamp backend.Style
	Roles     map[Role]backend.Style
	// CodeStyle names the chroma style used for fenced code blocks.
	CodeStyle string
}

// DefaultTheme works on dark terminals.
func DefaultTheme() Theme {
	base := backend.DefaultStyle()
	return Theme{
		Text:      base,
		Heading:   base.Bold(true).Foreground(backend.ColorCyan),
		Code:      base.Foreground(backend.ColorYellow),
		Link:      base.Underline(true).Foreground(backend.ColorBlue),
		Quote:     base.Italic(true).Foreground(backend.ColorGray),
		Rule:      base.Foreground(backend.ColorGray),
		Timestamp: base.Dim(true),
		Roles: map[Role]backend.Style{
			RoleUser:      base.Bold(true).Foreground(backend.ColorGreen),
			RoleAssistant: base.Bold(true).Foreground(backend.ColorMagenta),
			RoleSystem:    base.Bold(true).Foreground(backend.ColorGray),
		},
		CodeStyle: "monokai",
	}
}

// LightTheme works on light terminals.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Heading = backend.DefaultStyle().Bold(true).Foreground(backend.ColorBlue)
	t.Code = backend.DefaultStyle().Foreground(backend.ColorRed)
	t.CodeStyle = "github"
	return t
}

// CodeStyles lists the chroma style names a theme can use.
func CodeStyles() []string {
	names := styles.Names()
	slices.Sort(names)
	return names
}

func (t Theme) role(r Role) backend.Style {
	if st, ok := t.Roles[r]; ok {
		return st
	}
	return t.Text.Bold(true)
}
