package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a parser with the default tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	p.AddStyle("title", TitleStyle)
	p.AddStyle("success", SuccessStyle)
	p.AddStyle("error", ErrorStyle)
	p.AddStyle("warning", WarningStyle)
	p.AddStyle("path", PathStyle)
	p.AddStyle("muted", MutedStyle)
	p.AddStyle("tab", TabStyle)
	p.AddStyle("bold", lipgloss.NewStyle().Bold(true))
	return p
}

// AddStyle registers or replaces the style of tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render replaces every known tag pair with its styled content. Nested tags
// are resolved by repeating until nothing changes.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for tag, re := range p.patterns {
			style := p.styles[tag]
			result = re.ReplaceAllStringFunc(result, func(match string) string {
				sub := re.FindStringSubmatch(match)
				if len(sub) != 2 {
					return match
				}
				return style.Render(sub[1])
			})
		}
		if result == before {
			return result
		}
	}
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}
