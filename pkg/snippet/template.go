package snippet

import (
	"runtime"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

const (
	// TypeMarker is replaced with the tab type as configured
	TypeMarker = "<<type>>"

	// TypeUpperMarker is replaced with the upper-cased tab type
	TypeUpperMarker = "<<typeUC>>"

	// InsertionMarker is where expansions are spliced into a dist file
	InsertionMarker = "/*SNIPPETS*/"
)

// LineSeparator follows each expansion
var LineSeparator = lineSeparator(runtime.GOOS)

func lineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Template is a parsed snippet template. It holds exactly one TypeMarker and
// exactly one TypeUpperMarker.
type Template struct {
	text string
}

// ParseTemplate validates text against the marker contract.
func ParseTemplate(text string) (*Template, error) {
	lower := strings.Count(text, TypeMarker)
	upper := strings.Count(text, TypeUpperMarker)
	if lower != 1 || upper != 1 {
		return nil, errors.Newf(errors.ErrTemplateInvalid,
			"snippet template must contain %s and %s exactly once", TypeMarker, TypeUpperMarker).
			WithDetail("typeMarkers", lower).
			WithDetail("typeUpperMarkers", upper)
	}
	return &Template{text: text}, nil
}

// Expand substitutes both markers for one tab type.
func (t *Template) Expand(tab types.TabType) string {
	r := strings.NewReplacer(TypeMarker, tab.String(), TypeUpperMarker, tab.Upper())
	return r.Replace(t.text)
}

// ExpandAll concatenates one expansion per tab type, in order, each followed
// by LineSeparator.
func (t *Template) ExpandAll(tabs []types.TabType) string {
	var b strings.Builder
	for _, tab := range tabs {
		b.WriteString(t.Expand(tab))
		b.WriteString(LineSeparator)
	}
	return b.String()
}

// Splice replaces the first InsertionMarker in content with expansion. The
// boolean reports whether a marker was found.
func Splice(content, expansion string) (string, bool) {
	if !strings.Contains(content, InsertionMarker) {
		return content, false
	}
	return strings.Replace(content, InsertionMarker, expansion, 1), true
}
