package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/companion"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/snippet"
)

// RenderError formats err for the terminal, including its code and details
// when it carries them.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(ErrorIndicator + " " + ErrorStyle.Render("Error:") + " " + err.Error())

	if details := errors.GetErrorDetails(err); len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("\n" + Indent(MutedStyle.Render(fmt.Sprintf("%s: %v", k, details[k])), 1))
		}
	}
	return b.String()
}

// RenderResolved lists the companion files published for each pattern
func RenderResolved(results []*companion.Result) string {
	if len(results) == 0 {
		return Render("[muted]No patterns resolved[/muted]")
	}

	var b strings.Builder
	copied, stubbed := 0, 0
	for _, r := range results {
		b.WriteString(Render("[title]" + r.Pattern + "[/title]\n"))
		for _, f := range r.Files {
			indicator, label := CopiedIndicator, "copied"
			if f.Stubbed {
				indicator, label = StubIndicator, "empty"
				stubbed++
			} else {
				copied++
			}
			line := fmt.Sprintf("%s [tab]%s[/tab] [muted]%s[/muted] [path]%s[/path]", indicator, f.TabType.Lower(), label, f.Destination)
			b.WriteString(Indent(Render(line), 1) + "\n")
		}
	}
	b.WriteString(Render(fmt.Sprintf("[success]%d copied[/success], [muted]%d empty[/muted]", copied, stubbed)))
	return b.String()
}

// RenderAssembled lists the scripts an assembly run published
func RenderAssembled(result *snippet.Result) string {
	if result == nil || len(result.Written) == 0 {
		return Render("[warning]No scripts assembled[/warning] [muted](no tab types configured?)[/muted]")
	}
	var b strings.Builder
	for _, path := range result.Written {
		b.WriteString(Render(CopiedIndicator+" [path]"+path+"[/path]") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
