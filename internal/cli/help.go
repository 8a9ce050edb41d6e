package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/keymap"
	"github.com/dshills/recoilless/internal/input/mode"
)

const rule = "------------------------------------------------------------------------"

// Styles for the help and key reference output.
type Styles struct {
	Rule        lipgloss.Style
	Header      lipgloss.Style
	Category    lipgloss.Style
	Key         lipgloss.Style
	Description lipgloss.Style
}

// NewStyles returns the styles for output written to w. Writers that are
// not terminals get plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Rule:        r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Header:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#4F4FB7")).Padding(0, 1),
		Category:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#81A1C1")),
		Key:         r.NewStyle().Foreground(lipgloss.Color("#D08770")).Width(28).PaddingLeft(2),
		Description: r.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
	}
}

// Help writes the usage text. Key names are read from reg so the text
// follows any overrides.
func Help(w io.Writer, reg *keymap.Registry) error {
	s := NewStyles(w)
	bindings := reg.Bindings(mode.Command)

	quit := keysFor(bindings, func(a input.Action) bool {
		return a.Kind == input.KindTerminate
	})
	saveQuit := keysFor(bindings, func(a input.Action) bool {
		return a.Kind == input.KindPersist && a.Persist == input.SaveAndExit
	})

	lines := []string{
		s.Rule.Render(rule),
		"To open a file in Recoilless, add the name or path of the file as the first argument.",
		"This works from the current working directory or with an absolute path.",
		"",
		"  recoilless FILE",
		"  recoilless -p PATH",
		"  recoilless -n NAME",
		"",
		fmt.Sprintf("To exit the program without saving, press %s.", strings.Join(quit, " or ")),
		fmt.Sprintf("To exit the program with saving, press %s.", strings.Join(saveQuit, " or ")),
		"For more keybinds, run the program with -k or --keys.",
		s.Rule.Render(rule),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// KeyReference writes the bindings of every mode, grouped by category.
// Keys sharing a description within a category are listed together.
func KeyReference(w io.Writer, reg *keymap.Registry) error {
	s := NewStyles(w)

	var sb strings.Builder
	sb.WriteString(s.Rule.Render(rule) + "\n")
	for _, m := range mode.All() {
		sb.WriteString("\n" + s.Header.Render(modeTitle(m)) + "\n")
		for _, cat := range keymap.GroupByCategory(reg.Bindings(m)) {
			sb.WriteString(s.Category.Render(cat.Name) + "\n")
			for _, e := range mergeByDescription(cat.Bindings) {
				sb.WriteString(s.Key.Render(strings.Join(e.keys, ", ")))
				sb.WriteString(s.Description.Render(e.description) + "\n")
			}
		}
		if m == mode.Insert {
			sb.WriteString(s.Description.Render("  Every other key is typed into the file.") + "\n")
		}
	}
	sb.WriteString("\n" + s.Rule.Render(rule) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

type entry struct {
	keys        []string
	description string
}

func mergeByDescription(bindings []keymap.Binding) []entry {
	var out []entry
	index := make(map[string]int)
	for _, b := range bindings {
		desc := b.Description
		if desc == "" {
			desc = b.Action.Name
		}
		if i, ok := index[desc]; ok {
			out[i].keys = append(out[i].keys, b.Keys)
			continue
		}
		index[desc] = len(out)
		out = append(out, entry{keys: []string{b.Keys}, description: desc})
	}
	return out
}

func keysFor(bindings []keymap.Binding, match func(input.Action) bool) []string {
	var keys []string
	for _, b := range bindings {
		if match(b.Action) {
			keys = append(keys, b.Keys)
		}
	}
	return keys
}

func modeTitle(m mode.Mode) string {
	name := m.Name()
	if name == "" {
		return "Mode"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " mode"
}
