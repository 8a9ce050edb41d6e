// Package filetype maps file names to the human-readable labels shown in
// the status line.
package filetype

import (
	"path/filepath"
	"sync"

	"github.com/gobwas/glob"
)

// DefaultLabel is used for files without an extension.
const DefaultLabel = "File"

// Rule maps a glob over the file's base name to a label.
type Rule struct {
	Pattern string
	Label   string
}

// rules is matched in order; the first matching pattern wins.
var rules = []Rule{
	{"*.txt", "Text File"},

	// Configuration
	{"*.cfg", "CFG File"},
	{"*.json", "JSON File"},
	{"*.toml", "TOML File"},
	{"*.{yaml,yml}", "YAML File"},
	{"*.ini", "INI File"},
	{"*.csv", "Comma Separated Values File"},
	{"go.mod", "Go Module File"},
	{"go.sum", "Go Checksum File"},
	{"Makefile", "Makefile"},
	{"{Dockerfile,*.dockerfile}", "Dockerfile"},

	// Git
	{"{.gitignore,*.gitignore}", "Git Ignore File"},
	{"{.gitattributes,*.gitattributes}", "Git Attributes File"},

	// Markup
	{"*.md", "Markdown File"},
	{"*.xml", "XML File"},
	{"*.xaml", "XAML File"},
	{"*.axaml", "AXAML File"},
	{"*.html", "HTML File"},
	{"*.xhtml", "XHTML File"},
	{"*.css", "CSS File"},

	// Scripts
	{"*.sh", "Shell Script"},
	{"*.ps1", "Powershell Script"},
	{"*.bat", "Batch File"},

	// Source
	{"*.c", "C Source File"},
	{"*.h", "C/C++ Source File"},
	{"*.{cpp,C,cc,cxx,c++,H,hh,hpp,hxx,h++,cppm,ixx}", "C++ Source File"},
	{"*.r", "R Source File"},
	{"*.{scala,sc}", "Scala Source File"},
	{"*.ml", "OCaml File"},
	{"*.mll", "OCamllex File"},
	{"*.gd", "GDScript Source File"},
	{"*.rs", "Rust Source File"},
	{"*.zig", "Zig Source File"},
	{"*.cs", "C# Source File"},
	{"*.fs", "F# Source File"},
	{"*.hs", "Haskell"},
	{"*.erl", "Erlang Source File"},
	{"*.py", "Python Source File"},
	{"*.java", "Java Source File"},
	{"*.go", "Go Source File"},
	{"*.lua", "Lua Source File"},
	{"*.cr", "Crystal Source File"},
	{"*.hx", "Haxe Source File"},
	{"*.swift", "Swift Source File"},
	{"*.dart", "Dart Source File"},
	{"*.pl", "Perl Source File"},
	{"*.rb", "Ruby Source File"},
	{"*.php", "PHP Source File"},
	{"*.js", "JavaScript Source File"},
	{"*.ts", "TypeScript Source File"},
}

type compiled struct {
	g     glob.Glob
	label string
}

var (
	once  sync.Once
	table []compiled
)

func compile() {
	table = make([]compiled, 0, len(rules))
	for _, r := range rules {
		table = append(table, compiled{g: glob.MustCompile(r.Pattern), label: r.Label})
	}
}

// Rules returns a copy of the label table in match order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Label returns the label for path. Unknown file types are labelled with
// their bare extension, and files without one with DefaultLabel.
func Label(path string) string {
	once.Do(compile)

	base := filepath.Base(path)
	for _, c := range table {
		if c.g.Match(base) {
			return c.label
		}
	}

	// A dotfile such as .bashrc has no extension.
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return DefaultLabel
	}
	return ext[1:]
}
