package emit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const boolDocPrefix = "a value indicating whether "

// Capitalize upper-cases the first character and leaves the rest untouched
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// EscapeDoc replaces &, < and > with entity references. The ampersand goes
// first so the entities introduced for the angle brackets stay intact.
func EscapeDoc(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// DocText is the escaped accessor documentation text. Members without help
// text fall back to their rendered name.
func DocText(m Member) string {
	help := m.Help
	if help == "" {
		help = m.Name
	}

	help = EscapeDoc(help)
	if m.IsBool {
		return boolDocPrefix + help
	}
	return help
}

// ArgsVar is the variable holding the arguments object for a suffix
func ArgsVar(suffix string) string {
	return "args" + suffix
}
