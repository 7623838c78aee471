package formatter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// titlePattern matches "<prefix containing Risk> - <subject>:<rest>" at the
// start of the first line.
var titlePattern = regexp.MustCompile(`(?i)^(.*?Risk.*?)(\s*-\s*)(.*?)(:.*)`)

const titleReplacement = `<strong>${1}</strong>${2}<strong>${3}</strong>${4}`

// HighlightTitle bolds the prefix and subject of a "X Risk - Subject: ..."
// title. Text that does not match is returned unchanged.
func HighlightTitle(text string) string {
	return titlePattern.ReplaceAllString(text, titleReplacement)
}

// ColorCode wraps high/medium/low (any case) with the default palette colors
// and capitalizes the first character of any other word.
func ColorCode(value string) string {
	return defaultFormatter.ColorCode(value)
}

// ColorCode wraps value with the color of its matching severity level,
// keeping the original case. Unknown words get their first character
// upper-cased.
func (f *Formatter) ColorCode(value string) string {
	if level, ok := f.palette.Lookup(value); ok {
		return fmt.Sprintf(`<span style="color: %s; font-weight: bold;">%s</span>`, level.Color, value)
	}
	return capitalizeFirst(value)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
