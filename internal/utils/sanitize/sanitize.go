// Package sanitize neutralises markup in visitor-supplied review fields.
package sanitize

import (
	"html"
	"strings"
	"time"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// DateLayout is the accepted calendar date format.
const DateLayout = "2006-01-02"

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()

	angleStripper = strings.NewReplacer("<", "", ">", "")
)

// PlainText reduces s to a single line of text: tags (and script/style bodies) are removed,
// control characters dropped, runs of whitespace collapsed.
func PlainText(s string) string {
	s = stripControl(norm.NFC.String(s), false)
	s = html.UnescapeString(strictPolicy.Sanitize(s))
	s = angleStripper.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// RichText keeps user-generated-content safe HTML (paragraphs, emphasis, links with
// rel=nofollow) and line breaks, and removes scripts, event handlers and control characters.
func RichText(s string) string {
	s = strings.ReplaceAll(norm.NFC.String(s), "\r\n", "\n")
	s = stripControl(s, true)
	s = ugcPolicy.Sanitize(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Date sanitizes s and parses it as a YYYY-MM-DD calendar date in UTC.
func Date(s string) (time.Time, error) {
	return time.Parse(DateLayout, PlainText(s))
}

func stripControl(s string, keepLineBreaks bool) string {
	return strings.Map(func(r rune) rune {
		if keepLineBreaks && (r == '\n' || r == '\t') {
			return r
		}
		if unicode.IsControl(r) {
			if r == '\n' || r == '\t' || r == '\r' {
				return ' '
			}
			return -1
		}
		return r
	}, s)
}
