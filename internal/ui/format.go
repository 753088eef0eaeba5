// Package ui holds the presentation helpers used when rendering CMS content: locale-fixed
// formatters (vi-VN), slug generation, and loading/error/empty/toast rendering over an
// in-memory HTML document.
package ui

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// WordsPerMinute is the reading speed ReadingTime assumes.
const WordsPerMinute = 200

// InvalidDate is what the date formatters return for input they cannot parse.
const InvalidDate = "Invalid Date"

// whitespace is the ECMAScript \s class. Go's \s is ASCII only.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	wsRun     = regexp.MustCompile(`[` + whitespace + `]+`)
	wsEdges   = regexp.MustCompile(`^[` + whitespace + `]+|[` + whitespace + `]+$`)
	slugDrop  = regexp.MustCompile(`[^a-z0-9` + whitespace + `-]`)
	hyphenRun = regexp.MustCompile(`-+`)

	// LocalDateTime layouts as the API serialises them; fractional seconds parse implicitly.
	localLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.DateTime}
)

// Formatter formats timestamps in a fixed location. The zero value uses time.Local and the
// wall clock.
type Formatter struct {
	Loc *time.Location
	Now func() time.Time
}

// FormatterIn returns a Formatter for loc.
func FormatterIn(loc *time.Location) Formatter { return Formatter{Loc: loc} }

var std Formatter

func (f Formatter) loc() *time.Location {
	if f.Loc == nil {
		return time.Local
	}
	return f.Loc
}

func (f Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Parse reads an API timestamp. Zoned values keep their zone, LocalDateTime values are read
// in the formatter's location and bare dates are midnight UTC.
func (f Formatter) Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc()); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders s as "19 tháng 10, 2026".
func (f Formatter) FormatDate(s string) string {
	t, ok := f.Parse(s)
	if !ok {
		return InvalidDate
	}
	t = t.In(f.loc())
	return fmt.Sprintf("%d tháng %d, %d", t.Day(), int(t.Month()), t.Year())
}

// FormatDateTime renders s as "14:05 19 tháng 10, 2026".
func (f Formatter) FormatDateTime(s string) string {
	t, ok := f.Parse(s)
	if !ok {
		return InvalidDate
	}
	t = t.In(f.loc())
	return fmt.Sprintf("%02d:%02d %d tháng %d, %d", t.Hour(), t.Minute(), t.Day(), int(t.Month()), t.Year())
}

// FormatTimeAgo renders s relative to now. Unparseable input yields "".
func (f Formatter) FormatTimeAgo(s string) string {
	t, ok := f.Parse(s)
	if !ok {
		return ""
	}
	return TimeAgo(t, f.now())
}

// FormatDate formats s in time.Local.
func FormatDate(s string) string { return std.FormatDate(s) }

// FormatDateTime formats s in time.Local.
func FormatDateTime(s string) string { return std.FormatDateTime(s) }

// FormatTimeAgo formats s relative to the wall clock.
func FormatTimeAgo(s string) string { return std.FormatTimeAgo(s) }

// TimeAgo describes how long before now t was. Anything under a minute, including future
// times, is "Vừa xong".
func TimeAgo(t, now time.Time) string {
	sec := int64(math.Floor(now.Sub(t).Seconds()))
	switch {
	case sec < 60:
		return "Vừa xong"
	case sec < 3600:
		return fmt.Sprintf("%d phút trước", sec/60)
	case sec < 86400:
		return fmt.Sprintf("%d giờ trước", sec/3600)
	case sec < 604800:
		return fmt.Sprintf("%d ngày trước", sec/86400)
	case sec < 2592000:
		return fmt.Sprintf("%d tuần trước", sec/604800)
	case sec < 31536000:
		return fmt.Sprintf("%d tháng trước", sec/2592000)
	default:
		return fmt.Sprintf("%d năm trước", sec/31536000)
	}
}

// Truncate cuts s to n runes and appends "..." when it is longer than n.
func Truncate(s string, n int) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n < 0 {
		n = 0
	}
	return string(r[:n]) + "..."
}

// StripHTML returns the text content of s parsed as the body of a div.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, n := range nodes {
		textContent(&b, n)
	}
	return b.String()
}

func textContent(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode, html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			textContent(b, c)
		}
	}
}

// ReadingTime estimates minutes to read an HTML body. Leading and trailing whitespace count
// as empty words, so empty content still reads in one minute.
func ReadingTime(content string) int {
	words := len(wsRun.Split(StripHTML(content), -1))
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// GenerateSlug turns a title into a lowercase, hyphen-delimited ASCII slug.
// GenerateSlug("Đi Học") == "di-hoc".
func GenerateSlug(title string) string {
	s := norm.NFD.String(strings.ToLower(title))
	s = strings.Map(func(r rune) rune {
		if r >= 0x0300 && r <= 0x036f {
			return -1
		}
		if r == 'đ' {
			return 'd'
		}
		return r
	}, s)
	s = slugDrop.ReplaceAllString(s, "")
	s = wsEdges.ReplaceAllString(s, "")
	s = wsRun.ReplaceAllString(s, "-")
	return hyphenRun.ReplaceAllString(s, "-")
}
