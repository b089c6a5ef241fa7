// Package textwidth measures and fits text to terminal columns, counting
// wide and emoji characters as two cells and combining marks as zero.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Align selects where padding goes in Pad.
type Align int

const (
	Left Align = iota
	Right
	Center
)

const ellipsis = "…"

// cond pins East Asian ambiguous characters to narrow so widths do not
// depend on the user's locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return cond.StringWidth(s)
}

// Truncate cuts s so it occupies at most w cells. No marker is added.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return cond.Truncate(s, w, "")
}

// Pad fits s into exactly w cells. Text that is too wide is cut and ends
// with an ellipsis.
func Pad(s string, w int, align Align) string {
	if w <= 0 {
		return ""
	}
	if Width(s) > w {
		if w > 1 {
			s = Truncate(s, w-1) + ellipsis
		} else {
			s = Truncate(s, w)
		}
	}
	missing := w - Width(s)
	if missing < 0 {
		missing = 0
	}
	switch align {
	case Right:
		return strings.Repeat(" ", missing) + s
	case Center:
		left := missing / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
	default:
		return s + strings.Repeat(" ", missing)
	}
}

// CenterText centers s within w cells.
func CenterText(s string, w int) string {
	return Pad(s, w, Center)
}

// Wrap word-wraps text into lines of at most w cells. Whitespace runs,
// newlines included, collapse to a single space. A word wider than w is
// kept whole on its own line. Always returns at least one line.
func Wrap(text string, w int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || w <= 0 {
		return []string{""}
	}

	ww := wordwrap.NewWriter(w)
	ww.Breakpoints = nil
	_, _ = ww.Write([]byte(strings.Join(words, " ")))
	_ = ww.Close()

	lines := strings.Split(ww.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// Split breaks s into consecutive pieces of at most w cells each, without
// regard for word boundaries. Always returns at least one piece.
func Split(s string, w int) []string {
	if w <= 0 {
		return []string{""}
	}
	var (
		out     []string
		current strings.Builder
		width   int
	)
	for _, r := range s {
		rw := cond.RuneWidth(r)
		if width+rw > w && current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
			width = 0
		}
		current.WriteRune(r)
		width += rw
	}
	if current.Len() > 0 || len(out) == 0 {
		out = append(out, current.String())
	}
	return out
}
