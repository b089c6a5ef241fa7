package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/docnav/internal/menu"
	"github.com/dgallion1/docnav/internal/navigator"
	"github.com/dgallion1/docnav/internal/textwidth"
)

type noticeStyle struct {
	icon, plain string
	rule, ascii string
	style       lipgloss.Style
	pause       bool
}

type noticeStyles map[navigator.Notice]noticeStyle

func newNoticeStyles(lr *lipgloss.Renderer) noticeStyles {
	base := lr.NewStyle().Bold(true)
	return noticeStyles{
		navigator.NoticeInfo:    {"ℹ️", "[i]", "─", "-", base.Foreground(lipgloss.Color("12")), false},
		navigator.NoticeSuccess: {"✅", "[ok]", "═", "=", base.Foreground(lipgloss.Color("10")), true},
		navigator.NoticeWarning: {"⚠️", "[!]", "━", "-", base.Foreground(lipgloss.Color("11")), true},
		navigator.NoticeError:   {"❌", "[x]", "═", "=", base.Foreground(lipgloss.Color("9")), true},
	}
}

func (r *Renderer) header() {
	b := r.double()
	r.println("")
	r.top(b)
	r.line(b, " "+r.pick("📚  ", "")+r.opt.Title+r.pick("  📚", "")+" ", textwidth.Center)
	if r.opt.Subtitle != "" {
		r.rule(b)
		r.line(b, " "+r.opt.Subtitle+" ", textwidth.Center)
	}
	r.bottom(b)
}

func (r *Renderer) breadcrumbs(crumbs []string) {
	if len(crumbs) <= 1 {
		return
	}
	b := r.single()
	r.println("")
	r.top(b)
	r.line(b, r.pick("📍 ", "")+"Location: "+strings.Join(crumbs, r.pick(" → ", " > ")), textwidth.Left)
	r.bottom(b)
}

// ShowMenu draws the options of m followed by the navigation panel.
func (r *Renderer) ShowMenu(m *menu.Submenu, crumbs []string, atRoot bool) {
	r.clear()
	r.header()
	r.breadcrumbs(crumbs)

	b := r.single()
	r.println("")
	r.top(b)
	r.line(b, " MENU OPTIONS ", textwidth.Center)
	r.rule(b)
	if len(m.Children) == 0 {
		r.line(b, " (no options)", textwidth.Left)
	}
	for i, c := range m.Children {
		r.option(b, i+1, c)
		if i < len(m.Children)-1 {
			r.dotted(b)
		}
	}
	r.bottom(b)

	d := r.double()
	r.println("")
	r.top(d)
	r.line(d, " NAVIGATION ", textwidth.Left)
	r.rule(d)
	if atRoot {
		r.line(d, " [Q] "+r.icon("🚪")+"  Quit", textwidth.Left)
	} else {
		r.line(d, " [0] "+r.icon("⬅️")+"   Back to the previous menu", textwidth.Left)
	}
	r.line(d, " [R] "+r.icon("🔄")+"  Reload documentation", textwidth.Left)
	r.bottom(d)
}

func (r *Renderer) option(b border, n int, node menu.Node) {
	e := node.Info()
	kind := r.pick("📄", "")
	if node.Kind() == menu.KindSubmenu {
		kind = r.pick("📂", ">")
	}
	icon := e.Icon
	if icon == "" || r.opt.ASCII {
		icon = asciiIcon
	}
	text := strings.TrimRight(fmt.Sprintf("[%2d] %s  %s %s", n, icon, e.Label, kind), " ")
	r.line(b, text, textwidth.Left)

	if e.Description == "" {
		return
	}
	for _, l := range textwidth.Wrap(e.Description, r.opt.Width-6) {
		r.line(b, "     "+r.pick("💬 ", "- ")+l, textwidth.Left)
	}
}

// Notify prints a message between rules. Everything but info messages
// waits for acknowledgement.
func (r *Renderer) Notify(ctx context.Context, kind navigator.Notice, text string) {
	st, ok := r.styles[kind]
	if !ok {
		st = r.styles[navigator.NoticeInfo]
	}
	rule := strings.Repeat(r.pick(st.rule, st.ascii), r.opt.Width)
	r.println("\n" + rule)
	r.println(st.style.Render(r.pick(st.icon, st.plain) + "  " + text))
	r.println(rule)
	if st.pause {
		_ = r.pause(ctx)
	}
}

// Farewell draws the closing panel.
func (r *Renderer) Farewell() {
	r.clear()
	b := r.double()
	r.println("")
	r.top(b)
	for _, l := range []string{
		"",
		r.pick("📚  ", "") + "DOCNAV" + r.pick("  📚", ""),
		"",
		"Thanks for using the documentation viewer",
		"See you soon!" + r.pick(" 👋", ""),
		"",
	} {
		r.line(b, l, textwidth.Center)
	}
	r.bottom(b)
	r.println("")
}
