// Package console draws the browser's framed panels on a terminal and
// reads the user's answers.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dgallion1/docnav/internal/navigator"
	"github.com/dgallion1/docnav/internal/pager"
	"github.com/dgallion1/docnav/internal/textwidth"
)

const (
	MinWidth     = 40
	DefaultWidth = 78

	asciiIcon = "*"
)

// Options configures a Renderer.
type Options struct {
	Width    int    // Inner frame width in cells.
	ASCII    bool   // Plain borders and icons.
	Demo     bool   // Never pause.
	Clear    bool   // Clear the screen before each panel.
	Title    string // Header title.
	Subtitle string // Header second line, usually the document path.
	Pager    pager.Config
}

type border struct {
	topLeft, topRight       string
	bottomLeft, bottomRight string
	midLeft, midRight       string
	horizontal, vertical    string
	dotted                  string
}

var (
	doubleBorder = border{"╔", "╗", "╚", "╝", "╠", "╣", "═", "║", "═"}
	singleBorder = border{"┌", "┐", "└", "┘", "├", "┤", "─", "│", "┄"}
	asciiDouble  = border{"+", "+", "+", "+", "+", "+", "=", "|", "="}
	asciiSingle  = border{"+", "+", "+", "+", "+", "+", "-", "|", "-"}
)

// Renderer writes panels to a terminal. It implements the navigator's
// view and input.
type Renderer struct {
	w      io.Writer
	p      *Prompter
	opt    Options
	styles noticeStyles
}

// NewRenderer returns a renderer writing to w and reading through p.
func NewRenderer(w io.Writer, p *Prompter, opt Options) *Renderer {
	if opt.Width < MinWidth {
		opt.Width = DefaultWidth
	}
	if opt.Title == "" {
		opt.Title = "TECHNICAL DOCUMENTATION VIEWER"
	}
	if opt.Pager.PageSize <= 0 {
		opt.Pager = pager.DefaultConfig()
	}
	return &Renderer{
		w:      w,
		p:      p,
		opt:    opt,
		styles: newNoticeStyles(lipgloss.NewRenderer(w)),
	}
}

func (r *Renderer) double() border {
	if r.opt.ASCII {
		return asciiDouble
	}
	return doubleBorder
}

func (r *Renderer) single() border {
	if r.opt.ASCII {
		return asciiSingle
	}
	return singleBorder
}

// icon returns glyph, or the plain marker in ASCII mode.
func (r *Renderer) icon(glyph string) string {
	if r.opt.ASCII {
		return asciiIcon
	}
	return glyph
}

func (r *Renderer) pick(unicode, plain string) string {
	if r.opt.ASCII {
		return plain
	}
	return unicode
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.w, s)
}

func (r *Renderer) top(b border) {
	r.println(b.topLeft + strings.Repeat(b.horizontal, r.opt.Width) + b.topRight)
}

func (r *Renderer) rule(b border) {
	r.println(b.midLeft + strings.Repeat(b.horizontal, r.opt.Width) + b.midRight)
}

func (r *Renderer) dotted(b border) {
	r.println(b.midLeft + strings.Repeat(b.dotted, r.opt.Width) + b.midRight)
}

func (r *Renderer) bottom(b border) {
	r.println(b.bottomLeft + strings.Repeat(b.horizontal, r.opt.Width) + b.bottomRight)
}

func (r *Renderer) line(b border, text string, align textwidth.Align) {
	r.println(b.vertical + textwidth.Pad(text, r.opt.Width, align) + b.vertical)
}

func (r *Renderer) clear() {
	if r.opt.Clear {
		fmt.Fprint(r.w, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	}
}

// ReadLine prompts for a line of input.
func (r *Renderer) ReadLine(ctx context.Context, prompt string) (string, error) {
	return r.p.ReadLine(ctx, "\n"+r.pick("👉", ">")+" "+prompt)
}

// pause waits for Enter unless running in demo mode.
func (r *Renderer) pause(ctx context.Context) error {
	if r.opt.Demo {
		return nil
	}
	return r.p.Pause(ctx, "\n"+r.pick("💡 ", "")+"Press [ENTER] to continue...")
}

var (
	_ navigator.View  = (*Renderer)(nil)
	_ navigator.Input = (*Renderer)(nil)
	_ navigator.Input = (*Prompter)(nil)
)
