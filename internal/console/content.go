package console

import (
	"context"
	"strings"

	"github.com/dgallion1/docnav/internal/pager"
	"github.com/dgallion1/docnav/internal/textwidth"
)

// ShowContent prints a section page by page. End of input while paused
// stops the display early.
func (r *Renderer) ShowContent(ctx context.Context, title, content string, crumbs []string) {
	r.clear()
	r.header()
	r.breadcrumbs(crumbs)

	b := r.double()
	r.println("")
	r.top(b)
	r.line(b, " "+title+" ", textwidth.Center)
	r.bottom(b)
	r.println("")

	for _, seg := range pager.Paginate(content, r.opt.Pager) {
		switch seg.Kind {
		case pager.Prose:
			for _, l := range seg.Lines {
				r.println(l)
			}
		case pager.Result:
			r.result(seg)
		case pager.Break:
			if r.opt.Demo {
				continue
			}
			if err := r.p.Pause(ctx, "\n--- Continue (ENTER) ---"); err != nil {
				return
			}
		}
	}

	r.println("\n" + strings.Repeat(b.horizontal, r.opt.Width))
	_ = r.pause(ctx)
}

func (r *Renderer) result(seg pager.Segment) {
	b := r.double()
	r.println("")
	r.top(b)
	r.line(b, " "+seg.Title+" ", textwidth.Center)
	r.rule(b)
	for _, l := range seg.Lines {
		for _, piece := range textwidth.Split(l, r.opt.Width) {
			r.println(piece)
		}
	}
	r.bottom(b)
}

// ShowDiagram prints the static navigation flow diagram.
func (r *Renderer) ShowDiagram(ctx context.Context, crumbs []string) {
	r.clear()
	r.header()
	r.breadcrumbs(crumbs)

	b := r.double()
	r.println("")
	r.top(b)
	r.line(b, " MENU FLOW DIAGRAM ", textwidth.Center)
	r.rule(b)
	for _, l := range flowDiagram {
		if r.opt.ASCII {
			l = asciiDiagram.Replace(l)
		}
		r.line(b, l, textwidth.Left)
	}
	r.bottom(b)
	_ = r.pause(ctx)
}
