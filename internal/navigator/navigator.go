// Package navigator drives the menu loop: it owns the loaded sections, the
// menu tree built from them and the path of submenus the user has entered.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/menu"
	"github.com/dgallion1/docnav/internal/parser"
)

// ErrEmptyParse is returned when a document yields no heading sections.
var ErrEmptyParse = errors.New("no sections detected")

const (
	// RootName is the first breadcrumb.
	RootName = "Home"
	// MissingContent replaces a leaf whose section is gone.
	MissingContent = "⚠️ Content not available"

	selectPrompt = "Select an option: "
)

// Source supplies the document text.
type Source interface {
	Load() (string, error)
}

// Input reads one line of user input.
type Input interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Notice is the severity of a user-facing message.
type Notice int

const (
	NoticeInfo Notice = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// View presents navigator state. Implementations that pause for the user
// handle end of input themselves.
type View interface {
	ShowMenu(m *menu.Submenu, crumbs []string, atRoot bool)
	ShowContent(ctx context.Context, title, content string, crumbs []string)
	ShowDiagram(ctx context.Context, crumbs []string)
	Notify(ctx context.Context, kind Notice, text string)
	Farewell()
}

// Crumb is one level of the navigation path.
type Crumb struct {
	Menu *menu.Submenu
	Name string
}

// Navigator is the menu state machine.
type Navigator struct {
	src  Source
	view View
	in   Input
	log  *slog.Logger

	sections *doctree.Sections
	root     *menu.Submenu
	path     []Crumb
	stats    *Stats
}

// New loads and parses the document once and returns a navigator at the
// root menu. It fails when the source is unavailable or has no sections.
func New(src Source, view View, in Input, log *slog.Logger) (*Navigator, error) {
	if log == nil {
		log = slog.Default()
	}
	n := &Navigator{
		src:   src,
		view:  view,
		in:    in,
		log:   log,
		stats: NewStats(0),
	}
	if err := n.Reload(); err != nil {
		return nil, fmt.Errorf("initial load: %w", err)
	}
	return n, nil
}

// Reload rereads and reparses the source. On success the menu is rebuilt
// and the path reset to the root; on failure nothing changes.
func (n *Navigator) Reload() error {
	start := time.Now()
	text, err := n.src.Load()
	if err != nil {
		return err
	}
	secs := parser.Parse(text)
	n.stats.RecordLoad(time.Since(start))

	if secs.HeadingCount() == 0 {
		return ErrEmptyParse
	}

	root := menu.Build(secs)
	if missing := menu.Missing(secs); len(missing) > 0 {
		n.log.Warn("template sections not found", "missing", missing)
	}

	n.sections = secs
	n.root = root
	n.path = []Crumb{{Menu: root, Name: RootName}}
	n.log.Info("document loaded",
		"sections", secs.Len(),
		"headings", secs.HeadingCount(),
		"options", len(root.Children),
		"duration", time.Since(start),
	)
	return nil
}

// Sections returns the current section map.
func (n *Navigator) Sections() *doctree.Sections { return n.sections }

// Root returns the current menu tree.
func (n *Navigator) Root() *menu.Submenu { return n.root }

// Current returns the submenu at the top of the path.
func (n *Navigator) Current() *menu.Submenu { return n.path[len(n.path)-1].Menu }

// Depth is the path length; 1 means at root.
func (n *Navigator) Depth() int { return len(n.path) }

// Path returns a copy of the navigation path.
func (n *Navigator) Path() []Crumb {
	out := make([]Crumb, len(n.path))
	copy(out, n.path)
	return out
}

// Breadcrumbs returns the names along the path.
func (n *Navigator) Breadcrumbs() []string {
	out := make([]string, len(n.path))
	for i, c := range n.path {
		out[i] = c.Name
	}
	return out
}

// Stats returns the session counters.
func (n *Navigator) Stats() StatsSnapshot { return n.stats.Snapshot() }

// Handle applies one line of input to the state machine.
func (n *Navigator) Handle(ctx context.Context, input string) Outcome {
	out := n.handle(ctx, strings.ToUpper(strings.TrimSpace(input)))
	n.stats.RecordOutcome(out)
	return out
}

func (n *Navigator) handle(ctx context.Context, cmd string) Outcome {
	switch {
	case cmd == "Q":
		if n.Depth() > 1 {
			return n.unrecognized(ctx, cmd)
		}
		return OutcomeQuit

	case cmd == "R":
		n.view.Notify(ctx, NoticeInfo, "Reloading documentation...")
		if err := n.Reload(); err != nil {
			n.log.Warn("reload failed", "error", err)
			n.view.Notify(ctx, NoticeError, reloadError(err))
			return OutcomeReloadFailed
		}
		n.view.Notify(ctx, NoticeSuccess,
			fmt.Sprintf("Documentation reloaded (%d sections).", n.sections.Len()))
		return OutcomeReloaded

	case cmd == "0":
		if n.Depth() == 1 {
			n.log.Debug("back requested at root")
			n.view.Notify(ctx, NoticeWarning, "Already at the main menu. Use Q to quit.")
			return OutcomeInvalid
		}
		n.path = n.path[:len(n.path)-1]
		return OutcomeWentBack

	case isDigits(cmd):
		i, err := strconv.Atoi(cmd)
		if err != nil {
			return n.invalid(ctx, cmd)
		}
		return n.selectChild(ctx, i-1)

	default:
		return n.unrecognized(ctx, cmd)
	}
}

func (n *Navigator) selectChild(ctx context.Context, idx int) Outcome {
	children := n.Current().Children
	if idx < 0 || idx >= len(children) {
		return n.invalid(ctx, strconv.Itoa(idx+1))
	}

	switch c := children[idx].(type) {
	case *menu.Submenu:
		n.path = append(n.path, Crumb{Menu: c, Name: c.Label})
		return OutcomeDescended

	case *menu.Content:
		crumbs := append(n.Breadcrumbs(), c.Label)
		if c.Key == menu.KeyFlowDiagram {
			n.view.ShowDiagram(ctx, crumbs)
			return OutcomeShowedContent
		}
		text, ok := n.sections.Get(c.Key)
		if !ok {
			n.log.Warn("section missing", "key", c.Key)
			text = MissingContent
		}
		n.view.ShowContent(ctx, c.Label, text, crumbs)
		return OutcomeShowedContent

	default:
		n.view.Notify(ctx, NoticeWarning, "This option is not available yet.")
		return OutcomeInvalid
	}
}

func (n *Navigator) invalid(ctx context.Context, cmd string) Outcome {
	n.log.Debug("invalid selection", "input", cmd, "options", len(n.Current().Children))
	n.view.Notify(ctx, NoticeWarning, "Invalid option. Try again.")
	return OutcomeInvalid
}

func (n *Navigator) unrecognized(ctx context.Context, cmd string) Outcome {
	n.log.Debug("unrecognized input", "input", cmd, "depth", n.Depth())
	n.view.Notify(ctx, NoticeWarning, "Unrecognized option. Try again.")
	return OutcomeUnrecognized
}

func reloadError(err error) string {
	switch {
	case errors.Is(err, ErrEmptyParse):
		return "Could not detect any sections. Keeping the current documentation."
	case errors.Is(err, parser.ErrSourceUnavailable):
		return "Could not read the documentation file. Keeping the current documentation."
	default:
		return "Reload failed: " + err.Error()
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Run shows the current menu and handles input until the user quits, the
// input ends or ctx is cancelled.
func (n *Navigator) Run(ctx context.Context) error {
	defer n.logSummary()
	for {
		if ctx.Err() != nil {
			n.view.Farewell()
			return nil
		}
		n.view.ShowMenu(n.Current(), n.Breadcrumbs(), n.Depth() == 1)

		line, err := n.in.ReadLine(ctx, selectPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				n.view.Farewell()
				return nil
			}
			return fmt.Errorf("read selection: %w", err)
		}

		if n.Handle(ctx, line) == OutcomeQuit {
			n.view.Farewell()
			return nil
		}
	}
}

// Demo shows the executive summary, or the whole document when there is
// none, without entering the menu loop.
func (n *Navigator) Demo(ctx context.Context) {
	title := "Executive Summary (TL;DR)"
	key, ok := menu.FindByTokens(n.sections, "tldr")
	if !ok {
		title = "Full Documentation"
		key = doctree.KeyFullDocument
	}
	text, ok := n.sections.Get(key)
	if !ok {
		text = MissingContent
	}
	n.log.Info("demo mode", "key", key)
	n.view.ShowContent(ctx, title, text, []string{RootName, title})
}

func (n *Navigator) logSummary() {
	snap := n.stats.Snapshot()
	n.log.Info("session ended",
		"inputs", snap.Inputs,
		"contents_shown", snap.Outcomes[OutcomeShowedContent],
		"reloads", snap.Outcomes[OutcomeReloaded],
		"load_p50", snap.LoadP50,
		"load_max", snap.LoadMax,
	)
}
