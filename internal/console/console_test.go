package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dgallion1/docnav/internal/menu"
	"github.com/dgallion1/docnav/internal/navigator"
	"github.com/dgallion1/docnav/internal/pager"
	"github.com/dgallion1/docnav/internal/textwidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(input string, opt Options) (*Renderer, *bytes.Buffer) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out)
	return NewRenderer(&out, p, opt), &out
}

func sampleMenu() *menu.Submenu {
	return menu.NewSubmenu("root", "", "").Add(
		menu.NewSubmenu("Sprint 1", "1️⃣", "Problem definition, datasets and table structure"),
		menu.NewContent("GLOSARIO", "Glossary", "📖", ""),
	)
}

func framedLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(ansi.Strip(out), "\n") {
		if strings.HasPrefix(l, "│") || strings.HasPrefix(l, "║") {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestPrompter_ReadsLinesThenEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\r\nq\n"), &out)
	ctx := context.Background()

	line, err := p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = p.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "q", line)

	_, err = p.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF)
	_, err = p.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF, "end of input is sticky")

	assert.Equal(t, "> > ", out.String())
}

func TestPrompter_ContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	p := NewPrompter(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.ReadLine(ctx, "")
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
}

func TestShowMenu_Root(t *testing.T) {
	r, out := newTestRenderer("", Options{Width: 60, Subtitle: "DOC.md"})
	r.ShowMenu(sampleMenu(), []string{"Home"}, true)

	s := ansi.Strip(out.String())
	assert.Contains(t, s, "MENU OPTIONS")
	assert.Contains(t, s, "DOC.md")
	assert.Contains(t, s, "[ 1] 1️⃣  Sprint 1 📂")
	assert.Contains(t, s, "[ 2] 📖  Glossary 📄")
	assert.Contains(t, s, "💬 Problem definition")
	assert.Contains(t, s, "[Q]")
	assert.Contains(t, s, "[R]")
	assert.NotContains(t, s, "[0]")
	assert.NotContains(t, s, "Location:")
	assert.NotContains(t, s, ansi.EraseEntireScreen)

	for _, l := range framedLines(out.String()) {
		assert.Equal(t, 62, textwidth.Width(l), "line %q", l)
	}
}

func TestShowMenu_NestedShowsBackAndBreadcrumbs(t *testing.T) {
	r, out := newTestRenderer("", Options{Width: 60})
	r.ShowMenu(sampleMenu(), []string{"Home", "Sprint 1"}, false)

	s := out.String()
	assert.Contains(t, s, "Location: Home → Sprint 1")
	assert.Contains(t, s, "[0]")
	assert.NotContains(t, s, "[Q]")
}

func TestShowMenu_ASCII(t *testing.T) {
	r, out := newTestRenderer("", Options{Width: 60, ASCII: true})
	r.ShowMenu(sampleMenu(), []string{"Home", "Sprint 1"}, false)

	s := out.String()
	assert.Contains(t, s, "[ 1] *  Sprint 1 >")
	assert.Contains(t, s, "[ 2] *  Glossary  ")
	assert.NotContains(t, s, "Glossary >")
	assert.Contains(t, s, "Home > Sprint 1")
	for _, glyph := range []string{"═", "│", "┌", "📂", "📖", "💬"} {
		assert.NotContains(t, s, glyph)
	}
}

func TestShowMenu_ClearsWhenEnabled(t *testing.T) {
	r, out := newTestRenderer("", Options{Clear: true})
	r.ShowMenu(sampleMenu(), []string{"Home"}, true)
	assert.True(t, strings.HasPrefix(out.String(), ansi.EraseEntireScreen))
}

func TestShowContent_PausesBetweenPages(t *testing.T) {
	r, out := newTestRenderer("\n\n", Options{Pager: pager.Config{PageSize: 2}})
	r.ShowContent(context.Background(), "Glossary", "uno\ndos\ntres", []string{"Home", "Glossary"})

	s := out.String()
	assert.Equal(t, 1, strings.Count(s, "--- Continue (ENTER) ---"))
	assert.Contains(t, s, "Press [ENTER] to continue")
	assert.Less(t, strings.Index(s, "dos"), strings.Index(s, "--- Continue"))
	assert.Greater(t, strings.Index(s, "tres"), strings.Index(s, "--- Continue"))
}

func TestShowContent_EndOfInputStopsEarly(t *testing.T) {
	r, out := newTestRenderer("", Options{Pager: pager.Config{PageSize: 2}})
	r.ShowContent(context.Background(), "Glossary", "uno\ndos\ntres", nil)

	s := out.String()
	assert.Contains(t, s, "dos")
	assert.NotContains(t, s, "tres")
}

func TestShowContent_DemoNeverPauses(t *testing.T) {
	r, out := newTestRenderer("", Options{Demo: true, Pager: pager.Config{PageSize: 1}})
	r.ShowContent(context.Background(), "TL;DR", "a\nb\nc", nil)

	s := out.String()
	assert.Contains(t, s, "c")
	assert.NotContains(t, s, "Continue")
	assert.NotContains(t, s, "ENTER")
}

func TestShowContent_ResultBlock(t *testing.T) {
	r, out := newTestRenderer("\n", Options{Width: 40})
	content := "## Ventas\n```output\n" + strings.Repeat("x", 50) + "\n```\nfin"
	r.ShowContent(context.Background(), "Ventas", content, nil)

	s := out.String()
	assert.Contains(t, s, "Result · Ventas")
	assert.Contains(t, s, "\n"+strings.Repeat("x", 40)+"\n"+strings.Repeat("x", 10)+"\n")
	assert.NotContains(t, s, "```")
}

func TestNotify(t *testing.T) {
	r, out := newTestRenderer("", Options{})
	r.Notify(context.Background(), navigator.NoticeInfo, "Reloading documentation...")

	s := ansi.Strip(out.String())
	assert.Contains(t, s, "ℹ️  Reloading documentation...")
	assert.NotContains(t, s, "ENTER")

	out.Reset()
	r.Notify(context.Background(), navigator.NoticeWarning, "Invalid option. Try again.")
	s = ansi.Strip(out.String())
	assert.Contains(t, s, "⚠️  Invalid option. Try again.")
	assert.Contains(t, s, "Press [ENTER] to continue")
}

func TestNotify_ASCII(t *testing.T) {
	r, out := newTestRenderer("", Options{ASCII: true, Demo: true})
	r.Notify(context.Background(), navigator.NoticeError, "Reload failed")

	assert.Contains(t, ansi.Strip(out.String()), "[x]  Reload failed")
}

func TestShowDiagram(t *testing.T) {
	r, out := newTestRenderer("\n", Options{})
	r.ShowDiagram(context.Background(), []string{"Home", "Menu Flow Diagram"})

	s := out.String()
	assert.Contains(t, s, "MENU FLOW DIAGRAM")
	assert.Contains(t, s, "MAIN MENU")
	assert.Contains(t, s, "┌")

	r, out = newTestRenderer("\n", Options{ASCII: true})
	r.ShowDiagram(context.Background(), nil)
	s = out.String()
	assert.Contains(t, s, "MAIN MENU")
	assert.NotContains(t, s, "┌")
	assert.NotContains(t, s, "▼")
}

func TestFarewell(t *testing.T) {
	r, out := newTestRenderer("", Options{})
	r.Farewell()
	assert.Contains(t, out.String(), "See you soon!")
}

func TestRenderer_ReadLineDecoratesPrompt(t *testing.T) {
	r, out := newTestRenderer("2\n", Options{ASCII: true})
	line, err := r.ReadLine(context.Background(), "Select an option: ")
	require.NoError(t, err)
	assert.Equal(t, "2", line)
	assert.Equal(t, "\n> Select an option: ", out.String())
}
