package menu

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/parser"
)

// KeyFlowDiagram binds the static navigation diagram entry. No section
// is stored under it; the renderer draws the diagram itself.
const KeyFlowDiagram = "MENU_FLOW_DIAGRAM"

const RootLabel = "Technical Documentation"

// Build returns the menu tree for s. Documents that follow the project
// template get the curated layout; anything else gets a plain outline.
func Build(s *doctree.Sections) *Submenu {
	if root, ok := Curated(s); ok {
		return root
	}
	return Outline(s)
}

// FindByTokens returns the first key, in map order, whose match form
// contains the match form of every token.
func FindByTokens(s *doctree.Sections, tokens ...string) (string, bool) {
	want := make([]string, len(tokens))
	for i, t := range tokens {
		want[i] = doctree.MatchForm(t)
	}
	for _, k := range s.Keys() {
		mf := doctree.MatchForm(k)
		found := true
		for _, t := range want {
			if !strings.Contains(mf, t) {
				found = false
				break
			}
		}
		if found {
			return k, true
		}
	}
	return "", false
}

// titleOf returns the heading text of a section, read from its content
// when the section carries no title of its own.
func titleOf(sec doctree.Section) (string, bool) {
	if sec.Title != "" {
		return sec.Title, true
	}
	return parser.TitleOf(sec.Content)
}

// descendants returns content leaves for every key under prefix that
// keep reports true for, iconed by table and sorted by section number.
func descendants(s *doctree.Sections, prefix string, table iconTable, keep func(key, title string) bool) []*Content {
	var out []*Content
	for _, sec := range s.Entries() {
		if !strings.HasPrefix(sec.Key, prefix+"_") {
			continue
		}
		title, ok := titleOf(sec)
		if !ok || (keep != nil && !keep(sec.Key, title)) {
			continue
		}
		out = append(out, NewContent(sec.Key, title, table.pick(title), ""))
	}
	sortByNumber(out)
	return out
}

func fullView(key, what string) *Content {
	return NewContent(key, fmt.Sprintf("View %s in full", what), "📖",
		fmt.Sprintf("All of %s in a single view", what))
}
