package menu

import (
	"fmt"

	"github.com/dgallion1/docnav/internal/doctree"
)

// Outline mirrors the heading structure: one entry per level-2 section in
// document order, with sections that have subsections opening a submenu.
func Outline(s *doctree.Sections) *Submenu {
	root := NewSubmenu(RootLabel, "📚", "")
	if s.Has(doctree.KeyIntro) {
		root.Add(NewContent(doctree.KeyIntro, "Introduction", "🏠", ""))
	}
	for _, sec := range s.Entries() {
		if sec.Level == 2 {
			root.Add(outlineNode(s, sec))
		}
	}
	return root
}

func outlineNode(s *doctree.Sections, sec doctree.Section) Node {
	kids := s.Children(sec.Key)
	if len(kids) == 0 {
		return NewContent(sec.Key, sec.Title, defaultIcon, "")
	}

	desc := fmt.Sprintf("%d subsections", len(kids))
	if len(kids) == 1 {
		desc = "1 subsection"
	}
	m := NewSubmenu(sec.Title, "📁", desc)
	m.Add(fullView(sec.Key, sec.Title))
	for _, k := range kids {
		m.Add(outlineNode(s, k))
	}
	return m
}
