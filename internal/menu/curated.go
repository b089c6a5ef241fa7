package menu

import (
	"fmt"

	"github.com/dgallion1/docnav/internal/doctree"
)

// tokenEntry is a root entry bound to the first section whose key
// contains every token.
type tokenEntry struct {
	tokens      []string
	label       string
	icon        string
	description string
}

var (
	leadingEntries = []tokenEntry{
		{[]string{"tldr"}, "Executive Summary (TL;DR)", "📋", "Key changes and main results in summary form"},
		{[]string{"como", "ejecutar"}, "How to Run the Viewer", "🚀", "Installation and run instructions"},
		{[]string{"vision", "general"}, "Project Overview", "🎯", "Strategic goals and project structure"},
	}
	trailingEntries = []tokenEntry{
		{[]string{"referencia", "bibliografia"}, "References and Bibliography", "📚", "Sources, bibliography and resources used"},
		{[]string{"glosario"}, "Glossary", "📖", "Definitions of technical and business terms"},
		{[]string{"mapa", "artefactos"}, "Artifact Map", "🗂️", "Inventory of generated files and models"},
		{[]string{"outputs", "artefactos"}, "Artifact Outputs (Samples)", "📊", "Sample outputs and model results"},
	}
)

type sprintSpec struct {
	label       string
	icon        string
	description string
	icons       iconTable
}

var sprintSpecs = map[int]sprintSpec{
	1: {"Sprint 1 (Demo 1 – asynchronous)", "1️⃣", "Problem definition, datasets and table structure", sprint1Icons},
	2: {"Sprint 2 (Demo 2 – synchronous)", "2️⃣", "ETL, descriptive analysis and data consolidation", sprint2ExtraIcons},
	3: {"Sprint 3 (Demo 3 – Machine Learning and Predictive Modelling)", "3️⃣", "Predictive modelling, metrics, artifacts and best practices", sprint3Icons},
}

type stageSpec struct {
	name        string
	icon        string
	description string
}

var stageSpecs = map[int]stageSpec{
	1: {"Cleaning and Normalization", "🧹", "Data standardization, duplicate removal and referential integrity"},
	2: {"Descriptive Analysis", "📊", "Statistics, distributions, correlations and visualizations"},
	3: {"Product and Sales Processing", "🛒", "Detailed analysis of products and sales patterns"},
	4: {"Consolidation and Integration", "🔗", "Table integration and generation of final datasets"},
}

// Curated builds the project-template layout. The boolean reports whether
// the document matched any template entry beyond the whole document and
// the introduction.
func Curated(s *doctree.Sections) (*Submenu, bool) {
	root := NewSubmenu(RootLabel, "🏪", "")
	matched := false

	if s.Has(doctree.KeyFullDocument) {
		root.Add(NewContent(doctree.KeyFullDocument, "View Full Documentation", "📄",
			"Shows the whole document in a single view"))
	}
	if s.Has(doctree.KeyIntro) {
		root.Add(NewContent(doctree.KeyIntro, "Introduction and Table of Contents", "🏠",
			"Cover page, index and project organisation"))
	}

	if addTokenEntries(root, s, leadingEntries) {
		matched = true
	}

	for n := 1; n <= sprintCount; n++ {
		var sprint *Submenu
		if n == 2 {
			sprint = buildSprint2(s)
		} else {
			sprint = buildSprint(s, n)
		}
		if sprint != nil {
			root.Add(sprint)
			matched = true
		}
	}

	if addTokenEntries(root, s, trailingEntries) {
		matched = true
	}

	root.Add(NewContent(KeyFlowDiagram, "Menu Flow Diagram", "🔀",
		"Shows the navigation flow of the menu"))
	return root, matched
}

func addTokenEntries(root *Submenu, s *doctree.Sections, entries []tokenEntry) bool {
	added := false
	for _, e := range entries {
		key, ok := FindByTokens(s, e.tokens...)
		if !ok {
			continue
		}
		root.Add(NewContent(key, e.label, e.icon, e.description))
		added = true
	}
	return added
}

func sprintMenu(key string, n int) *Submenu {
	def := sprintSpecs[n]
	m := NewSubmenu(def.label, def.icon, def.description)
	m.Add(fullView(key, fmt.Sprintf("Sprint %d", n)))
	return m
}

// buildSprint lists every subsection of sprint n under one submenu.
func buildSprint(s *doctree.Sections, n int) *Submenu {
	key, ok := findSprint(s, n)
	if !ok {
		return nil
	}
	m := sprintMenu(key, n)
	for _, c := range descendants(s, key, sprintSpecs[n].icons, nil) {
		m.Add(c)
	}
	return m
}

// buildSprint2 groups the synchronous sprint into its four stages and
// appends the numbered subsections that precede them.
func buildSprint2(s *doctree.Sections) *Submenu {
	key, ok := findSprint(s, 2)
	if !ok {
		return nil
	}
	m := sprintMenu(key, 2)

	for n := 1; n <= stageCount; n++ {
		if stage := buildStage(s, n); stage != nil {
			m.Add(stage)
		}
	}

	for _, c := range descendants(s, key, sprintSpecs[2].icons, isSprint2Extra) {
		m.Add(c)
	}
	return m
}

func buildStage(s *doctree.Sections, n int) *Submenu {
	key, ok := findStage(s, n)
	if !ok {
		return nil
	}
	def := stageSpecs[n]
	m := NewSubmenu(fmt.Sprintf("Stage %d: %s", n, def.name), def.icon, def.description)
	m.Add(NewContent(key, fmt.Sprintf("View Stage %d in full", n), "📖",
		fmt.Sprintf("All of Stage %d", n)))

	items := descendants(s, key, stageItemIcons, func(k, _ string) bool {
		return Classify(k).StageItem
	})
	for _, c := range items {
		m.Add(c)
	}
	return m
}

// Missing lists the template entries a templated document lacks, in menu
// order. It returns nil for documents that do not follow the template.
func Missing(s *doctree.Sections) []string {
	if _, ok := Curated(s); !ok {
		return nil
	}
	var out []string
	for _, e := range leadingEntries {
		if _, ok := FindByTokens(s, e.tokens...); !ok {
			out = append(out, e.label)
		}
	}
	for n := 1; n <= sprintCount; n++ {
		if _, ok := findSprint(s, n); !ok {
			out = append(out, sprintSpecs[n].label)
			continue
		}
		if n != 2 {
			continue
		}
		for st := 1; st <= stageCount; st++ {
			if _, ok := findStage(s, st); !ok {
				out = append(out, fmt.Sprintf("Stage %d: %s", st, stageSpecs[st].name))
			}
		}
	}
	for _, e := range trailingEntries {
		if _, ok := FindByTokens(s, e.tokens...); !ok {
			out = append(out, e.label)
		}
	}
	return out
}
