package parser

import (
	"bytes"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/yuin/goldmark/ast"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	minLevel = 2
	maxLevel = 4
)

// heading is an accepted section heading located in the source.
type heading struct {
	level int
	start int // Byte offset of the heading line
	title string
}

// Parse splits a Markdown document into sections keyed by normalized
// heading titles. Level-2 headings delimit top-level sections; level-3 and
// level-4 headings are only looked for inside their parent's block.
func Parse(md string) *doctree.Sections {
	secs := doctree.New()
	md = strings.TrimSpace(md)
	if md == "" {
		return secs
	}

	secs.Set(doctree.Section{Key: doctree.KeyFullDocument, Content: md})

	heads := findHeadings([]byte(md))

	for _, h := range heads {
		if h.level != minLevel {
			continue
		}
		if intro := strings.TrimSpace(md[:h.start]); intro != "" {
			secs.Set(doctree.Section{Key: doctree.KeyIntro, Content: intro})
		}
		break
	}

	addLevel(secs, md, heads, 0, len(md), minLevel, "")
	return secs
}

// addLevel stores every heading of the given level that starts inside
// md[lo:hi], then descends into each resulting block for the next level.
func addLevel(secs *doctree.Sections, md string, heads []heading, lo, hi, level int, parent string) {
	var in []heading
	for _, h := range heads {
		if h.level == level && h.start >= lo && h.start < hi {
			in = append(in, h)
		}
	}

	for i, h := range in {
		end := hi
		if i+1 < len(in) {
			end = in[i+1].start
		}

		key := doctree.NormalizeKey(h.title)
		if parent != "" {
			key = doctree.JoinKey(parent, h.title)
		}
		secs.Set(doctree.Section{
			Key:     key,
			Title:   h.title,
			Level:   level,
			Parent:  parent,
			Content: strings.TrimSpace(md[h.start:end]),
		})

		if level < maxLevel {
			addLevel(secs, md, heads, h.start, end, level+1, key)
		}
	}
}

// headingParser only knows ATX headings and paragraphs, so fences, HTML
// blocks, lists and quotes never hide a heading line.
var headingParser = gmparser.NewParser(
	gmparser.WithBlockParsers(
		util.Prioritized(gmparser.NewATXHeadingParser(), 100),
		util.Prioritized(gmparser.NewParagraphParser(), 1000),
	),
)

// findHeadings walks the goldmark AST and keeps the ATX headings of level
// 2 to 4 whose marker sits at column one.
func findHeadings(src []byte) []heading {
	doc := headingParser.Parse(text.NewReader(src))

	var heads []heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < minLevel || h.Level > maxLevel || h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		seg := h.Lines().At(0)
		start := bytes.LastIndexByte(src[:seg.Start], '\n') + 1
		line := src[start:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}

		level, title, ok := atxHeading(string(line))
		if ok && level == h.Level {
			heads = append(heads, heading{level: level, start: start, title: title})
		}
		return ast.WalkSkipChildren, nil
	})
	return heads
}

// atxHeading reports the level and raw title of a line such as "### Title".
func atxHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < minLevel || level > maxLevel || level == len(line) {
		return 0, "", false
	}
	if line[level] != ' ' && line[level] != '\t' {
		return 0, "", false
	}
	title := strings.TrimSpace(line[level:])
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}

// TitleOf returns the text of the first level 2-4 heading in content.
func TitleOf(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if _, title, ok := atxHeading(strings.TrimSpace(line)); ok {
			return title, true
		}
	}
	return "", false
}
