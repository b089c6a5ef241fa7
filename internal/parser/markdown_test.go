package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/google/go-cmp/cmp"
)

const nestedDoc = `# Manual

Intro text.

## Section A

Section A content.

### Sub A1

A1 content.

#### Detail A1a

Deep content.

### Sub A2

A2 content.

## Section B

Section B content.
`

func TestParse_HeadingHierarchy(t *testing.T) {
	secs := Parse(nestedDoc)

	wantKeys := []string{
		doctree.KeyFullDocument,
		doctree.KeyIntro,
		"SECTION_A",
		"SECTION_A_SUB_A1",
		"SECTION_A_SUB_A1_DETAIL_A1A",
		"SECTION_A_SUB_A2",
		"SECTION_B",
	}
	if diff := cmp.Diff(wantKeys, secs.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}

	full, _ := secs.Get(doctree.KeyFullDocument)
	if full != strings.TrimSpace(nestedDoc) {
		t.Errorf("expected whole document verbatim, got %q", full)
	}

	intro, _ := secs.Get(doctree.KeyIntro)
	if intro != "# Manual\n\nIntro text." {
		t.Errorf("expected intro before first level-2 heading, got %q", intro)
	}

	a, _ := secs.Get("SECTION_A")
	if !strings.HasPrefix(a, "## Section A") || !strings.HasSuffix(a, "A2 content.") {
		t.Errorf("section A should span to section B, got %q", a)
	}

	a1, _ := secs.Get("SECTION_A_SUB_A1")
	want := "### Sub A1\n\nA1 content.\n\n#### Detail A1a\n\nDeep content."
	if a1 != want {
		t.Errorf("expected %q, got %q", want, a1)
	}

	b, _ := secs.Get("SECTION_B")
	if b != "## Section B\n\nSection B content." {
		t.Errorf("unexpected section B content %q", b)
	}
}

func TestParse_Metadata(t *testing.T) {
	secs := Parse(nestedDoc)

	sec, ok := secs.Section("SECTION_A_SUB_A1_DETAIL_A1A")
	if !ok {
		t.Fatal("expected level-4 section")
	}
	if sec.Level != 4 || sec.Parent != "SECTION_A_SUB_A1" || sec.Title != "Detail A1a" {
		t.Errorf("unexpected metadata %+v", sec)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t\n  "} {
		if n := Parse(in).Len(); n != 0 {
			t.Errorf("input %q: expected empty map, got %d entries", in, n)
		}
	}
}

func TestParse_NoHeadings(t *testing.T) {
	secs := Parse("Just prose.\n\nMore prose.")
	if secs.Len() != 1 || !secs.Has(doctree.KeyFullDocument) {
		t.Fatalf("expected only the whole-document entry, got %v", secs.Keys())
	}
	if secs.Has(doctree.KeyIntro) {
		t.Error("intro requires at least one level-2 heading")
	}
	if secs.HeadingCount() != 0 {
		t.Errorf("expected 0 heading sections, got %d", secs.HeadingCount())
	}
}

func TestParse_NoIntroWhenDocumentStartsWithHeading(t *testing.T) {
	secs := Parse("## A\n\ntext")
	if secs.Has(doctree.KeyIntro) {
		t.Error("expected no intro entry")
	}
}

func TestParse_CountProperty(t *testing.T) {
	// N level-2 headings, unique titles, no intro: N+1 entries plus one per subheading.
	doc := "## One\n\n### One a\n\n## Two\n\n## Three\n\n### Three a\n\n#### Three a i\n"
	secs := Parse(doc)
	if secs.Len() != 3+1+3 {
		t.Errorf("expected 7 entries, got %d: %v", secs.Len(), secs.Keys())
	}
}

func TestParse_Deterministic(t *testing.T) {
	if !Parse(nestedDoc).Equal(Parse(nestedDoc)) {
		t.Error("expected identical maps for identical input")
	}
}

func TestParse_NestedKeysDeriveFromParent(t *testing.T) {
	secs := Parse(nestedDoc)
	for _, sec := range secs.Entries() {
		if sec.Level < 3 {
			continue
		}
		want := doctree.JoinKey(sec.Parent, sec.Title)
		if sec.Key != want {
			t.Errorf("key %q: expected %q", sec.Key, want)
		}
		if !secs.Has(sec.Parent) {
			t.Errorf("key %q: parent %q missing", sec.Key, sec.Parent)
		}
	}
}

func TestParse_DuplicateTitlesLastWins(t *testing.T) {
	secs := Parse("## Notes\n\nfirst\n\n## Other\n\n## Notes\n\nsecond\n")
	got, _ := secs.Get("NOTES")
	if got != "## Notes\n\nsecond" {
		t.Errorf("expected last occurrence to win, got %q", got)
	}
	keys := secs.Keys()
	if keys[1] != "NOTES" || keys[2] != "OTHER" {
		t.Errorf("expected overwritten key to keep its position, got %v", keys)
	}
}

func TestParse_IgnoresNonHeadings(t *testing.T) {
	doc := "## Real\n\n  ## indented\n\n> ## quoted\n\n##no-space\n\n##### too deep\n\nSetext\n------\n"
	secs := Parse(doc)
	want := []string{doctree.KeyFullDocument, "REAL"}
	if diff := cmp.Diff(want, secs.Keys()); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestParse_ColumnOneHeadingsInsideBlocks(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"unclosed fence", "## A\n\n```\nunclosed example\n\n## B\n\nb\n\n## C\n\nc\n", []string{"A", "B", "C"}},
		{"backtick fence", "## A\n\n```bash\n## B\n```\n", []string{"A", "B"}},
		{"tilde fence", "## A\n\n~~~\n## B\n~~~\n", []string{"A", "B"}},
		{"html block", "## A\n\n<div>\n## B\n</div>\n", []string{"A", "B"}},
		{"list item", "## A\n\n- item\n### A1\n", []string{"A", "A_A1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := append([]string{doctree.KeyFullDocument}, tt.want...)
			if diff := cmp.Diff(want, Parse(tt.doc).Keys()); diff != "" {
				t.Errorf("unexpected keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_SubheadingsBeforeFirstSectionIgnored(t *testing.T) {
	secs := Parse("### Orphan\n\ntext\n\n## Main\n\n### Child\n")
	want := []string{doctree.KeyFullDocument, doctree.KeyIntro, "MAIN", "MAIN_CHILD"}
	if diff := cmp.Diff(want, secs.Keys()); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestTitleOf(t *testing.T) {
	title, ok := TitleOf("intro line\n  ### 3.4.1 Objetivo  \nbody")
	if !ok || title != "3.4.1 Objetivo" {
		t.Errorf("expected %q, got %q (ok=%v)", "3.4.1 Objetivo", title, ok)
	}
	if _, ok := TitleOf("# Top only\ntext"); ok {
		t.Error("level-1 headings are not section titles")
	}
}
