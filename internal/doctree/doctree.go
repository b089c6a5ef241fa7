package doctree

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reserved keys that are not derived from heading text.
const (
	KeyFullDocument = "FULL_DOCUMENT"
	KeyIntro        = "INTRO"
)

// Section is one addressable block of the source document.
type Section struct {
	Key     string // Normalized key, unique within a Sections map
	Title   string // Heading text without markers (empty for reserved keys)
	Level   int    // Heading level 2..4, 0 for reserved keys
	Parent  string // Key of the enclosing heading section, "" at top level
	Content string // Trimmed source range, heading line included
}

// Sections is an insertion-ordered map of section key to section.
// Overwriting a key keeps its original position.
type Sections struct {
	order []string
	byKey map[string]Section
}

// New returns an empty section map.
func New() *Sections {
	return &Sections{byKey: make(map[string]Section)}
}

// Set stores sec under sec.Key. Last write wins.
func (s *Sections) Set(sec Section) {
	if _, ok := s.byKey[sec.Key]; !ok {
		s.order = append(s.order, sec.Key)
	}
	s.byKey[sec.Key] = sec
}

// Get returns the content stored under key.
func (s *Sections) Get(key string) (string, bool) {
	sec, ok := s.byKey[key]
	return sec.Content, ok
}

// Section returns the full section stored under key.
func (s *Sections) Section(key string) (Section, bool) {
	sec, ok := s.byKey[key]
	return sec, ok
}

func (s *Sections) Has(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

func (s *Sections) Len() int {
	return len(s.order)
}

// Keys returns the keys in insertion order.
func (s *Sections) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Entries returns the sections in insertion order.
func (s *Sections) Entries() []Section {
	out := make([]Section, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}
	return out
}

// HeadingCount reports how many sections came from a heading.
func (s *Sections) HeadingCount() int {
	n := 0
	for _, sec := range s.byKey {
		if sec.Level > 0 {
			n++
		}
	}
	return n
}

// Children returns the direct heading children of key, in insertion order.
func (s *Sections) Children(key string) []Section {
	var out []Section
	for _, k := range s.order {
		sec := s.byKey[k]
		if sec.Level > 0 && sec.Parent == key {
			out = append(out, sec)
		}
	}
	return out
}

// Equal reports whether both maps hold the same sections in the same order.
func (s *Sections) Equal(other *Sections) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, k := range s.order {
		if other.order[i] != k || other.byKey[k] != s.byKey[k] {
			return false
		}
	}
	return true
}

var (
	keyStrip      = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}-]`)
	keyWhitespace = regexp.MustCompile(`[\s\p{Z}]+`)
	matchNonWord  = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeKey turns heading text into a section key: punctuation is
// dropped, whitespace runs become underscores and the result is upper-cased.
func NormalizeKey(title string) string {
	t := keyStrip.ReplaceAllString(title, "")
	t = keyWhitespace.ReplaceAllString(strings.TrimSpace(t), "_")
	return strings.ToUpper(t)
}

// JoinKey derives a nested section key from its parent key and title.
func JoinKey(parent, title string) string {
	return parent + "_" + NormalizeKey(title)
}

// MatchForm folds s for fuzzy comparisons: accents removed, lower-cased and
// every run of characters outside [a-z0-9] collapsed to a single underscore.
func MatchForm(s string) string {
	t := strings.ToLower(StripAccents(s))
	t = matchNonWord.ReplaceAllString(t, "_")
	return strings.Trim(t, "_")
}

// StripAccents removes combining marks after canonical decomposition.
func StripAccents(s string) string {
	tr := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}
