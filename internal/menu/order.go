package menu

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var dottedPrefix = regexp.MustCompile(`^\s*(\d+(?:\.\d+)+)`)

// sectionNumber parses a leading dotted number such as "3.4.2". A bare
// "3" is not a section number.
func sectionNumber(title string) ([]int, bool) {
	m := dottedPrefix.FindStringSubmatch(title)
	if m == nil {
		return nil, false
	}
	parts := strings.Split(m[1], ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// compareTitles orders titles by section number, element-wise. Titles
// without a number come after every numbered one.
func compareTitles(a, b string) int {
	na, okA := sectionNumber(a)
	nb, okB := sectionNumber(b)
	switch {
	case okA && okB:
		return slices.Compare(na, nb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

// sortByNumber sorts content nodes by the section number in their labels,
// keeping document order for ties.
func sortByNumber(nodes []*Content) {
	slices.SortStableFunc(nodes, func(a, b *Content) int {
		return compareTitles(a.Label, b.Label)
	})
}
