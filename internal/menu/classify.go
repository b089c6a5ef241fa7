package menu

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
)

// The curated layout recognises sprints and stages purely by the shape of
// their keys. All of that knowledge lives in this file.

const (
	sprintCount = 3
	stageCount  = 4

	sprint2Parts            = 6  // "3_SPRINT_2_DEMO_2_SINCRÓNICA"
	stageUnderscores        = 13 // sprint-2 key + "_34_ETAPA_1_" + a five word stage name
	stageItemMinUnderscores = 15
	sprint2ExtraUnderscores = 9
)

var (
	sprintPatterns = func() [sprintCount + 1]*regexp.Regexp {
		var out [sprintCount + 1]*regexp.Regexp
		for n := 1; n <= sprintCount; n++ {
			out[n] = regexp.MustCompile(fmt.Sprintf(`^%d_.*sprint.*%d`, n+1, n))
		}
		return out
	}()
	sprint2ExtraTitle = regexp.MustCompile(`^\s*3\.[1-3]\s`)
)

// Classification describes what role a section key plays in the curated
// layout. Zero values mean "not that role".
type Classification struct {
	Sprint       int  // 1..3 when the key looks like a sprint heading
	Stage        int  // 1..4 when the key looks like a sprint-2 stage heading
	StageItem    bool // deep enough to be an item inside a stage
	Sprint2Extra bool // a non-stage sprint-2 subsection (needs the title check too)
}

// Classify inspects a section key.
func Classify(key string) Classification {
	var c Classification
	mf := doctree.MatchForm(key)
	underscores := strings.Count(key, "_")

	for n := 1; n <= sprintCount; n++ {
		if !sprintPatterns[n].MatchString(mf) {
			continue
		}
		if n == 2 && len(strings.Split(key, "_")) != sprint2Parts {
			continue
		}
		c.Sprint = n
		break
	}

	if underscores == stageUnderscores {
		for s := 1; s <= stageCount; s++ {
			if strings.Contains(key, stageMarker(s)) {
				c.Stage = s
				break
			}
		}
	}

	c.StageItem = underscores >= stageItemMinUnderscores
	c.Sprint2Extra = underscores == sprint2ExtraUnderscores
	return c
}

// stageMarker is the key fragment for stage s, numbered 3.4 to 3.7 in the
// source document.
func stageMarker(s int) string {
	return fmt.Sprintf("_%d_ETAPA_%d_", 33+s, s)
}

// isSprint2Extra reports whether a sprint-2 subsection outside the stages
// should be listed, based on its key and title.
func isSprint2Extra(key, title string) bool {
	return Classify(key).Sprint2Extra && sprint2ExtraTitle.MatchString(title)
}

// findSprint returns the first key classified as sprint n.
func findSprint(s *doctree.Sections, n int) (string, bool) {
	for _, k := range s.Keys() {
		if Classify(k).Sprint == n {
			return k, true
		}
	}
	return "", false
}

// findStage returns the first key classified as stage n.
func findStage(s *doctree.Sections, n int) (string, bool) {
	for _, k := range s.Keys() {
		if Classify(k).Stage == n {
			return k, true
		}
	}
	return "", false
}
