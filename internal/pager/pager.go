package pager

import (
	"regexp"
	"strings"
)

// Kind identifies a segment of paginated content.
type Kind int

const (
	Prose  Kind = iota // plain lines shown as-is
	Break              // pause for acknowledgement
	Result             // a captured ```output block
)

func (k Kind) String() string {
	switch k {
	case Prose:
		return "prose"
	case Break:
		return "break"
	case Result:
		return "result"
	default:
		return "unknown"
	}
}

// Segment is one displayable unit of a section.
type Segment struct {
	Kind  Kind
	Title string   // Result only.
	Lines []string // Empty for Break.
}

// Config controls pagination.
type Config struct {
	PageSize   int // Non-blank prose lines per page.
	DeferLimit int // The break is forced on this many non-blank lines past PageSize.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PageSize:   80,
		DeferLimit: 30,
	}
}

const (
	resultOpen  = "```output"
	resultClose = "```"
	resultTitle = "Result"
	titleJoiner = " · "
	defaultPage = 80
)

var headingLine = regexp.MustCompile(`^#{2,4}\s+(.+)`)

// Paginate splits content into prose runs, page breaks and result blocks.
// A break is only emitted when something follows it.
func Paginate(content string, cfg Config) []Segment {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPage
	}
	if cfg.DeferLimit < 0 {
		cfg.DeferLimit = 0
	}

	p := &paginator{cfg: cfg}
	for _, line := range strings.Split(content, "\n") {
		p.feed(line)
	}
	p.finish()
	return p.out
}

type paginator struct {
	cfg Config
	out []Segment

	prose    []string
	shown    int
	deferred int
	pending  bool

	inResult    bool
	result      []string
	lastHeading string
}

func (p *paginator) feed(line string) {
	trimmed := strings.TrimSpace(line)
	if m := headingLine.FindStringSubmatch(trimmed); m != nil {
		p.lastHeading = strings.TrimSpace(m[1])
	}

	if p.inResult {
		if trimmed == resultClose {
			p.closeResult()
			return
		}
		p.result = append(p.result, line)
		return
	}

	if strings.HasPrefix(trimmed, resultOpen) {
		p.flushProse()
		p.inResult = true
		p.result = nil
		return
	}

	p.addProse(line, trimmed != "")
}

func (p *paginator) addProse(line string, nonBlank bool) {
	if p.pending {
		p.emit(Segment{Kind: Break})
		p.pending = false
	}
	p.prose = append(p.prose, line)
	if nonBlank {
		p.shown++
	}
	if p.shown < p.cfg.PageSize {
		return
	}
	if nonBlank {
		p.deferred++
		if p.deferred < p.cfg.DeferLimit {
			return
		}
	}
	p.flushProse()
	p.pending = true
	p.shown = 0
	p.deferred = 0
}

func (p *paginator) closeResult() {
	title := resultTitle
	if p.lastHeading != "" {
		title += titleJoiner + p.lastHeading
	}
	if p.pending {
		p.emit(Segment{Kind: Break})
		p.pending = false
	}
	p.emit(Segment{Kind: Result, Title: title, Lines: p.result})
	p.inResult = false
	p.result = nil
}

func (p *paginator) flushProse() {
	if len(p.prose) == 0 {
		return
	}
	p.emit(Segment{Kind: Prose, Lines: p.prose})
	p.prose = nil
}

func (p *paginator) finish() {
	p.flushProse()
	if p.inResult {
		p.closeResult()
	}
}

func (p *paginator) emit(s Segment) {
	p.out = append(p.out, s)
}
