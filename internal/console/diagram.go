package console

import "strings"

var flowDiagram = []string{
	"                ┌───────────────┐",
	"                │     START     │",
	"                └───────┬───────┘",
	"                        │",
	"                        ▼",
	"        ┌───────────────────────────────┐",
	"        │        Header / Cover         │",
	"        └───────────────┬───────────────┘",
	"                        │",
	"                        ▼",
	"        ┌───────────────────────────────┐",
	"        │           MAIN MENU           │",
	"        │      (numbered options)       │",
	"        └───────────────┬───────────────┘",
	"                        │",
	"                        ▼",
	"              ◇ Choose an option ◇",
	"                        │",
	"     ┌──────────────┬───┴──────────┬──────────────┐",
	"     ▼              ▼              ▼              ▼",
	"  [Option 1]  ... [Option N]   [Diagram]      [Other]",
	"     │              │              │              │",
	"     └──────────────┴───┬──────────┴──────────────┘",
	"                        │",
	"                        ▼",
	"        ┌───────────────────────────────┐",
	"        │        CONTENT SECTION        │",
	"        │  (documentation, artifacts,   │",
	"        │   outputs, diagram, ...)      │",
	"        └───────────────┬───────────────┘",
	"                        │",
	"                        ▼",
	"             ◇ Navigation action ◇",
	"                        │",
	"     ┌──────────────┬───┴──────────┬──────────────┐",
	"     ▼              ▼              ▼              ▼",
	"  [0] Back     [R] Reload     [Q] Quit      [Submenu]",
	"     │              │              │              │",
	"     └──────────────┴───┬──────────┴──────────────┘",
	"                        │",
	"                        ▼",
	"                ┌───────────────┐",
	"                │      END      │",
	"                └───────────────┘",
	"",
	"  Legend:",
	"    ┌──────┐   Process or step",
	"    ◇      ◇   Decision",
	"    [ ]        Option or action",
	"    ▼          Flow",
	"    │          Connection",
}

var asciiDiagram = strings.NewReplacer(
	"┌", "+", "┐", "+", "└", "+", "┘", "+",
	"┬", "+", "┴", "+", "├", "+", "┤", "+",
	"─", "-", "│", "|", "▼", "v", "◇", "<>",
)
