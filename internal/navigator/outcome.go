package navigator

// Outcome reports what a single input did.
type Outcome int

const (
	OutcomeDescended Outcome = iota
	OutcomeShowedContent
	OutcomeWentBack
	OutcomeReloaded
	OutcomeReloadFailed
	OutcomeQuit
	OutcomeInvalid
	OutcomeUnrecognized
)

var outcomeNames = [...]string{
	OutcomeDescended:     "descended",
	OutcomeShowedContent: "showed_content",
	OutcomeWentBack:      "went_back",
	OutcomeReloaded:      "reloaded",
	OutcomeReloadFailed:  "reload_failed",
	OutcomeQuit:          "quit",
	OutcomeInvalid:       "invalid",
	OutcomeUnrecognized:  "unrecognized",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}
