package status

// Tone is the visual family a status renders with.
type Tone int

const (
	// ToneNeutral is the fallback treatment.
	ToneNeutral Tone = iota
	// ToneSuccess marks finished work.
	ToneSuccess
	// ToneWarning marks work underway.
	ToneWarning
	// ToneDanger marks work not yet started.
	ToneDanger
)

func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	case ToneDanger:
		return "danger"
	default:
		return "neutral"
	}
}

// Treatment describes how a status is drawn.
type Treatment struct {
	Tone Tone
	// Symbol is empty for the neutral treatment.
	Symbol string
	Label  string
}

// Badge joins the symbol and label, e.g. "✔ complete".
func (t Treatment) Badge() string {
	if t.Symbol == "" {
		return t.Label
	}
	return t.Symbol + " " + t.Label
}

// Treat maps every status, including Unknown, to a treatment.
func Treat(s Status) Treatment {
	switch s {
	case Complete:
		return Treatment{Tone: ToneSuccess, Symbol: "✔", Label: s.String()}
	case InProgress:
		return Treatment{Tone: ToneWarning, Symbol: "◷", Label: s.String()}
	case Pending:
		return Treatment{Tone: ToneDanger, Symbol: "!", Label: s.String()}
	default:
		return Treatment{Tone: ToneNeutral, Label: s.String()}
	}
}

// Meaning describes a status for legends and help text.
func Meaning(s Status) string {
	switch s {
	case Complete:
		return "all documents archived"
	case InProgress:
		return "archiving underway"
	case Pending:
		return "awaiting archiving"
	default:
		return "no status recorded"
	}
}
