package prompt

import (
	"strings"

	"github.com/kapu/alignment-bot-go/internal/alignment"
	"github.com/kapu/alignment-bot-go/internal/domain"
)

type WindowLine struct {
	Activity   string
	Time       string
	Reason     string
	Confidence int
}

type NarrationData struct {
	OverallAlignment int
	PerfectDayScore  int
	ConfidenceScore  int
	EnergyType       string
	EnergyDetail     string
	TopPriority      string
	Windows          []WindowLine
	BestFor          string
	Avoid            string
	Opportunity      string
	Caution          string
	ForbiddenWords   string
	MaxRunes         int
}

// NewNarrationData flattens a result into template fields. Only values that
// already passed the terminology filter are copied.
func NewNarrationData(result alignment.Result, forbidden []string, maxRunes int) NarrationData {
	c := result.Combined
	in := result.Insights

	windows := []WindowLine{
		windowLine(domain.ActivityMeetings, in.Meetings),
		windowLine(domain.ActivityDecisions, in.Decisions),
		windowLine(domain.ActivityDeals, in.Deals),
		windowLine(domain.ActivityPlanning, in.Planning),
	}

	return NarrationData{
		OverallAlignment: c.OverallAlignment,
		PerfectDayScore:  c.PerfectDayScore,
		ConfidenceScore:  c.ConfidenceScore,
		EnergyType:       c.EnergyType.Name,
		EnergyDetail:     c.EnergyType.Description,
		TopPriority:      in.TopPriority,
		Windows:          windows,
		BestFor:          strings.Join(in.BestFor, "; "),
		Avoid:            strings.Join(in.Avoid, "; "),
		Opportunity:      in.Opportunity,
		Caution:          in.Caution,
		ForbiddenWords:   strings.Join(forbidden, ", "),
		MaxRunes:         maxRunes,
	}
}

func windowLine(a domain.Activity, w domain.ActivityWindow) WindowLine {
	return WindowLine{
		Activity:   a.Label(),
		Time:       w.Time,
		Reason:     w.Reason,
		Confidence: w.Confidence,
	}
}
