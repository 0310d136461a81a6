// Package insight turns a combined analysis into concrete time windows and
// short business-language recommendations. Output never carries internal
// vocabulary: a hit in the terminology filter switches the generator to the
// static safe templates.
package insight

import (
	"fmt"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/engine"
)

const (
	bestForLimit   = 3
	bestForFloor   = 75
	avoidCeiling   = 60
	lowStamina     = 30
	lowComposite   = 40
	textOnlyWindow = -1
)

// Generator renders insights and screens them with a Filter.
type Generator struct {
	filter *Filter
}

// NewGenerator returns a Generator. A nil filter selects DefaultFilter.
func NewGenerator(filter *Filter) *Generator {
	if filter == nil {
		filter = defaultFilter
	}
	return &Generator{filter: filter}
}

// GenerateInsights uses the default filter.
func GenerateInsights(personal domain.PersonalProfile, earth domain.EarthProfile, combined domain.CombinedAnalysis) domain.BusinessInsights {
	return NewGenerator(nil).Generate(personal, earth, combined)
}

// OptimalHour derives the anchor hour for every activity window.
func OptimalHour(personal domain.PersonalProfile, earth domain.EarthProfile, combined domain.CombinedAnalysis) int {
	peak := combined.PeakHours
	if peak == "" {
		peak = personal.Constitution.PeakHours
	}
	return AdjustHour(baseHour(peak), personal.LifePath.Number, earth.Day.Overall, earth.Lunar.Influence)
}

// Generate is deterministic for the same inputs.
func (g *Generator) Generate(personal domain.PersonalProfile, earth domain.EarthProfile, combined domain.CombinedAnalysis) domain.BusinessInsights {
	hour := OptimalHour(personal, earth, combined)

	insights := domain.BusinessInsights{
		TopPriority: topPriority(personal, earth, combined),
		Meetings:    clockWindow(hour, domain.ActivityMeetings, earth, combined.OverallAlignment),
		Decisions:   clockWindow(hour+1, domain.ActivityDecisions, earth, combined.Alignment.SymbolicTiming),
		Deals:       clockWindow(hour-1, domain.ActivityDeals, earth, combined.PerfectDayScore),
		Planning:    planningWindow(earth, combined),
		BestFor:     bestFor(earth),
		Avoid:       avoid(earth),
		Opportunity: opportunity(earth),
		Caution:     caution(combined),
		OptimalHour: hour,
	}

	if err := g.filter.CheckAll(insights.Texts()); err != nil {
		return safeInsights(hour, earth, combined)
	}
	return insights
}

func topPriority(personal domain.PersonalProfile, earth domain.EarthProfile, combined domain.CombinedAnalysis) string {
	for _, band := range priorityBands {
		if combined.PerfectDayScore >= band.floor {
			return fmt.Sprintf(band.template, earth.Day.Weekday, personal.LifePath.Number, earth.DailyTiming.Guidance)
		}
	}
	return safeTopPriority
}

func windowConfidence(activityScore, combinedScore int) int {
	c := (activityScore + combinedScore + 1) / 2
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

func clockWindow(hour int, a domain.Activity, earth domain.EarthProfile, combinedScore int) domain.ActivityWindow {
	reading := earth.Day.Activities.Get(a)
	reason := fmt.Sprintf("%s rate %d/100 on %ss. %s.", a.Label(), reading.Score, earth.Day.Weekday, reading.Guidance)
	return domain.ActivityWindow{
		Time:       formatWindow(hour),
		StartHour:  ((hour % 24) + 24) % 24,
		Reason:     reason,
		Confidence: windowConfidence(reading.Score, combinedScore),
	}
}

func planningWindow(earth domain.EarthProfile, combined domain.CombinedAnalysis) domain.ActivityWindow {
	reading := earth.Day.Activities.Get(domain.ActivityPlanning)
	when := earth.DailyTiming.OptimalTiming
	if when == "" {
		when = safePlanningTime
	}
	return domain.ActivityWindow{
		Time:       when,
		StartHour:  textOnlyWindow,
		Reason:     fmt.Sprintf("%s.", reading.Guidance),
		Confidence: windowConfidence(reading.Score, combined.ConfidenceScore),
	}
}

func bestFor(earth domain.EarthProfile) []string {
	var out []string
	for _, a := range engine.BestActivities(earth.Day, bestForLimit) {
		if earth.Day.Activities.Get(a).Score >= bestForFloor {
			out = append(out, a.Label())
		}
	}
	if rule, ok := timingBestFor[earth.DailyTiming.Timing]; ok {
		out = append(out, rule)
	}
	if len(out) == 0 {
		out = append(out, defaultBestFor)
	}
	return out
}

func avoid(earth domain.EarthProfile) []string {
	var out []string
	for _, a := range domain.AllActivities() {
		if earth.Day.Activities.Get(a).Score < avoidCeiling {
			out = append(out, a.Label())
		}
	}
	if rule, ok := timingAvoid[earth.DailyTiming.Timing]; ok {
		out = append(out, rule)
	}
	if earth.Biorhythm.Available {
		if earth.Biorhythm.Physical.Percent < lowStamina {
			out = append(out, lowStaminaAvoid)
		}
		if earth.Biorhythm.Composite < lowComposite {
			out = append(out, lowFocusAvoid)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultAvoid)
	}
	return out
}

func opportunity(earth domain.EarthProfile) string {
	best := engine.BestActivities(earth.Day, 1)
	if len(best) == 0 {
		return safeOpportunity
	}
	return activityOpportunity[best[0]]
}

type scoredComponent struct {
	c     component
	score int
}

// caution picks the weakest component score. Placeholder scores for missing
// inputs are skipped.
func caution(combined domain.CombinedAnalysis) string {
	a := combined.Alignment
	candidates := []scoredComponent{
		{componentTiming, a.SymbolicTiming},
		{componentElement, a.FiveElement},
		{componentDay, a.DayAuspiciousness},
		{componentPace, a.LunarInfluence},
		{componentRhythm, a.ConstitutionLunar},
	}
	if combined.BiorhythmAvailable {
		candidates = append(candidates, scoredComponent{componentStamina, a.Biorhythm})
	}
	if combined.AstrologyIncluded {
		candidates = append(candidates, scoredComponent{componentStyle, a.Astrology})
	}

	weakest := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.score < weakest.score {
			weakest = cand
		}
	}
	return componentCaution[weakest.c]
}

func safeInsights(hour int, earth domain.EarthProfile, combined domain.CombinedAnalysis) domain.BusinessInsights {
	window := func(h int, a domain.Activity, combinedScore int, reason string) domain.ActivityWindow {
		return domain.ActivityWindow{
			Time:       formatWindow(h),
			StartHour:  ((h % 24) + 24) % 24,
			Reason:     reason,
			Confidence: windowConfidence(earth.Day.Activities.Get(a).Score, combinedScore),
		}
	}

	return domain.BusinessInsights{
		TopPriority: safeTopPriority,
		Meetings:    window(hour, domain.ActivityMeetings, combined.OverallAlignment, safeMeetingsReason),
		Decisions:   window(hour+1, domain.ActivityDecisions, combined.Alignment.SymbolicTiming, safeDecisionsReason),
		Deals:       window(hour-1, domain.ActivityDeals, combined.PerfectDayScore, safeDealsReason),
		Planning: domain.ActivityWindow{
			Time:       safePlanningTime,
			StartHour:  textOnlyWindow,
			Reason:     safePlanningReason,
			Confidence: windowConfidence(earth.Day.Activities.Get(domain.ActivityPlanning).Score, combined.ConfidenceScore),
		},
		BestFor:     []string{safeBestFor},
		Avoid:       []string{safeAvoid},
		Opportunity: safeOpportunity,
		Caution:     safeCaution,
		OptimalHour: hour,
		SafeMode:    true,
	}
}
