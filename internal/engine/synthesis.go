// Package engine combines a personal profile and an earth profile into
// alignment scores, a composite day score and a confidence measure.
package engine

import (
	"fmt"
	"sort"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

// Weights of the perfect-day score. They sum to 1.
const (
	WeightSymbolic          = 0.25
	WeightElement           = 0.20
	WeightDay               = 0.30
	WeightLunar             = 0.15
	WeightConstitutionLunar = 0.10
)

// DefaultPeakHours is reported when the profile carries no constitution.
const DefaultPeakHours = "10:00–12:00"

const bestActivityCount = 3

// Synthesize is pure and never fails; missing optional inputs fall back to
// neutral scores.
func Synthesize(personal domain.PersonalProfile, earth domain.EarthProfile) domain.CombinedAnalysis {
	biorhythm, bioAvailable := BiorhythmAlignment(earth.Biorhythm)
	astrology, astroIncluded := AstrologyAlignment(personal.Astrology, earth.DailyTiming.Timing)

	combined := domain.CombinedAnalysis{
		Alignment: domain.AlignmentScores{
			SymbolicTiming:    SymbolicAlignment(personal.BirthTiming, earth.DailyTiming),
			FiveElement:       ElementAlignment(personal.Element.Element, earth.Element.Element),
			DayAuspiciousness: clamp(earth.Day.Overall, 0, 100),
			LunarInfluence:    clamp(earth.Lunar.Influence, 0, 100),
			Biorhythm:         biorhythm,
			ConstitutionLunar: ConstitutionLunarAlignment(personal.Constitution.Type, earth.Lunar.Phase),
			Astrology:         astrology,
		},
		AstrologyIncluded:  astroIncluded,
		BiorhythmAvailable: bioAvailable,
	}

	scores := combined.Scores()
	combined.OverallAlignment = clamp(round(mean(scores)), 0, 100)
	combined.PerfectDayScore = PerfectDayScore(combined.Alignment)
	combined.ConfidenceScore = Confidence(scores)
	combined.EnergyType = ArchetypeFor(personal.LifePath.Number, earth.DayNumber)

	combined.PeakHours = personal.Constitution.PeakHours
	if combined.PeakHours == "" {
		combined.PeakHours = DefaultPeakHours
	}
	combined.OptimalWindows = optimalWindows(earth)

	return combined
}

// PerfectDayScore is the weighted composite of five alignment scores.
func PerfectDayScore(a domain.AlignmentScores) int {
	score := WeightSymbolic*float64(a.SymbolicTiming) +
		WeightElement*float64(a.FiveElement) +
		WeightDay*float64(a.DayAuspiciousness) +
		WeightLunar*float64(a.LunarInfluence) +
		WeightConstitutionLunar*float64(a.ConstitutionLunar)
	return clamp(round(score), 0, 100)
}

// Confidence falls as the component scores disagree: 100 minus twice their
// population standard deviation, clamped to [0,100].
func Confidence(scores []int) int {
	return clamp(round(100-2*populationStdDev(scores)), 0, 100)
}

func optimalWindows(earth domain.EarthProfile) []string {
	windows := make([]string, 0, bestActivityCount+1)
	if earth.DailyTiming.OptimalTiming != "" {
		windows = append(windows, earth.DailyTiming.OptimalTiming)
	}
	for _, a := range BestActivities(earth.Day, bestActivityCount) {
		reading := earth.Day.Activities.Get(a)
		if reading.Guidance == "" {
			continue
		}
		windows = append(windows, fmt.Sprintf("%s: %s", a.Label(), reading.Guidance))
	}
	return windows
}

// BestActivities returns up to n activities ordered by descending day score.
// Ties keep declaration order.
func BestActivities(day domain.DayReading, n int) []domain.Activity {
	activities := domain.AllActivities()
	sort.SliceStable(activities, func(i, j int) bool {
		return day.Activities.Get(activities[i]).Score > day.Activities.Get(activities[j]).Score
	})
	if n < len(activities) {
		activities = activities[:n]
	}
	return activities
}
