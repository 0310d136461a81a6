package calculator

import (
	"math"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

const synodicMonthDays = 29.530588853

// referenceNewMoon is a known new moon used as the cycle origin.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

var lunarGuidance = [domain.LunarPhaseCount]string{
	"Good moment to set intentions for the next few weeks.",
	"Early traction: start small and build.",
	"Push through the first obstacles on new work.",
	"Refine and polish what is already moving.",
	"Visibility is high; present and share results.",
	"Share credit and pass knowledge on.",
	"Let go of work that is not paying off.",
	"Rest and consolidate before the next push.",
}

// LunarOf approximates the phase at noon UTC on the date's calendar day.
// Influence ranges from 50 at the new phase to 100 at the full phase.
func LunarOf(date time.Time) domain.LunarReading {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	elapsed := noon.Sub(referenceNewMoon).Hours() / 24

	age := math.Mod(elapsed, synodicMonthDays)
	if age < 0 {
		age += synodicMonthDays
	}

	phase := domain.LunarPhase(int(math.Floor(age/(synodicMonthDays/8)+0.5)) % domain.LunarPhaseCount)
	illumination := (1 - math.Cos(2*math.Pi*age/synodicMonthDays)) / 2
	influence := int(math.Round(50 + 50*illumination))

	return domain.LunarReading{
		Phase:     phase,
		Age:       math.Round(age*100) / 100,
		Influence: influence,
		Guidance:  lunarGuidance[phase],
	}
}
