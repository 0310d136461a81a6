package calculator

import (
	"fmt"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

// SymbolicVariantCount is the size of the symbolic timing table.
const SymbolicVariantCount = 64

// trigram is one half of a symbolic variant. The upper half of a variant
// decides its timing category and optimal timing text, the lower half its
// energy level.
type trigram struct {
	name          string
	timing        domain.TimingCategory
	energy        domain.EnergyLevel
	optimalTiming string
}

var trigrams = [8]trigram{
	{"Heaven", domain.TimingAct, domain.EnergyHigh, "Early morning, before the first meeting"},
	{"Lake", domain.TimingPrepare, domain.EnergyModerate, "Late morning, after the first check-in"},
	{"Fire", domain.TimingAct, domain.EnergyHigh, "Midday, while focus is sharpest"},
	{"Thunder", domain.TimingAct, domain.EnergyHigh, "First thing in the morning"},
	{"Wind", domain.TimingPrepare, domain.EnergyModerate, "Mid-afternoon, once the inbox is clear"},
	{"Water", domain.TimingWait, domain.EnergyLow, "Late afternoon, in a quiet block"},
	{"Mountain", domain.TimingReflect, domain.EnergyLow, "End of day, during the wrap-up"},
	{"Earth", domain.TimingWait, domain.EnergyModerate, "Any unhurried thirty-minute block"},
}

var timingGuidance = map[domain.TimingCategory]string{
	domain.TimingAct:     "Move decisively on priorities that are ready to ship",
	domain.TimingWait:    "Hold commitments until the missing facts arrive",
	domain.TimingPrepare: "Line up resources and stakeholders before you push forward",
	domain.TimingReflect: "Review results and adjust the plan before adding new work",
}

var energyGuidance = map[domain.EnergyLevel]string{
	domain.EnergyHigh:     "pace is fast, so protect your focus blocks",
	domain.EnergyModerate: "pace is steady, so batch similar tasks",
	domain.EnergyLow:      "pace is slow, so keep the agenda short",
}

// SymbolicVariant returns the table entry at index 0-63. Out of range indexes
// wrap.
func SymbolicVariant(index int) domain.SymbolicReading {
	index %= SymbolicVariantCount
	if index < 0 {
		index += SymbolicVariantCount
	}

	upper := trigrams[index/8]
	lower := trigrams[index%8]

	return domain.SymbolicReading{
		Number:        index + 1,
		Name:          fmt.Sprintf("%s over %s", upper.name, lower.name),
		Timing:        upper.timing,
		Energy:        lower.energy,
		Guidance:      fmt.Sprintf("%s; %s.", timingGuidance[upper.timing], energyGuidance[lower.energy]),
		OptimalTiming: upper.optimalTiming,
	}
}

// DailyTiming selects the variant for a calendar date by day of year.
func DailyTiming(date time.Time) domain.SymbolicReading {
	return SymbolicVariant(date.YearDay() % SymbolicVariantCount)
}

// BirthTiming selects the variant for a birth date by year plus day of year.
func BirthTiming(birth time.Time) domain.SymbolicReading {
	return SymbolicVariant((birth.Year() + birth.YearDay()) % SymbolicVariantCount)
}
