package calculator

import (
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

var constitutionTable = map[domain.Constitution]domain.ConstitutionReading{
	domain.ConstitutionVata: {
		Type:      domain.ConstitutionVata,
		PeakHours: "14:00–16:00",
		Guidance:  "Quick and inventive; anchor ideas with a written plan.",
	},
	domain.ConstitutionPitta: {
		Type:      domain.ConstitutionPitta,
		PeakHours: "11:00–13:00",
		Guidance:  "Driven and precise; schedule recovery between intense sessions.",
	},
	domain.ConstitutionKapha: {
		Type:      domain.ConstitutionKapha,
		PeakHours: "10:00–12:00",
		Guidance:  "Steady and reliable; start early to build momentum.",
	},
}

// ConstitutionOf derives the constitution type from the birth season.
func ConstitutionOf(birth time.Time) domain.ConstitutionReading {
	switch birth.Month() {
	case time.March, time.April, time.May:
		return constitutionTable[domain.ConstitutionKapha]
	case time.June, time.July, time.August, time.September:
		return constitutionTable[domain.ConstitutionPitta]
	default:
		return constitutionTable[domain.ConstitutionVata]
	}
}
