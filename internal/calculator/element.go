package calculator

import (
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

// elementCycle is the stem order used for dates.
var elementCycle = [5]domain.Element{
	domain.ElementWood,
	domain.ElementFire,
	domain.ElementEarth,
	domain.ElementMetal,
	domain.ElementWater,
}

var elementGuidance = map[domain.Element]string{
	domain.ElementWood:  "Growth focus: expand, recruit and start.",
	domain.ElementFire:  "Visibility focus: pitch, present and rally people.",
	domain.ElementEarth: "Stability focus: consolidate, support and deliver.",
	domain.ElementMetal: "Precision focus: cut scope, audit and decide.",
	domain.ElementWater: "Insight focus: research, listen and adapt.",
}

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ElementOfYear maps a birth year onto an element by its last digit.
func ElementOfYear(year int) domain.ElementReading {
	digit := year % 10
	if digit < 0 {
		digit += 10
	}

	var element domain.Element
	switch digit {
	case 0, 1:
		element = domain.ElementMetal
	case 2, 3:
		element = domain.ElementWater
	case 4, 5:
		element = domain.ElementWood
	case 6, 7:
		element = domain.ElementFire
	default:
		element = domain.ElementEarth
	}

	return domain.ElementReading{Element: element, Guidance: elementGuidance[element]}
}

// ElementOfDay maps a calendar date onto an element by its ten-day stem.
func ElementOfDay(date time.Time) domain.ElementReading {
	days := civilDaysSince(epoch, date)
	stem := days % 10
	if stem < 0 {
		stem += 10
	}
	element := elementCycle[stem/2]
	return domain.ElementReading{Element: element, Guidance: elementGuidance[element]}
}

// civilDaysSince counts whole calendar days between two dates, ignoring the
// time of day and location of either value.
func civilDaysSince(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
