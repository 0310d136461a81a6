// Package calculator holds the subsystem calculators: static tables and
// closed-form date formulas. Every function is pure and safe for concurrent
// use.
package calculator

import (
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/numerology"
)

// Default bundles the package functions behind the method set the profile
// builders depend on.
type Default struct{}

func (Default) LifePath(birth time.Time) domain.NumerologyReading { return LifePathOf(birth) }

func (Default) DayBorn(birth time.Time) domain.DayBornReading { return DayBornOf(birth) }

func (Default) BirthTiming(birth time.Time) domain.SymbolicReading { return BirthTiming(birth) }

func (Default) DailyTiming(date time.Time) domain.SymbolicReading { return DailyTiming(date) }

func (Default) Constitution(birth time.Time) domain.ConstitutionReading {
	return ConstitutionOf(birth)
}

func (Default) BirthElement(birth time.Time) domain.ElementReading {
	return ElementOfYear(birth.Year())
}

func (Default) DailyElement(date time.Time) domain.ElementReading { return ElementOfDay(date) }

func (Default) Zodiac(birth time.Time) domain.ZodiacReading { return ZodiacOf(birth) }

func (Default) Astrology(birth time.Time, birthPlace string) domain.AstrologyProfile {
	return AstrologyOf(birth, birthPlace)
}

func (Default) Lunar(date time.Time) domain.LunarReading { return LunarOf(date) }

func (Default) Day(date time.Time) domain.DayReading { return DayOf(date) }

func (Default) DayNumber(date time.Time) int { return numerology.DayNumber(date) }

func (Default) Biorhythm(birth, date time.Time) domain.BiorhythmReading {
	return BiorhythmOf(birth, date)
}

func (Default) Challenges(birth time.Time, name string) domain.ChallengesProfile {
	return ChallengesOf(birth, name)
}
