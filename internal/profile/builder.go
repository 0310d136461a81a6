// Package profile assembles calculator readings into the personal, earth and
// challenges profiles.
package profile

import (
	"strings"
	"time"

	"github.com/kapu/alignment-bot-go/internal/calculator"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

// Calculators is the set of subsystem calculators the builders consume.
type Calculators interface {
	LifePath(birth time.Time) domain.NumerologyReading
	DayBorn(birth time.Time) domain.DayBornReading
	BirthTiming(birth time.Time) domain.SymbolicReading
	DailyTiming(date time.Time) domain.SymbolicReading
	Constitution(birth time.Time) domain.ConstitutionReading
	BirthElement(birth time.Time) domain.ElementReading
	DailyElement(date time.Time) domain.ElementReading
	Zodiac(birth time.Time) domain.ZodiacReading
	Astrology(birth time.Time, birthPlace string) domain.AstrologyProfile
	Lunar(date time.Time) domain.LunarReading
	Day(date time.Time) domain.DayReading
	DayNumber(date time.Time) int
	Biorhythm(birth, date time.Time) domain.BiorhythmReading
	Challenges(birth time.Time, name string) domain.ChallengesProfile
}

var birthDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"2006.01.02",
}

// ParseBirthDate parses a calendar date in one of the accepted layouts. The
// result is midnight UTC.
func ParseBirthDate(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, errors.NewInvalidBirthDateError(input, nil)
	}

	var lastErr error
	for _, layout := range birthDateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errors.NewInvalidBirthDateError(input, lastErr)
}

// Builder builds profiles from a Calculators bundle.
type Builder struct {
	calc Calculators
}

// NewBuilder returns a Builder. A nil bundle selects calculator.Default.
func NewBuilder(calc Calculators) *Builder {
	if calc == nil {
		calc = calculator.Default{}
	}
	return &Builder{calc: calc}
}

// BuildPersonalProfile computes the per-user profile from birth data.
func (b *Builder) BuildPersonalProfile(birthDate, birthPlace string) (domain.PersonalProfile, error) {
	birth, err := ParseBirthDate(birthDate)
	if err != nil {
		return domain.PersonalProfile{}, err
	}

	return domain.PersonalProfile{
		BirthDate:    birth,
		LifePath:     b.calc.LifePath(birth),
		DayBorn:      b.calc.DayBorn(birth),
		BirthTiming:  b.calc.BirthTiming(birth),
		Constitution: b.calc.Constitution(birth),
		Element:      b.calc.BirthElement(birth),
		Zodiac:       b.calc.Zodiac(birth),
		Astrology:    b.calc.Astrology(birth, birthPlace),
	}, nil
}

type earthOptions struct {
	birth    time.Time
	hasBirth bool
}

// EarthOption customizes BuildEarthProfile.
type EarthOption func(*earthOptions)

// WithBirthDate threads a birth date in so the biorhythm can be computed.
// A zero time is ignored.
func WithBirthDate(birth time.Time) EarthOption {
	return func(o *earthOptions) {
		if birth.IsZero() {
			return
		}
		o.birth = birth
		o.hasBirth = true
	}
}

// BuildEarthProfile computes the date profile. Without WithBirthDate the
// biorhythm is the neutral placeholder.
func (b *Builder) BuildEarthProfile(date time.Time, opts ...EarthOption) domain.EarthProfile {
	var o earthOptions
	for _, opt := range opts {
		opt(&o)
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	biorhythm := calculator.NeutralBiorhythmReading()
	if o.hasBirth {
		biorhythm = b.calc.Biorhythm(o.birth, day)
	}

	return domain.EarthProfile{
		Date:        day,
		Lunar:       b.calc.Lunar(day),
		Day:         b.calc.Day(day),
		DailyTiming: b.calc.DailyTiming(day),
		Element:     b.calc.DailyElement(day),
		DayNumber:   b.calc.DayNumber(day),
		Biorhythm:   biorhythm,
	}
}

// BuildChallengesProfile derives the karmic challenges for a birth date and
// name. An empty name falls back to calculator.DefaultChallengeName.
func (b *Builder) BuildChallengesProfile(birthDate, name string) (domain.ChallengesProfile, error) {
	birth, err := ParseBirthDate(birthDate)
	if err != nil {
		return domain.ChallengesProfile{}, err
	}
	return b.calc.Challenges(birth, name), nil
}

// WithBiorhythm returns a copy of a date-only earth profile with the
// biorhythm computed for birth. The input is not modified.
func (b *Builder) WithBiorhythm(earth domain.EarthProfile, birth time.Time) domain.EarthProfile {
	out := earth
	if birth.IsZero() {
		out.Biorhythm = calculator.NeutralBiorhythmReading()
		return out
	}
	out.Biorhythm = b.calc.Biorhythm(birth, earth.Date)
	return out
}
