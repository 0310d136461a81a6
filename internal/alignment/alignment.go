// Package alignment is the entry point to the scoring core: profile builders,
// synthesis and insight generation behind four calls.
package alignment

import (
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/engine"
	"github.com/kapu/alignment-bot-go/internal/insight"
	"github.com/kapu/alignment-bot-go/internal/profile"
)

// Result pairs the combined analysis with the insights derived from it.
type Result struct {
	Combined domain.CombinedAnalysis `json:"combined"`
	Insights domain.BusinessInsights `json:"insights"`
}

var builder = profile.NewBuilder(nil)

// BuildPersonalProfile parses the birth date and computes the personal
// profile. An empty birthPlace yields the documented astrology defaults.
func BuildPersonalProfile(birthDate, birthPlace string) (domain.PersonalProfile, error) {
	return builder.BuildPersonalProfile(birthDate, birthPlace)
}

// BuildEarthProfile computes the date profile. Pass profile.WithBirthDate to
// include the biorhythm.
func BuildEarthProfile(date time.Time, opts ...profile.EarthOption) domain.EarthProfile {
	return builder.BuildEarthProfile(date, opts...)
}

// PersonalizeEarth returns a copy of a shared date-only earth profile with
// the biorhythm for birth filled in.
func PersonalizeEarth(earth domain.EarthProfile, birth time.Time) domain.EarthProfile {
	return builder.WithBiorhythm(earth, birth)
}

// BuildChallengesProfile computes the challenges profile for a birth date and
// optional name.
func BuildChallengesProfile(birthDate, name string) (domain.ChallengesProfile, error) {
	return builder.BuildChallengesProfile(birthDate, name)
}

// SynthesizeAndExplain runs the engine and the insight generator.
func SynthesizeAndExplain(personal domain.PersonalProfile, earth domain.EarthProfile) Result {
	combined := engine.Synthesize(personal, earth)
	return Result{
		Combined: combined,
		Insights: insight.GenerateInsights(personal, earth, combined),
	}
}

// ForDate is a convenience over the builders for a single user and date. The
// birth date is threaded into the earth profile.
func ForDate(birthDate, birthPlace string, date time.Time) (Result, error) {
	personal, err := BuildPersonalProfile(birthDate, birthPlace)
	if err != nil {
		return Result{}, err
	}
	earth := BuildEarthProfile(date, profile.WithBirthDate(personal.BirthDate))
	return SynthesizeAndExplain(personal, earth), nil
}
