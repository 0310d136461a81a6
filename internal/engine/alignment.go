package engine

import "github.com/kapu/alignment-bot-go/internal/domain"

// Neutral scores used when an input is missing.
const (
	NeutralBiorhythmScore = 50
	NeutralAstrologyScore = 70
)

// generates maps each element to the one it feeds.
var generates = map[domain.Element]domain.Element{
	domain.ElementWood:  domain.ElementFire,
	domain.ElementFire:  domain.ElementEarth,
	domain.ElementEarth: domain.ElementMetal,
	domain.ElementMetal: domain.ElementWater,
	domain.ElementWater: domain.ElementWood,
}

// destroys maps each element to the one it overcomes.
var destroys = map[domain.Element]domain.Element{
	domain.ElementWood:  domain.ElementEarth,
	domain.ElementEarth: domain.ElementWater,
	domain.ElementWater: domain.ElementFire,
	domain.ElementFire:  domain.ElementMetal,
	domain.ElementMetal: domain.ElementWood,
}

// favourablePhases lists the lunar phases that suit each constitution.
var favourablePhases = map[domain.Constitution][2]domain.LunarPhase{
	domain.ConstitutionVata:  {domain.LunarNew, domain.LunarWaningCrescent},
	domain.ConstitutionPitta: {domain.LunarFull, domain.LunarWaxingGibbous},
	domain.ConstitutionKapha: {domain.LunarWaningGibbous, domain.LunarLastQuarter},
}

// SymbolicAlignment compares the birth and daily timing variants. The first
// matching rule wins.
func SymbolicAlignment(birth, daily domain.SymbolicReading) int {
	switch {
	case birth.Number == daily.Number:
		return 100
	case birth.Timing == daily.Timing && birth.Energy == daily.Energy:
		return 90
	case birth.Timing == daily.Timing:
		return 80
	case birth.Energy == daily.Energy:
		return 75
	case timingConflict(birth.Timing, daily.Timing) || energyConflict(birth.Energy, daily.Energy):
		return 40
	default:
		return 65
	}
}

func timingConflict(a, b domain.TimingCategory) bool {
	pair := func(x, y domain.TimingCategory) bool {
		return (a == x && b == y) || (a == y && b == x)
	}
	return pair(domain.TimingAct, domain.TimingWait) || pair(domain.TimingAct, domain.TimingReflect)
}

func energyConflict(a, b domain.EnergyLevel) bool {
	return (a == domain.EnergyHigh && b == domain.EnergyLow) || (a == domain.EnergyLow && b == domain.EnergyHigh)
}

// ElementAlignment scores the birth element against the daily element over
// the generating and destroying cycles.
func ElementAlignment(birth, daily domain.Element) int {
	switch {
	case birth == daily:
		return 100
	case generates[birth] == daily:
		return 85
	case generates[daily] == birth:
		return 75
	case destroys[birth] == daily:
		return 45
	case destroys[daily] == birth:
		return 35
	default:
		return 60
	}
}

// ConstitutionLunarAlignment is 90 for a favourable phase and 75 otherwise.
func ConstitutionLunarAlignment(c domain.Constitution, phase domain.LunarPhase) int {
	for _, p := range favourablePhases[c] {
		if p == phase {
			return 90
		}
	}
	return 75
}

// BiorhythmAlignment passes the composite through, or the neutral score when
// the reading is a placeholder.
func BiorhythmAlignment(b domain.BiorhythmReading) (score int, available bool) {
	if !b.Available {
		return NeutralBiorhythmScore, false
	}
	return clamp(b.Composite, 0, 100), true
}

// AstrologyAlignment matches the ascendant modality against the daily timing
// category. It reports false when the profile has no birthplace.
func AstrologyAlignment(a domain.AstrologyProfile, daily domain.TimingCategory) (score int, included bool) {
	if !a.Available {
		return NeutralAstrologyScore, false
	}
	switch {
	case a.Modality == domain.ModalityCardinal && daily == domain.TimingAct:
		return 90, true
	case a.Modality == domain.ModalityFixed && (daily == domain.TimingWait || daily == domain.TimingReflect):
		return 85, true
	case a.Modality == domain.ModalityMutable && daily == domain.TimingPrepare:
		return 85, true
	default:
		return 65, true
	}
}
