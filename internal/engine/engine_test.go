package engine

import (
	"math"
	"testing"
	"time"

	"github.com/kapu/alignment-bot-go/internal/calculator"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/profile"
)

func scenario(t *testing.T, birthPlace string) (domain.PersonalProfile, domain.EarthProfile) {
	t.Helper()
	b := profile.NewBuilder(nil)
	personal, err := b.BuildPersonalProfile("1990-05-15", birthPlace)
	if err != nil {
		t.Fatalf("BuildPersonalProfile error = %v", err)
	}
	earth := b.BuildEarthProfile(time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC),
		profile.WithBirthDate(personal.BirthDate))
	return personal, earth
}

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSymbolic + WeightElement + WeightDay + WeightLunar + WeightConstitutionLunar
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights sum to %v", sum)
	}
}

func TestSymbolicAlignment(t *testing.T) {
	v := func(n int, timing domain.TimingCategory, energy domain.EnergyLevel) domain.SymbolicReading {
		return domain.SymbolicReading{Number: n, Timing: timing, Energy: energy}
	}
	tests := []struct {
		name  string
		birth domain.SymbolicReading
		daily domain.SymbolicReading
		want  int
	}{
		{"same variant", v(5, domain.TimingAct, domain.EnergyHigh), v(5, domain.TimingAct, domain.EnergyHigh), 100},
		{"same timing and energy", v(1, domain.TimingAct, domain.EnergyHigh), v(4, domain.TimingAct, domain.EnergyHigh), 90},
		{"same timing", v(1, domain.TimingWait, domain.EnergyHigh), v(2, domain.TimingWait, domain.EnergyLow), 80},
		{"same energy", v(1, domain.TimingPrepare, domain.EnergyLow), v(2, domain.TimingAct, domain.EnergyLow), 75},
		{"act against wait", v(1, domain.TimingAct, domain.EnergyModerate), v(2, domain.TimingWait, domain.EnergyHigh), 40},
		{"reflect against act", v(1, domain.TimingReflect, domain.EnergyModerate), v(2, domain.TimingAct, domain.EnergyLow), 40},
		{"high against low", v(1, domain.TimingPrepare, domain.EnergyHigh), v(2, domain.TimingWait, domain.EnergyLow), 40},
		{"no relation", v(1, domain.TimingPrepare, domain.EnergyModerate), v(2, domain.TimingWait, domain.EnergyHigh), 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SymbolicAlignment(tt.birth, tt.daily); got != tt.want {
				t.Fatalf("SymbolicAlignment = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestElementAlignment(t *testing.T) {
	tests := []struct {
		birth, daily domain.Element
		want         int
	}{
		{domain.ElementWood, domain.ElementWood, 100},
		{domain.ElementWood, domain.ElementFire, 85},
		{domain.ElementFire, domain.ElementWood, 75},
		{domain.ElementWood, domain.ElementEarth, 45},
		{domain.ElementEarth, domain.ElementWood, 35},
		{domain.ElementMetal, domain.ElementEarth, 75},
		{domain.ElementWater, domain.ElementFire, 45},
	}
	for _, tt := range tests {
		if got := ElementAlignment(tt.birth, tt.daily); got != tt.want {
			t.Errorf("ElementAlignment(%s, %s) = %d, want %d", tt.birth, tt.daily, got, tt.want)
		}
	}
}

func TestConstitutionLunarAlignment(t *testing.T) {
	if got := ConstitutionLunarAlignment(domain.ConstitutionPitta, domain.LunarFull); got != 90 {
		t.Fatalf("pitta/full = %d", got)
	}
	if got := ConstitutionLunarAlignment(domain.ConstitutionVata, domain.LunarWaningCrescent); got != 90 {
		t.Fatalf("vata/waning crescent = %d", got)
	}
	if got := ConstitutionLunarAlignment(domain.ConstitutionKapha, domain.LunarWaxingCrescent); got != 75 {
		t.Fatalf("kapha/waxing crescent = %d", got)
	}
	if got := ConstitutionLunarAlignment("", domain.LunarFull); got != 75 {
		t.Fatalf("missing constitution = %d", got)
	}
}

func TestAstrologyAlignment(t *testing.T) {
	score, included := AstrologyAlignment(domain.AstrologyProfile{}, domain.TimingAct)
	if included || score != NeutralAstrologyScore {
		t.Fatalf("unavailable astrology = %d/%v", score, included)
	}

	cardinal := domain.AstrologyProfile{Available: true, Modality: domain.ModalityCardinal}
	if score, _ := AstrologyAlignment(cardinal, domain.TimingAct); score != 90 {
		t.Fatalf("cardinal/act = %d", score)
	}
	fixed := domain.AstrologyProfile{Available: true, Modality: domain.ModalityFixed}
	if score, _ := AstrologyAlignment(fixed, domain.TimingReflect); score != 85 {
		t.Fatalf("fixed/reflect = %d", score)
	}
	if score, _ := AstrologyAlignment(fixed, domain.TimingAct); score != 65 {
		t.Fatalf("fixed/act = %d", score)
	}
}

func TestSynthesizeScenario(t *testing.T) {
	personal, earth := scenario(t, "")
	got := Synthesize(personal, earth)

	want := domain.AlignmentScores{
		SymbolicTiming:    75,
		FiveElement:       75,
		DayAuspiciousness: 92,
		LunarInfluence:    55,
		Biorhythm:         30,
		ConstitutionLunar: 75,
		Astrology:         NeutralAstrologyScore,
	}
	if got.Alignment != want {
		t.Fatalf("alignment = %+v, want %+v", got.Alignment, want)
	}
	if got.OverallAlignment != 67 {
		t.Errorf("overall = %d, want 67", got.OverallAlignment)
	}
	if got.PerfectDayScore != 77 {
		t.Errorf("perfect day = %d, want 77", got.PerfectDayScore)
	}
	if got.ConfidenceScore <= 50 {
		t.Errorf("confidence = %d, want > 50", got.ConfidenceScore)
	}
	if got.AstrologyIncluded || !got.BiorhythmAvailable {
		t.Errorf("flags = astrology %v, biorhythm %v", got.AstrologyIncluded, got.BiorhythmAvailable)
	}
	if got.EnergyType.Name != "The Negotiator" {
		t.Errorf("energy type = %q", got.EnergyType.Name)
	}
	if got.PeakHours != "10:00–12:00" {
		t.Errorf("peak hours = %q", got.PeakHours)
	}
	if len(got.OptimalWindows) != 4 || got.OptimalWindows[0] != earth.DailyTiming.OptimalTiming {
		t.Errorf("optimal windows = %v", got.OptimalWindows)
	}
}

func TestSynthesizeWithBirthPlaceIncludesAstrology(t *testing.T) {
	personal, earth := scenario(t, "Seoul")
	got := Synthesize(personal, earth)
	if !got.AstrologyIncluded {
		t.Fatal("astrology should be included with a birthplace")
	}
	if len(got.Scores()) != 7 {
		t.Fatalf("scores = %v, want 7 entries", got.Scores())
	}
}

func TestSynthesizeIdentity(t *testing.T) {
	variant := calculator.SymbolicVariant(10)
	personal := domain.PersonalProfile{
		LifePath:     domain.NumerologyReading{Number: 5},
		BirthTiming:  variant,
		Constitution: domain.ConstitutionReading{Type: domain.ConstitutionPitta, PeakHours: "11:00–13:00"},
		Element:      domain.ElementReading{Element: domain.ElementFire},
	}
	earth := domain.EarthProfile{
		DailyTiming: variant,
		Element:     domain.ElementReading{Element: domain.ElementFire},
		Lunar:       domain.LunarReading{Phase: domain.LunarFull, Influence: 100},
		Day:         domain.DayReading{Overall: 100},
		Biorhythm:   calculator.NeutralBiorhythmReading(),
	}

	got := Synthesize(personal, earth)
	if got.Alignment.SymbolicTiming != 100 || got.Alignment.FiveElement != 100 {
		t.Fatalf("identity alignment = %+v", got.Alignment)
	}
	if got.BiorhythmAvailable || got.Alignment.Biorhythm != NeutralBiorhythmScore {
		t.Fatalf("biorhythm = %d/%v", got.Alignment.Biorhythm, got.BiorhythmAvailable)
	}
}

func TestSynthesizeEmptyInputs(t *testing.T) {
	got := Synthesize(domain.PersonalProfile{}, domain.EarthProfile{})
	for _, score := range got.Scores() {
		if score < 0 || score > 100 {
			t.Fatalf("score out of range: %d", score)
		}
	}
	if got.PeakHours != DefaultPeakHours {
		t.Fatalf("peak hours = %q", got.PeakHours)
	}
}

func TestSynthesizeRangesAndDeterminism(t *testing.T) {
	b := profile.NewBuilder(nil)
	births := []string{"1990-05-15", "1985-11-29", "2000-02-29", "1977-07-07", "1962-12-31"}
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, birth := range births {
		personal, err := b.BuildPersonalProfile(birth, "Lisbon")
		if err != nil {
			t.Fatalf("BuildPersonalProfile(%s) error = %v", birth, err)
		}
		for d := 0; d < 120; d += 7 {
			earth := b.BuildEarthProfile(start.AddDate(0, 0, d), profile.WithBirthDate(personal.BirthDate))
			first := Synthesize(personal, earth)
			second := Synthesize(personal, earth)

			for _, v := range []int{first.OverallAlignment, first.PerfectDayScore, first.ConfidenceScore} {
				if v < 0 || v > 100 {
					t.Fatalf("%s +%d: value out of range: %d", birth, d, v)
				}
			}
			if first.Alignment != second.Alignment || first.ConfidenceScore != second.ConfidenceScore ||
				first.PerfectDayScore != second.PerfectDayScore || first.EnergyType != second.EnergyType {
				t.Fatalf("%s +%d: synthesis is not deterministic", birth, d)
			}
		}
	}
}

func TestConfidence(t *testing.T) {
	if got := Confidence([]int{80, 80, 80, 80, 80, 80}); got != 100 {
		t.Fatalf("uniform confidence = %d, want 100", got)
	}
	if got := Confidence([]int{0, 100, 0, 100, 0, 100}); got != 0 {
		t.Fatalf("spread confidence = %d, want 0", got)
	}
}

func TestArchetypeFor(t *testing.T) {
	if got := ArchetypeFor(3, 5); got.Name != "The Negotiator" {
		t.Fatalf("ArchetypeFor(3,5) = %q", got.Name)
	}
	if got := ArchetypeFor(11, 7); got.Name != archetypes[0].Name {
		t.Fatalf("ArchetypeFor(11,7) = %q", got.Name)
	}
}

func TestBestActivities(t *testing.T) {
	day := calculator.DayOf(time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC))
	got := BestActivities(day, 3)
	want := []domain.Activity{domain.ActivityDeals, domain.ActivityDecisions, domain.ActivityMeetings}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BestActivities = %v, want %v", got, want)
		}
	}
}
