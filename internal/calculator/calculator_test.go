package calculator

import (
	"testing"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSymbolicVariantTable(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < SymbolicVariantCount; i++ {
		v := SymbolicVariant(i)
		if v.Number != i+1 {
			t.Fatalf("variant %d: number = %d", i, v.Number)
		}
		if v.Name == "" || v.Guidance == "" || v.OptimalTiming == "" {
			t.Fatalf("variant %d has empty text: %+v", i, v)
		}
		if seen[v.Name] {
			t.Fatalf("duplicate variant name %q", v.Name)
		}
		seen[v.Name] = true
	}

	if got := SymbolicVariant(64 + 3); got.Number != 4 {
		t.Fatalf("wrapped variant number = %d, want 4", got.Number)
	}
	if got := SymbolicVariant(-1); got.Number != 64 {
		t.Fatalf("negative variant number = %d, want 64", got.Number)
	}
}

func TestDailyAndBirthTiming(t *testing.T) {
	daily := DailyTiming(date(2026, time.January, 21))
	if daily.Number != 22 || daily.Timing != domain.TimingAct || daily.Energy != domain.EnergyLow {
		t.Fatalf("daily timing = %+v", daily)
	}

	birth := BirthTiming(date(1990, time.May, 15))
	if birth.Number != 14 || birth.Timing != domain.TimingPrepare || birth.Energy != domain.EnergyLow {
		t.Fatalf("birth timing = %+v", birth)
	}
}

func TestDayOf(t *testing.T) {
	day := DayOf(date(2026, time.January, 21))
	if day.Weekday != time.Wednesday || day.Overall != 92 {
		t.Fatalf("DayOf = %v/%d, want Wednesday/92", day.Weekday, day.Overall)
	}
	if got := day.Activities.Get(domain.ActivityDeals).Score; got != 94 {
		t.Fatalf("deals score = %d, want 94", got)
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		entry := weekdayTable[wd]
		if entry.overall < 0 || entry.overall > 100 {
			t.Fatalf("%v overall out of range: %d", wd, entry.overall)
		}
		for i, score := range entry.scores {
			if score < 0 || score > 100 {
				t.Fatalf("%v activity %d out of range: %d", wd, i, score)
			}
		}
	}
}

func TestLunarOf(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		phase     domain.LunarPhase
		influence int
	}{
		{"waxing crescent", date(2026, time.January, 21), domain.LunarWaxingCrescent, 55},
		{"full", date(2026, time.January, 3), domain.LunarFull, 100},
		{"new", date(2026, time.January, 18), domain.LunarNew, 50},
		{"first quarter", date(2024, time.June, 15), domain.LunarFirstQuarter, 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LunarOf(tt.date)
			if got.Phase != tt.phase {
				t.Errorf("phase = %v, want %v", got.Phase, tt.phase)
			}
			if got.Influence != tt.influence {
				t.Errorf("influence = %d, want %d", got.Influence, tt.influence)
			}
			if got.Guidance == "" {
				t.Error("guidance is empty")
			}
		})
	}
}

func TestLunarOfIgnoresClockTime(t *testing.T) {
	morning := time.Date(2026, time.January, 21, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.January, 21, 23, 0, 0, 0, time.UTC)
	if LunarOf(morning) != LunarOf(evening) {
		t.Fatal("lunar reading depends on the time of day")
	}
}

func TestElements(t *testing.T) {
	years := map[int]domain.Element{
		1990: domain.ElementMetal,
		1993: domain.ElementWater,
		1984: domain.ElementWood,
		1976: domain.ElementFire,
		1988: domain.ElementEarth,
	}
	for year, want := range years {
		if got := ElementOfYear(year).Element; got != want {
			t.Errorf("ElementOfYear(%d) = %s, want %s", year, got, want)
		}
	}

	if got := ElementOfDay(date(2026, time.January, 21)).Element; got != domain.ElementEarth {
		t.Fatalf("ElementOfDay = %s, want earth", got)
	}
	if got := ElementOfDay(date(1970, time.January, 1)).Element; got != domain.ElementWood {
		t.Fatalf("ElementOfDay(epoch) = %s, want wood", got)
	}
}

func TestBiorhythmOf(t *testing.T) {
	got := BiorhythmOf(date(1990, time.May, 15), date(2026, time.January, 21))
	if !got.Available {
		t.Fatal("expected available biorhythm")
	}
	if got.Physical.Percent != 0 || got.Emotional.Percent != 39 || got.Intellectual.Percent != 50 {
		t.Fatalf("percents = %d/%d/%d", got.Physical.Percent, got.Emotional.Percent, got.Intellectual.Percent)
	}
	if got.Composite != 30 {
		t.Fatalf("composite = %d, want 30", got.Composite)
	}
	if got.Physical.Phase != "trough" || got.Emotional.Phase != "falling" || got.Intellectual.Phase != "critical" {
		t.Fatalf("phases = %s/%s/%s", got.Physical.Phase, got.Emotional.Phase, got.Intellectual.Phase)
	}

	neutral := NeutralBiorhythmReading()
	if neutral.Available || neutral.Composite != NeutralBiorhythm {
		t.Fatalf("neutral reading = %+v", neutral)
	}
}

func TestConstitutionOf(t *testing.T) {
	tests := map[time.Month]domain.Constitution{
		time.January:   domain.ConstitutionVata,
		time.April:     domain.ConstitutionKapha,
		time.May:       domain.ConstitutionKapha,
		time.July:      domain.ConstitutionPitta,
		time.October:   domain.ConstitutionVata,
		time.September: domain.ConstitutionPitta,
	}
	for month, want := range tests {
		if got := ConstitutionOf(date(1990, month, 10)); got.Type != want || got.PeakHours == "" {
			t.Errorf("ConstitutionOf(%v) = %+v, want %s", month, got, want)
		}
	}
}

func TestSunSign(t *testing.T) {
	tests := []struct {
		date time.Time
		want domain.ZodiacSign
	}{
		{date(1990, time.January, 5), domain.SignCapricorn},
		{date(1990, time.January, 20), domain.SignAquarius},
		{date(1990, time.March, 21), domain.SignAries},
		{date(1990, time.May, 15), domain.SignTaurus},
		{date(1990, time.December, 25), domain.SignCapricorn},
	}
	for _, tt := range tests {
		if got := SunSign(tt.date); got != tt.want {
			t.Errorf("SunSign(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestAstrologyOf(t *testing.T) {
	birth := date(1990, time.May, 15)

	missing := AstrologyOf(birth, "   ")
	if missing.Available || missing.Ascendant != domain.SignUnknown ||
		missing.Modality != domain.ModalityUnknown || missing.BirthPlace != domain.UnknownBirthPlace {
		t.Fatalf("missing birthplace defaults = %+v", missing)
	}
	if missing.SunSign != domain.SignTaurus {
		t.Fatalf("sun sign = %s", missing.SunSign)
	}

	a := AstrologyOf(birth, "Seoul")
	b := AstrologyOf(birth, "  seoul ")
	if !a.Available || a.Ascendant == domain.SignUnknown {
		t.Fatalf("astrology with place = %+v", a)
	}
	if a.Ascendant != b.Ascendant {
		t.Fatalf("ascendant not stable across formatting: %s vs %s", a.Ascendant, b.Ascendant)
	}
	if a.Modality != a.Ascendant.Modality() {
		t.Fatalf("modality = %s, want %s", a.Modality, a.Ascendant.Modality())
	}
}

func TestChallengesOfDefaults(t *testing.T) {
	got := ChallengesOf(date(1990, time.May, 15), "")
	if got.Name != DefaultChallengeName {
		t.Fatalf("name = %q", got.Name)
	}
	if got.KarmicDebts == nil {
		t.Fatal("karmic debts should be an empty list, not nil")
	}
	if len(got.LifeLessons) == 0 || len(got.BlindSpots) == 0 ||
		len(got.GrowthOpportunities) == 0 || len(got.PatternsToOvercome) == 0 {
		t.Fatalf("empty challenge list: %+v", got)
	}
}

func TestChallengesOfKarmicDebt(t *testing.T) {
	got := ChallengesOf(date(1988, time.March, 13), "Ada")
	if len(got.KarmicDebts) == 0 || got.KarmicDebts[0] != 13 {
		t.Fatalf("karmic debts = %v, want leading 13", got.KarmicDebts)
	}
	if got.BlindSpots[0] != karmicTable[13].blind {
		t.Fatalf("blind spot = %q", got.BlindSpots[0])
	}
}

func TestLifePathOf(t *testing.T) {
	got := LifePathOf(date(1990, time.May, 15))
	if got.Number != 3 || got.IsMaster || got.Guidance == "" {
		t.Fatalf("LifePathOf = %+v", got)
	}

	day := DayBornOf(date(1990, time.May, 29))
	if day.DayNumber != 11 || day.Guidance == "" {
		t.Fatalf("DayBornOf(29) = %+v", day)
	}
}
