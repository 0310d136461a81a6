package insight

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/engine"
	"github.com/kapu/alignment-bot-go/internal/profile"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

func scenario(t *testing.T) (domain.PersonalProfile, domain.EarthProfile, domain.CombinedAnalysis) {
	t.Helper()
	b := profile.NewBuilder(nil)
	personal, err := b.BuildPersonalProfile("1990-05-15", "")
	if err != nil {
		t.Fatalf("BuildPersonalProfile error = %v", err)
	}
	earth := b.BuildEarthProfile(time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC),
		profile.WithBirthDate(personal.BirthDate))
	return personal, earth, engine.Synthesize(personal, earth)
}

func TestAdjustHourClamp(t *testing.T) {
	for base := 0; base <= 23; base++ {
		for lifePath := 1; lifePath <= 33; lifePath++ {
			for _, day := range []int{0, 75, 76, 100} {
				for _, lunar := range []int{0, 80, 81, 100} {
					h := AdjustHour(base, lifePath, day, lunar)
					if h < EarliestHour || h > LatestHour {
						t.Fatalf("AdjustHour(%d,%d,%d,%d) = %d", base, lifePath, day, lunar, h)
					}
				}
			}
		}
	}
}

func TestAdjustHour(t *testing.T) {
	tests := []struct {
		name                             string
		base, lifePath, dayScore, lunar int
		want                             int
	}{
		{"no adjustment", 10, 3, 92, 55, 9},
		{"weak day", 10, 3, 70, 55, 10},
		{"bright phase", 10, 3, 92, 90, 14},
		{"master number", 11, 11, 80, 50, 9},
		{"too late", 18, 8, 60, 50, 14},
		{"upper edge", 16, 6, 80, 50, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustHour(tt.base, tt.lifePath, tt.dayScore, tt.lunar); got != tt.want {
				t.Fatalf("AdjustHour = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBaseHour(t *testing.T) {
	tests := map[string]int{
		"10:00–12:00": 10,
		"14:00-16:00": 14,
		" 09:30 ":     9,
		"":            defaultBaseHour,
		"afternoon":   defaultBaseHour,
		"27:00":       defaultBaseHour,
	}
	for input, want := range tests {
		if got := baseHour(input); got != want {
			t.Errorf("baseHour(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestFilter(t *testing.T) {
	rejected := []string{
		"Your Life Path favours action",
		"The hexagram for today is strong",
		"A kapha morning",
		"Check your BIORHYTHM",
		"the moon is full",
		"life   path three",
	}
	for _, text := range rejected {
		err := CheckTerminology(text)
		var leak *errors.TerminologyLeakError
		if !stderrors.As(err, &leak) {
			t.Errorf("CheckTerminology(%q) = %v, want leak", text, err)
		}
	}

	accepted := []string{
		"Close the deal before lunch and confirm the owner.",
		"Momentum is building; keep the agenda short.",
		"Leopards and yinyang-style puns are not whole words",
		"",
	}
	for _, text := range accepted {
		if err := CheckTerminology(text); err != nil {
			t.Errorf("CheckTerminology(%q) = %v, want nil", text, err)
		}
	}
}

func TestFilterReportsTerm(t *testing.T) {
	err := CheckTerminology("Trust your Life  Path today")
	var leak *errors.TerminologyLeakError
	if !stderrors.As(err, &leak) {
		t.Fatalf("error = %v", err)
	}
	if leak.Term != "life path" {
		t.Fatalf("term = %q, want %q", leak.Term, "life path")
	}
}

func TestGenerateScenario(t *testing.T) {
	personal, earth, combined := scenario(t)
	got := GenerateInsights(personal, earth, combined)

	if got.SafeMode {
		t.Fatal("scenario fell back to safe mode")
	}
	if got.OptimalHour != 9 {
		t.Fatalf("optimal hour = %d, want 9", got.OptimalHour)
	}
	if got.Meetings.Time != "09:00–11:00" || got.Decisions.Time != "10:00–12:00" || got.Deals.Time != "08:00–10:00" {
		t.Fatalf("windows = %q %q %q", got.Meetings.Time, got.Decisions.Time, got.Deals.Time)
	}
	// Offsets from the optimal hour are not clamped to EarliestHour.
	if got.Deals.StartHour != EarliestHour-1 || got.Decisions.StartHour != 10 {
		t.Fatalf("start hours = deals %d decisions %d", got.Deals.StartHour, got.Decisions.StartHour)
	}
	if got.Planning.Time != earth.DailyTiming.OptimalTiming || got.Planning.HasClockTime() {
		t.Fatalf("planning = %+v", got.Planning)
	}
	if !strings.Contains(got.TopPriority, "Wednesday") || !strings.Contains(got.TopPriority, "personal number 3") {
		t.Fatalf("top priority = %q", got.TopPriority)
	}
	if !strings.Contains(got.TopPriority, "strong day") {
		t.Fatalf("top priority band = %q", got.TopPriority)
	}
	if got.BestFor[0] != domain.ActivityDeals.Label() {
		t.Fatalf("best for = %v", got.BestFor)
	}
	if got.Caution != componentCaution[componentStamina] {
		t.Fatalf("caution = %q", got.Caution)
	}
	for _, w := range []domain.ActivityWindow{got.Meetings, got.Decisions, got.Deals, got.Planning} {
		if w.Confidence < 0 || w.Confidence > 100 {
			t.Fatalf("confidence out of range: %+v", w)
		}
	}
	if err := DefaultFilter().CheckAll(got.Texts()); err != nil {
		t.Fatalf("generated text leaked: %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	personal, earth, combined := scenario(t)
	first := GenerateInsights(personal, earth, combined)
	second := GenerateInsights(personal, earth, combined)
	if strings.Join(first.Texts(), "|") != strings.Join(second.Texts(), "|") || first.OptimalHour != second.OptimalHour {
		t.Fatal("insights are not deterministic")
	}
}

func TestGenerateFallsBackToSafeTemplates(t *testing.T) {
	personal, earth, combined := scenario(t)
	strict := NewGenerator(NewFilter([]string{"Wednesday"}))

	got := strict.Generate(personal, earth, combined)
	if !got.SafeMode {
		t.Fatal("expected safe mode")
	}
	if got.TopPriority != safeTopPriority {
		t.Fatalf("top priority = %q", got.TopPriority)
	}
	if got.OptimalHour != 9 || got.Meetings.Time != "09:00–11:00" {
		t.Fatalf("safe windows = %d %q", got.OptimalHour, got.Meetings.Time)
	}
}

func TestSafeTemplatesAreClean(t *testing.T) {
	_, earth, combined := scenario(t)
	safe := safeInsights(FallbackHour, earth, combined)
	if err := DefaultFilter().CheckAll(safe.Texts()); err != nil {
		t.Fatalf("safe template leaked: %v", err)
	}
}

func TestTemplatesAreClean(t *testing.T) {
	var texts []string
	for _, band := range priorityBands {
		texts = append(texts, band.template)
	}
	for _, s := range timingBestFor {
		texts = append(texts, s)
	}
	for _, s := range timingAvoid {
		texts = append(texts, s)
	}
	for _, s := range componentCaution {
		texts = append(texts, s)
	}
	texts = append(texts, activityOpportunity[:]...)
	texts = append(texts, defaultBestFor, defaultAvoid, lowStaminaAvoid, lowFocusAvoid)
	for _, a := range domain.AllActivities() {
		texts = append(texts, a.Label())
	}

	if err := DefaultFilter().CheckAll(texts); err != nil {
		t.Fatalf("template leaked: %v", err)
	}
}

func TestGenerateAcrossDates(t *testing.T) {
	b := profile.NewBuilder(nil)
	personal, err := b.BuildPersonalProfile("1985-11-29", "Porto")
	if err != nil {
		t.Fatalf("BuildPersonalProfile error = %v", err)
	}
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 365; d += 3 {
		earth := b.BuildEarthProfile(start.AddDate(0, 0, d), profile.WithBirthDate(personal.BirthDate))
		got := GenerateInsights(personal, earth, engine.Synthesize(personal, earth))
		if got.SafeMode {
			t.Fatalf("day +%d fell back to safe mode", d)
		}
		if got.OptimalHour < EarliestHour || got.OptimalHour > LatestHour {
			t.Fatalf("day +%d: optimal hour %d", d, got.OptimalHour)
		}
		if len(got.BestFor) == 0 || len(got.Avoid) == 0 {
			t.Fatalf("day +%d: empty lists", d)
		}
	}
}
