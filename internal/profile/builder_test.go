package profile

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/kapu/alignment-bot-go/internal/calculator"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

func TestParseBirthDate(t *testing.T) {
	want := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"1990-05-15", "1990/05/15", "19900515", "1990.05.15", "  1990-05-15\n"} {
		got, err := ParseBirthDate(input)
		if err != nil {
			t.Fatalf("ParseBirthDate(%q) error = %v", input, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseBirthDate(%q) = %v", input, got)
		}
	}
}

func TestParseBirthDateRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "15-05-1990", "1990-13-01", "yesterday"} {
		_, err := ParseBirthDate(input)
		var target *errors.InvalidBirthDateError
		if !stderrors.As(err, &target) {
			t.Fatalf("ParseBirthDate(%q) error = %v, want InvalidBirthDateError", input, err)
		}
		if target.Input != input {
			t.Fatalf("error input = %q, want %q", target.Input, input)
		}
	}
}

func TestBuildPersonalProfile(t *testing.T) {
	b := NewBuilder(nil)

	p, err := b.BuildPersonalProfile("1990-05-15", "")
	if err != nil {
		t.Fatalf("BuildPersonalProfile error = %v", err)
	}
	if p.LifePath.Number != 3 {
		t.Fatalf("life path = %d, want 3", p.LifePath.Number)
	}
	if p.Constitution.Type != domain.ConstitutionKapha {
		t.Fatalf("constitution = %s, want kapha", p.Constitution.Type)
	}
	if p.Element.Element != domain.ElementMetal {
		t.Fatalf("element = %s, want metal", p.Element.Element)
	}
	if p.Astrology.Available || p.Astrology.Ascendant != domain.SignUnknown ||
		p.Astrology.BirthPlace != domain.UnknownBirthPlace {
		t.Fatalf("astrology defaults = %+v", p.Astrology)
	}

	if _, err := b.BuildPersonalProfile("", "Seoul"); err == nil {
		t.Fatal("expected error for empty birth date")
	}
}

func TestBuildEarthProfileBiorhythm(t *testing.T) {
	b := NewBuilder(nil)
	day := time.Date(2026, time.January, 21, 15, 30, 0, 0, time.UTC)

	plain := b.BuildEarthProfile(day)
	if plain.Biorhythm.Available || plain.Biorhythm.Composite != calculator.NeutralBiorhythm {
		t.Fatalf("placeholder biorhythm = %+v", plain.Biorhythm)
	}
	if plain.Date.Hour() != 0 {
		t.Fatalf("date not truncated: %v", plain.Date)
	}
	if plain.Day.Overall != 92 || plain.DayNumber != 5 {
		t.Fatalf("day = %d, day number = %d", plain.Day.Overall, plain.DayNumber)
	}

	birth := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
	withBirth := b.BuildEarthProfile(day, WithBirthDate(birth))
	if !withBirth.Biorhythm.Available || withBirth.Biorhythm.Composite != 30 {
		t.Fatalf("biorhythm = %+v", withBirth.Biorhythm)
	}

	zero := b.BuildEarthProfile(day, WithBirthDate(time.Time{}))
	if zero.Biorhythm.Available {
		t.Fatal("zero birth date should keep the placeholder")
	}
}

func TestBuildEarthProfileDeterministic(t *testing.T) {
	b := NewBuilder(nil)
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	first := b.BuildEarthProfile(day)
	second := b.BuildEarthProfile(day)
	if first.Lunar != second.Lunar || first.DailyTiming != second.DailyTiming || first.DayNumber != second.DayNumber {
		t.Fatal("earth profile is not deterministic")
	}
}

type countingCalculators struct {
	calculator.Default
	challenges int
}

func (c *countingCalculators) Challenges(birth time.Time, name string) domain.ChallengesProfile {
	c.challenges++
	return c.Default.Challenges(birth, name)
}

func TestBuildChallengesProfile(t *testing.T) {
	calc := &countingCalculators{}
	b := NewBuilder(calc)

	got, err := b.BuildChallengesProfile("1990-05-15", "")
	if err != nil {
		t.Fatalf("BuildChallengesProfile error = %v", err)
	}
	if calc.challenges != 1 {
		t.Fatalf("calculator called %d times", calc.challenges)
	}
	if got.Name != calculator.DefaultChallengeName || len(got.LifeLessons) == 0 {
		t.Fatalf("challenges = %+v", got)
	}

	if _, err := b.BuildChallengesProfile("not a date", "Ada"); err == nil {
		t.Fatal("expected error for invalid birth date")
	}
	if calc.challenges != 1 {
		t.Fatal("calculator called for an invalid birth date")
	}
}

func TestWithBiorhythmCopies(t *testing.T) {
	b := NewBuilder(nil)
	day := time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)

	shared := b.BuildEarthProfile(day)
	personal := b.WithBiorhythm(shared, birth)

	if shared.Biorhythm.Available {
		t.Fatal("shared profile was modified")
	}
	if personal.Biorhythm != b.BuildEarthProfile(day, WithBirthDate(birth)).Biorhythm {
		t.Fatalf("biorhythm = %+v", personal.Biorhythm)
	}
}
