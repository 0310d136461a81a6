package domain

import "time"

type NumerologyReading struct {
	Number   int    `json:"number"`
	IsMaster bool   `json:"is_master"`
	Guidance string `json:"guidance"`
}

type DayBornReading struct {
	DayNumber int          `json:"day_number"`
	Weekday   time.Weekday `json:"weekday"`
	Guidance  string       `json:"guidance"`
}

// SymbolicReading is one of the 64 fixed timing variants.
type SymbolicReading struct {
	Number        int            `json:"number"`
	Name          string         `json:"name"`
	Timing        TimingCategory `json:"timing"`
	Energy        EnergyLevel    `json:"energy"`
	Guidance      string         `json:"guidance"`
	OptimalTiming string         `json:"optimal_timing"`
}

type ConstitutionReading struct {
	Type      Constitution `json:"type"`
	PeakHours string       `json:"peak_hours"`
	Guidance  string       `json:"guidance"`
}

type ElementReading struct {
	Element  Element `json:"element"`
	Guidance string  `json:"guidance"`
}

type ZodiacReading struct {
	Sign     ZodiacSign `json:"sign"`
	Modality Modality   `json:"modality"`
}

// AstrologyProfile degrades to documented defaults when no birthplace is known:
// Ascendant is SignUnknown, Modality is ModalityUnknown, BirthPlace is
// UnknownBirthPlace and Available is false.
type AstrologyProfile struct {
	SunSign    ZodiacSign `json:"sun_sign"`
	Ascendant  ZodiacSign `json:"ascendant"`
	Modality   Modality   `json:"modality"`
	BirthPlace string     `json:"birth_place"`
	Available  bool       `json:"available"`
}

// UnknownBirthPlace is stored when the user never supplied a birthplace.
const UnknownBirthPlace = "unspecified"

// PersonalProfile is computed once per user from birth data.
type PersonalProfile struct {
	BirthDate    time.Time           `json:"birth_date"`
	LifePath     NumerologyReading   `json:"life_path"`
	DayBorn      DayBornReading      `json:"day_born"`
	BirthTiming  SymbolicReading     `json:"birth_timing"`
	Constitution ConstitutionReading `json:"constitution"`
	Element      ElementReading      `json:"element"`
	Zodiac       ZodiacReading       `json:"zodiac"`
	Astrology    AstrologyProfile    `json:"astrology"`
}

type LunarReading struct {
	Phase     LunarPhase `json:"phase"`
	Age       float64    `json:"age_days"`
	Influence int        `json:"influence"`
	Guidance  string     `json:"guidance"`
}

// DayReading is the weekday table entry for a date.
type DayReading struct {
	Weekday    time.Weekday     `json:"weekday"`
	Overall    int              `json:"overall"`
	Activities ActivityReadings `json:"activities"`
	Guidance   string           `json:"guidance"`
}

type CycleReading struct {
	Phase   string `json:"phase"`
	Percent int    `json:"percent"`
}

// BiorhythmReading is only meaningful when Available is set; otherwise
// Composite holds the neutral default.
type BiorhythmReading struct {
	Physical     CycleReading `json:"physical"`
	Emotional    CycleReading `json:"emotional"`
	Intellectual CycleReading `json:"intellectual"`
	Composite    int          `json:"composite"`
	Available    bool         `json:"available"`
}

// EarthProfile is shared by every user on a date, except for Biorhythm which
// is keyed on the birth date threaded in at build time.
type EarthProfile struct {
	Date        time.Time        `json:"date"`
	Lunar       LunarReading     `json:"lunar"`
	Day         DayReading       `json:"day"`
	DailyTiming SymbolicReading  `json:"daily_timing"`
	Element     ElementReading   `json:"element"`
	DayNumber   int              `json:"day_number"`
	Biorhythm   BiorhythmReading `json:"biorhythm"`
}

// ChallengesProfile lists are never empty.
type ChallengesProfile struct {
	Name                string   `json:"name"`
	KarmicDebts         []int    `json:"karmic_debts"`
	LifeLessons         []string `json:"life_lessons"`
	BlindSpots          []string `json:"blind_spots"`
	GrowthOpportunities []string `json:"growth_opportunities"`
	PatternsToOvercome  []string `json:"patterns_to_overcome"`
}
