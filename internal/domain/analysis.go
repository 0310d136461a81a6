package domain

// Archetype labels the overall character of a day for a user.
type Archetype struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AlignmentScores holds every component score, each in [0,100].
type AlignmentScores struct {
	SymbolicTiming    int `json:"symbolic_timing"`
	FiveElement       int `json:"five_element"`
	DayAuspiciousness int `json:"day_auspiciousness"`
	LunarInfluence    int `json:"lunar_influence"`
	Biorhythm         int `json:"biorhythm"`
	ConstitutionLunar int `json:"constitution_lunar"`
	Astrology         int `json:"astrology"`
}

// CombinedAnalysis is derived per user and date and never persisted.
type CombinedAnalysis struct {
	Alignment          AlignmentScores `json:"alignment"`
	AstrologyIncluded  bool            `json:"astrology_included"`
	BiorhythmAvailable bool            `json:"biorhythm_available"`
	OverallAlignment   int             `json:"overall_alignment"`
	PerfectDayScore    int             `json:"perfect_day_score"`
	ConfidenceScore    int             `json:"confidence_score"`
	EnergyType         Archetype       `json:"energy_type"`
	PeakHours          string          `json:"peak_hours"`
	OptimalWindows     []string        `json:"optimal_windows"`
}

// Scores returns the component scores that take part in the mean and spread,
// in fixed order.
func (c CombinedAnalysis) Scores() []int {
	scores := []int{
		c.Alignment.SymbolicTiming,
		c.Alignment.FiveElement,
		c.Alignment.DayAuspiciousness,
		c.Alignment.LunarInfluence,
		c.Alignment.Biorhythm,
		c.Alignment.ConstitutionLunar,
	}
	if c.AstrologyIncluded {
		scores = append(scores, c.Alignment.Astrology)
	}
	return scores
}

// ActivityWindow is a recommended slot for one activity. StartHour is -1 for
// text-only windows.
type ActivityWindow struct {
	Time       string `json:"time"`
	StartHour  int    `json:"start_hour"`
	Reason     string `json:"reason"`
	Confidence int    `json:"confidence"`
}

// HasClockTime reports whether the window is anchored to a concrete hour.
func (w ActivityWindow) HasClockTime() bool {
	return w.StartHour >= 0
}

type BusinessInsights struct {
	TopPriority string         `json:"top_priority"`
	Meetings    ActivityWindow `json:"meetings"`
	Decisions   ActivityWindow `json:"decisions"`
	Deals       ActivityWindow `json:"deals"`
	Planning    ActivityWindow `json:"planning"`
	BestFor     []string       `json:"best_for"`
	Avoid       []string       `json:"avoid"`
	Opportunity string         `json:"opportunity"`
	Caution     string         `json:"caution"`
	OptimalHour int            `json:"optimal_hour"`
	SafeMode    bool           `json:"safe_mode"`
}

// Texts returns every user-facing string in the insights.
func (b BusinessInsights) Texts() []string {
	texts := []string{
		b.TopPriority,
		b.Meetings.Time, b.Meetings.Reason,
		b.Decisions.Time, b.Decisions.Reason,
		b.Deals.Time, b.Deals.Reason,
		b.Planning.Time, b.Planning.Reason,
		b.Opportunity,
		b.Caution,
	}
	texts = append(texts, b.BestFor...)
	texts = append(texts, b.Avoid...)
	return texts
}
