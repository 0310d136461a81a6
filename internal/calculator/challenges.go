package calculator

import (
	"strings"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/numerology"
)

// DefaultChallengeName is used when no name is supplied.
const DefaultChallengeName = "Anonymous"

type challengeEntry struct {
	lesson   string
	blind    string
	growth   string
	patterns string
}

var karmicTable = map[int]challengeEntry{
	13: {
		lesson:   "Finish the unglamorous work before starting something new",
		blind:    "Treating shortcuts as if they were strategy",
		growth:   "Consistent routines that compound over quarters",
		patterns: "Abandoning projects when the novelty fades",
	},
	14: {
		lesson:   "Balance freedom with commitments already made",
		blind:    "Overcommitting when excited by a new opportunity",
		growth:   "Measured experiments with clear stop criteria",
		patterns: "Chasing every change instead of choosing one",
	},
	16: {
		lesson:   "Let feedback reshape plans instead of defending them",
		blind:    "Confidence that hides the early warning signs",
		growth:   "Rebuilding stronger after a setback",
		patterns: "Holding on to structures that no longer work",
	},
	19: {
		lesson:   "Ask for help before the deadline is at risk",
		blind:    "Assuming independence means doing everything alone",
		growth:   "Delegation that multiplies your output",
		patterns: "Carrying work others could own",
	},
}

var nameLessons = [10]string{
	"",
	"Let others lead when they know the ground better",
	"Say what you need instead of waiting to be asked",
	"Turn ideas into a schedule with owners",
	"Stay flexible when the plan meets reality",
	"Keep focus long enough to see results",
	"Set limits on how much you take on for others",
	"Share your reasoning before you share the conclusion",
	"Measure success by more than the numbers",
	"Close chapters cleanly before opening new ones",
}

var defaultChallenges = challengeEntry{
	lesson:   "Keep promises small and keep them all",
	blind:    "Underestimating how long coordination takes",
	growth:   "Regular reviews of what worked and what did not",
	patterns: "Reacting to the loudest request instead of the most important one",
}

// ChallengesOf derives the karmic-debt lists for a birth date and name. Every
// list carries at least one entry.
func ChallengesOf(birth time.Time, name string) domain.ChallengesProfile {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultChallengeName
	}

	debts := numerology.KarmicDebts(birth, name)
	profile := domain.ChallengesProfile{
		Name:        name,
		KarmicDebts: debts,
	}

	for _, debt := range debts {
		entry := karmicTable[debt]
		profile.LifeLessons = append(profile.LifeLessons, entry.lesson)
		profile.BlindSpots = append(profile.BlindSpots, entry.blind)
		profile.GrowthOpportunities = append(profile.GrowthOpportunities, entry.growth)
		profile.PatternsToOvercome = append(profile.PatternsToOvercome, entry.patterns)
	}

	if n := numerology.NameNumber(name); n >= 1 && n <= 9 {
		profile.LifeLessons = append(profile.LifeLessons, nameLessons[n])
	}

	if len(profile.KarmicDebts) == 0 {
		profile.KarmicDebts = []int{}
	}
	if len(profile.LifeLessons) == 0 {
		profile.LifeLessons = []string{defaultChallenges.lesson}
	}
	if len(profile.BlindSpots) == 0 {
		profile.BlindSpots = []string{defaultChallenges.blind}
	}
	if len(profile.GrowthOpportunities) == 0 {
		profile.GrowthOpportunities = []string{defaultChallenges.growth}
	}
	if len(profile.PatternsToOvercome) == 0 {
		profile.PatternsToOvercome = []string{defaultChallenges.patterns}
	}

	return profile
}
