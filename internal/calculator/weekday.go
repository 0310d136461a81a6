package calculator

import (
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

type weekdayEntry struct {
	overall  int
	guidance string
	// scores in domain.Activity order
	scores [domain.ActivityCount]int
}

// weekdayTable is indexed by time.Weekday.
var weekdayTable = [7]weekdayEntry{
	time.Sunday: {
		overall:  70,
		guidance: "A reset day: light planning and relationship building pay off.",
		scores:   [domain.ActivityCount]int{55, 60, 50, 85, 55, 80, 75, 80, 65},
	},
	time.Monday: {
		overall:  78,
		guidance: "Set direction for the week and align the team early.",
		scores:   [domain.ActivityCount]int{88, 72, 65, 90, 66, 70, 74, 76, 70},
	},
	time.Tuesday: {
		overall:  85,
		guidance: "Momentum builds: push execution and unblock others.",
		scores:   [domain.ActivityCount]int{84, 86, 80, 75, 82, 72, 78, 70, 80},
	},
	time.Wednesday: {
		overall:  92,
		guidance: "Peak mid-week traction for commitments and follow-through.",
		scores:   [domain.ActivityCount]int{90, 92, 94, 80, 90, 76, 86, 74, 82},
	},
	time.Thursday: {
		overall:  95,
		guidance: "Strongest day to close, sign and announce.",
		scores:   [domain.ActivityCount]int{92, 94, 97, 82, 95, 80, 90, 78, 88},
	},
	time.Friday: {
		overall:  88,
		guidance: "Wrap up open loops and celebrate progress.",
		scores:   [domain.ActivityCount]int{80, 78, 84, 70, 76, 86, 92, 72, 74},
	},
	time.Saturday: {
		overall:  65,
		guidance: "Recharge; keep business to short, optional touchpoints.",
		scores:   [domain.ActivityCount]int{45, 55, 50, 72, 48, 84, 66, 82, 60},
	},
}

var activityGuidance = [domain.ActivityCount]string{
	"Keep meetings focused on one outcome each",
	"Decide with the data you have and record the reasoning",
	"Present the offer clearly and ask for the commitment",
	"Block time to map milestones and owners",
	"Open with shared goals before discussing terms",
	"Protect an uninterrupted block for deep work",
	"Reach out to two contacts you have not spoken to lately",
	"Study one topic that unblocks a current project",
	"Confirm logistics early and leave buffer between stops",
}

// DayOf returns the weekday table reading for a date.
func DayOf(date time.Time) domain.DayReading {
	entry := weekdayTable[date.Weekday()]

	var activities domain.ActivityReadings
	for i := range activities {
		activities[i] = domain.ActivityReading{
			Score:    entry.scores[i],
			Guidance: activityGuidance[i],
		}
	}

	return domain.DayReading{
		Weekday:    date.Weekday(),
		Overall:    entry.overall,
		Activities: activities,
		Guidance:   entry.guidance,
	}
}
