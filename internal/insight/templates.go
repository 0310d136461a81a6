package insight

import "github.com/kapu/alignment-bot-go/internal/domain"

// priorityBands is scanned top to bottom; the first band whose floor the
// perfect-day score reaches wins. Arguments: weekday, personal number,
// daily guidance.
var priorityBands = []struct {
	floor    int
	template string
}{
	{90, "%s is a standout day. Put your most important commitment on the calendar and lead with the strengths of personal number %d. %s"},
	{75, "%s is a strong day for execution. Advance one high-value initiative and play to the strengths of personal number %d. %s"},
	{60, "%s is a steady day. Pick one priority, protect time for it and lean on the habits of personal number %d. %s"},
	{0, "%s calls for a lighter touch. Keep commitments small and use the patience of personal number %d. %s"},
}

var timingBestFor = map[domain.TimingCategory]string{
	domain.TimingAct:     "Launching work that is ready to go",
	domain.TimingWait:    "Gathering information before committing",
	domain.TimingPrepare: "Lining up resources and stakeholders",
	domain.TimingReflect: "Reviewing results and lessons learned",
}

var timingAvoid = map[domain.TimingCategory]string{
	domain.TimingAct:     "Reopening decisions that are already settled",
	domain.TimingWait:    "Signing long-term commitments",
	domain.TimingPrepare: "Announcing plans before the details are ready",
	domain.TimingReflect: "Starting large new initiatives",
}

const (
	defaultBestFor = "Routine work and steady follow-through"
	defaultAvoid   = "Overloading the calendar"

	lowStaminaAvoid = "Back-to-back schedules that drain stamina"
	lowFocusAvoid   = "High-stakes confrontations late in the day"
)

var activityOpportunity = [domain.ActivityCount]string{
	"Today's best opening is in meetings: bring one clear ask to the table.",
	"Today's best opening is in decisions: settle the question that has waited longest.",
	"Today's best opening is in closing deals: follow up on the proposal closest to yes.",
	"Today's best opening is in planning: sketch the next quarter while the picture is clear.",
	"Today's best opening is in negotiations: propose terms first and anchor the discussion.",
	"Today's best opening is in creative work: block two hours for the idea you keep postponing.",
	"Today's best opening is in networking: reconnect with someone who can open a door.",
	"Today's best opening is in learning: pick up the skill your next project needs.",
	"Today's best opening is in travel: in-person visits land well today.",
}

// component identifies one alignment score for the caution callout.
type component int

const (
	componentTiming component = iota
	componentElement
	componentDay
	componentPace
	componentStamina
	componentRhythm
	componentStyle
)

var componentCaution = map[component]string{
	componentTiming:  "Your natural tempo and today's pace differ; confirm timelines before committing others.",
	componentElement: "Friction with the prevailing mood is likely; allow extra time for buy-in.",
	componentDay:     "The calendar works against big moves today; keep launches for later in the week.",
	componentPace:    "Momentum is building slowly; do not expect quick replies on open requests.",
	componentStamina: "Energy reserves are low; schedule breaks between demanding sessions.",
	componentRhythm:  "Your usual rhythm is off today; double-check details before sending.",
	componentStyle:   "Your working style and today's tone differ; adapt your approach to the room.",
}

// Safe templates carry no interpolated values.
const (
	safeTopPriority     = "Focus on your single most important priority and protect a block of time for it."
	safeMeetingsReason  = "Your focus is strongest in this block; keep meetings short and outcome driven."
	safeDecisionsReason = "Decide with the information you have and record the reasoning."
	safeDealsReason     = "Present the offer clearly and ask for a commitment."
	safePlanningTime    = "Late morning"
	safePlanningReason  = "Map milestones and owners for the week ahead."
	safeBestFor         = "Focused execution on existing commitments"
	safeAvoid           = "Overloading the calendar"
	safeOpportunity     = "Follow up on the conversation closest to a result."
	safeCaution         = "Leave buffer time between demanding sessions."
)
