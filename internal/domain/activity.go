package domain

// Activity is a closed set of business activities scored per weekday.
type Activity int

const (
	ActivityMeetings Activity = iota
	ActivityDecisions
	ActivityDeals
	ActivityPlanning
	ActivityNegotiations
	ActivityCreative
	ActivityNetworking
	ActivityLearning
	ActivityTravel
)

// ActivityCount sizes every per-activity array.
const ActivityCount = 9

var activityKeys = [ActivityCount]string{
	"meetings",
	"decisions",
	"deals",
	"planning",
	"negotiations",
	"creative",
	"networking",
	"learning",
	"travel",
}

var activityLabels = [ActivityCount]string{
	"Team meetings",
	"Key decisions",
	"Closing deals",
	"Strategic planning",
	"Negotiations",
	"Creative work",
	"Networking",
	"Learning and research",
	"Business travel",
}

// AllActivities returns the activities in declaration order.
func AllActivities() []Activity {
	out := make([]Activity, ActivityCount)
	for i := range out {
		out[i] = Activity(i)
	}
	return out
}

func (a Activity) IsValid() bool {
	return a >= 0 && int(a) < ActivityCount
}

func (a Activity) String() string {
	if !a.IsValid() {
		return "unknown"
	}
	return activityKeys[a]
}

// Label is the human readable name used in insights.
func (a Activity) Label() string {
	if !a.IsValid() {
		return "Other work"
	}
	return activityLabels[a]
}

// ActivityReading is one activity's score on a given weekday.
type ActivityReading struct {
	Score    int    `json:"score"`
	Guidance string `json:"guidance"`
}

// ActivityReadings is indexed by Activity so the key set is fixed at compile time.
type ActivityReadings [ActivityCount]ActivityReading

func (r ActivityReadings) Get(a Activity) ActivityReading {
	if !a.IsValid() {
		return ActivityReading{}
	}
	return r[a]
}
