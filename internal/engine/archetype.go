package engine

import "github.com/kapu/alignment-bot-go/internal/domain"

var archetypes = [9]domain.Archetype{
	{Name: "The Strategist", Description: "Sees the long game; best spent shaping plans and priorities."},
	{Name: "The Builder", Description: "Turns plans into working pieces; best spent shipping."},
	{Name: "The Connector", Description: "Creates value through people; best spent in conversation."},
	{Name: "The Catalyst", Description: "Starts things moving; best spent kicking off new work."},
	{Name: "The Analyst", Description: "Finds the signal in the data; best spent on research."},
	{Name: "The Closer", Description: "Brings open threads to a finish; best spent on commitments."},
	{Name: "The Visionary", Description: "Imagines what comes next; best spent on creative work."},
	{Name: "The Operator", Description: "Keeps the machine running; best spent on process and follow-up."},
	{Name: "The Negotiator", Description: "Finds terms both sides accept; best spent at the table."},
}

// ArchetypeFor picks the day's energy type from the life path and day
// numbers.
func ArchetypeFor(lifePath, dayNumber int) domain.Archetype {
	idx := (lifePath + dayNumber) % len(archetypes)
	if idx < 0 {
		idx += len(archetypes)
	}
	return archetypes[idx]
}
