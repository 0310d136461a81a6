package calculator

import (
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/numerology"
)

var lifePathGuidance = map[int]string{
	1:  "Lead from the front and set the pace for others.",
	2:  "Build consensus; partnerships multiply your results.",
	3:  "Communicate the vision; your ideas travel through people.",
	4:  "Build systems that outlast the current sprint.",
	5:  "Adapt quickly and look for the opening in change.",
	6:  "Serve the team; trust is your strongest asset.",
	7:  "Research first; depth beats speed for you.",
	8:  "Think in scale and outcomes; own the numbers.",
	9:  "Finish what others started and share the lessons.",
	11: "Trust intuition on people and timing.",
	22: "Turn large ideas into working structures.",
	33: "Mentor others; teaching compounds your impact.",
}

var dayBornGuidance = [10]string{
	"",
	"Independent starts suit you; take the first step.",
	"Diplomacy is your edge in every room.",
	"Expression and storytelling open doors.",
	"Order and routine keep you productive.",
	"Variety keeps you sharp; rotate tasks often.",
	"Responsibility for others brings out your best.",
	"Quiet analysis sharpens your judgment.",
	"Authority comes naturally; use it with care.",
	"Broad perspective helps you see the whole picture.",
}

// LifePathOf reduces the full birth date.
func LifePathOf(birth time.Time) domain.NumerologyReading {
	n := numerology.LifePath(birth)
	return domain.NumerologyReading{
		Number:   n,
		IsMaster: numerology.IsMaster(n),
		Guidance: lifePathGuidance[n],
	}
}

// DayBornOf reduces the day of month of the birth date.
func DayBornOf(birth time.Time) domain.DayBornReading {
	n := numerology.BirthDayNumber(birth)
	guidance := lifePathGuidance[n]
	if n >= 1 && n <= 9 {
		guidance = dayBornGuidance[n]
	}
	return domain.DayBornReading{
		DayNumber: n,
		Weekday:   birth.Weekday(),
		Guidance:  guidance,
	}
}
