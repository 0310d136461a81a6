package calculator

import (
	"math"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

const (
	physicalPeriod     = 23
	emotionalPeriod    = 28
	intellectualPeriod = 33

	// NeutralBiorhythm is reported when no birth date is known.
	NeutralBiorhythm = 50
)

// BiorhythmOf evaluates the three cycles for the days elapsed between the
// birth date and the target date.
func BiorhythmOf(birth, date time.Time) domain.BiorhythmReading {
	days := civilDaysSince(birth, date)

	physical := cycle(days, physicalPeriod)
	emotional := cycle(days, emotionalPeriod)
	intellectual := cycle(days, intellectualPeriod)

	composite := int(math.Round(float64(physical.Percent+emotional.Percent+intellectual.Percent) / 3))

	return domain.BiorhythmReading{
		Physical:     physical,
		Emotional:    emotional,
		Intellectual: intellectual,
		Composite:    composite,
		Available:    true,
	}
}

// NeutralBiorhythmReading is the placeholder used without a birth date.
func NeutralBiorhythmReading() domain.BiorhythmReading {
	neutral := domain.CycleReading{Phase: "unknown", Percent: NeutralBiorhythm}
	return domain.BiorhythmReading{
		Physical:     neutral,
		Emotional:    neutral,
		Intellectual: neutral,
		Composite:    NeutralBiorhythm,
		Available:    false,
	}
}

func cycle(days, period int) domain.CycleReading {
	angle := 2 * math.Pi * float64(days) / float64(period)
	value := math.Sin(angle)
	slope := math.Cos(angle)

	var phase string
	switch {
	case math.Abs(value) < 0.1:
		phase = "critical"
	case value > 0.9:
		phase = "peak"
	case value < -0.9:
		phase = "trough"
	case slope > 0:
		phase = "rising"
	default:
		phase = "falling"
	}

	return domain.CycleReading{
		Phase:   phase,
		Percent: int(math.Round((value + 1) * 50)),
	}
}
