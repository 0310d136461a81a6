package domain

// TimingCategory is the discrete timing signal carried by a symbolic reading.
type TimingCategory string

const (
	TimingAct     TimingCategory = "act"
	TimingWait    TimingCategory = "wait"
	TimingPrepare TimingCategory = "prepare"
	TimingReflect TimingCategory = "reflect"
)

func (t TimingCategory) String() string {
	return string(t)
}

// EnergyLevel is the discrete intensity signal carried by a symbolic reading.
type EnergyLevel string

const (
	EnergyHigh     EnergyLevel = "high"
	EnergyModerate EnergyLevel = "moderate"
	EnergyLow      EnergyLevel = "low"
)

func (e EnergyLevel) String() string {
	return string(e)
}

type Element string

const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

func (e Element) String() string {
	return string(e)
}

func (e Element) IsValid() bool {
	switch e {
	case ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater:
		return true
	default:
		return false
	}
}

type Constitution string

const (
	ConstitutionVata  Constitution = "vata"
	ConstitutionPitta Constitution = "pitta"
	ConstitutionKapha Constitution = "kapha"
)

func (c Constitution) String() string {
	return string(c)
}

type LunarPhase int

const (
	LunarNew LunarPhase = iota
	LunarWaxingCrescent
	LunarFirstQuarter
	LunarWaxingGibbous
	LunarFull
	LunarWaningGibbous
	LunarLastQuarter
	LunarWaningCrescent
)

// LunarPhaseCount is the number of discrete phases.
const LunarPhaseCount = 8

var lunarPhaseNames = [LunarPhaseCount]string{
	"new",
	"waxing_crescent",
	"first_quarter",
	"waxing_gibbous",
	"full",
	"waning_gibbous",
	"last_quarter",
	"waning_crescent",
}

func (p LunarPhase) String() string {
	if p < 0 || int(p) >= LunarPhaseCount {
		return "unknown"
	}
	return lunarPhaseNames[p]
}

type Modality string

const (
	ModalityCardinal Modality = "cardinal"
	ModalityFixed    Modality = "fixed"
	ModalityMutable  Modality = "mutable"
	ModalityUnknown  Modality = "unknown"
)

type ZodiacSign string

const (
	SignAries       ZodiacSign = "aries"
	SignTaurus      ZodiacSign = "taurus"
	SignGemini      ZodiacSign = "gemini"
	SignCancer      ZodiacSign = "cancer"
	SignLeo         ZodiacSign = "leo"
	SignVirgo       ZodiacSign = "virgo"
	SignLibra       ZodiacSign = "libra"
	SignScorpio     ZodiacSign = "scorpio"
	SignSagittarius ZodiacSign = "sagittarius"
	SignCapricorn   ZodiacSign = "capricorn"
	SignAquarius    ZodiacSign = "aquarius"
	SignPisces      ZodiacSign = "pisces"
	SignUnknown     ZodiacSign = "unknown"
)

// ZodiacOrder lists the signs starting at the spring equinox.
var ZodiacOrder = [12]ZodiacSign{
	SignAries, SignTaurus, SignGemini, SignCancer, SignLeo, SignVirgo,
	SignLibra, SignScorpio, SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
}

// Modality returns the cardinal/fixed/mutable grouping of the sign.
func (z ZodiacSign) Modality() Modality {
	for i, sign := range ZodiacOrder {
		if sign == z {
			switch i % 3 {
			case 0:
				return ModalityCardinal
			case 1:
				return ModalityFixed
			default:
				return ModalityMutable
			}
		}
	}
	return ModalityUnknown
}
