package calculator

import (
	"hash/fnv"
	"strings"
	"time"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

// signStarts holds the first day of each sign, beginning with Capricorn's
// January share so the table can be scanned in calendar order.
var signStarts = []struct {
	month time.Month
	day   int
	sign  domain.ZodiacSign
}{
	{time.January, 20, domain.SignAquarius},
	{time.February, 19, domain.SignPisces},
	{time.March, 21, domain.SignAries},
	{time.April, 20, domain.SignTaurus},
	{time.May, 21, domain.SignGemini},
	{time.June, 21, domain.SignCancer},
	{time.July, 23, domain.SignLeo},
	{time.August, 23, domain.SignVirgo},
	{time.September, 23, domain.SignLibra},
	{time.October, 23, domain.SignScorpio},
	{time.November, 22, domain.SignSagittarius},
	{time.December, 22, domain.SignCapricorn},
}

// SunSign returns the tropical sun sign for a birth date.
func SunSign(birth time.Time) domain.ZodiacSign {
	sign := domain.SignCapricorn
	for _, start := range signStarts {
		if birth.Month() > start.month || (birth.Month() == start.month && birth.Day() >= start.day) {
			sign = start.sign
		}
	}
	return sign
}

// ZodiacOf returns the sun sign and its modality.
func ZodiacOf(birth time.Time) domain.ZodiacReading {
	sign := SunSign(birth)
	return domain.ZodiacReading{Sign: sign, Modality: sign.Modality()}
}

// AstrologyOf builds the astrology profile. Without a birthplace the
// ascendant is unknown and the profile is flagged unavailable. The ascendant
// is a stable approximation keyed on the normalized place name; it is not an
// astronomical computation.
func AstrologyOf(birth time.Time, birthPlace string) domain.AstrologyProfile {
	sun := SunSign(birth)
	place := normalizePlace(birthPlace)
	if place == "" {
		return domain.AstrologyProfile{
			SunSign:    sun,
			Ascendant:  domain.SignUnknown,
			Modality:   domain.ModalityUnknown,
			BirthPlace: domain.UnknownBirthPlace,
			Available:  false,
		}
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(place))
	_, _ = h.Write([]byte(birth.Format("2006-01-02")))
	ascendant := domain.ZodiacOrder[h.Sum32()%uint32(len(domain.ZodiacOrder))]

	return domain.AstrologyProfile{
		SunSign:    sun,
		Ascendant:  ascendant,
		Modality:   ascendant.Modality(),
		BirthPlace: strings.TrimSpace(birthPlace),
		Available:  true,
	}
}

func normalizePlace(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), " ")
}
