package insight

import (
	"regexp"
	"strings"

	"github.com/kapu/alignment-bot-go/pkg/errors"
)

// BannedTerms is the internal vocabulary that must never reach a user.
var BannedTerms = []string{
	"numerology", "numerological", "life path", "master number", "karmic", "karma",
	"hexagram", "trigram", "i ching",
	"ayurveda", "ayurvedic", "dosha", "vata", "pitta", "kapha",
	"astrology", "astrological", "zodiac", "horoscope", "ascendant", "sun sign",
	"aries", "taurus", "gemini", "leo", "virgo", "libra", "scorpio",
	"sagittarius", "capricorn", "aquarius", "pisces",
	"biorhythm", "biorhythms", "lunar", "moon",
	"five element", "five elements", "wu xing", "yin", "yang",
	"chakra", "tarot", "feng shui", "cosmic", "mystical", "spiritual", "destiny",
}

// Filter rejects text containing banned terms as whole words, ignoring case.
type Filter struct {
	pattern *regexp.Regexp
}

// NewFilter compiles a filter for terms. Multi-word terms match across any
// run of whitespace.
func NewFilter(terms []string) *Filter {
	alternatives := make([]string, 0, len(terms))
	for _, term := range terms {
		words := strings.Fields(term)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}
	if len(alternatives) == 0 {
		return &Filter{}
	}
	return &Filter{pattern: regexp.MustCompile(`(?i)\b(?:` + strings.Join(alternatives, "|") + `)\b`)}
}

var defaultFilter = NewFilter(BannedTerms)

// DefaultFilter returns the filter over BannedTerms.
func DefaultFilter() *Filter {
	return defaultFilter
}

// Check returns a *errors.TerminologyLeakError naming the first banned term
// found in text.
func (f *Filter) Check(text string) error {
	if f == nil || f.pattern == nil {
		return nil
	}
	match := f.pattern.FindString(text)
	if match == "" {
		return nil
	}
	term := strings.ToLower(strings.Join(strings.Fields(match), " "))
	return errors.NewTerminologyLeakError(term, text)
}

// CheckAll checks every text and returns the first leak.
func (f *Filter) CheckAll(texts []string) error {
	for _, text := range texts {
		if err := f.Check(text); err != nil {
			return err
		}
	}
	return nil
}

// CheckTerminology runs the default filter over text.
func CheckTerminology(text string) error {
	return defaultFilter.Check(text)
}
