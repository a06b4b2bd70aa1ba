package models

import (
	"regexp"
	"strconv"
	"strings"
)

type ExperienceTier string

const (
	TierBeginner ExperienceTier = "Beginner"
	TierMedium   ExperienceTier = "Medium"
	TierSenior   ExperienceTier = "Senior"
)

// TierFromYears classifies total professional experience into a tier.
// Thresholds are inclusive on the low side: 2.0 years is still Beginner,
// 4.0 years is still Medium.
func TierFromYears(years float64) ExperienceTier {
	switch {
	case years <= 2:
		return TierBeginner
	case years <= 4:
		return TierMedium
	default:
		return TierSenior
	}
}

// ParseTier matches a tier name case-insensitively, ignoring surrounding
// whitespace. The LLM occasionally emits variants like "Senior " or
// "beginner", which must still map onto the enumeration.
func ParseTier(s string) (ExperienceTier, bool) {
	s = strings.TrimSpace(s)
	for _, tier := range []ExperienceTier{TierBeginner, TierMedium, TierSenior} {
		if strings.EqualFold(s, string(tier)) {
			return tier, true
		}
	}
	return "", false
}

var yearsPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseExperienceYears pulls the first number out of a free-text duration
// like "4 years" or "2.5 yrs". Returns 0 if no number is present.
func ParseExperienceYears(s string) float64 {
	match := yearsPattern.FindString(s)
	if match == "" {
		return 0
	}

	years, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}

	return years
}
