package models

import (
	"math"
	"strings"
)

// SeverityLevel is the configured minimum severity to notify on.
type SeverityLevel string

const (
	SeverityLow    SeverityLevel = "LOW"
	SeverityMedium SeverityLevel = "MEDIUM"
	SeverityHigh   SeverityLevel = "HIGH"
	SeverityUnset  SeverityLevel = ""
)

func (s SeverityLevel) String() string {
	return string(s)
}

// AllowsMedium reports whether Medium findings pass the minimum.
func (s SeverityLevel) AllowsMedium() bool {
	return s == SeverityLow || s == SeverityMedium
}

// ParseSeverityLevel normalises a configured minimum severity. Unknown
// values map to SeverityUnset.
func ParseSeverityLevel(raw string) SeverityLevel {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LOW":
		return SeverityLow
	case "MEDIUM":
		return SeverityMedium
	case "HIGH":
		return SeverityHigh
	default:
		return SeverityUnset
	}
}

// GuardDuty score boundaries.
const (
	mediumFloor = 4.0
	highFloor   = 7.0
)

// Tier is the display bucket a finding is posted under.
type Tier struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

var (
	TierLow    = Tier{Label: "Low", Color: "#e2d43b"}
	TierMedium = Tier{Label: "Medium", Color: "#ff8c00"}
	TierHigh   = Tier{Label: "High", Color: "#ad0614"}
)

// Classify maps a severity score to a tier. The boolean is false when the
// finding should not be posted: missing or NaN score, or a Medium score
// while min excludes Medium. Low and High are always posted.
func Classify(score *float64, min SeverityLevel) (Tier, bool) {
	if score == nil || math.IsNaN(*score) {
		return Tier{}, false
	}
	s := *score
	switch {
	case s < mediumFloor:
		return TierLow, true
	case s < highFloor:
		if !min.AllowsMedium() {
			return Tier{}, false
		}
		return TierMedium, true
	default:
		return TierHigh, true
	}
}
