package watergrid

import "fmt"

// Band grades a quality index for display. The set is closed: renderers
// switch over exactly these four values.
type Band int

const (
	BandExcellent Band = iota
	BandGood
	BandModerate
	BandPoor
)

func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "excellent"
	case BandGood:
		return "good"
	case BandModerate:
		return "moderate"
	case BandPoor:
		return "poor"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// MarshalText encodes the band as its lowercase label.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Tier grades a 0-1 leak risk, lowest to highest.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// MarshalText encodes the tier as its lowercase label.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// QualityBand classifies a quality index. Boundaries are inclusive on
// the upper band: 90 is excellent, 75 good, 60 moderate. The domain is
// unrestricted; out-of-range scores map to the top or bottom band.
func QualityBand(q int) Band {
	switch {
	case q >= 90:
		return BandExcellent
	case q >= 75:
		return BandGood
	case q >= 60:
		return BandModerate
	default:
		return BandPoor
	}
}

// RiskTier classifies a leak risk. Boundaries are exclusive: 0.66 is
// still medium, 0.33 still low.
func RiskTier(r float64) Tier {
	switch {
	case r > 0.66:
		return TierHigh
	case r > 0.33:
		return TierMedium
	default:
		return TierLow
	}
}
