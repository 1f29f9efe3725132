package charts

import "github.com/gulfpulse/gulfpulse/dataset"

// ============================================================================
// PALETTE — fixed country → color contract
// ============================================================================
// Every builder resolves colors through ColorFor. Precedence: specific
// entity color, then aggregate-region accent, then grey default.
// ============================================================================

const (
	colorAggregate = "#B8A358"
	colorOther     = "#bdc3c7"
	colorGap       = "#bdc3c7"

	tierStrong   = "#008035"
	tierGood     = "#F59E0B"
	tierModerate = "#E20000"
)

var countryColors = map[string]string{
	"UAE":                 "#000000",
	"Qatar":               "#99154C",
	"Saudi Arabia":        "#008035",
	"Bahrain":             "#E20000",
	"Oman":                "#a3a3a3",
	"Kuwait":              "#00B1E6",
	dataset.LabelSimple:   "#1a5276",
	dataset.LabelWeighted: "#B8A358",
	dataset.LabelAverage:  "#B8A358",
}

// ColorFor resolves the display color for an entity within a region.
func ColorFor(entity string, region dataset.Region) string {
	if c, ok := countryColors[entity]; ok {
		return c
	}
	if region == dataset.RegionAggregate {
		return colorAggregate
	}
	return colorOther
}

// tierColor maps a pillar score to its performance-band color:
// ≥80 Strong, ≥65 Good, below that Moderate.
func tierColor(score float64) (string, string) {
	switch {
	case score >= 80:
		return "Strong", tierStrong
	case score >= 65:
		return "Good", tierGood
	default:
		return "Moderate", tierModerate
	}
}
