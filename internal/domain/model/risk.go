package model

// RiskTier classifies an item's return risk from its historical return rate.
type RiskTier string

const (
	// RiskLow is a risk score below 10.
	RiskLow RiskTier = "low"
	// RiskMedium is a risk score in [10, 20).
	RiskMedium RiskTier = "medium"
	// RiskHigh is a risk score of 20 or above.
	RiskHigh RiskTier = "high"
)

// RiskScore converts a historical return rate (fraction in [0, 1]) to the
// advisory score in [0, 100].
func RiskScore(returnRate float64) float64 {
	return returnRate * 100
}

// TierForScore maps a risk score to its tier. Boundaries are inclusive on
// the lower end: 10 is medium, 20 is high.
func TierForScore(score float64) RiskTier {
	switch {
	case score < 10:
		return RiskLow
	case score < 20:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RiskFactorBreakdown is one named factor of an item's risk profile.
//
// @Description Named risk factor with its impact percentage
type RiskFactorBreakdown struct {
	// Name is the factor display name.
	Name string `json:"name" example:"Sizing Issues"`
	// Impact is the factor's percentage score in [0, 100].
	Impact int `json:"impact" example:"35"`
	// Description explains what the factor measures.
	Description string `json:"description"`
}

// RiskAnalysis is the advisory result produced by the risk gate for one
// candidate item. It is derived and never persisted.
//
// @Description Advisory return-risk analysis for a single item
type RiskAnalysis struct {
	// OverallRisk is the low/medium/high tier.
	OverallRisk RiskTier `json:"overall_risk" example:"medium"`
	// RiskScore equals the item's return rate x 100.
	RiskScore float64 `json:"risk_score" example:"15"`
	// Factors is the fixed four-factor breakdown.
	Factors []RiskFactorBreakdown `json:"factors"`
	// Recommendations are the tier-dependent advisory strings.
	Recommendations []string `json:"recommendations"`
	// Alternatives are up to three same-category items ordered ascending by
	// return rate, never including the analyzed item.
	Alternatives []Item `json:"alternatives"`
}

// The four factor names and descriptions are constants of the analysis,
// not computed.
const (
	FactorSizing      = "Sizing Issues"
	FactorQuality     = "Quality Concerns"
	FactorExpectation = "Expectation Mismatch"
	FactorShipping    = "Shipping Damage"

	factorSizingDesc      = "Based on customer reviews about fit and sizing"
	factorQualityDesc     = "Material quality and durability feedback"
	factorExpectationDesc = "Difference between product description and reality"
	factorShippingDesc    = "Historical shipping and packaging issues"
)

// FactorBreakdown expands an item's stored risk factors into the fixed
// four-entry breakdown list.
func FactorBreakdown(f RiskFactors) []RiskFactorBreakdown {
	return []RiskFactorBreakdown{
		{Name: FactorSizing, Impact: f.SizingIssues, Description: factorSizingDesc},
		{Name: FactorQuality, Impact: f.QualityIssues, Description: factorQualityDesc},
		{Name: FactorExpectation, Impact: f.ExpectationMismatch, Description: factorExpectationDesc},
		{Name: FactorShipping, Impact: f.ShippingDamage, Description: factorShippingDesc},
	}
}

// tierRecommendations is the fixed advisory copy per tier.
var tierRecommendations = map[RiskTier][]string{
	RiskLow: {
		"This product has an excellent track record!",
		"Low return rate indicates high satisfaction",
		"Go ahead with confidence",
	},
	RiskMedium: {
		"Check product reviews for sizing guidance",
		"Consider our size guide",
		"30-day return policy applies",
	},
	RiskHigh: {
		"High return rate - please review carefully",
		"Check measurements thoroughly",
		"Consider alternatives below",
	},
}

// RecommendationsForTier returns a copy of the canned advisory strings for
// the given tier.
func RecommendationsForTier(tier RiskTier) []string {
	recs := tierRecommendations[tier]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
