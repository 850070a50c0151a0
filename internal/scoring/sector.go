package scoring

import (
	"strings"

	"github.com/prospect-intel/backend/internal/domain"
)

var financialIndustryTerms = []string{
	"bank", "finance", "financial", "investment", "asset",
	"insurance", "payment", "fintech",
}

var financialNameTerms = []string{
	"bank", "capital", "financial", "investment", "asset", "wealth",
	"securities", "insurance", "jpmorgan", "goldman", "citi",
	"wells fargo", "morgan stanley", "credit", "fidelity", "chase",
	"blackrock",
}

// IsFinancial reports whether the company belongs to the financial sector,
// checked against the enriched industry first and the raw name second.
func IsFinancial(profile *domain.CompositeProfile) bool {
	if profile.Company != nil {
		industry := strings.ToLower(profile.Company.Industry)
		for _, term := range financialIndustryTerms {
			if strings.Contains(industry, term) {
				return true
			}
		}
	}

	name := strings.ToLower(profile.Query.Name)
	for _, term := range financialNameTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}
