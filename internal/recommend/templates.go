package recommend

import "fmt"

// Template talking points by readiness band. Used directly when no LLM is
// configured and as the fallback when the LLM call fails.

func approachFor(score float64) string {
	switch {
	case score >= 80:
		return "Immediate value demonstration - they're ready to buy"
	case score >= 65:
		return "Proof of concept approach - show quick wins"
	case score >= 50:
		return "Educational approach - build the business case"
	default:
		return "Long-term nurture - develop AI awareness"
	}
}

func messagingFor(score float64, company string) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("%s's AI infrastructure is advanced. A platform partner can help them scale faster and cut model delivery costs.", company)
	case score >= 65:
		return fmt.Sprintf("%s is well along the AI journey. The right platform accelerates progress and avoids common pitfalls.", company)
	case score >= 50:
		return fmt.Sprintf("%s is starting with AI. A complete platform takes them from idea to production.", company)
	default:
		return fmt.Sprintf("%s is still exploring AI. Lead with education on how industry peers are transforming.", company)
	}
}

func talkingPointsFor(score float64, financial bool) []string {
	var points []string
	switch {
	case score >= 65:
		points = []string{
			"Ready for advanced use cases such as real-time fraud detection and automated decisioning",
			"Existing technical teams can adopt the platform with minimal ramp-up",
			"Focus the conversation on scale, governance, and time-to-production",
		}
	case score >= 35:
		points = []string{
			"Focus on high-ROI starting points such as customer service automation and reporting",
			"Prioritize the data foundation before advanced modeling",
			"Offer pre-built models for quick wins",
		}
	default:
		points = []string{
			"Begin with foundational improvements to data quality and basic automation",
			"Start small with rule-based automation before advancing to ML",
			"Position an AI readiness assessment and roadmap engagement",
		}
	}

	if financial {
		points = append(points,
			"Regulatory compliance and model governance are built into the platform",
			"Bank-grade security with audited controls")
	}
	return points
}

func nextStepsFor(score float64) []string {
	switch {
	case score >= 70:
		return []string{
			"Direct executive outreach within 1-2 weeks",
			"Offer a live platform demo against their own use case",
			"Line up a warm introduction through shared connections",
		}
	case score >= 50:
		return []string{
			"Run a 2-4 week technical champion sequence",
			"Invite engineering leadership to a technical deep dive",
			"Share an architecture fit assessment",
		}
	default:
		return []string{
			"Start a 4-8 week education-first nurture",
			"Send industry reports and relevant case studies",
			"Revisit readiness in one quarter",
		}
	}
}
