package recommend

import (
	"fmt"
	"sort"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/namekey"
)

// Known executive profiles for companies the demo targets most often.
// Keyed by normalized company name. Static on purpose: the synchronous
// analyze path never waits on a people-search API.
var knownDecisionMakers = map[string][]domain.DecisionMaker{
	"jpmorgan chase": {
		{Name: "Jamie Dimon", Title: "Chairman & CEO", LinkedInURL: "https://www.linkedin.com/in/jamie-dimon-97413111/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Lori Beer", Title: "Global CIO", LinkedInURL: "https://www.linkedin.com/in/lori-beer-9257184/", Priority: 1, Role: "IT Strategy"},
		{Name: "Marco Pistoia", Title: "Head of Applied Research", LinkedInURL: "https://www.linkedin.com/in/marco-pistoia-500a3311/", Priority: 2, Role: "AI Leader"},
	},
	"goldman sachs": {
		{Name: "David Solomon", Title: "Chairman & CEO", LinkedInURL: "https://www.linkedin.com/in/david-solomon-8961663/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Marco Argenti", Title: "CIO", LinkedInURL: "https://www.linkedin.com/in/marco-argenti-0655064/", Priority: 1, Role: "Technology Leader"},
		{Name: "George Lee", Title: "Chief Information Officer, Co-Head Applied Innovation", LinkedInURL: "https://www.linkedin.com/in/george-lee-8908253/", Priority: 2, Role: "Innovation Leader"},
	},
	"morgan stanley": {
		{Name: "Ted Pick", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/ted-pick-52b2aa6/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Cyrus Taraporevala", Title: "Technology Executive", LinkedInURL: "https://www.linkedin.com/in/cyrus-taraporevala-72806919/", Priority: 2, Role: "Technology Leader"},
	},
	"bank of america": {
		{Name: "Brian Moynihan", Title: "Chairman & CEO", LinkedInURL: "https://www.linkedin.com/in/brian-moynihan-04163123/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Aditya Bhasin", Title: "CTO & CIO", LinkedInURL: "https://www.linkedin.com/in/aditya-bhasin-6a17a11/", Priority: 1, Role: "Technology Leader"},
	},
	"wells fargo": {
		{Name: "Charlie Scharf", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/charlie-scharf-92404417/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Saul Van Beurden", Title: "Head of Technology", LinkedInURL: "https://www.linkedin.com/in/saul-van-beurden-34603a3/", Priority: 2, Role: "Technology Leader"},
	},
	"citigroup": {
		{Name: "Jane Fraser", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/jane-fraser-16a9b53a/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Stuart Riley", Title: "Head of Technology, Markets", LinkedInURL: "https://www.linkedin.com/in/stuart-riley-6a15871/", Priority: 2, Role: "Technology Leader"},
	},
	"blackrock": {
		{Name: "Larry Fink", Title: "Chairman & CEO", LinkedInURL: "https://www.linkedin.com/in/larry-fink-48295319/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Rob Kapito", Title: "President", LinkedInURL: "https://www.linkedin.com/in/rob-kapito-0457b85/", Priority: 2, Role: "Executive Sponsor"},
	},
	"fidelity": {
		{Name: "Abigail Johnson", Title: "Chairman & CEO", LinkedInURL: "https://www.linkedin.com/in/abigail-johnson-80ab937/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Steve Neff", Title: "Head of Technology", LinkedInURL: "https://www.linkedin.com/in/steve-neff-1aa5b514/", Priority: 2, Role: "Technology Leader"},
	},
	"google": {
		{Name: "Sundar Pichai", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/sundarpichai/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Jeff Dean", Title: "Chief Scientist", LinkedInURL: "https://www.linkedin.com/in/jeff-dean-8b212555/", Priority: 1, Role: "AI Leader"},
		{Name: "Thomas Kurian", Title: "CEO, Google Cloud", LinkedInURL: "https://www.linkedin.com/in/thomas-kurian-469b6219/", Priority: 2, Role: "Technology Leader"},
	},
	"microsoft": {
		{Name: "Satya Nadella", Title: "Chairman & CEO", LinkedInURL: "https://www.linkedin.com/in/satyanadella/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Kevin Scott", Title: "CTO", LinkedInURL: "https://www.linkedin.com/in/kevinscott/", Priority: 1, Role: "Technology Leader"},
	},
	"amazon": {
		{Name: "Andy Jassy", Title: "President & CEO", LinkedInURL: "https://www.linkedin.com/in/andy-jassy-8b1615/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Werner Vogels", Title: "CTO", LinkedInURL: "https://www.linkedin.com/in/werner-vogels/", Priority: 1, Role: "Technology Leader"},
	},
	"stripe": {
		{Name: "Patrick Collison", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/patrick-collison-ab80b91a/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "John Collison", Title: "President", LinkedInURL: "https://www.linkedin.com/in/john-collison-ab80b919/", Priority: 2, Role: "Executive Sponsor"},
	},
	"visa": {
		{Name: "Ryan McInerney", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/ryan-mcinerney-3a5aa84/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Rajat Taneja", Title: "President, Technology", LinkedInURL: "https://www.linkedin.com/in/rajat-taneja-5b77561/", Priority: 1, Role: "Technology Leader"},
	},
	"mastercard": {
		{Name: "Michael Miebach", Title: "CEO", LinkedInURL: "https://www.linkedin.com/in/michael-miebach-6238953/", Priority: 1, Role: "Executive Sponsor"},
		{Name: "Ed McLaughlin", Title: "President & CTO", LinkedInURL: "https://www.linkedin.com/in/ed-mclaughlin-53ab1b4/", Priority: 1, Role: "Technology Leader"},
	},
}

// Sales approach per role, applied to both known contacts and placeholders.
var roleApproaches = map[string]string{
	"Executive Sponsor":  "Vision and strategic value",
	"Technology Leader":  "Technical capabilities and innovation",
	"IT Strategy":        "Infrastructure and integration",
	"Data Strategy":      "Data value and insights",
	"AI Leader":          "AI/ML use cases",
	"Innovation Leader":  "Competitive advantage",
	"Risk Leader":        "Risk modeling and compliance",
	"Engineering Leader": "Technical implementation",
	"Quant Leader":       "Quantitative modeling capabilities",
}

var roleTalkingPoints = map[string][]string{
	"Executive Sponsor": {
		"Accelerate AI transformation across the organization",
		"Reduce time-to-market for AI initiatives",
		"Achieve competitive advantage through advanced AI capabilities",
	},
	"Technology Leader": {
		"Unified AI platform reducing infrastructure complexity",
		"Seamless integration with the existing tech stack",
		"Enterprise-grade scalability and security",
	},
	"IT Strategy": {
		"Enterprise integration without a rip-and-replace migration",
		"Unified AI platform reducing infrastructure complexity",
	},
	"Data Strategy": {
		"Transform raw data into actionable AI insights",
		"Automated data pipelines for ML workflows",
		"Data governance and lineage tracking",
	},
	"AI Leader": {
		"End-to-end AI lifecycle management",
		"Pre-built models for common use cases",
		"MLOps best practices built in",
	},
	"Risk Leader": {
		"Model risk management and validation workflows",
		"Explainable models that satisfy regulators",
	},
}

var financialTalkingPoints = []string{
	"Bank-grade security with audited controls",
	"Compliance with financial regulations built in",
}

var defaultTalkingPoints = []string{
	"Streamline AI/ML operations",
	"Reduce development costs and time",
	"Scale AI initiatives across the organization",
}

// DecisionMakers returns up to five targets for the company, preferring the
// curated table and filling with placeholder target profiles otherwise.
func DecisionMakers(companyName string, financial bool) []domain.DecisionMaker {
	key := namekey.Normalize(companyName)

	var out []domain.DecisionMaker
	if known, ok := knownDecisionMakers[key]; ok {
		out = make([]domain.DecisionMaker, len(known))
		copy(out, known)
	} else {
		out = placeholderTargets(companyName, financial)
	}

	for i := range out {
		out[i].Approach = approachForRole(out[i].Role, financial)
		out[i].TalkingPoints = pointsForRole(out[i].Role, financial)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func placeholderTargets(companyName string, financial bool) []domain.DecisionMaker {
	type target struct {
		title, role string
		priority    int
	}
	var targets []target
	if financial {
		targets = []target{
			{"Chief Data Officer", "Data Strategy", 1},
			{"Chief Technology Officer", "Technology Leader", 1},
			{"Chief Risk Officer", "Risk Leader", 2},
		}
	} else {
		targets = []target{
			{"Chief Technology Officer", "Technology Leader", 1},
			{"Chief Data Officer", "Data Strategy", 1},
			{"VP of Engineering", "Engineering Leader", 2},
		}
	}

	out := make([]domain.DecisionMaker, 0, len(targets))
	for _, t := range targets {
		out = append(out, domain.DecisionMaker{
			Name:        fmt.Sprintf("[Identify %s]", t.title),
			Title:       t.title,
			Priority:    t.priority,
			Role:        t.role,
			Placeholder: true,
		})
	}
	return out
}

func approachForRole(role string, financial bool) string {
	approach, ok := roleApproaches[role]
	if !ok {
		approach = "Focus on value proposition"
	}
	if financial {
		return approach + " with focus on regulatory compliance and risk management"
	}
	return approach
}

func pointsForRole(role string, financial bool) []string {
	points, ok := roleTalkingPoints[role]
	if !ok {
		points = defaultTalkingPoints
	}
	out := make([]string, len(points))
	copy(out, points)
	if financial {
		if len(out) > 2 {
			out = out[:2]
		}
		out = append(out, financialTalkingPoints...)
	}
	return out
}
