// Package report renders an analysis into a styled HTML page and prints it
// to PDF through headless Chrome.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/prospect-intel/backend/internal/domain"
)

type componentRow struct {
	Name   string
	Score  float64
	Weight float64
	Source string
}

type reportData struct {
	Analysis    *domain.Analysis
	Components  []componentRow
	GeneratedAt string
	ScoreClass  string
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"mulf": func(a, b float64) float64 { return a * b },
}).Parse(reportHTML))

// RenderHTML produces the printable report page for an analysis.
func RenderHTML(analysis *domain.Analysis) (string, error) {
	if analysis == nil || analysis.Breakdown == nil {
		return "", fmt.Errorf("analysis is incomplete")
	}

	rows := make([]componentRow, 0, len(analysis.Breakdown.Components))
	for name, c := range analysis.Breakdown.Components {
		source := "fallback"
		if c.Live {
			source = "live"
		}
		rows = append(rows, componentRow{
			Name:   displayName(name),
			Score:  c.Score,
			Weight: c.Weight,
			Source: source,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Weight > rows[j].Weight })

	data := reportData{
		Analysis:    analysis,
		Components:  rows,
		GeneratedAt: time.Now().UTC().Format("January 2, 2006 15:04 MST"),
		ScoreClass:  scoreClass(analysis.Breakdown.Total),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

func displayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		switch w {
		case "ai", "ml", "aml", "kyc":
			words[i] = strings.ToUpper(w)
		default:
			if len(w) > 0 {
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
	}
	return strings.Join(words, " ")
}

func scoreClass(score float64) string {
	switch {
	case score >= 65:
		return "high"
	case score >= 50:
		return "medium"
	default:
		return "low"
	}
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>AI Readiness Report - {{.Analysis.CompanyName}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #1a202c; margin: 40px; }
  h1 { font-size: 26px; margin-bottom: 4px; }
  h2 { font-size: 18px; border-bottom: 2px solid #e2e8f0; padding-bottom: 6px; margin-top: 28px; }
  .meta { color: #718096; font-size: 12px; }
  .score-badge { display: inline-block; border-radius: 8px; padding: 14px 22px; color: #fff; font-size: 30px; font-weight: 700; margin: 14px 0; }
  .score-badge.high { background: #2f855a; }
  .score-badge.medium { background: #b7791f; }
  .score-badge.low { background: #c53030; }
  .category { font-size: 15px; font-weight: 600; }
  table { border-collapse: collapse; width: 100%; margin-top: 10px; font-size: 13px; }
  th, td { text-align: left; padding: 7px 10px; border-bottom: 1px solid #e2e8f0; }
  th { background: #f7fafc; }
  .tag { display: inline-block; background: #edf2f7; border-radius: 4px; padding: 2px 8px; margin: 2px; font-size: 12px; }
  ul { margin: 8px 0; padding-left: 22px; }
  li { margin: 4px 0; }
  .dm-name { font-weight: 600; }
  .footnote { margin-top: 36px; color: #a0aec0; font-size: 11px; }
</style>
</head>
<body>
<h1>AI Readiness Report: {{.Analysis.CompanyName}}</h1>
<div class="meta">Generated {{.GeneratedAt}} &middot; Methodology: {{.Analysis.Breakdown.Methodology}} &middot; Confidence: {{printf "%.0f" (mulf .Analysis.Breakdown.Confidence 100.0)}}%</div>

<div class="score-badge {{.ScoreClass}}">{{printf "%.1f" .Analysis.Breakdown.Total}} / 100</div>
<div class="category">{{.Analysis.Category}}</div>

<h2>Score Breakdown</h2>
<table>
<tr><th>Component</th><th>Score</th><th>Weight</th><th>Data Source</th></tr>
{{range .Components}}
<tr><td>{{.Name}}</td><td>{{printf "%.0f" .Score}}</td><td>{{printf "%.0f" (mulf .Weight 100.0)}}%</td><td>{{.Source}}</td></tr>
{{end}}
</table>

{{with .Analysis.Profile.Company}}
<h2>Company Profile</h2>
<table>
<tr><th>Industry</th><td>{{.Industry}}</td></tr>
<tr><th>Employees</th><td>{{.EmployeeCount}}</td></tr>
{{if .Headquarters}}<tr><th>Headquarters</th><td>{{.Headquarters}}</td></tr>{{end}}
{{if .FoundedYear}}<tr><th>Founded</th><td>{{.FoundedYear}}</td></tr>{{end}}
</table>
{{if .TechTags}}<div>{{range .TechTags}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
{{end}}

{{with .Analysis.Recommendations}}
<h2>Sales Recommendations</h2>
<p><strong>Approach:</strong> {{.Approach}}</p>
<p><strong>Messaging:</strong> {{.Messaging}}</p>
<ul>{{range .TalkingPoints}}<li>{{.}}</li>{{end}}</ul>
{{if .NextSteps}}<p><strong>Next steps:</strong></p><ul>{{range .NextSteps}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}

{{if .Analysis.DecisionMakers}}
<h2>Key Decision Makers</h2>
<table>
<tr><th>Name</th><th>Title</th><th>Suggested Approach</th></tr>
{{range .Analysis.DecisionMakers}}
<tr><td class="dm-name">{{.Name}}</td><td>{{.Title}}</td><td>{{.Approach}}</td></tr>
{{end}}
</table>
{{end}}

<div class="footnote">Generated by Prospect Intelligence. Scores combine live market signals with modeled estimates; confidence reflects the share of live data behind this assessment.</div>
</body>
</html>`
