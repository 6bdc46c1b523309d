package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Resume Analyzer</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.score { font-size: 1.5rem; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>Resume Analyzer</h1>
{{template "content" .}}
</body>
</html>{{end}}`

var indexTemplate = template.Must(template.Must(template.New("index").Parse(layoutHTML)).Parse(`{{define "content"}}
<p>Upload your resume to analyze key skill mentions and get improvement suggestions.</p>
<form action="/analyze" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept="{{.Accept}}" required>
<button type="submit">Analyze</button>
</form>
{{end}}`))

var reportTemplate = template.Must(template.Must(template.New("report").Parse(layoutHTML)).Parse(`{{define "content"}}
<h2>Skill Analysis Report</h2>
<p><strong>Total Skill Mentions:</strong> {{.Report.TotalMentions}}</p>
<p><strong>Skill Categories Found:</strong> {{.Report.CategoriesFound}}</p>
<p class="score"><strong>Skill Coverage Score:</strong> {{.Score}}</p>
{{range .Categories}}
<h3>{{.Name}}</h3>
<ul>{{range .Keywords}}
<li>{{.Title}}: {{.Mentions}}</li>{{end}}
</ul>
{{else}}
<p>{{.NoSkills}}</p>
{{end}}
<h2>Improvement Suggestions</h2>
{{if .Report.Suggestions}}<ol>{{range .Report.Suggestions}}
<li><strong>{{.Kind}}</strong>: {{.Description}}</li>{{end}}
</ol>{{else}}<p>{{.NoSuggestions}}</p>{{end}}
<p><a href="/">Analyze another resume</a></p>
{{end}}`))

var errorTemplate = template.Must(template.Must(template.New("error").Parse(layoutHTML)).Parse(`{{define "content"}}
<p class="error">{{.Message}}</p>
<p><a href="/">Try again</a></p>
{{end}}`))

type indexPage struct {
	Accept string
}

type errorPage struct {
	Status  int
	Message string
}

func newReportPage(report *types.Report) reportPage {
	page := reportPage{
		Report:        report,
		Score:         observability.FormatScore(report.CoverageScore),
		NoSkills:      observability.NoSkillsMessage,
		NoSuggestions: observability.NoSuggestionsMessage,
	}
	for _, c := range report.Categories {
		view := categoryView{Name: c.Category}
		for _, k := range c.Keywords {
			view.Keywords = append(view.Keywords, keywordView{
				Title:    observability.Title(k.Keyword),
				Mentions: observability.Mentions(k.Count),
			})
		}
		page.Categories = append(page.Categories, view)
	}
	return page
}

// renderHTML buffers the rendered page before writing the status.
func (s *Server) renderHTML(w http.ResponseWriter, r *http.Request, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.WithField("request_id", RequestID(r.Context())).WithError(err).Error("error rendering template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
