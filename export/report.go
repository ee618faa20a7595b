package export

import (
	"html/template"
	"io"
	"time"
)

// Figure is one rendered document of a section
type Figure struct {
	Name  string
	SVG   template.HTML
	Image string
}

// Section is the output of one plot pipeline
type Section struct {
	Name     string
	Kind     string
	Figures  []Figure
	Error    string
	Duration time.Duration
}

type Report struct {
	Title     string
	Generated time.Time
	Sections  []Section
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"fmtDur": func(d time.Duration) string {
		return d.Round(time.Millisecond).String()
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
section { margin-bottom: 3em; }
.error { color: #b00020; }
.meta { color: #666; font-size: 0.8em; }
figure { margin: 1em 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">generated {{fmtTime .Generated}}</p>
{{range .Sections}}
<section id="{{.Name}}">
<h2>{{.Name}} <span class="meta">{{.Kind}} · {{fmtDur .Duration}}</span></h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{range .Figures}}
<figure>
{{.SVG}}
<figcaption>{{.Name}}{{if .Image}} · <a href="{{.Image}}">png</a>{{end}}</figcaption>
</figure>
{{end}}
</section>
{{end}}
</body>
</html>
`))

// WriteReport renders the HTML report
func WriteReport(w io.Writer, r Report) error {
	return reportTemplate.Execute(w, r)
}
