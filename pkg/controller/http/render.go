package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/frontend"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
)

// Renderer executes the embedded HTML templates
type Renderer struct {
	tmpl *template.Template
}

var templateFuncs = template.FuncMap{
	"date":        formatDate,
	"rate":        func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"bandStyle":   bandStyle,
	"markerStyle": markerStyle,
	"nowStyle":    nowStyle,
	"markersIn":   markersIn,
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(frontend.Templates, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named template with the given status. The page is
// rendered to a buffer first so that a template error still yields a
// clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return goerr.Wrap(err, "failed to render template", goerr.V("template", name))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write page", goerr.V("template", name))
	}
	return nil
}

func formatDate(v any) string {
	switch d := v.(type) {
	case *time.Time:
		return model.FormatDate(d)
	case time.Time:
		return model.FormatDate(&d)
	default:
		return ""
	}
}

func bandStyle(b model.QuarterBand) template.CSS {
	return template.CSS(fmt.Sprintf("left:%.2f%%;width:%.2f%%;background:%s", b.LeftPct, b.WidthPct, b.Color))
}

func markerStyle(m model.TimelineMarker) template.CSS {
	return template.CSS(fmt.Sprintf("left:%.2f%%", m.LeftPct))
}

func nowStyle(pct float64) template.CSS {
	return template.CSS(fmt.Sprintf("left:%.2f%%", pct))
}

func markersIn(tl *model.Timeline, lane int) []model.TimelineMarker {
	var result []model.TimelineMarker
	for _, m := range tl.Markers {
		if m.Lane == lane {
			result = append(result, m)
		}
	}
	return result
}
