package dashboard

import (
	"embed"
	"html/template"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"join":     strings.Join,
	"duration": func(d time.Duration) string { return d.Round(10 * time.Millisecond).String() },
	"lowScore": func(score int) bool { return score < skim.QualityWarnThreshold },
	"checked":  slices.Contains[[]skim.Length],
}).ParseFS(templateFS, "templates/index.html"))

// pageData feeds templates/index.html.
type pageData struct {
	Demos    []skim.DemoArticle
	Lengths  []skim.Length
	Model    skim.ModelInfo
	URL      string
	Selected []skim.Length
	Analyze  bool
	Report   *skim.Report
	Error    string
}

func (s *Server) newPageData() pageData {
	return pageData{
		Demos:    skim.DemoArticles(),
		Lengths:  skim.Lengths(),
		Model:    s.summarizer.ModelInfo(),
		Selected: skim.Lengths(),
		Analyze:  true,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, s.newPageData())
}

// handleDigestForm runs the pipeline for the submitted form and renders the
// report, or the error, in place.
func (s *Server) handleDigestForm(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData()
	if err := r.ParseForm(); err != nil {
		data.Error = "invalid form submission"
		s.renderPage(w, r, http.StatusBadRequest, data)
		return
	}

	data.URL = strings.TrimSpace(r.PostForm.Get("url"))
	if data.URL == "" {
		data.URL = r.PostForm.Get("demo")
	}
	data.Selected = nil
	for _, v := range r.PostForm["length"] {
		l, err := skim.ParseLength(v)
		if err != nil {
			data.Error = skim.ErrorMessage(err)
			s.renderPage(w, r, StatusCode(err), data)
			return
		}
		data.Selected = append(data.Selected, l)
	}
	data.Analyze = r.PostForm.Get("analyze") != ""

	if data.URL == "" {
		data.Error = "enter an article URL or pick a demo article"
		s.renderPage(w, r, http.StatusBadRequest, data)
		return
	}
	if len(data.Selected) == 0 {
		data.Error = "select at least one summary length"
		s.renderPage(w, r, http.StatusBadRequest, data)
		return
	}

	report, err := s.pipeline.Run(r.Context(), pipeline.Request{
		URL:     data.URL,
		Lengths: data.Selected,
		Analyze: data.Analyze,
	})
	if err != nil {
		data.Error = skim.ErrorMessage(err)
		s.renderPage(w, r, StatusCode(err), data)
		return
	}
	data.Report = report
	s.renderPage(w, r, http.StatusOK, data)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var sb strings.Builder
	if err := indexTemplate.Execute(&sb, data); err != nil {
		s.logger.Error("render dashboard", "request_id", RequestID(r.Context()), "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(sb.String()))
}
