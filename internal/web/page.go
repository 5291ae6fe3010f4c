package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/acceptance-map/internal/dataset"
	"github.com/sells-group/acceptance-map/internal/view"
)

const (
	pageTitle       = "EU Acceptance on LGBT Rights"
	pageDescription = "Select a question to visualize the 2023 Eurobarometer survey results on the map."
	pageAbout       = "Acceptance of LGBT rights across EU countries from the 2023 Eurobarometer survey (Volume A, sheets QB15_1 to QB15_4). " +
		"Each value combines the \"totally agree\" and \"tend to agree\" answers for a country."
	sourceURL = "https://data.europa.eu/data/datasets/s2972_99_2_sp535_eng?locale=en"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// iceScale approximates the "ice" sequential palette, dark to light.
var iceScale = [][2]any{
	{0.0, "rgb(3, 5, 18)"},
	{0.1, "rgb(25, 25, 51)"},
	{0.2, "rgb(44, 42, 87)"},
	{0.3, "rgb(58, 60, 125)"},
	{0.4, "rgb(62, 83, 160)"},
	{0.5, "rgb(62, 109, 178)"},
	{0.6, "rgb(72, 134, 187)"},
	{0.7, "rgb(89, 159, 196)"},
	{0.8, "rgb(114, 184, 205)"},
	{0.9, "rgb(149, 207, 216)"},
	{1.0, "rgb(234, 253, 253)"},
}

type option struct {
	Label    string
	Selected bool
}

type pageData struct {
	Title       string
	Description string
	About       string
	SourceURL   string
	Error       string
	Options     []option
	Selection   view.Selection
	Figure      template.JS
	Issues      int
	Generation  string
}

// plotlyFigure converts a map view into a Plotly choropleth figure.
func plotlyFigure(m view.MapView) (template.JS, error) {
	locations := make([]string, len(m.Points))
	z := make([]float64, len(m.Points))
	text := make([]string, len(m.Points))
	for i, p := range m.Points {
		locations[i] = p.Location
		z[i] = p.Z
		text[i] = p.HoverName
	}
	fig := map[string]any{
		"data": []map[string]any{{
			"type":         "choropleth",
			"locationmode": "ISO-3",
			"locations":    locations,
			"z":            z,
			"text":         text,
			"zmin":         m.RangeColor[0],
			"zmax":         m.RangeColor[1],
			"colorscale":   iceScale,
			"colorbar": map[string]any{
				"title":         map[string]any{"text": m.ColorbarTitle},
				"thicknessmode": "pixels",
				"thickness":     15,
				"lenmode":       "pixels",
				"len":           300,
				"yanchor":       "middle",
				"y":             0.5,
			},
			"hovertemplate": "<b>%{text}</b><br>Acceptance: %{z:.1f}%<extra></extra>",
		}},
		"layout": map[string]any{
			"title": map[string]any{"text": "<b>" + m.Title + "</b>", "x": 0.4575, "y": 0.95, "xanchor": "center", "yanchor": "top"},
			"geo": map[string]any{
				"scope":          m.Scope,
				"center":         map[string]float64{"lat": m.CenterLat, "lon": m.CenterLon},
				"projection":     map[string]any{"scale": m.ProjectionScale},
				"showcountries":  true,
				"countrycolor":   "#3C3F4A",
				"showframe":      false,
				"showcoastlines": true,
			},
			"margin": map[string]int{"l": 0, "r": 0, "t": 40, "b": 0},
			"height": 600,
		},
	}
	b, err := json.Marshal(fig)
	if err != nil {
		return "", eris.Wrap(err, "web: marshal figure")
	}
	return template.JS(b), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: pageTitle, Description: pageDescription, About: pageAbout, SourceURL: sourceURL}

	t, err := s.cache.Get(r.Context())
	status := http.StatusOK
	switch {
	case dataset.IsNotFound(err):
		data.Error = notFoundMessage(s.cache.Path())
		status = http.StatusServiceUnavailable
	case err != nil:
		zap.L().Error("web: load table", zap.Error(err))
		data.Error = "Could not load the data file."
		status = http.StatusInternalServerError
	default:
		label := view.DefaultLabel(t, r.URL.Query().Get("question"))
		for _, l := range t.Labels() {
			data.Options = append(data.Options, option{Label: l, Selected: l == label})
		}
		data.Selection = view.Select(t, label)
		data.Figure, err = plotlyFigure(data.Selection.Map)
		if err != nil {
			zap.L().Error("web: render figure", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		meta := t.Meta()
		data.Issues = len(meta.Issues)
		data.Generation = meta.Generation
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		zap.L().Error("web: render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
