package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/sells-group/acceptance-map/internal/dataset"
	"github.com/sells-group/acceptance-map/internal/model"
	"github.com/sells-group/acceptance-map/internal/view"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// loadTable fetches the cached table, writing a JSON error on failure.
func (s *Server) loadTable(w http.ResponseWriter, r *http.Request) (*model.Table, bool) {
	t, err := s.cache.Get(r.Context())
	if err == nil {
		return t, true
	}
	if dataset.IsNotFound(err) {
		writeError(w, http.StatusServiceUnavailable, notFoundMessage(s.cache.Path()))
		return nil, false
	}
	zap.L().Error("web: load table", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "could not load the data file")
	return nil, false
}

// notModified sets the ETag for t and reports whether the client copy is
// current.
func notModified(w http.ResponseWriter, r *http.Request, t *model.Table) bool {
	etag := strconv.Quote(t.Meta().Generation)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func notFoundMessage(path string) string {
	return "Could not load the data file: '" + path + "'. Please make sure it's in the same folder."
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTable(w, r)
	if !ok || notModified(w, r, t) {
		return
	}
	labels := t.Labels()
	if labels == nil {
		labels = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": labels})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTable(w, r)
	if !ok || notModified(w, r, t) {
		return
	}
	label := selectedLabel(t, r)
	writeJSON(w, http.StatusOK, view.BuildMap(t.FilterByQuestion(label), label))
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTable(w, r)
	if !ok || notModified(w, r, t) {
		return
	}
	label := selectedLabel(t, r)
	writeJSON(w, http.StatusOK, view.BuildTable(t.FilterByQuestion(label)))
}

func (s *Server) handleTableCSV(w http.ResponseWriter, r *http.Request) {
	t, ok := s.loadTable(w, r)
	if !ok {
		return
	}
	label := selectedLabel(t, r)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="acceptance.csv"`)
	if err := view.WriteCSV(w, view.BuildTable(t.FilterByQuestion(label))); err != nil {
		zap.L().Error("web: write csv", zap.Error(err))
	}
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "reload rate limit exceeded")
		return
	}
	s.cache.Invalidate()
	t, ok := s.loadTable(w, r)
	if !ok {
		return
	}
	meta := t.Meta()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "reloaded",
		"generation": meta.Generation,
		"rows":       t.Len(),
		"issues":     len(meta.Issues),
	})
}

// selectedLabel returns the explicitly requested label, or the default one
// when the request names none. An explicit label absent from t selects
// nothing.
func selectedLabel(t *model.Table, r *http.Request) string {
	if q := r.URL.Query().Get("question"); q != "" {
		return q
	}
	return view.DefaultLabel(t, "")
}
