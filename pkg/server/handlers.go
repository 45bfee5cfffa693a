package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Grodondo/aitutor/pkg/prompts"
	"github.com/Grodondo/aitutor/pkg/suggestions"
	"github.com/Grodondo/aitutor/pkg/tutor"
)

// analyzeResponse is the wire format consumed by the editor plugin. Line
// indexes are 0-based and clamped to the submitted document before sending.
type analyzeResponse struct {
	Suggestions []suggestions.Suggestion `json:"suggestions"`
}

type suggestionsEvent struct {
	Type        string                   `json:"type"`
	Suggestions []suggestions.Suggestion `json:"suggestions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req tutor.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}
	if req.Level != "" {
		level, err := prompts.ParseLevel(string(req.Level))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Level = level
	}

	set, err := s.analyzer.Analyze(req)
	if err != nil {
		s.logger.LogError(err)
		http.Error(w, "analysis failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	lineCount := len(strings.Split(req.Code, "\n"))
	visible := set.Visible(lineCount).Sorted()
	if visible == nil {
		visible = []suggestions.Suggestion{}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Suggestions: visible})
	s.broadcast(suggestionsEvent{Type: "suggestions", Suggestions: visible})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
