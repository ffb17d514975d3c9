package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

var defaultProgression = []string{"C", "G", "Am", "F"}

type melodyRequest struct {
	Key   string `json:"key"`
	Scale string `json:"scale"`
	// Decoded separately so a missing or non-array value falls back to the
	// default progression instead of failing the request.
	Progression json.RawMessage `json:"progression"`
}

func (s *Server) HandleMelody(w http.ResponseWriter, r *http.Request) {
	var req melodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	key := strings.TrimSpace(req.Key)
	if key == "" {
		key = "C"
	}
	scaleType := normalizeScaleType(req.Scale)

	progression := defaultProgression
	if len(req.Progression) > 0 {
		var chords []string
		if err := json.Unmarshal(req.Progression, &chords); err == nil && chords != nil {
			progression = chords
		}
	}

	melody, err := s.engine.MelodyForProgression(key, scaleType, progression)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, melody)
}
