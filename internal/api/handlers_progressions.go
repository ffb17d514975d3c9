package api

import (
	"net/http"
	"strconv"
	"strings"
)

// normalizeScaleType accepts any casing and maps everything except "minor"
// to "major".
func normalizeScaleType(scale string) string {
	if strings.EqualFold(strings.TrimSpace(scale), "minor") {
		return "minor"
	}
	return "major"
}

// clampCapo parses the capo query value and clamps it into [0,11]. Anything
// unparseable counts as no capo.
func clampCapo(raw string) int {
	capo, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	if capo < 0 {
		return 0
	}
	if capo > 11 {
		return 11
	}
	return capo
}

func (s *Server) HandleProgressions(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		key = "C"
	}
	scaleType := normalizeScaleType(r.URL.Query().Get("scale"))
	capo := clampCapo(r.URL.Query().Get("capo"))

	set, err := s.engine.ChordProgressions(key, scaleType, capo)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, set)
}
