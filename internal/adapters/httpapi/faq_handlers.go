package httpapi

import "net/http"

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	items := s.FAQ.Items(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
