package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
)

type linkJSON struct {
	AccountID string  `json:"account_id"`
	URL       *string `json:"url"`
}

type sharedLinkJSON struct {
	AccountID string  `json:"account_id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	URL       *string `json:"url"`
}

type selectionJSON struct {
	AccountIDs []string `json:"account_ids"`
}

func (in selectionJSON) ids() []domain.AccountID {
	out := make([]domain.AccountID, 0, len(in.AccountIDs))
	for _, id := range in.AccountIDs {
		out = append(out, domain.AccountID(id))
	}
	return out
}

func (s *Server) handleAdminListRegistrations(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	f := registrationrepo.Filter{
		Status: domain.Status(r.URL.Query().Get("status")),
		Query:  r.URL.Query().Get("q"),
	}
	details, err := s.Admin.ListRegistrations(r.Context(), domain.AccountID(sub), f)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	out := make([]viewJSON, 0, len(details))
	for _, d := range details {
		out = append(out, toDetailJSON(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"registrations": out})
}

func (s *Server) handleAdminGetRegistration(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	id := domain.AccountID(chi.URLParam(r, "accountID"))
	detail, err := s.Admin.GetRegistration(r.Context(), domain.AccountID(sub), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailJSON(detail))
}

func (s *Server) handleAdminUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body profileInputJSON
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	id := domain.AccountID(chi.URLParam(r, "accountID"))
	if err := s.Admin.UpdateProfile(r.Context(), domain.AccountID(sub), id, body.toInput()); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminSetStatus(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body struct {
		selectionJSON
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	if err := s.Admin.SetStatus(r.Context(), domain.AccountID(sub), body.ids(), domain.Status(body.Status)); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminSetLock(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body struct {
		selectionJSON
		Locked bool `json:"locked"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	if err := s.Admin.SetEditingLock(r.Context(), domain.AccountID(sub), body.ids(), body.Locked); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body selectionJSON
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	if err := s.Admin.Delete(r.Context(), domain.AccountID(sub), body.ids()); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminResumeLinks(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body selectionJSON
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	links, err := s.Admin.ResumeLinks(r.Context(), domain.AccountID(sub), body.ids())
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	out := make([]linkJSON, 0, len(links))
	for _, l := range links {
		out = append(out, linkJSON{AccountID: string(l.AccountID), URL: l.URL})
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": out})
}

func (s *Server) handleAdminSharedResumes(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	links, err := s.Admin.SharedResumeLinks(r.Context(), domain.AccountID(sub))
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	out := make([]sharedLinkJSON, 0, len(links))
	for _, l := range links {
		out = append(out, sharedLinkJSON{
			AccountID: string(l.AccountID),
			FullName:  l.FullName,
			Email:     l.Email,
			URL:       l.URL,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": out})
}

func (s *Server) handleAdminExportCSV(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	data, err := s.Admin.ExportCSV(r.Context(), domain.AccountID(sub))
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
