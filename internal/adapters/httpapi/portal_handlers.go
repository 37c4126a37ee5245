package httpapi

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// resumeFormLimit bounds the multipart body; it is slightly larger than the
// resume size limit so an oversized file reaches the domain check and gets
// the proper validation error instead of a truncated read.
const resumeFormLimit = domain.ResumeMaxBytes + 1<<20

func (s *Server) handleEnsureRegistration(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	// Email is optional: the frontend passes the sign-up email so the
	// profile form arrives prefilled.
	var body struct {
		Email string `json:"email"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
			return
		}
	}

	if err := s.Registrations.EnsureRows(r.Context(), domain.AccountID(sub), body.Email); err != nil {
		s.logger.Error("ensure registration", zap.String("account_id", sub), zap.Error(err))
		writeAppError(w, r, err)
		return
	}

	view, err := s.Registrations.GetMyRegistration(r.Context(), domain.AccountID(sub))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewJSON(view))
}

func (s *Server) handleGetMyRegistration(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	view, err := s.Registrations.GetMyRegistration(r.Context(), domain.AccountID(sub))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewJSON(view))
}

func (s *Server) handleUpdateMyRegistration(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body struct {
		Profile  profileInputJSON `json:"profile"`
		Consents consentInputJSON `json:"consents"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	view, err := s.Registrations.UpdateProfileAndConsents(r.Context(), domain.AccountID(sub), body.Profile.toInput(), body.Consents.toInput())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewJSON(view))
}

func (s *Server) handleSaveConsents(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	var body consentInputJSON
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	if err := s.Registrations.SaveConsents(r.Context(), domain.AccountID(sub), body.toInput()); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	if err := r.ParseMultipartForm(resumeFormLimit); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "expected multipart form with a resume file", nil)
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "missing resume file field", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, resumeFormLimit))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "could not read resume file", nil)
		return
	}

	if err := s.Registrations.UploadResume(r.Context(), domain.AccountID(sub), data, header.Header.Get("Content-Type")); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMyResumeLink(w http.ResponseWriter, r *http.Request) {
	sub, ok := SubjectFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "NOT_AUTHENTICATED", "missing subject", nil)
		return
	}

	url, err := s.Registrations.MyResumeLink(r.Context(), domain.AccountID(sub))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
