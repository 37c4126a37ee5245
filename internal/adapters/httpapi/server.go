package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/uf-sase-hacks/registration-api/internal/app/admin"
	"github.com/uf-sase-hacks/registration-api/internal/app/faq"
	"github.com/uf-sase-hacks/registration-api/internal/app/registration"
)

// Server is the HTTP adapter holding the application services. It is a thin
// layer: decode, delegate, encode.
type Server struct {
	Registrations *registration.Service
	Admin         *admin.Service
	FAQ           *faq.Service

	logger *zap.Logger
}

func NewServer(regSvc *registration.Service, adminSvc *admin.Service, faqSvc *faq.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Registrations: regSvc,
		Admin:         adminSvc,
		FAQ:           faqSvc,
		logger:        logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON rejects bodies with fields the API does not know about, so a
// client typo fails loudly instead of silently dropping data.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
