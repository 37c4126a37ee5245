package resumestore

import (
	"testing"

	"github.com/uf-sase-hacks/registration-api/internal/adapters/contracttest"
	resumestoreport "github.com/uf-sase-hacks/registration-api/internal/ports/out/resumestore"
)

func TestContract_ResumeStore(t *testing.T) {
	contracttest.RunResumeStore(t, func(t *testing.T) (resumestoreport.Store, func()) {
		t.Helper()
		return NewStore(), nil
	})
}
