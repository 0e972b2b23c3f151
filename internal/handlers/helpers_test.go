package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clientdeck-dev/clientdeck/internal/auth"
	"github.com/clientdeck-dev/clientdeck/internal/models"
	"github.com/clientdeck-dev/clientdeck/internal/router"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/store/mocks"
	"github.com/gin-gonic/gin"
)

const testOwnerID = 42

// newTestRouter wires the real router and middleware around mock stores, so
// requests exercise the same path they would in production.
func newTestRouter(t *testing.T, tenants store.TenantStore) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if err := auth.Init("test-secret", 1); err != nil {
		t.Fatalf("auth.Init failed: %v", err)
	}

	owners := &mocks.MockOwnerStore{
		FindOwnerByIDFunc: func(id uint) (*models.Owner, error) {
			if id != testOwnerID {
				return nil, store.ErrNotFound
			}
			return &models.Owner{
				BaseModel: models.BaseModel{ID: testOwnerID},
				Name:      "Dana",
				Email:     "dana@example.com",
			}, nil
		},
	}

	return router.NewRouter(router.Stores{Tenants: tenants, Owners: owners})
}

func ownerToken(t *testing.T) string {
	t.Helper()

	token, err := auth.GenerateJWT(testOwnerID, "dana@example.com")

	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}

	return body
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, w.Code, w.Body.String())
	}
}
