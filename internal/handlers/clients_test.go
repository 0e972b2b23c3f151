package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/clientdeck-dev/clientdeck/internal/models"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/store/mocks"
)

func TestCreateClient(t *testing.T) {
	t.Run("Defaults Brand Color", func(t *testing.T) {
		var gotOwnerID uint
		var gotParams store.CreateClientParams

		tenants := &mocks.MockTenantStore{
			CreateClientFunc: func(ownerID uint, p store.CreateClientParams) (*models.Client, error) {
				gotOwnerID = ownerID
				gotParams = p
				return &models.Client{
					BaseModel:  models.BaseModel{ID: 1},
					Name:       p.Name,
					Email:      p.Email,
					Subdomain:  p.Subdomain,
					BrandColor: store.DefaultBrandColor,
					OwnerID:    ownerID,
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients", ownerToken(t),
			`{"name":"Acme","email":"a@acme.com","subdomain":"acme-co"}`)

		expectStatus(t, w, http.StatusOK)

		if gotOwnerID != testOwnerID {
			t.Errorf("expected owner %d, got %d", testOwnerID, gotOwnerID)
		}
		if gotParams.Subdomain != "acme-co" {
			t.Errorf("unexpected subdomain param: %q", gotParams.Subdomain)
		}

		body := decodeBody(t, w)
		client, ok := body["client"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected client object in body, got %v", body)
		}
		if client["brand_color"] != store.DefaultBrandColor {
			t.Errorf("expected defaulted brand color, got %v", client["brand_color"])
		}
	})

	t.Run("Slug Taken", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			CreateClientFunc: func(ownerID uint, p store.CreateClientParams) (*models.Client, error) {
				return nil, fmt.Errorf("%w: this subdomain is already taken", store.ErrConflict)
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients", ownerToken(t),
			`{"name":"Acme","email":"a@acme.com","subdomain":"acme-co"}`)

		expectStatus(t, w, http.StatusBadRequest)

		if decodeBody(t, w)["error"] != "this subdomain is already taken" {
			t.Errorf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("Validation Failure", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			CreateClientFunc: func(ownerID uint, p store.CreateClientParams) (*models.Client, error) {
				return nil, fmt.Errorf("%w: subdomain must only contain lowercase letters, numbers, and hyphens", store.ErrValidation)
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients", ownerToken(t),
			`{"name":"Acme","email":"a@acme.com","subdomain":"Bad Slug!"}`)

		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("Missing Token", func(t *testing.T) {
		called := false
		tenants := &mocks.MockTenantStore{
			CreateClientFunc: func(ownerID uint, p store.CreateClientParams) (*models.Client, error) {
				called = true
				return nil, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients", "",
			`{"name":"Acme","email":"a@acme.com","subdomain":"acme-co"}`)

		expectStatus(t, w, http.StatusUnauthorized)

		if called {
			t.Error("store must not be reached without a credential")
		}
	})

	t.Run("Garbage Token", func(t *testing.T) {
		r := newTestRouter(t, &mocks.MockTenantStore{})

		w := doRequest(t, r, http.MethodPost, "/api/clients", "not-a-token",
			`{"name":"Acme","email":"a@acme.com","subdomain":"acme-co"}`)

		expectStatus(t, w, http.StatusUnauthorized)
	})
}

func TestListClients(t *testing.T) {
	tenants := &mocks.MockTenantStore{
		ListClientsForOwnerFunc: func(ownerID uint) ([]models.Client, error) {
			return []models.Client{
				{
					BaseModel: models.BaseModel{ID: 2},
					Name:      "Newer",
					Subdomain: "newer",
					OwnerID:   ownerID,
					Projects: []models.Project{
						{BaseModel: models.BaseModel{ID: 5}, Status: "active"},
						{BaseModel: models.BaseModel{ID: 6}, Status: "paused"},
					},
				},
				{BaseModel: models.BaseModel{ID: 1}, Name: "Older", Subdomain: "older", OwnerID: ownerID},
			}, nil
		},
	}
	r := newTestRouter(t, tenants)

	w := doRequest(t, r, http.MethodGet, "/api/clients", ownerToken(t), "")

	expectStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	clients, ok := body["clients"].([]interface{})
	if !ok || len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %v", body)
	}

	first := clients[0].(map[string]interface{})
	counts := first["counts"].(map[string]interface{})
	if counts["projects"].(float64) != 2 {
		t.Errorf("expected 2 projects counted, got %v", counts["projects"])
	}
	statuses := counts["statuses"].(map[string]interface{})
	if statuses["active"].(float64) != 1 || statuses["paused"].(float64) != 1 {
		t.Errorf("unexpected status partition: %v", statuses)
	}
}

func TestGetClient(t *testing.T) {
	t.Run("Denied Or Missing Is Not Found", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			GetClientDetailFunc: func(ownerID, clientID uint) (*models.Client, error) {
				return nil, store.ErrNotFound
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodGet, "/api/clients/7", ownerToken(t), "")

		expectStatus(t, w, http.StatusNotFound)

		if decodeBody(t, w)["error"] != "Client not found" {
			t.Errorf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("Non Numeric Id Is Not Found", func(t *testing.T) {
		r := newTestRouter(t, &mocks.MockTenantStore{})

		w := doRequest(t, r, http.MethodGet, "/api/clients/abc", ownerToken(t), "")

		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("Full Graph", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			GetClientDetailFunc: func(ownerID, clientID uint) (*models.Client, error) {
				return &models.Client{
					BaseModel:  models.BaseModel{ID: clientID},
					Name:       "Acme",
					Email:      "a@acme.com",
					Subdomain:  "acme-co",
					BrandColor: store.DefaultBrandColor,
					OwnerID:    ownerID,
					Projects: []models.Project{
						{BaseModel: models.BaseModel{ID: 5}, Name: "Website", Status: "active", ClientID: clientID},
					},
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodGet, "/api/clients/7", ownerToken(t), "")

		expectStatus(t, w, http.StatusOK)

		body := decodeBody(t, w)
		if _, ok := body["client"]; !ok {
			t.Error("expected client in detail body")
		}
		if _, ok := body["projects"]; !ok {
			t.Error("expected projects in detail body")
		}
		if _, ok := body["counts"]; !ok {
			t.Error("expected counts in detail body")
		}
	})
}

func TestUpdateClient(t *testing.T) {
	t.Run("Denied Is Not Found", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			UpdateClientFunc: func(ownerID, clientID uint, p store.UpdateClientParams) (*models.Client, error) {
				return nil, store.ErrNotFound
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPut, "/api/clients/7", ownerToken(t),
			`{"name":"Acme","email":"a@acme.com"}`)

		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			UpdateClientFunc: func(ownerID, clientID uint, p store.UpdateClientParams) (*models.Client, error) {
				return &models.Client{
					BaseModel:  models.BaseModel{ID: clientID},
					Name:       p.Name,
					Email:      p.Email,
					Subdomain:  "acme-co",
					BrandColor: store.DefaultBrandColor,
					OwnerID:    ownerID,
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPut, "/api/clients/7", ownerToken(t),
			`{"name":"Acme Renamed","email":"a@acme.com"}`)

		expectStatus(t, w, http.StatusOK)

		client := decodeBody(t, w)["client"].(map[string]interface{})
		if client["name"] != "Acme Renamed" {
			t.Errorf("unexpected client name: %v", client["name"])
		}
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotClientID uint
		tenants := &mocks.MockTenantStore{
			DeleteClientFunc: func(ownerID, clientID uint) error {
				gotClientID = clientID
				return nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodDelete, "/api/clients/7", ownerToken(t), "")

		expectStatus(t, w, http.StatusOK)

		if gotClientID != 7 {
			t.Errorf("expected delete of client 7, got %d", gotClientID)
		}
		if decodeBody(t, w)["message"] != "Client deleted successfully" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("Denied Is Not Found", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			DeleteClientFunc: func(ownerID, clientID uint) error {
				return store.ErrNotFound
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodDelete, "/api/clients/7", ownerToken(t), "")

		expectStatus(t, w, http.StatusNotFound)
	})
}
