package handlers_test

import (
	"net/http"
	"testing"

	"github.com/clientdeck-dev/clientdeck/internal/models"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/store/mocks"
)

func TestCreateProject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotClientID uint
		tenants := &mocks.MockTenantStore{
			CreateProjectFunc: func(ownerID, clientID uint, p store.CreateProjectParams) (*models.Project, error) {
				gotClientID = clientID
				return &models.Project{
					BaseModel: models.BaseModel{ID: 5},
					Name:      p.Name,
					Status:    "active",
					ClientID:  clientID,
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients/7/projects", ownerToken(t),
			`{"name":"Website"}`)

		expectStatus(t, w, http.StatusCreated)

		if gotClientID != 7 {
			t.Errorf("expected client 7, got %d", gotClientID)
		}

		project := decodeBody(t, w)["project"].(map[string]interface{})
		if project["status"] != "active" {
			t.Errorf("expected defaulted active status, got %v", project["status"])
		}
	})

	t.Run("Foreign Client Is Not Found", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			CreateProjectFunc: func(ownerID, clientID uint, p store.CreateProjectParams) (*models.Project, error) {
				return nil, store.ErrNotFound
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients/7/projects", ownerToken(t),
			`{"name":"Website"}`)

		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestCreateUpdate(t *testing.T) {
	t.Run("Routes Through Client Guard", func(t *testing.T) {
		var gotOwnerID, gotClientID, gotProjectID uint
		tenants := &mocks.MockTenantStore{
			CreateUpdateFunc: func(ownerID, clientID, projectID uint, p store.CreateUpdateParams) (*models.Update, error) {
				gotOwnerID, gotClientID, gotProjectID = ownerID, clientID, projectID
				return &models.Update{
					BaseModel: models.BaseModel{ID: 9},
					Title:     p.Title,
					Content:   p.Content,
					ProjectID: projectID,
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients/7/projects/5/updates", ownerToken(t),
			`{"title":"Milestone","content":"Shipped the draft"}`)

		expectStatus(t, w, http.StatusCreated)

		if gotOwnerID != testOwnerID || gotClientID != 7 || gotProjectID != 5 {
			t.Errorf("unexpected scope: owner %d client %d project %d", gotOwnerID, gotClientID, gotProjectID)
		}
	})

	t.Run("Foreign Project Is Not Found", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			CreateUpdateFunc: func(ownerID, clientID, projectID uint, p store.CreateUpdateParams) (*models.Update, error) {
				return nil, store.ErrNotFound
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients/7/projects/5/updates", ownerToken(t),
			`{"title":"Milestone"}`)

		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestRegisterFile(t *testing.T) {
	t.Run("Client Level", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			CreateFileFunc: func(ownerID, clientID uint, p store.CreateFileParams) (*models.File, error) {
				if p.ProjectID != nil {
					t.Errorf("expected client-level file, got project %d", *p.ProjectID)
				}
				return &models.File{
					BaseModel:    models.BaseModel{ID: 3},
					OriginalName: p.OriginalName,
					ClientID:     clientID,
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients/7/files", ownerToken(t),
			`{"original_name":"contract.pdf"}`)

		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("Project Scoped", func(t *testing.T) {
		tenants := &mocks.MockTenantStore{
			CreateFileFunc: func(ownerID, clientID uint, p store.CreateFileParams) (*models.File, error) {
				if p.ProjectID == nil || *p.ProjectID != 5 {
					t.Errorf("expected file scoped to project 5, got %v", p.ProjectID)
				}
				return &models.File{
					BaseModel:    models.BaseModel{ID: 4},
					OriginalName: p.OriginalName,
					ClientID:     clientID,
					ProjectID:    p.ProjectID,
				}, nil
			},
		}
		r := newTestRouter(t, tenants)

		w := doRequest(t, r, http.MethodPost, "/api/clients/7/files", ownerToken(t),
			`{"original_name":"mockup.png","project_id":5}`)

		expectStatus(t, w, http.StatusCreated)
	})
}
