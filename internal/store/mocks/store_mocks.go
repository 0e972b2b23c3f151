package mocks

import (
	"github.com/clientdeck-dev/clientdeck/internal/models"
	"github.com/clientdeck-dev/clientdeck/internal/store"
)

// MockTenantStore is a function-field mock of store.TenantStore. Unset
// fields make the corresponding call fail the not-found way, which is the
// safe default for authorization tests.
type MockTenantStore struct {
	AuthorizeOwnerFunc      func(ownerID, clientID uint) (*models.Client, error)
	ResolveBySlugFunc       func(slug string) (*models.Client, error)
	CreateClientFunc        func(ownerID uint, p store.CreateClientParams) (*models.Client, error)
	UpdateClientFunc        func(ownerID, clientID uint, p store.UpdateClientParams) (*models.Client, error)
	DeleteClientFunc        func(ownerID, clientID uint) error
	ListClientsForOwnerFunc func(ownerID uint) ([]models.Client, error)
	GetClientDetailFunc     func(ownerID, clientID uint) (*models.Client, error)
	CreateProjectFunc       func(ownerID, clientID uint, p store.CreateProjectParams) (*models.Project, error)
	UpdateProjectFunc       func(ownerID, clientID, projectID uint, p store.UpdateProjectParams) (*models.Project, error)
	DeleteProjectFunc       func(ownerID, clientID, projectID uint) error
	CreateUpdateFunc        func(ownerID, clientID, projectID uint, p store.CreateUpdateParams) (*models.Update, error)
	CreateFileFunc          func(ownerID, clientID uint, p store.CreateFileParams) (*models.File, error)
	DeleteFileFunc          func(ownerID, clientID, fileID uint) error
}

func (m *MockTenantStore) AuthorizeOwner(ownerID, clientID uint) (*models.Client, error) {
	if m.AuthorizeOwnerFunc != nil {
		return m.AuthorizeOwnerFunc(ownerID, clientID)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) ResolveBySlug(slug string) (*models.Client, error) {
	if m.ResolveBySlugFunc != nil {
		return m.ResolveBySlugFunc(slug)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) CreateClient(ownerID uint, p store.CreateClientParams) (*models.Client, error) {
	if m.CreateClientFunc != nil {
		return m.CreateClientFunc(ownerID, p)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) UpdateClient(ownerID, clientID uint, p store.UpdateClientParams) (*models.Client, error) {
	if m.UpdateClientFunc != nil {
		return m.UpdateClientFunc(ownerID, clientID, p)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) DeleteClient(ownerID, clientID uint) error {
	if m.DeleteClientFunc != nil {
		return m.DeleteClientFunc(ownerID, clientID)
	}
	return store.ErrNotFound
}

func (m *MockTenantStore) ListClientsForOwner(ownerID uint) ([]models.Client, error) {
	if m.ListClientsForOwnerFunc != nil {
		return m.ListClientsForOwnerFunc(ownerID)
	}
	return nil, nil
}

func (m *MockTenantStore) GetClientDetail(ownerID, clientID uint) (*models.Client, error) {
	if m.GetClientDetailFunc != nil {
		return m.GetClientDetailFunc(ownerID, clientID)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) CreateProject(ownerID, clientID uint, p store.CreateProjectParams) (*models.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ownerID, clientID, p)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) UpdateProject(ownerID, clientID, projectID uint, p store.UpdateProjectParams) (*models.Project, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ownerID, clientID, projectID, p)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) DeleteProject(ownerID, clientID, projectID uint) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ownerID, clientID, projectID)
	}
	return store.ErrNotFound
}

func (m *MockTenantStore) CreateUpdate(ownerID, clientID, projectID uint, p store.CreateUpdateParams) (*models.Update, error) {
	if m.CreateUpdateFunc != nil {
		return m.CreateUpdateFunc(ownerID, clientID, projectID, p)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) CreateFile(ownerID, clientID uint, p store.CreateFileParams) (*models.File, error) {
	if m.CreateFileFunc != nil {
		return m.CreateFileFunc(ownerID, clientID, p)
	}
	return nil, store.ErrNotFound
}

func (m *MockTenantStore) DeleteFile(ownerID, clientID, fileID uint) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ownerID, clientID, fileID)
	}
	return store.ErrNotFound
}

// MockOwnerStore is a function-field mock of store.OwnerStore.
type MockOwnerStore struct {
	CreateOwnerFunc      func(name, email, passwordHash string) (*models.Owner, error)
	FindOwnerByEmailFunc func(email string) (*models.Owner, error)
	FindOwnerByIDFunc    func(id uint) (*models.Owner, error)
}

func (m *MockOwnerStore) CreateOwner(name, email, passwordHash string) (*models.Owner, error) {
	if m.CreateOwnerFunc != nil {
		return m.CreateOwnerFunc(name, email, passwordHash)
	}
	return nil, store.ErrNotFound
}

func (m *MockOwnerStore) FindOwnerByEmail(email string) (*models.Owner, error) {
	if m.FindOwnerByEmailFunc != nil {
		return m.FindOwnerByEmailFunc(email)
	}
	return nil, store.ErrNotFound
}

func (m *MockOwnerStore) FindOwnerByID(id uint) (*models.Owner, error) {
	if m.FindOwnerByIDFunc != nil {
		return m.FindOwnerByIDFunc(id)
	}
	return nil, store.ErrNotFound
}
