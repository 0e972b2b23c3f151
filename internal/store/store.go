package store

import (
	"github.com/clientdeck-dev/clientdeck/internal/models"
)

// DefaultBrandColor is applied when a client is created or updated without
// an explicit brand color.
const DefaultBrandColor = "#3B82F6"

type CreateClientParams struct {
	Name       string
	Email      string
	Company    string
	Subdomain  string
	BrandColor string
}

type UpdateClientParams struct {
	Name       string
	Email      string
	Company    string
	BrandColor string
}

type CreateProjectParams struct {
	Name   string
	Status string
}

type UpdateProjectParams struct {
	Name   string
	Status string
}

type CreateUpdateParams struct {
	Title   string
	Content string
}

type CreateFileParams struct {
	OriginalName string
	ProjectID    *uint
}

// OwnerStore manages owner accounts.
type OwnerStore interface {
	CreateOwner(name, email, passwordHash string) (*models.Owner, error)
	FindOwnerByEmail(email string) (*models.Owner, error)
	FindOwnerByID(id uint) (*models.Owner, error)
}

// TenantStore is the tenancy and authorization boundary. AuthorizeOwner is
// the ownership guard: every private operation routes through it on the root
// client id, and mutations re-evaluate it inside their own transaction.
// ResolveBySlug is the public tenancy resolver and requires no identity.
//
// Loaded clients carry their full graph: Projects with Updates (newest
// first), and all of the client's Files. Derived counts and recent-N lists
// are computed by the aggregate package, not here.
type TenantStore interface {
	AuthorizeOwner(ownerID, clientID uint) (*models.Client, error)
	ResolveBySlug(slug string) (*models.Client, error)

	CreateClient(ownerID uint, p CreateClientParams) (*models.Client, error)
	UpdateClient(ownerID, clientID uint, p UpdateClientParams) (*models.Client, error)
	DeleteClient(ownerID, clientID uint) error
	ListClientsForOwner(ownerID uint) ([]models.Client, error)
	GetClientDetail(ownerID, clientID uint) (*models.Client, error)

	CreateProject(ownerID, clientID uint, p CreateProjectParams) (*models.Project, error)
	UpdateProject(ownerID, clientID, projectID uint, p UpdateProjectParams) (*models.Project, error)
	DeleteProject(ownerID, clientID, projectID uint) error

	CreateUpdate(ownerID, clientID, projectID uint, p CreateUpdateParams) (*models.Update, error)

	CreateFile(ownerID, clientID uint, p CreateFileParams) (*models.File, error)
	DeleteFile(ownerID, clientID, fileID uint) error
}
