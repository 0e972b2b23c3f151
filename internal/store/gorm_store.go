package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clientdeck-dev/clientdeck/internal/models"
	"github.com/clientdeck-dev/clientdeck/internal/utils"
	"gorm.io/gorm"
)

// GormStore implements OwnerStore and TenantStore on top of Postgres.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func validStatus(status string) bool {
	switch status {
	case "active", "completed", "paused":
		return true
	}
	return false
}

// applyClientDefaults is the single defaulting step for client construction
// and update: empty brand colors fall back to DefaultBrandColor, company is
// trimmed (empty means "no company").
func applyClientDefaults(name, email, company, brandColor string) (string, string, string, string) {
	if brandColor == "" {
		brandColor = DefaultBrandColor
	}
	return strings.TrimSpace(name), strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(company), brandColor
}

// authorizeTx loads the client only if it belongs to the owner. Absence and
// foreign ownership collapse into the same ErrNotFound so no caller can
// learn whether another owner's client id exists.
func authorizeTx(tx *gorm.DB, ownerID, clientID uint) (*models.Client, error) {
	var client models.Client

	err := tx.Where("id = ? AND owner_id = ?", clientID, ownerID).First(&client).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &client, nil
}

func (s *GormStore) AuthorizeOwner(ownerID, clientID uint) (*models.Client, error) {
	return authorizeTx(s.db, ownerID, clientID)
}

// clientGraph attaches the preloads every full-graph read uses: projects
// newest-first, each project's updates newest-first (id ascending on equal
// timestamps), and all of the client's files newest-first.
func clientGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Projects", func(db *gorm.DB) *gorm.DB {
			return db.Order("projects.created_at DESC, projects.id ASC")
		}).
		Preload("Projects.Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("updates.created_at DESC, updates.id ASC")
		}).
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("files.created_at DESC, files.id ASC")
		})
}

func (s *GormStore) ResolveBySlug(slug string) (*models.Client, error) {
	var client models.Client

	err := clientGraph(s.db).Where("subdomain = ?", utils.NormalizeSubdomain(slug)).First(&client).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &client, nil
}

func (s *GormStore) CreateClient(ownerID uint, p CreateClientParams) (*models.Client, error) {
	name, email, company, brandColor := applyClientDefaults(p.Name, p.Email, p.Company, p.BrandColor)

	if name == "" || email == "" || p.Subdomain == "" {
		return nil, fmt.Errorf("%w: name, email, and subdomain are required", ErrValidation)
	}

	slug := utils.NormalizeSubdomain(p.Subdomain)

	if !utils.ValidSubdomain(slug) {
		return nil, fmt.Errorf("%w: subdomain must only contain lowercase letters, numbers, and hyphens", ErrValidation)
	}

	// Advisory pre-check for the common case. The unique index on
	// subdomain is the real enforcement point: under concurrent creates
	// the insert below fails with ErrDuplicatedKey for all but one.
	var existing models.Client

	err := s.db.Where("subdomain = ?", slug).First(&existing).Error

	if err == nil {
		return nil, fmt.Errorf("%w: this subdomain is already taken", ErrConflict)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client := models.Client{
		Name:       name,
		Email:      email,
		Company:    company,
		Subdomain:  slug,
		BrandColor: brandColor,
		OwnerID:    ownerID,
	}

	if err := s.db.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: this subdomain is already taken", ErrConflict)
		}
		return nil, err
	}

	return &client, nil
}

func (s *GormStore) UpdateClient(ownerID, clientID uint, p UpdateClientParams) (*models.Client, error) {
	name, email, company, brandColor := applyClientDefaults(p.Name, p.Email, p.Company, p.BrandColor)

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	var client *models.Client

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error

		client, err = authorizeTx(tx, ownerID, clientID)

		if err != nil {
			return err
		}

		// Subdomain and owner are immutable; only these columns change.
		updates := map[string]interface{}{
			"name":        name,
			"email":       email,
			"company":     company,
			"brand_color": brandColor,
		}

		return tx.Model(client).Updates(updates).Error
	})

	if err != nil {
		return nil, err
	}

	return client, nil
}

func (s *GormStore) DeleteClient(ownerID, clientID uint) error {
	// One transaction, children first: Files, Updates, Projects, Client.
	// A reader racing this delete sees the pre-delete graph or nothing.
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		if err := tx.Where("client_id = ?", clientID).Delete(&models.File{}).Error; err != nil {
			return err
		}

		var projectIDs []uint

		if err := tx.Model(&models.Project{}).Where("client_id = ?", clientID).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Update{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("client_id = ?", clientID).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Client{}, clientID).Error
	})
}

func (s *GormStore) ListClientsForOwner(ownerID uint) ([]models.Client, error) {
	var clients []models.Client

	err := s.db.
		Where("owner_id = ?", ownerID).
		Preload("Projects").
		Preload("Files").
		Order("created_at DESC, id ASC").
		Find(&clients).Error

	if err != nil {
		return nil, err
	}

	return clients, nil
}

func (s *GormStore) GetClientDetail(ownerID, clientID uint) (*models.Client, error) {
	var client models.Client

	err := clientGraph(s.db).Where("id = ? AND owner_id = ?", clientID, ownerID).First(&client).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &client, nil
}

func (s *GormStore) CreateProject(ownerID, clientID uint, p CreateProjectParams) (*models.Project, error) {
	name := strings.TrimSpace(p.Name)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	status := p.Status

	if status == "" {
		status = "active"
	}

	if !validStatus(status) {
		return nil, fmt.Errorf("%w: status must be active, completed, or paused", ErrValidation)
	}

	project := models.Project{
		Name:     name,
		Status:   status,
		ClientID: clientID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		return tx.Create(&project).Error
	})

	if err != nil {
		return nil, err
	}

	return &project, nil
}

// projectInClientTx loads a project only if it belongs to the given client.
// A project id under someone else's client is indistinguishable from a
// missing one.
func projectInClientTx(tx *gorm.DB, clientID, projectID uint) (*models.Project, error) {
	var project models.Project

	err := tx.Where("id = ? AND client_id = ?", projectID, clientID).First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &project, nil
}

func (s *GormStore) UpdateProject(ownerID, clientID, projectID uint, p UpdateProjectParams) (*models.Project, error) {
	name := strings.TrimSpace(p.Name)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if !validStatus(p.Status) {
		return nil, fmt.Errorf("%w: status must be active, completed, or paused", ErrValidation)
	}

	var project *models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		var err error

		project, err = projectInClientTx(tx, clientID, projectID)

		if err != nil {
			return err
		}

		return tx.Model(project).Updates(map[string]interface{}{
			"name":   name,
			"status": p.Status,
		}).Error
	})

	if err != nil {
		return nil, err
	}

	return project, nil
}

func (s *GormStore) DeleteProject(ownerID, clientID, projectID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		if _, err := projectInClientTx(tx, clientID, projectID); err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&models.File{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&models.Update{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, projectID).Error
	})
}

func (s *GormStore) CreateUpdate(ownerID, clientID, projectID uint, p CreateUpdateParams) (*models.Update, error) {
	title := strings.TrimSpace(p.Title)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	update := models.Update{
		Title:     title,
		Content:   p.Content,
		ProjectID: projectID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		if _, err := projectInClientTx(tx, clientID, projectID); err != nil {
			return err
		}

		return tx.Create(&update).Error
	})

	if err != nil {
		return nil, err
	}

	return &update, nil
}

func (s *GormStore) CreateFile(ownerID, clientID uint, p CreateFileParams) (*models.File, error) {
	originalName := strings.TrimSpace(p.OriginalName)

	if originalName == "" {
		return nil, fmt.Errorf("%w: original name is required", ErrValidation)
	}

	file := models.File{
		OriginalName: originalName,
		ClientID:     clientID,
		ProjectID:    p.ProjectID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		if p.ProjectID != nil {
			if _, err := projectInClientTx(tx, clientID, *p.ProjectID); err != nil {
				return err
			}
		}

		return tx.Create(&file).Error
	})

	if err != nil {
		return nil, err
	}

	return &file, nil
}

func (s *GormStore) DeleteFile(ownerID, clientID, fileID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := authorizeTx(tx, ownerID, clientID); err != nil {
			return err
		}

		result := tx.Where("id = ? AND client_id = ?", fileID, clientID).Delete(&models.File{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (s *GormStore) CreateOwner(name, email, passwordHash string) (*models.Owner, error) {
	owner := models.Owner{
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, err
	}

	return &owner, nil
}

func (s *GormStore) FindOwnerByEmail(email string) (*models.Owner, error) {
	var owner models.Owner

	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&owner).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &owner, nil
}

func (s *GormStore) FindOwnerByID(id uint) (*models.Owner, error) {
	var owner models.Owner

	err := s.db.First(&owner, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &owner, nil
}
