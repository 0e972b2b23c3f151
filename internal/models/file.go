package models

// File is an uploaded artifact reference. Every File belongs to a Client;
// ProjectID is nil for client-level files not tied to a specific project.
type File struct {
	BaseModel

	OriginalName string `gorm:"not null" json:"original_name"`
	ClientID     uint   `gorm:"not null;index" json:"client_id"`
	ProjectID    *uint  `gorm:"index" json:"project_id"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
