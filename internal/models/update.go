package models

// Update is a timestamped status note. Updates always belong to a Project,
// never directly to a Client.
type Update struct {
	BaseModel

	Title     string `gorm:"not null" json:"title"`
	Content   string `json:"content"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
