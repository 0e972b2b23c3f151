package models

type Project struct {
	BaseModel

	Name     string `gorm:"not null" json:"name"`
	Status   string `gorm:"not null" json:"status"` // "active", "completed" or "paused"
	ClientID uint   `gorm:"not null;index" json:"client_id"`

	// Relationships
	Client  Client   `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Updates []Update `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Files   []File   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
