package models

// Client is a tenant: one isolated portal per end-client, addressed publicly
// by its subdomain slug. Subdomain and OwnerID are immutable after creation.
type Client struct {
	BaseModel

	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Company    string `json:"company"`
	Subdomain  string `gorm:"uniqueIndex;not null" json:"subdomain"`
	BrandColor string `gorm:"not null" json:"brand_color"`
	OwnerID    uint   `gorm:"not null;index" json:"owner_id"`

	// Relationships
	Owner    Owner     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Projects []Project `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Files    []File    `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
