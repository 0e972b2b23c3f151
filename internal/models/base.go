package models

import "time"

// BaseModel is embedded by every entity. Deletes in this system are hard
// deletes performed inside cascade transactions, so there is no DeletedAt
// column — a deleted row must be unreachable by any subsequent query.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
