package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Menu struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID    string    `gorm:"type:uuid;not null;index" json:"shop_id"`
	Shop      Shop      `gorm:"foreignKey:ShopID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ShortID   *string   `gorm:"type:varchar(5)" json:"short_id,omitempty"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Type      *string   `gorm:"type:varchar(50)" json:"type,omitempty"`
	SortOrder *int      `json:"sort_order,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
