package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItemVariant struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	MenuItemID  string         `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	MenuItem    MenuItem       `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name        datatypes.JSON `gorm:"not null" json:"name"`
	Description datatypes.JSON `json:"description,omitempty"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	SortOrder   *int           `json:"sort_order,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
}

func (v *MenuItemVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
