package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuCategory struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	MenuID       string         `gorm:"type:uuid;not null;index" json:"menu_id"`
	Menu         Menu           `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ShopID       string         `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name         datatypes.JSON `gorm:"not null" json:"name"`
	Description  datatypes.JSON `json:"description,omitempty"`
	CategoryType *string        `gorm:"type:varchar(50)" json:"category_type,omitempty"`
	ImageURL     *string        `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	SortOrder    *int           `json:"sort_order,omitempty"`
	IsVisible    bool           `gorm:"not null;default:true" json:"is_visible"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
}

func (mc *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if mc.ID == "" {
		mc.ID = uuid.NewString()
	}
	return nil
}
