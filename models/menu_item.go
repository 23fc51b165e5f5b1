package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID    string         `gorm:"type:uuid;not null;index" json:"category_id"`
	Category      MenuCategory   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ShopID        string         `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name          datatypes.JSON `gorm:"not null" json:"name"`
	Description   datatypes.JSON `json:"description,omitempty"`
	Price         float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountPrice *float64       `gorm:"type:decimal(10,2)" json:"discount_price,omitempty"`
	DiscountLabel datatypes.JSON `json:"discount_label,omitempty"`
	PhotoURLs     datatypes.JSON `json:"photo_urls,omitempty"`
	DietaryInfo   datatypes.JSON `json:"dietary_info,omitempty"`
	SortOrder     *int           `json:"sort_order,omitempty"`
	IsAvailable   bool           `gorm:"not null;default:true" json:"is_available"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

func (mi *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if mi.ID == "" {
		mi.ID = uuid.NewString()
	}
	return nil
}
