package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Shop struct {
	ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	ShortID       *string        `gorm:"type:varchar(5);uniqueIndex" json:"short_id,omitempty"`
	ShopType      *string        `gorm:"type:varchar(50)" json:"shop_type,omitempty"`
	LogoURL       *string        `gorm:"type:varchar(255)" json:"logo_url,omitempty"`
	BrandColor    *string        `gorm:"type:varchar(20)" json:"brand_color,omitempty"`
	Languages     datatypes.JSON `json:"languages,omitempty"`
	ThemeSettings datatypes.JSON `json:"theme_settings,omitempty"`
	Settings      datatypes.JSON `json:"settings,omitempty"`
	Address       datatypes.JSON `json:"address,omitempty"`
	Phone         *string        `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email         *string        `gorm:"type:varchar(255)" json:"email,omitempty"`
	GoogleMapsURL *string        `gorm:"type:varchar(255)" json:"google_maps_url,omitempty"`
	WebsiteURL    *string        `gorm:"type:varchar(255)" json:"website_url,omitempty"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
