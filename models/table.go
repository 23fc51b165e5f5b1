package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Table struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID        string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_tables_shop_short_id" json:"shop_id"`
	Shop          Shop      `gorm:"foreignKey:ShopID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ShortID       string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_tables_shop_short_id" json:"short_id"`
	TableNumber   string    `gorm:"type:varchar(50);not null" json:"table_number"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	Capacity      *int      `json:"capacity,omitempty"`
	QRDisplayText *string   `gorm:"type:varchar(100)" json:"qr_display_text,omitempty"`
	SortOrder     *int      `json:"sort_order,omitempty"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
