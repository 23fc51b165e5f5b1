package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VisitPathShop  = "shop"
	VisitPathTable = "table"

	VisitTypeQR       = "qr"
	VisitTypeDirect   = "direct"
	VisitTypeRedirect = "redirect"
)

// Visit is an immutable audit row for one identifier resolution.
type Visit struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID     *string   `gorm:"type:uuid;index" json:"shop_id,omitempty"`
	TableID    *string   `gorm:"type:uuid;index" json:"table_id,omitempty"`
	Path       string    `gorm:"type:varchar(10);not null" json:"path"`
	Identifier string    `gorm:"type:varchar(100);not null" json:"identifier"`
	VisitType  string    `gorm:"type:varchar(10);not null" json:"visit_type"`
	UTMSource  *string   `gorm:"type:varchar(100)" json:"utm_source,omitempty"`
	VisitorID  *string   `gorm:"type:varchar(100)" json:"visitor_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
