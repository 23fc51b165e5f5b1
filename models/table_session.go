package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// TableSession scopes one table's ordering activity over a visit.
type TableSession struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID          string     `gorm:"type:uuid;not null;index" json:"shop_id"`
	TableID         string     `gorm:"type:uuid;not null;index" json:"table_id"`
	Table           Table      `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	FingerprintHash *string    `gorm:"type:varchar(64)" json:"fingerprint_hash,omitempty"`
	CustomerCount   *int       `json:"customer_count,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	LastOrderAt     *time.Time `json:"last_order_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

func (ts *TableSession) BeforeCreate(tx *gorm.DB) error {
	if ts.ID == "" {
		ts.ID = uuid.NewString()
	}
	return nil
}
