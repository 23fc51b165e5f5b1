package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const OrderStatusPending = "pending"

type Order struct {
	ID          string       `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID      string       `gorm:"type:uuid;not null;index" json:"shop_id"`
	TableID     string       `gorm:"type:uuid;not null;index" json:"table_id"`
	SessionID   string       `gorm:"type:uuid;not null;index" json:"session_id"`
	Session     TableSession `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Status      string       `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount *float64     `gorm:"type:decimal(10,2)" json:"total_amount,omitempty"`
	OrderItems  []OrderItem  `gorm:"foreignKey:OrderID" json:"order_items"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
