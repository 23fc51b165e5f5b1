package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/onurusluca/qrkosta-app/models"
)

// SessionService hands out table sessions, one active session per
// (shop, table) pair.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// GetOrCreate returns the id of the active session for the table, creating a
// new one when none exists. Idempotent per (shop, table).
func (ss *SessionService) GetOrCreate(shopID, tableID string, fingerprintHash *string) (string, error) {
	var session models.TableSession
	err := ss.DB.
		Where("shop_id = ? AND table_id = ? AND status = ?", shopID, tableID, models.SessionStatusActive).
		Order("created_at DESC").
		First(&session).Error
	if err == nil {
		return session.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	now := time.Now()
	session = models.TableSession{
		ShopID:          shopID,
		TableID:         tableID,
		Status:          models.SessionStatusActive,
		FingerprintHash: fingerprintHash,
		StartedAt:       &now,
	}
	if err := ss.DB.Create(&session).Error; err != nil {
		return "", err
	}
	return session.ID, nil
}
