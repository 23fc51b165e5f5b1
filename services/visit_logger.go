package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/onurusluca/qrkosta-app/models"
	"github.com/onurusluca/qrkosta-app/utils"
)

const visitLogDelay = 2 * time.Second

// VisitLogger records identifier resolutions for analytics. Inserts are
// delayed and detached from the request; a lost visit row is acceptable,
// a delayed customer response is not.
type VisitLogger struct {
	DB    *gorm.DB
	Delay time.Duration
}

func NewVisitLogger(db *gorm.DB) *VisitLogger {
	return &VisitLogger{DB: db, Delay: visitLogDelay}
}

// Log schedules a fire-and-forget visit insert. Failures are logged and
// otherwise swallowed.
func (vl *VisitLogger) Log(visit models.Visit) {
	time.AfterFunc(vl.Delay, func() {
		if err := vl.DB.Create(&visit).Error; err != nil {
			utils.ErrorLogger.Printf("visit log insert failed: %v", err)
		}
	})
}
