package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onurusluca/qrkosta-app/models"
	"github.com/onurusluca/qrkosta-app/services"
	"github.com/onurusluca/qrkosta-app/utils"
)

type TableController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
	Visits   *services.VisitLogger
}

func NewTableController(db *gorm.DB, sessions *services.SessionService, visits *services.VisitLogger) *TableController {
	return &TableController{DB: db, Sessions: sessions, Visits: visits}
}

// ResolveTable -> GET /api/shop/:identifier/table/:tableShortId
//
// Resolves the shop, then the table within it, acquires the table session and
// returns the default menu tree in one response.
func (tc *TableController) ResolveTable(c *gin.Context) {
	identifier := c.Param("identifier")
	tableShortID := c.Param("tableShortId")
	if identifier == "" || tableShortID == "" {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}

	utmSource := optionalQuery(c, "utm_source")
	visitorID := optionalQuery(c, "visitor_id")

	shop, shortIDPath, err := resolveShopStrict(tc.DB, identifier)
	if err != nil {
		respondShopResolveError(c, err)
		return
	}

	var table models.Table
	err = tc.DB.Where("shop_id = ? AND short_id = ? AND is_active = ?",
		shop.ID, utils.NormalizeShortID(tableShortID), true).First(&table).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrTableNotFound)
		return
	}

	sessionID, err := tc.Sessions.GetOrCreate(shop.ID, table.ID, nil)
	if err != nil {
		utils.ErrorLogger.Printf("session acquisition failed for table %s: %v", table.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrSessionFailed)
		return
	}

	categories := make([]models.MenuCategory, 0)
	items := make([]models.MenuItem, 0)
	variants := make([]models.MenuItemVariant, 0)
	if menu := findDefaultMenu(tc.DB, shop.ID); menu != nil {
		categories, items, variants = loadMenuContents(tc.DB, menu.ID)
	}

	tc.Visits.Log(models.Visit{
		ShopID:     &shop.ID,
		TableID:    &table.ID,
		Path:       models.VisitPathTable,
		Identifier: identifier,
		VisitType:  visitTypeFor(shortIDPath, utmSource),
		UTMSource:  utmSource,
		VisitorID:  visitorID,
	})

	c.JSON(http.StatusOK, gin.H{
		"shop":       shop,
		"table":      table,
		"session_id": sessionID,
		"categories": categories,
		"items":      items,
		"variants":   variants,
	})
}

// GetTableOrders -> GET /api/shop/:identifier/table/:tableShortId/orders
func (tc *TableController) GetTableOrders(c *gin.Context) {
	identifier := c.Param("identifier")
	tableShortID := c.Param("tableShortId")
	if identifier == "" || tableShortID == "" {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}

	shop, _, err := resolveShopStrict(tc.DB, identifier)
	if err != nil {
		respondShopResolveError(c, err)
		return
	}

	var table models.Table
	err = tc.DB.Where("shop_id = ? AND short_id = ? AND is_active = ?",
		shop.ID, utils.NormalizeShortID(tableShortID), true).First(&table).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrTableNotFound)
		return
	}

	orders := make([]models.Order, 0)
	if err := tc.DB.
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Where("table_id = ?", table.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("orders lookup failed for table %s: %v", table.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrFetchOrdersFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// resolveShopStrict applies the 5-char classification. The short-id branch
// does not require is_active, matching the redirect behavior of QR links.
func resolveShopStrict(db *gorm.DB, identifier string) (*models.Shop, bool, error) {
	var shop models.Shop
	if utils.IsShortID(identifier) {
		err := db.Where("short_id = ?", utils.NormalizeShortID(identifier)).First(&shop).Error
		if err != nil {
			return nil, true, err
		}
		return &shop, true, nil
	}
	err := db.Where("slug = ? AND is_active = ?", identifier, true).First(&shop).Error
	if err != nil {
		return nil, false, err
	}
	return &shop, false, nil
}

func respondShopResolveError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}
	utils.ErrorLogger.Printf("shop lookup failed: %v", err)
	utils.RespondError(c, http.StatusInternalServerError, utils.ErrLoadShopFailed)
}
