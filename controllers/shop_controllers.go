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

type ShopController struct {
	DB     *gorm.DB
	Visits *services.VisitLogger
}

func NewShopController(db *gorm.DB, visits *services.VisitLogger) *ShopController {
	return &ShopController{DB: db, Visits: visits}
}

// ResolveShop -> GET /api/shop/:identifier
//
// A 5-char alphanumeric identifier is a printed QR short id; anything else is
// a slug. The short-id branch only returns the canonical slug so the client
// can re-request the friendly URL.
func (sc *ShopController) ResolveShop(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}

	utmSource := optionalQuery(c, "utm_source")
	visitorID := optionalQuery(c, "visitor_id")

	if utils.IsShortID(identifier) {
		var shop models.Shop
		err := sc.DB.Where("short_id = ?", utils.NormalizeShortID(identifier)).First(&shop).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
			return
		}
		if err != nil {
			utils.ErrorLogger.Printf("short_id lookup failed for %q: %v", identifier, err)
			utils.RespondError(c, http.StatusInternalServerError, utils.ErrResolveShopFailed)
			return
		}

		sc.Visits.Log(models.Visit{
			Path:       models.VisitPathShop,
			Identifier: identifier,
			VisitType:  models.VisitTypeRedirect,
			UTMSource:  utmSource,
			VisitorID:  visitorID,
		})
		c.JSON(http.StatusOK, gin.H{"slug": shop.Slug})
		return
	}

	var shop models.Shop
	err := sc.DB.Where("slug = ? AND is_active = ?", identifier, true).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("slug lookup failed for %q: %v", identifier, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrLoadShopFailed)
		return
	}

	// An explicit menu_id is preferred; it silently falls back to the
	// default menu when it does not resolve within this shop.
	var menu *models.Menu
	if menuID := c.Query("menu_id"); menuID != "" {
		var byID models.Menu
		if err := sc.DB.Where("id = ? AND shop_id = ?", menuID, shop.ID).First(&byID).Error; err == nil {
			menu = &byID
		}
	}
	if menu == nil {
		menu = findDefaultMenu(sc.DB, shop.ID)
	}

	sc.Visits.Log(models.Visit{
		ShopID:     &shop.ID,
		Path:       models.VisitPathShop,
		Identifier: identifier,
		VisitType:  visitTypeFor(false, utmSource),
		UTMSource:  utmSource,
		VisitorID:  visitorID,
	})

	if menu == nil {
		// A shop with no menu is valid state, e.g. mid-onboarding.
		c.JSON(http.StatusOK, gin.H{
			"shop":       shop,
			"menu":       nil,
			"categories": []models.MenuCategory{},
			"items":      []models.MenuItem{},
			"variants":   []models.MenuItemVariant{},
		})
		return
	}

	categories, items, variants := loadMenuContents(sc.DB, menu.ID)
	c.JSON(http.StatusOK, gin.H{
		"shop":       shop,
		"menu":       menu,
		"categories": categories,
		"items":      items,
		"variants":   variants,
	})
}

// GetShopMenus -> GET /api/shop/:identifier/menus
func (sc *ShopController) GetShopMenus(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}

	if utils.IsShortID(identifier) {
		var shop models.Shop
		err := sc.DB.Where("short_id = ?", utils.NormalizeShortID(identifier)).First(&shop).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
			return
		}
		if err != nil {
			utils.ErrorLogger.Printf("short_id lookup failed for %q: %v", identifier, err)
			utils.RespondError(c, http.StatusInternalServerError, utils.ErrResolveShopFailed)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slug": shop.Slug})
		return
	}

	var shop models.Shop
	err := sc.DB.Where("slug = ? AND is_active = ?", identifier, true).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("slug lookup failed for %q: %v", identifier, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrLoadShopFailed)
		return
	}

	menus := make([]models.Menu, 0)
	if err := sc.DB.
		Where("shop_id = ? AND is_active = ? AND short_id IS NOT NULL", shop.ID, true).
		Order("sort_order ASC NULLS LAST").
		Order("created_at ASC").
		Find(&menus).Error; err != nil {
		utils.ErrorLogger.Printf("menus lookup failed for shop %s: %v", shop.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrLoadMenusFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": shop, "menus": menus})
}

// GetShopByShortID -> GET /api/shop/s/:shortId (shop card for QR landing)
func (sc *ShopController) GetShopByShortID(c *gin.Context) {
	shortID := c.Param("shortId")
	if shortID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("short_id is required"))
		return
	}

	var shop models.Shop
	err := sc.DB.Where("short_id = ? AND is_active = ?", utils.NormalizeShortID(shortID), true).First(&shop).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// GetShopBySlug -> GET /api/shops/:slug (legacy lookup: slug first, then a
// relaxed 4-6 char short-id fallback)
func (sc *ShopController) GetShopBySlug(c *gin.Context) {
	param := c.Param("slug")
	if param == "" || param == "s" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("slug or short_id is required"))
		return
	}

	shop, err := resolveShopLoose(sc.DB, param)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// GetShopMenu -> GET /api/shops/:slug/menu (legacy flat menu listing)
func (sc *ShopController) GetShopMenu(c *gin.Context) {
	param := c.Param("slug")
	if param == "" || param == "s" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("slug or short_id is required"))
		return
	}

	shop, err := resolveShopLoose(sc.DB, param)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}

	categories := make([]models.MenuCategory, 0)
	items := make([]models.MenuItem, 0)

	menu := findDefaultMenu(sc.DB, shop.ID)
	if menu == nil {
		c.JSON(http.StatusOK, gin.H{"categories": categories, "items": items})
		return
	}

	sc.DB.Where("menu_id = ? AND is_visible = ?", menu.ID, true).
		Order("sort_order ASC NULLS LAST").
		Find(&categories)
	sc.DB.Where("shop_id = ? AND is_available = ?", shop.ID, true).
		Order("sort_order ASC NULLS LAST").
		Find(&items)

	c.JSON(http.StatusOK, gin.H{"categories": categories, "items": items})
}

// resolveShopLoose looks up an active shop by slug, falling back to a
// case-insensitive short-id match for 4-6 char alphanumeric values.
func resolveShopLoose(db *gorm.DB, param string) (*models.Shop, error) {
	var shop models.Shop
	err := db.Where("slug = ? AND is_active = ?", param, true).First(&shop).Error
	if err == nil {
		return &shop, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !utils.IsLooseShortID(param) {
		return nil, gorm.ErrRecordNotFound
	}
	err = db.Where("UPPER(short_id) = ? AND is_active = ?", utils.NormalizeShortID(param), true).First(&shop).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// findDefaultMenu returns the shop's first active menu by sort order, or nil.
func findDefaultMenu(db *gorm.DB, shopID string) *models.Menu {
	var menu models.Menu
	err := db.Where("shop_id = ? AND is_active = ?", shopID, true).
		Order("sort_order ASC NULLS LAST").
		First(&menu).Error
	if err != nil {
		return nil
	}
	return &menu
}

// loadMenuContents fetches visible categories, then available items, then
// variants. Each step depends on the previous one's ids, and later steps are
// skipped entirely when a prior step yields nothing.
func loadMenuContents(db *gorm.DB, menuID string) ([]models.MenuCategory, []models.MenuItem, []models.MenuItemVariant) {
	categories := make([]models.MenuCategory, 0)
	items := make([]models.MenuItem, 0)
	variants := make([]models.MenuItemVariant, 0)

	db.Where("menu_id = ? AND is_visible = ?", menuID, true).
		Order("sort_order ASC NULLS LAST").
		Order("created_at ASC").
		Find(&categories)
	if len(categories) == 0 {
		return categories, items, variants
	}

	categoryIDs := make([]string, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
	}
	db.Where("category_id IN ? AND is_available = ?", categoryIDs, true).
		Order("sort_order ASC NULLS LAST").
		Order("created_at ASC").
		Find(&items)
	if len(items) == 0 {
		return categories, items, variants
	}

	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}
	db.Where("menu_item_id IN ?", itemIDs).
		Order("sort_order ASC NULLS LAST").
		Find(&variants)

	return categories, items, variants
}

func visitTypeFor(shortIDPath bool, utmSource *string) string {
	if shortIDPath {
		return models.VisitTypeRedirect
	}
	if utmSource != nil && *utmSource == "qr-code" {
		return models.VisitTypeQR
	}
	return models.VisitTypeDirect
}

func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
