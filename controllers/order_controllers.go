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

type OrderController struct {
	DB       *gorm.DB
	Sessions *services.SessionService
}

func NewOrderController(db *gorm.DB, sessions *services.SessionService) *OrderController {
	return &OrderController{DB: db, Sessions: sessions}
}

type orderItemRequest struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Notes      *string `json:"notes"`
}

// CreateOrder -> POST /api/order
//
// Lenient variant: quantities outside [1,99] are normalized, not rejected.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		ShopID    string             `json:"shop_id"`
		TableID   string             `json:"table_id"`
		SessionID string             `json:"session_id"`
		Items     []orderItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}
	if req.ShopID == "" || req.TableID == "" || req.SessionID == "" || len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}

	order := models.Order{
		ShopID:    req.ShopID,
		TableID:   req.TableID,
		SessionID: req.SessionID,
		Status:    models.OrderStatusPending,
	}
	if err := oc.DB.Omit("OrderItems").Create(&order).Error; err != nil {
		utils.ErrorLogger.Printf("order insert failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrCreateOrderFailed)
		return
	}

	rows := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID := item.MenuItemID
		rows = append(rows, models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: &menuItemID,
			Quantity:   clampQuantity(item.Quantity),
			Notes:      item.Notes,
			Status:     models.OrderStatusPending,
		})
	}
	if err := oc.DB.Create(&rows).Error; err != nil {
		oc.compensateOrder(order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrAddItemsFailed)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": order.ID})
}

// CreateTableOrder -> POST /api/shop/:identifier/table/:tableShortId/order
//
// Strict variant: invalid items are rejected outright, and the shop is
// resolved slug-first with the relaxed short-id fallback.
func (oc *OrderController) CreateTableOrder(c *gin.Context) {
	identifier := c.Param("identifier")
	tableShortID := c.Param("tableShortId")
	if identifier == "" || identifier == "s" || tableShortID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("shop and table are required"))
		return
	}

	var req struct {
		Items []orderItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidRequest)
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("at least one item is required"))
		return
	}
	for _, item := range req.Items {
		if item.MenuItemID == "" || item.Quantity < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item: menu_item_id and quantity required"))
			return
		}
	}

	shop, err := resolveShopLoose(oc.DB, identifier)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrShopNotFound)
		return
	}

	var table models.Table
	err = oc.DB.Where("shop_id = ? AND short_id = ? AND is_active = ?",
		shop.ID, utils.NormalizeShortID(tableShortID), true).First(&table).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrTableNotFound)
		return
	}

	sessionID, err := oc.Sessions.GetOrCreate(shop.ID, table.ID, nil)
	if err != nil {
		utils.ErrorLogger.Printf("session acquisition failed for table %s: %v", table.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrSessionFailed)
		return
	}

	order := models.Order{
		ShopID:    shop.ID,
		TableID:   table.ID,
		SessionID: sessionID,
		Status:    models.OrderStatusPending,
	}
	if err := oc.DB.Omit("OrderItems").Create(&order).Error; err != nil {
		utils.ErrorLogger.Printf("order insert failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrCreateOrderFailed)
		return
	}

	rows := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID := item.MenuItemID
		rows = append(rows, models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: &menuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
			Status:     models.OrderStatusPending,
		})
	}
	if err := oc.DB.Create(&rows).Error; err != nil {
		oc.compensateOrder(order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, utils.ErrAddItemsFailed)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": order.ID, "status": order.Status})
}

// compensateOrder deletes an order whose items could not be inserted. The two
// inserts are not wrapped in a transaction; this best-effort delete is the
// only safeguard against an empty order, and its own failure is swallowed.
func (oc *OrderController) compensateOrder(orderID string, cause error) {
	utils.ErrorLogger.Printf("order item insert failed for order %s: %v", orderID, cause)
	if err := oc.DB.Delete(&models.Order{}, "id = ?", orderID).Error; err != nil {
		utils.ErrorLogger.Printf("compensating delete failed for order %s: %v", orderID, err)
	}
}

func clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > 99 {
		return 99
	}
	return quantity
}
